package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByMatri implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByMatri(ctx context.Context, matri string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, matri, department, position, status
		FROM employees
		WHERE matri = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, matri).Scan(
		&emp.ID, &emp.Name, &emp.Matri, &emp.Department, &emp.Position, &emp.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by matri %s: %w", matri, err)
	}

	return emp, nil
}
