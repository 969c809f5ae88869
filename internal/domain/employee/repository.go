package employee

import "context"

type EmployeeRepository interface {
	// GetByMatri returns ErrEmployeeNotFound when no employee has the code.
	GetByMatri(ctx context.Context, matri string) (Employee, error)
}
