package postgresql_test

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
)

// ErrNoTestDatabase is returned when TEST_DATABASE_URL is unset.
var ErrNoTestDatabase = errors.New("TEST_DATABASE_URL is not set")

// TestDatabaseSetup holds a migrated connection to the test database.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies migrations.
func NewTestDatabase(ctx context.Context) (*TestDatabaseSetup, error) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		return nil, ErrNoTestDatabase
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{MaxConns: 10, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &TestDatabaseSetup{DB: db}, nil
}

// TruncateAllTables removes every row the repository tests create.
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tables := []string{
		"attendance_records",
		"leave_requests",
		"company_settings",
		"employees",
	}

	for _, table := range tables {
		if _, err := t.DB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

// InsertEmployee seeds an employee row and returns its id.
func (t *TestDatabaseSetup) InsertEmployee(ctx context.Context, name, matri, status string) (string, error) {
	var id string
	err := t.DB.QueryRow(ctx,
		`INSERT INTO employees (name, matri, department, position, status) VALUES ($1, $2, 'Operations', 'Agent', $3) RETURNING id`,
		name, matri, status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert employee: %w", err)
	}
	return id, nil
}

func (t *TestDatabaseSetup) Close() {
	t.DB.Close()
}
