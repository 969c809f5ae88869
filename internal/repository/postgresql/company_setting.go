package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) company.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

const selectSettingColumns = `
	SELECT id, name, latitude::float8, longitude::float8, allowed_radius_meters, created_at, updated_at
	FROM company_settings
`

// Get implements company.SettingRepository. The oldest row is the active setting.
func (r *settingRepositoryImpl) Get(ctx context.Context) (company.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := selectSettingColumns + `
		ORDER BY created_at ASC
		LIMIT 1
	`

	var s company.Setting
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.AllowedRadiusMeters, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Setting{}, company.ErrSettingNotConfigured
		}
		return company.Setting{}, fmt.Errorf("failed to get company setting: %w", err)
	}

	return s, nil
}

// Upsert implements company.SettingRepository.
func (r *settingRepositoryImpl) Upsert(ctx context.Context, setting company.Setting) (company.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH current AS (
			SELECT id FROM company_settings ORDER BY created_at ASC LIMIT 1
		), updated AS (
			UPDATE company_settings
			SET name = $1, latitude = $2, longitude = $3, allowed_radius_meters = $4, updated_at = NOW()
			WHERE id = (SELECT id FROM current)
			RETURNING id, name, latitude::float8, longitude::float8, allowed_radius_meters, created_at, updated_at
		), inserted AS (
			INSERT INTO company_settings (name, latitude, longitude, allowed_radius_meters)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM current)
			RETURNING id, name, latitude::float8, longitude::float8, allowed_radius_meters, created_at, updated_at
		)
		SELECT * FROM updated
		UNION ALL
		SELECT * FROM inserted
	`

	var s company.Setting
	err := q.QueryRow(ctx, query,
		setting.Name, setting.Latitude, setting.Longitude, setting.AllowedRadiusMeters,
	).Scan(&s.ID, &s.Name, &s.Latitude, &s.Longitude, &s.AllowedRadiusMeters, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return company.Setting{}, fmt.Errorf("failed to upsert company setting: %w", err)
	}

	return s, nil
}
