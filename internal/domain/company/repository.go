package company

import "context"

type SettingRepository interface {
	// Get returns the singleton row or ErrSettingNotConfigured.
	Get(ctx context.Context) (Setting, error)

	// Upsert updates the singleton row, creating it when missing.
	Upsert(ctx context.Context, setting Setting) (Setting, error)
}
