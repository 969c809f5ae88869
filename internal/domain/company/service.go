package company

import (
	"context"
)

// SettingProvider is the read side consumed by the attendance engine.
type SettingProvider interface {
	Get(ctx context.Context) (Setting, error)
}

type SettingService interface {
	SettingProvider
	Update(ctx context.Context, req UpdateSettingRequest) (Setting, error)
}
