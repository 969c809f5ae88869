package company

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/company"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/cache"
)

const settingCacheKey = "company_setting"

// SettingServiceImpl serves the company setting through a TTL cache.
// Cache failures are logged and fall through to the repository.
type SettingServiceImpl struct {
	company.SettingRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewSettingService(repo company.SettingRepository, c cache.Cache, ttl time.Duration) company.SettingService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SettingServiceImpl{
		SettingRepository: repo,
		cache:             c,
		ttl:               ttl,
	}
}

// Get implements company.SettingProvider.
func (s *SettingServiceImpl) Get(ctx context.Context) (company.Setting, error) {
	raw, err := s.cache.Get(ctx, settingCacheKey)
	switch {
	case err == nil:
		var setting company.Setting
		if jsonErr := json.Unmarshal(raw, &setting); jsonErr == nil {
			return setting, nil
		}
		slog.WarnContext(ctx, "Discarding undecodable cached company setting")
	case !errors.Is(err, cache.ErrMiss):
		slog.WarnContext(ctx, "Company setting cache read failed", "error", err)
	}

	setting, err := s.SettingRepository.Get(ctx)
	if err != nil {
		return company.Setting{}, err
	}

	if payload, err := json.Marshal(setting); err == nil {
		if err := s.cache.Set(ctx, settingCacheKey, payload, s.ttl); err != nil {
			slog.WarnContext(ctx, "Company setting cache write failed", "error", err)
		}
	}

	return setting, nil
}

// Update implements company.SettingService.
func (s *SettingServiceImpl) Update(ctx context.Context, req company.UpdateSettingRequest) (company.Setting, error) {
	if err := req.Validate(); err != nil {
		return company.Setting{}, err
	}

	setting, err := s.SettingRepository.Upsert(ctx, company.Setting{
		Name:                req.Name,
		Latitude:            *req.Latitude,
		Longitude:           *req.Longitude,
		AllowedRadiusMeters: *req.AllowedRadiusMeters,
	})
	if err != nil {
		return company.Setting{}, fmt.Errorf("failed to update company setting: %w", err)
	}

	if err := s.cache.Delete(ctx, settingCacheKey); err != nil {
		slog.WarnContext(ctx, "Company setting cache invalidation failed", "error", err)
	}

	slog.InfoContext(ctx, "Company setting updated",
		"setting_id", setting.ID,
		"latitude", setting.Latitude,
		"longitude", setting.Longitude,
		"allowed_radius", setting.AllowedRadiusMeters,
	)

	return setting, nil
}
