package company

import "errors"

var (
	ErrSettingNotConfigured = errors.New("company settings are not configured")
)
