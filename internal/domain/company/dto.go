package company

import (
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/validator"
)

type UpdateSettingRequest struct {
	Name                string   `json:"name"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	AllowedRadiusMeters *int     `json:"allowed_radius_meters"`
}

func (r *UpdateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.AllowedRadiusMeters == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_meters",
			Message: "allowed_radius_meters is required",
		})
	} else if *r.AllowedRadiusMeters < 10 || *r.AllowedRadiusMeters > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowed_radius_meters",
			Message: "allowed_radius_meters must be between 10 and 1000",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
