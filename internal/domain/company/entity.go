package company

import "time"

// Setting is the company-wide geofence configuration (singleton row).
type Setting struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	AllowedRadiusMeters int       `json:"allowed_radius_meters"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
