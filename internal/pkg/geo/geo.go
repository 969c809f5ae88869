package geo

import "math"

// EarthRadiusMeters is the mean radius of the spherical Earth model.
const EarthRadiusMeters = 6371000

type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between a and b in meters
// using the haversine formula.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude) - toRadians(a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Fence is a circular allowed area.
type Fence struct {
	Center       Point
	RadiusMeters float64
}

// Check reports whether p lies inside the fence (boundary inclusive)
// together with the measured distance.
func (f Fence) Check(p Point) (bool, float64) {
	d := Distance(f.Center, p)
	return d <= f.RadiusMeters, d
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
