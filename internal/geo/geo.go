package geo

import "math"

const (
	earthRadiusKm = 6371.0

	// FarDistanceKm is returned by Haversine when either point is unusable.
	// It sits above every proximity tier so such profiles get no distance bonus.
	FarDistanceKm = 1e6
)

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Known reports whether p carries a usable position. The zero point is
// treated as "no location", as are NaN, infinite and out-of-range values.
func (p Point) Known() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
		return false
	}
	return p.Lat != 0 || p.Lng != 0
}

// Haversine returns the great-circle distance in km between two points given
// in degrees, or FarDistanceKm when either point is unknown.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	if !(Point{lat1, lng1}).Known() || !(Point{lat2, lng2}).Known() {
		return FarDistanceKm
	}
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Distance is Haversine over a possibly missing viewer point.
func Distance(from *Point, to Point) float64 {
	if from == nil {
		return FarDistanceKm
	}
	return Haversine(from.Lat, from.Lng, to.Lat, to.Lng)
}

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
