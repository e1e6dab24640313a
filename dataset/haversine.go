package dataset

import "math"

// earthRadiusKM is the mean Earth radius used by Haversine.
const earthRadiusKM = 6371.0

// Haversine returns the approximate great-circle distance in kilometers
// between two WGS84 coordinates. Road records carry surveyed road
// distances, which the routing always uses; this helper exists for
// sanity-checking a dataset (a road distance far below the great-circle
// distance between its endpoints is suspect).
// Complexity: O(1).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}
