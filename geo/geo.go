package geo

import "math"

// EarthRadiusMeters is the mean Earth radius shared by every great-circle
// computation in this module. All distances derived from it are meters.
const EarthRadiusMeters = 6371000.8

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	fullCircle = 360.0
	halfCircle = 180.0
)

// Haversine returns the great-circle distance in meters between two WGS84
// coordinates given as decimal degrees.
//
// Time: O(1). Haversine(p, p) == 0 and Haversine(a, b) == Haversine(b, a).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// InitialBearing returns the initial great-circle bearing from (lat1, lon1)
// toward (lat2, lon2), in degrees clockwise from true north, normalized to
// [0, 360). Identical points yield 0.
func InitialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dLambda := (lon2 - lon1) * degToRad

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	return NormalizeBearing(math.Atan2(y, x) * radToDeg)
}

// AngularDistance returns the unsigned separation between two bearings in
// degrees, folded into [0, 180]. AngularDistance(350, 10) == 20.
func AngularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), fullCircle)
	if d > halfCircle {
		d = fullCircle - d
	}
	return d
}

// NormalizeBearing folds an arbitrary angle in degrees into [0, 360).
func NormalizeBearing(deg float64) float64 {
	d := math.Mod(deg, fullCircle)
	if d < 0 {
		d += fullCircle
	}
	return d
}

// Destination returns the WGS84 point reached by travelling meters along the
// given initial bearing from (lat, lon). The returned longitude is folded
// into [-180, 180]; for meters == 0 the input point is returned unchanged.
//
// The synthetic network builders rely on it for metric node placement.
func Destination(lat, lon, bearingDeg, meters float64) (float64, float64) {
	phi1 := lat * degToRad
	lambda1 := lon * degToRad
	theta := bearingDeg * degToRad
	delta := meters / EarthRadiusMeters // angular distance

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	phi2 := math.Asin(sinPhi2)
	lambda2 := lambda1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi1),
		math.Cos(delta)-math.Sin(phi1)*sinPhi2,
	)

	lon2 := math.Mod(lambda2*radToDeg+3*halfCircle, fullCircle) - halfCircle
	return phi2 * radToDeg, lon2
}
