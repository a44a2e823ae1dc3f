package pricing

import (
	"math"
	"strings"
)

const (
	earthRadiusKm = 6371.0
	// straight lines understate road distance inside the city
	roadFactor = 1.3
)

type coord struct {
	lat float64
	lng float64
}

var abidjanCommunes = map[string]coord{
	"abobo":       {5.415, -4.020},
	"adjamé":      {5.355, -4.030},
	"anyama":      {5.495, -4.055},
	"attécoubé":   {5.330, -4.040},
	"bingerville": {5.355, -3.895},
	"cocody":      {5.354, -3.975},
	"koumassi":    {5.300, -3.950},
	"marcory":     {5.305, -3.980},
	"plateau":     {5.325, -4.020},
	"port-bouët":  {5.255, -3.960},
	"songon":      {5.315, -4.255},
	"treichville": {5.300, -4.010},
	"yopougon":    {5.340, -4.080},
}

func lookupCommune(name string) (coord, bool) {
	c, ok := abidjanCommunes[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// CommuneDistanceKm estimates the road distance between two Abidjan communes,
// rounded up to whole kilometres and never below 1.
func CommuneDistanceKm(origin, destination string) (float64, bool) {
	from, ok := lookupCommune(origin)
	if !ok {
		return 0, false
	}
	to, ok := lookupCommune(destination)
	if !ok {
		return 0, false
	}

	return math.Max(1, math.Ceil(haversineKm(from, to)*roadFactor)), true
}

func haversineKm(a, b coord) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.lat - a.lat)
	dLng := toRad(b.lng - a.lng)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.lat))*math.Cos(toRad(b.lat))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
