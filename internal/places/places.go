package places

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// Venue is a stubbed nearby-restaurant suggestion. Deterministic from
// the query so repeated lookups agree; no real geolocation happens.
type Venue struct {
	Name       string  `json:"name"`
	Cuisine    string  `json:"cuisine"`
	DistanceKm float64 `json:"distance_km"`
}

type Query struct {
	City    string
	Lat     float64
	Lon     float64
	Cuisine string
	Tags    []string
}

var cuisines = []string{"Chinese", "Japanese", "Italian", "Mexican", "Indian", "American", "Greek"}

// Nearby returns five deterministic venues keyed by city, coarse
// coordinates and cuisine/tag hints.
func Nearby(q Query) []Venue {
	hint := q.Cuisine
	if hint == "" && len(q.Tags) > 0 {
		hint = q.Tags[0]
	}
	if hint == "" {
		hint = "any"
	}

	key := fmt.Sprintf("%s:%.1f,%.1f:%s", q.City, roundCoord(q.Lat), roundCoord(q.Lon), strings.ToLower(hint))
	h := fnv.New32a()
	h.Write([]byte(key))
	seed := h.Sum32()

	base := cuisines[seed%uint32(len(cuisines))]
	tag := q.Cuisine
	if tag == "" && len(q.Tags) > 0 {
		tag = q.Tags[0]
	}
	if tag == "" {
		tag = "Fusion"
	}

	out := make([]Venue, 0, 5)
	for i := 0; i < 5; i++ {
		out = append(out, Venue{
			Name:       fmt.Sprintf("%s %s #%d", base, tag, i+1),
			Cuisine:    base,
			DistanceKm: 0.8 + float64((seed+uint32(i))%40)/10,
		})
	}
	return out
}

func roundCoord(x float64) float64 {
	return math.Round(x*10) / 10
}
