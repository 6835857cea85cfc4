// Package rank orders region condition snapshots by population density.
package rank

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

// Domain errors surfaced by Densest.
var (
	ErrNoCandidates = eris.New("rank: no region conditions to compare")
	ErrAllZeroArea  = eris.New("rank: all regions had zero area")
)

// Ranking is one row of a density table.
type Ranking struct {
	Name       string
	Density    float64 // people per km²
	AreaKM2    float64
	Population int64
	Degenerate bool // zero-area region, excluded from comparison
}

// Densest returns the name of the region with the highest population
// density among the given snapshots. Zero-area regions are incomparable
// and skipped, not treated as infinitely dense. Ties go to the first
// snapshot in input order, by strict > comparison against the running
// maximum.
func Densest(conditions []model.RegionCondition) (string, error) {
	if len(conditions) == 0 {
		return "", ErrNoCandidates
	}

	bestName := ""
	bestDensity := -1.0
	found := false
	for _, rc := range conditions {
		a := geodesy.Area(rc.Region.Rect)
		if a == 0 {
			continue
		}
		density := float64(rc.Population) / a
		if density > bestDensity {
			bestDensity = density
			bestName = rc.Region.Name
			found = true
		}
	}
	if !found {
		return "", ErrAllZeroArea
	}
	return bestName, nil
}

// Rankings returns the full density table for the given snapshots, in
// input order. Zero-area regions appear with Degenerate set and a zero
// density so callers can display them without ranking them.
func Rankings(conditions []model.RegionCondition) []Ranking {
	rankings := make([]Ranking, 0, len(conditions))
	for _, rc := range conditions {
		r := Ranking{
			Name:       rc.Region.Name,
			AreaKM2:    geodesy.Area(rc.Region.Rect),
			Population: rc.Population,
		}
		if r.AreaKM2 == 0 {
			r.Degenerate = true
		} else {
			r.Density = float64(rc.Population) / r.AreaKM2
		}
		rankings = append(rankings, r)
	}
	return rankings
}
