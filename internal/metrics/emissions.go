// Package metrics derives per-capita and per-area emission rates from
// region condition snapshots.
package metrics

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

// Domain errors surfaced by the metric functions. Both are precondition
// violations on otherwise pure computations; there is nothing to retry.
var (
	ErrZeroPopulation = eris.New("metrics: population is zero")
	ErrZeroArea       = eris.New("metrics: region area is zero")
)

// EmissionsPerCapita returns the snapshot's emission rate divided by its
// population. The only validation is the zero-population check; the sign
// of the rate is the caller's business.
func EmissionsPerCapita(rc model.RegionCondition) (float64, error) {
	if rc.Population == 0 {
		return 0, ErrZeroPopulation
	}
	return rc.GHGRate / float64(rc.Population), nil
}

// EmissionsPerSquareKM returns the snapshot's emission rate divided by the
// region's surface area in km².
func EmissionsPerSquareKM(rc model.RegionCondition) (float64, error) {
	a := geodesy.Area(rc.Region.Rect)
	if a == 0 {
		return 0, ErrZeroArea
	}
	return rc.GHGRate / a, nil
}
