// Package forecast advances region condition snapshots through time under
// a terrain-dependent compound growth model.
package forecast

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/regionstat/internal/model"
)

// Annual growth rates by terrain class.
const (
	rateOcean     = 0.0001
	rateMountains = 0.0005
	rateForest    = -0.00001
	rateOther     = 0.00003
)

// annualRate maps a terrain class to its annual growth rate. The terrain
// set is closed; an unknown value here means a record bypassed
// model.ParseTerrain and is a programming error.
func annualRate(t model.Terrain) float64 {
	switch t {
	case model.TerrainOcean:
		return rateOcean
	case model.TerrainMountains:
		return rateMountains
	case model.TerrainForest:
		return rateForest
	case model.TerrainOther:
		return rateOther
	default:
		panic(fmt.Sprintf("forecast: unknown terrain %q", t))
	}
}

// GrowthFactor returns the compound factor (1+rate)^years for the given
// terrain. Negative year counts are permitted and invert the growth.
func GrowthFactor(t model.Terrain, years int) float64 {
	return math.Pow(1.0+annualRate(t), float64(years))
}

// Project returns a new snapshot n years after rc, with population and
// emission rate scaled by the terrain's compound growth factor. The
// population is rounded half away from zero (math.Round) and floored at
// zero; the emission rate scales unclamped. The region reference carries
// forward unchanged. Projecting by zero years returns rc itself.
func Project(rc model.RegionCondition, n int) model.RegionCondition {
	if n == 0 {
		return rc
	}

	factor := GrowthFactor(rc.Region.Terrain, n)
	pop := int64(math.Round(float64(rc.Population) * factor))
	if pop < 0 {
		pop = 0
	}

	out := model.RegionCondition{
		Region:     rc.Region,
		Year:       rc.Year + n,
		Population: pop,
		GHGRate:    rc.GHGRate * factor,
	}

	zap.L().Debug("forecast: projected condition",
		zap.String("region", rc.Region.Name),
		zap.String("terrain", string(rc.Region.Terrain)),
		zap.Int("years", n),
		zap.Float64("factor", factor),
		zap.Int64("population", out.Population),
	)

	return out
}

// Series projects rc forward count times in increments of step years and
// returns the intermediate snapshots, earliest first. Each step is applied
// to the previous snapshot, so the population re-rounds at every step;
// apart from that rounding the final entry equals Project(rc, step*count).
func Series(rc model.RegionCondition, step, count int) []model.RegionCondition {
	out := make([]model.RegionCondition, 0, count)
	cur := rc
	for i := 0; i < count; i++ {
		cur = Project(cur, step)
		out = append(out, cur)
	}
	return out
}
