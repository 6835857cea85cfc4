// Package geodesy computes surface areas of lat/long rectangles on a
// spherical Earth model.
package geodesy

import (
	"math"

	"github.com/sells-group/regionstat/internal/model"
)

// EarthRadiusKM is the fixed spherical-model radius.
const EarthRadiusKM = 6371.0

// LonSpan returns the eastward angular span in degrees from west to east,
// mapped into [0, 360). Equal longitudes give exactly 0 (not a full
// globe), and bounds crossing the antimeridian give the short eastward
// arc: LonSpan(170, -170) == 20.
func LonSpan(west, east float64) float64 {
	// math.Mod keeps the sign of the dividend, so shift negatives up.
	d := math.Mod(east-west, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Area returns the approximate surface area of the rectangle in km²,
// using the spherical zone formula R²·|sin(hi) − sin(lo)|·span. The
// absolute value makes it order-independent in the latitude bounds.
// Degenerate rectangles yield 0; Area itself never fails — callers decide
// whether a zero area is an error.
func Area(rect model.GeoRect) float64 {
	y1 := radians(rect.LoLat)
	y2 := radians(rect.HiLat)
	d := radians(LonSpan(rect.WestLong, rect.EastLong))
	return EarthRadiusKM * EarthRadiusKM * math.Abs(math.Sin(y2)-math.Sin(y1)) * d
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
