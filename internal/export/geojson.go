// Package export renders regions as GeoJSON and ESRI shapefiles.
package export

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

// rectBounds returns the rectangle's corners with the east longitude
// unwrapped eastward from the west bound, so rectangles crossing the
// antimeridian produce a monotone ring (east may exceed 180).
func rectBounds(rect model.GeoRect) (west, east, lo, hi float64) {
	west = rect.WestLong
	east = west + geodesy.LonSpan(rect.WestLong, rect.EastLong)
	lo = rect.LoLat
	hi = rect.HiLat
	return west, east, lo, hi
}

// rectPolygon converts a rectangle to a closed go-geom polygon ring in
// lon/lat order.
func rectPolygon(rect model.GeoRect) *geom.Polygon {
	west, east, lo, hi := rectBounds(rect)
	flat := []float64{
		west, lo,
		east, lo,
		east, hi,
		west, hi,
		west, lo,
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(4326)
}

// FeatureCollection converts snapshots to a GeoJSON feature collection.
// Each feature carries the region's name, terrain, year, population,
// emission rate and computed area as properties.
func FeatureCollection(conditions []model.RegionCondition) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{}
	for _, rc := range conditions {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       rc.Region.Name,
			Geometry: rectPolygon(rc.Region.Rect),
			Properties: map[string]interface{}{
				"name":       rc.Region.Name,
				"terrain":    string(rc.Region.Terrain),
				"year":       rc.Year,
				"population": rc.Population,
				"ghg_rate":   rc.GHGRate,
				"area_km2":   geodesy.Area(rc.Region.Rect),
			},
		})
	}
	return fc
}

// MarshalGeoJSON renders snapshots as an indented GeoJSON document.
func MarshalGeoJSON(conditions []model.RegionCondition) ([]byte, error) {
	data, err := json.MarshalIndent(FeatureCollection(conditions), "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "export: marshal GeoJSON")
	}
	return data, nil
}
