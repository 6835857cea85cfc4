package export

import (
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

// shapefileFields is the attribute schema written alongside each polygon.
var shapefileFields = []shp.Field{
	shp.StringField("NAME", 64),
	shp.StringField("TERRAIN", 16),
	shp.NumberField("YEAR", 8),
	shp.NumberField("POP", 16),
	shp.FloatField("GHG", 24, 6),
	shp.FloatField("AREA_KM2", 24, 6),
}

// rectShape converts a rectangle to a shapefile polygon with a single
// clockwise outer ring, east longitude unwrapped as in rectPolygon.
func rectShape(rect model.GeoRect) *shp.Polygon {
	west, east, lo, hi := rectBounds(rect)
	points := [][]shp.Point{{
		{X: west, Y: hi},
		{X: east, Y: hi},
		{X: east, Y: lo},
		{X: west, Y: lo},
		{X: west, Y: hi},
	}}
	return (*shp.Polygon)(shp.NewPolyLine(points))
}

// WriteShapefile writes the snapshots to an ESRI shapefile at path
// (the .shx and .dbf siblings are created alongside it).
func WriteShapefile(path string, conditions []model.RegionCondition) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return eris.Wrapf(err, "export: create shapefile %s", path)
	}
	defer w.Close()

	w.SetFields(shapefileFields)

	for i, rc := range conditions {
		w.Write(rectShape(rc.Region.Rect))

		// go-shp attribute values must be int, float64 or string.
		attrs := []interface{}{
			rc.Region.Name,
			string(rc.Region.Terrain),
			rc.Year,
			int(rc.Population),
			rc.GHGRate,
			geodesy.Area(rc.Region.Rect),
		}
		for field, value := range attrs {
			if err := w.WriteAttribute(i, field, value); err != nil {
				return eris.Wrapf(err, "export: write attribute %d for %q", field, rc.Region.Name)
			}
		}
	}

	zap.L().Debug("export: wrote shapefile",
		zap.String("path", path),
		zap.Int("regions", len(conditions)),
	)

	return nil
}
