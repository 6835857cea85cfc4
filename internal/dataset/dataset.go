// Package dataset loads region condition snapshots from YAML files and
// provides the built-in reference set used when no file is configured.
package dataset

import (
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/regionstat/internal/model"
)

// record is one region entry in a dataset file.
type record struct {
	Name       string        `yaml:"name"`
	Terrain    string        `yaml:"terrain"`
	Year       int           `yaml:"year"`
	Population int64         `yaml:"population"`
	GHGRate    float64       `yaml:"ghg_rate"`
	Rect       model.GeoRect `yaml:"rect"`
}

// file is the top-level dataset document.
type file struct {
	Regions []record `yaml:"regions"`
}

// Load reads a YAML dataset file and returns the snapshots it describes.
// Each record is validated at the boundary: the name must be non-empty,
// the terrain must be a known class, and the population must be
// non-negative.
func Load(path string) ([]model.RegionCondition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: read %s", path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "dataset: parse %s", path)
	}
	if len(f.Regions) == 0 {
		return nil, eris.Errorf("dataset: %s contains no regions", path)
	}

	conditions := make([]model.RegionCondition, 0, len(f.Regions))
	for i, rec := range f.Regions {
		if rec.Name == "" {
			return nil, eris.Errorf("dataset: region %d has no name", i)
		}
		terrain, err := model.ParseTerrain(rec.Terrain)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: region %q", rec.Name)
		}
		if rec.Population < 0 {
			return nil, eris.Errorf("dataset: region %q has negative population %d", rec.Name, rec.Population)
		}

		region := &model.Region{
			Rect:    rec.Rect,
			Name:    rec.Name,
			Terrain: terrain,
		}
		conditions = append(conditions, model.RegionCondition{
			Region:     region,
			Year:       rec.Year,
			Population: rec.Population,
			GHGRate:    rec.GHGRate,
		})
	}

	zap.L().Debug("dataset: loaded regions",
		zap.String("path", path),
		zap.Int("count", len(conditions)),
	)

	return conditions, nil
}

// Builtin returns the reference snapshots: two dense metros, an equatorial
// Pacific slice that crosses the antimeridian, and a coastal band around
// San Luis Obispo.
func Builtin() []model.RegionCondition {
	nyc := &model.Region{
		Rect:    model.GeoRect{LoLat: 40.4, HiLat: 41.2, WestLong: -74.5, EastLong: -73.5},
		Name:    "New York City Metro",
		Terrain: model.TerrainOther,
	}
	tokyo := &model.Region{
		Rect:    model.GeoRect{LoLat: 35.4, HiLat: 36.2, WestLong: 139.2, EastLong: 140.2},
		Name:    "Tokyo Metro",
		Terrain: model.TerrainOther,
	}
	pacific := &model.Region{
		// 20° eastward across the 180° meridian.
		Rect:    model.GeoRect{LoLat: -10.0, HiLat: 10.0, WestLong: 170.0, EastLong: -170.0},
		Name:    "Pacific Equatorial Slice",
		Terrain: model.TerrainOcean,
	}
	slo := &model.Region{
		Rect:    model.GeoRect{LoLat: 35.0, HiLat: 35.6, WestLong: -121.0, EastLong: -120.3},
		Name:    "San Luis Obispo Area",
		Terrain: model.TerrainOther,
	}

	return []model.RegionCondition{
		{Region: nyc, Year: 2020, Population: 19_000_000, GHGRate: 170_000_000.0},
		{Region: tokyo, Year: 2020, Population: 37_000_000, GHGRate: 250_000_000.0},
		{Region: pacific, Year: 2020, Population: 50_000, GHGRate: 2_000_000.0},
		{Region: slo, Year: 2020, Population: 280_000, GHGRate: 1_800_000.0},
	}
}
