package export

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/sells-group/regionstat/internal/model"
)

func testConditions() []model.RegionCondition {
	metro := &model.Region{
		Rect:    model.GeoRect{LoLat: 40.4, HiLat: 41.2, WestLong: -74.5, EastLong: -73.5},
		Name:    "Metro",
		Terrain: model.TerrainOther,
	}
	pacific := &model.Region{
		Rect:    model.GeoRect{LoLat: -10.0, HiLat: 10.0, WestLong: 170.0, EastLong: -170.0},
		Name:    "Pacific",
		Terrain: model.TerrainOcean,
	}
	return []model.RegionCondition{
		{Region: metro, Year: 2020, Population: 19_000_000, GHGRate: 170_000_000.0},
		{Region: pacific, Year: 2020, Population: 50_000, GHGRate: 2_000_000.0},
	}
}

func TestFeatureCollection(t *testing.T) {
	fc := FeatureCollection(testConditions())
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	assert.Equal(t, "Metro", f.ID)
	assert.Equal(t, "other", f.Properties["terrain"])
	assert.Equal(t, 2020, f.Properties["year"])
	assert.Equal(t, int64(19_000_000), f.Properties["population"])
	assert.Greater(t, f.Properties["area_km2"].(float64), 0.0)
}

func TestFeatureCollectionUnwrapsAntimeridian(t *testing.T) {
	fc := FeatureCollection(testConditions())

	poly, ok := fc.Features[1].Geometry.(*geom.Polygon)
	require.True(t, ok)

	// Closed ring of 5 lon/lat pairs, east unwrapped to 190 so the ring
	// stays monotone across the 180° meridian.
	flat := poly.FlatCoords()
	require.Len(t, flat, 10)
	assert.InDelta(t, 170.0, flat[0], 1e-9)
	assert.InDelta(t, -10.0, flat[1], 1e-9)
	assert.InDelta(t, 190.0, flat[2], 1e-9)
	// Ring closes on its first vertex.
	assert.InDelta(t, flat[0], flat[8], 1e-9)
	assert.InDelta(t, flat[1], flat[9], 1e-9)
}

func TestMarshalGeoJSON(t *testing.T) {
	data, err := MarshalGeoJSON(testConditions())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])

	features, ok := doc["features"].([]any)
	require.True(t, ok)
	assert.Len(t, features, 2)
	assert.True(t, strings.Contains(string(data), "Pacific"))
}

func TestWriteShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.shp")
	require.NoError(t, WriteShapefile(path, testConditions()))

	reader, err := shp.Open(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	require.Len(t, fields, 6)
	assert.Equal(t, "NAME", strings.TrimRight(fields[0].String(), "\x00"))
	assert.Equal(t, "TERRAIN", strings.TrimRight(fields[1].String(), "\x00"))

	var names, pops []string
	for reader.Next() {
		_, shape := reader.Shape()
		require.NotNil(t, shape)
		_, ok := shape.(*shp.Polygon)
		assert.True(t, ok)
		names = append(names, strings.TrimSpace(reader.Attribute(0)))
		pops = append(pops, strings.TrimSpace(reader.Attribute(3)))
	}
	assert.Equal(t, []string{"Metro", "Pacific"}, names)
	// Populations survive the int64 → dbf numeric conversion.
	assert.Equal(t, []string{"19000000", "50000"}, pops)
}
