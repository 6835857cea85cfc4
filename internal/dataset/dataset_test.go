package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

func TestBuiltin(t *testing.T) {
	conditions := Builtin()
	require.Len(t, conditions, 4)

	names := make([]string, 0, len(conditions))
	for _, rc := range conditions {
		names = append(names, rc.Region.Name)
		assert.True(t, rc.Region.Terrain.Valid())
		assert.GreaterOrEqual(t, rc.Population, int64(0))
		assert.Equal(t, 2020, rc.Year)
	}
	assert.Equal(t, []string{
		"New York City Metro",
		"Tokyo Metro",
		"Pacific Equatorial Slice",
		"San Luis Obispo Area",
	}, names)

	// The Pacific slice crosses the antimeridian: 20° span, not 340°.
	pacific := conditions[2]
	assert.Equal(t, model.TerrainOcean, pacific.Region.Terrain)
	assert.InDelta(t, 20.0, geodesy.LonSpan(pacific.Region.Rect.WestLong, pacific.Region.Rect.EastLong), 1e-9)
}

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `
regions:
  - name: Test Metro
    terrain: other
    year: 2021
    population: 1000000
    ghg_rate: 5000000.5
    rect:
      lo_lat: 40.0
      hi_lat: 41.0
      west_long: -74.0
      east_long: -73.0
  - name: Test Ocean
    terrain: ocean
    year: 2021
    population: 100
    ghg_rate: 10.0
    rect:
      lo_lat: -10.0
      hi_lat: 10.0
      west_long: 170.0
      east_long: -170.0
`)

	conditions, err := Load(path)
	require.NoError(t, err)
	require.Len(t, conditions, 2)

	metro := conditions[0]
	assert.Equal(t, "Test Metro", metro.Region.Name)
	assert.Equal(t, model.TerrainOther, metro.Region.Terrain)
	assert.Equal(t, 2021, metro.Year)
	assert.Equal(t, int64(1_000_000), metro.Population)
	assert.InDelta(t, 5_000_000.5, metro.GHGRate, 1e-9)
	assert.InDelta(t, 40.0, metro.Region.Rect.LoLat, 1e-9)
	assert.InDelta(t, -73.0, metro.Region.Rect.EastLong, 1e-9)

	ocean := conditions[1]
	assert.Equal(t, model.TerrainOcean, ocean.Region.Terrain)
	assert.InDelta(t, 170.0, ocean.Region.Rect.WestLong, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeDataset(t, "regions: [unterminated")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestLoadEmpty(t *testing.T) {
	path := writeDataset(t, "regions: []")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no regions")
}

func TestLoadUnknownTerrain(t *testing.T) {
	path := writeDataset(t, `
regions:
  - name: Bad
    terrain: swamp
    year: 2020
    population: 1
    ghg_rate: 1.0
    rect: {lo_lat: 0, hi_lat: 1, west_long: 0, east_long: 1}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown terrain")
}

func TestLoadMissingName(t *testing.T) {
	path := writeDataset(t, `
regions:
  - terrain: other
    year: 2020
    population: 1
    ghg_rate: 1.0
    rect: {lo_lat: 0, hi_lat: 1, west_long: 0, east_long: 1}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no name")
}

func TestLoadNegativePopulation(t *testing.T) {
	path := writeDataset(t, `
regions:
  - name: Bad
    terrain: other
    year: 2020
    population: -5
    ghg_rate: 1.0
    rect: {lo_lat: 0, hi_lat: 1, west_long: 0, east_long: 1}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative population")
}
