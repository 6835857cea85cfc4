// Package model defines the immutable records the toolkit operates on:
// bounding rectangles on the sphere, named regions, and per-year region
// condition snapshots.
package model

import "github.com/rotisserie/eris"

// Terrain classifies a region's dominant surface type. The set is closed;
// growth modelling switches over it exhaustively.
type Terrain string

// Terrain values.
const (
	TerrainOcean     Terrain = "ocean"
	TerrainMountains Terrain = "mountains"
	TerrainForest    Terrain = "forest"
	TerrainOther     Terrain = "other"
)

// Valid reports whether t is one of the known terrain classes.
func (t Terrain) Valid() bool {
	switch t {
	case TerrainOcean, TerrainMountains, TerrainForest, TerrainOther:
		return true
	}
	return false
}

// ParseTerrain converts an input string to a Terrain. It is the boundary
// check for caller-supplied data; inside the core an unknown terrain is a
// programming error, not a runtime condition.
func ParseTerrain(s string) (Terrain, error) {
	t := Terrain(s)
	if !t.Valid() {
		return "", eris.Errorf("model: unknown terrain %q", s)
	}
	return t, nil
}

// GeoRect is an axis-aligned rectangle on the sphere's surface, bounded by
// two latitudes and two longitudes in degrees. No ordering of LoLat/HiLat
// is enforced; the eastward span from WestLong to EastLong is taken modulo
// 360, so equal longitudes mean zero span and bounds crossing the ±180°
// antimeridian mean the short eastward arc.
type GeoRect struct {
	LoLat    float64 `yaml:"lo_lat"`
	HiLat    float64 `yaml:"hi_lat"`
	WestLong float64 `yaml:"west_long"`
	EastLong float64 `yaml:"east_long"`
}

// Region is a static descriptive entity: a bounding rectangle, a display
// name, and a terrain class. Constructed once and never mutated.
type Region struct {
	Rect    GeoRect `yaml:"rect"`
	Name    string  `yaml:"name"`
	Terrain Terrain `yaml:"terrain"`
}

// RegionCondition is a point-in-time snapshot of a region: its population
// and total greenhouse-gas emission rate in a given year. Snapshots share
// the Region they describe; projection produces new snapshots and never
// mutates existing ones.
type RegionCondition struct {
	Region     *Region
	Year       int
	Population int64
	GHGRate    float64
}
