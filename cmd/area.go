package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/regionstat/internal/geodesy"
	"github.com/sells-group/regionstat/internal/model"
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the surface area of a lat/long rectangle",
	Long: `Compute the approximate surface area in km² of an axis-aligned
lat/long rectangle on a spherical Earth (R = 6371 km).

The eastward span from --west to --east is taken modulo 360, so bounds
crossing the ±180° antimeridian give the short eastward arc:

  # 20° slice across the antimeridian
  area --lo-lat -10 --hi-lat 10 --west 170 --east -170

  # 340° the long way around
  area --lo-lat 0 --hi-lat 10 --west -170 --east 170`,
	RunE: runArea,
}

func init() {
	f := areaCmd.Flags()
	f.Float64("lo-lat", 0, "lower latitude bound in degrees")
	f.Float64("hi-lat", 0, "upper latitude bound in degrees")
	f.Float64("west", 0, "western longitude bound in degrees")
	f.Float64("east", 0, "eastern longitude bound in degrees")

	rootCmd.AddCommand(areaCmd)
}

func runArea(cmd *cobra.Command, _ []string) error {
	loLat, _ := cmd.Flags().GetFloat64("lo-lat")
	hiLat, _ := cmd.Flags().GetFloat64("hi-lat")
	west, _ := cmd.Flags().GetFloat64("west")
	east, _ := cmd.Flags().GetFloat64("east")

	rect := model.GeoRect{LoLat: loLat, HiLat: hiLat, WestLong: west, EastLong: east}

	fmt.Printf("Span:  %.4f°\n", geodesy.LonSpan(west, east))
	fmt.Printf("Area:  %.3f km²\n", geodesy.Area(rect))

	return nil
}
