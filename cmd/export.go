package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/regionstat/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export regions as GeoJSON or a shapefile",
	Long: `Export the dataset's region rectangles with their snapshot
attributes.

Examples:
  # GeoJSON to stdout
  export --format geojson

  # ESRI shapefile (writes .shp/.shx/.dbf)
  export --format shp --output regions.shp`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("format", "geojson", "export format: geojson or shp")
	f.String("output", "", "output file path (default: stdout, geojson only)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	conditions, err := loadConditions()
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	switch format {
	case "geojson":
		data, err := export.MarshalGeoJSON(conditions)
		if err != nil {
			return err
		}
		if outputPath == "" {
			// Bare document on stdout so the output stays pipeable.
			fmt.Println(string(data))
			break
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return eris.Wrapf(err, "export: write %s", outputPath)
		}

	case "shp":
		if outputPath == "" {
			return eris.New("export: --output is required for shapefile export")
		}
		if err := export.WriteShapefile(outputPath, conditions); err != nil {
			return err
		}

	default:
		return eris.Errorf("export: --format must be geojson or shp (got %q)", format)
	}

	// Confirmation only when a file was written; stdout output stays bare.
	if outputPath != "" {
		fmt.Printf("Exported %d regions to %s\n", len(conditions), outputPath)
	}
	return nil
}
