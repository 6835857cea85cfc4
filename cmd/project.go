package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/regionstat/internal/forecast"
	"github.com/sells-group/regionstat/internal/model"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project region conditions forward in time",
	Long: `Project region snapshots forward under terrain-dependent compound
growth (ocean +0.01%/yr, mountains +0.05%/yr, forest -0.001%/yr,
other +0.003%/yr).

Examples:
  # every region, 50 years out
  project --years 50

  # one region, five 10-year increments
  project --region "San Luis Obispo Area" --years 10 --steps 5

  # backward projection
  project --years -20`,
	RunE: runProject,
}

func init() {
	f := projectCmd.Flags()
	f.Int("years", 0, "projection increment in years (may be negative)")
	f.Int("steps", 1, "number of increments to apply")
	f.String("region", "", "restrict to a single region by name")

	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	years, _ := cmd.Flags().GetInt("years")
	steps, _ := cmd.Flags().GetInt("steps")
	if steps < 1 {
		return eris.Errorf("project: --steps must be at least 1 (got %d)", steps)
	}

	conditions, err := loadConditions()
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("region"); name != "" {
		rc, err := findCondition(conditions, name)
		if err != nil {
			return err
		}
		conditions = []model.RegionCondition{rc}
	}

	log := zap.L().With(zap.String("command", "project"))
	log.Info("projecting conditions",
		zap.Int("regions", len(conditions)),
		zap.Int("years", years),
		zap.Int("steps", steps),
	)

	fmt.Printf("%-30s %6s %15s %18s\n", "Region", "Year", "Population", "GHG Rate")
	for _, rc := range conditions {
		printConditionRow(rc)
		for _, projected := range forecast.Series(rc, years, steps) {
			printConditionRow(projected)
		}
	}

	return nil
}

func printConditionRow(rc model.RegionCondition) {
	fmt.Printf("%-30s %6d %15s %18.2f\n",
		rc.Region.Name, rc.Year, popPrinter.Sprintf("%d", rc.Population), rc.GHGRate)
}
