package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/regionstat/internal/metrics"
	"github.com/sells-group/regionstat/internal/model"
)

var emissionsCmd = &cobra.Command{
	Use:   "emissions",
	Short: "Per-capita and per-km² emission rates",
	Long: `Derive per-capita and per-square-kilometer greenhouse-gas emission
rates for region snapshots in the dataset.

Examples:
  # all regions
  emissions

  # one region, errors surfaced instead of skipped
  emissions --region "Tokyo Metro"`,
	RunE: runEmissions,
}

func init() {
	emissionsCmd.Flags().String("region", "", "restrict to a single region by name")

	rootCmd.AddCommand(emissionsCmd)
}

func runEmissions(cmd *cobra.Command, _ []string) error {
	conditions, err := loadConditions()
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("region"); name != "" {
		rc, err := findCondition(conditions, name)
		if err != nil {
			return err
		}
		return printEmissions(rc)
	}

	fmt.Printf("%-30s %6s %15s %15s %15s\n", "Region", "Year", "Population", "Per Capita", "Per km²")
	for _, rc := range conditions {
		perCapita := "n/a"
		if v, err := metrics.EmissionsPerCapita(rc); err == nil {
			perCapita = fmt.Sprintf("%.4f", v)
		} else {
			zap.L().Warn("emissions: skipping per-capita rate",
				zap.String("region", rc.Region.Name),
				zap.Error(err),
			)
		}
		perArea := "n/a"
		if v, err := metrics.EmissionsPerSquareKM(rc); err == nil {
			perArea = fmt.Sprintf("%.4f", v)
		} else {
			zap.L().Warn("emissions: skipping per-km² rate",
				zap.String("region", rc.Region.Name),
				zap.Error(err),
			)
		}
		fmt.Printf("%-30s %6d %15s %15s %15s\n",
			rc.Region.Name, rc.Year, popPrinter.Sprintf("%d", rc.Population), perCapita, perArea)
	}

	return nil
}

func printEmissions(rc model.RegionCondition) error {
	perCapita, err := metrics.EmissionsPerCapita(rc)
	if err != nil {
		return err
	}
	perArea, err := metrics.EmissionsPerSquareKM(rc)
	if err != nil {
		return err
	}

	fmt.Printf("Region:      %s\n", rc.Region.Name)
	fmt.Printf("Year:        %d\n", rc.Year)
	fmt.Printf("Population:  %s\n", popPrinter.Sprintf("%d", rc.Population))
	fmt.Printf("Per capita:  %.6f\n", perCapita)
	fmt.Printf("Per km²:     %.6f\n", perArea)

	return nil
}
