package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/regionstat/internal/rank"
)

var densestCmd = &cobra.Command{
	Use:   "densest",
	Short: "Rank regions by population density",
	Long: `Rank the dataset's regions by population density (people per km²)
and report the densest one. Zero-area regions are listed but excluded
from the comparison.`,
	RunE: runDensest,
}

func init() {
	f := densestCmd.Flags()
	f.String("format", "", "output format: table or csv (default: config)")
	f.String("output", "", "ranking table file path (default: stdout; the winner summary always prints to stdout)")

	rootCmd.AddCommand(densestCmd)
}

func runDensest(cmd *cobra.Command, _ []string) error {
	conditions, err := loadConditions()
	if err != nil {
		return err
	}

	flagFormat, _ := cmd.Flags().GetString("format")
	format := outputFormat(flagFormat)
	if format != "table" && format != "csv" {
		return eris.Errorf("densest: --format must be table or csv (got %q)", format)
	}

	winner, err := rank.Densest(conditions)
	if err != nil {
		return err
	}
	rankings := rank.Rankings(conditions)

	outputPath, _ := cmd.Flags().GetString("output")
	w := os.Stdout
	if outputPath != "" {
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "densest: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	}

	switch format {
	case "csv":
		if err := writeRankingCSV(w, rankings); err != nil {
			return err
		}
	case "table":
		if err := writeRankingTable(w, rankings); err != nil {
			return err
		}
	}

	fmt.Printf("\nDensest region: %s\n", winner)

	return nil
}

func writeRankingCSV(w *os.File, rankings []rank.Ranking) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"name", "population", "area_km2", "density", "degenerate"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "densest: write CSV header")
	}

	for _, r := range rankings {
		row := []string{
			r.Name,
			fmt.Sprintf("%d", r.Population),
			fmt.Sprintf("%.3f", r.AreaKM2),
			fmt.Sprintf("%.6f", r.Density),
			fmt.Sprintf("%v", r.Degenerate),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "densest: write CSV row")
		}
	}
	return nil
}

func writeRankingTable(w *os.File, rankings []rank.Ranking) error {
	if _, err := fmt.Fprintf(w, "%-30s %15s %15s %12s\n", "Region", "Population", "Area km²", "Density"); err != nil {
		return eris.Wrap(err, "densest: write table header")
	}
	for _, r := range rankings {
		density := "n/a"
		if !r.Degenerate {
			density = fmt.Sprintf("%.4f", r.Density)
		}
		if _, err := fmt.Fprintf(w, "%-30s %15s %15.3f %12s\n",
			r.Name, popPrinter.Sprintf("%d", r.Population), r.AreaKM2, density); err != nil {
			return eris.Wrap(err, "densest: write table row")
		}
	}
	return nil
}
