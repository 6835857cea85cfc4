package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/regionstat/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "regionstat",
	Short: "Geospatial and demographic metrics over lat/long regions",
	Long:  "Computes spherical surface areas, per-capita and per-area emission rates, density rankings, and terrain-dependent population projections over rectangular regions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if f, _ := cmd.Flags().GetString("regions-file"); f != "" {
			cfg.Regions.File = f
		}

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("regions-file", "", "YAML region dataset (default: built-in examples)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
