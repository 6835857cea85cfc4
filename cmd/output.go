package main

import (
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/regionstat/internal/dataset"
	"github.com/sells-group/regionstat/internal/model"
)

// popPrinter formats population counts with digit grouping.
var popPrinter = message.NewPrinter(language.English)

// loadConditions returns the configured dataset, or the built-in examples
// when no file is configured.
func loadConditions() ([]model.RegionCondition, error) {
	if cfg.Regions.File != "" {
		return dataset.Load(cfg.Regions.File)
	}
	return dataset.Builtin(), nil
}

// findCondition returns the snapshot whose region has the given name.
func findCondition(conditions []model.RegionCondition, name string) (model.RegionCondition, error) {
	for _, rc := range conditions {
		if rc.Region.Name == name {
			return rc, nil
		}
	}
	return model.RegionCondition{}, eris.Errorf("no region named %q in dataset", name)
}

// outputFormat resolves the effective output format from a command flag
// falling back to the configured default.
func outputFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Output.Format
}
