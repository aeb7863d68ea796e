package features

import (
	"pipeline-features/core/pipeline"
)

const (
	FeatureAPI        = "api"
	FeatureEnterprise = "enterprise"

	// FeatureLogToMetric is always built in and is stripped from every result.
	FeatureLogToMetric = "transforms-log_to_metric"
)

// Derive returns the sorted, unique feature names required by cfg.
// Component names never influence the result, only their types do.
func Derive(cfg *pipeline.Config) []string {
	return collect(cfg).Sorted()
}

func collect(cfg *pipeline.Config) Set {
	set := make(Set)
	if cfg.HasAPI() {
		set.Add(FeatureAPI)
	}
	if cfg.HasEnterprise() {
		set.Add(FeatureEnterprise)
	}

	for _, section := range pipeline.Sections() {
		for _, component := range cfg.Components(section) {
			set.Add(FeatureName(section, component.Type))
		}
	}

	set.Remove(FeatureLogToMetric)
	return set
}
