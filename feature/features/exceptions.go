package features

import (
	"maps"

	"pipeline-features/core/pipeline"
)

// exceptions maps a component type onto the feature it shares with other
// types of the same section. Types not listed map to themselves.
// The tables are never written after package initialization.
var exceptions = map[pipeline.Section]map[string]string{
	pipeline.SectionSources: {
		"prometheus_scrape":       "prometheus",
		"prometheus_remote_write": "prometheus",
	},
	pipeline.SectionTransforms: {},
	pipeline.SectionSinks: {
		"gcp_pubsub":              "gcp",
		"gcp_stackdriver_logs":    "gcp",
		"gcp_stackdriver_metrics": "gcp",
		"prometheus_remote_write": "prometheus",
		"splunk_hec_logs":         "splunk_hec",
	},
}

// Resolve returns the feature name fragment for a component type.
func Resolve(section pipeline.Section, componentType string) string {
	if name, ok := exceptions[section][componentType]; ok {
		return name
	}
	return componentType
}

// Exceptions returns a copy of the exception table of a section.
func Exceptions(section pipeline.Section) map[string]string {
	return maps.Clone(exceptions[section])
}

// FeatureName builds the "<section>-<name>" feature for a component type.
func FeatureName(section pipeline.Section, componentType string) string {
	return string(section) + "-" + Resolve(section, componentType)
}
