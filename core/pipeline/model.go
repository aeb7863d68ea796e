package pipeline

// Section names one of the component sections of a pipeline configuration.
type Section string

const (
	SectionSources    Section = "sources"
	SectionTransforms Section = "transforms"
	SectionSinks      Section = "sinks"
)

// Sections returns the component sections in a fixed order.
func Sections() []Section {
	return []Section{SectionSources, SectionTransforms, SectionSinks}
}

// Component is a single configured unit of a section.
// Only its type tag is kept.
type Component struct {
	// Type names the component kind (e.g. "prometheus_scrape").
	Type string
}

// ComponentMap maps a component name to the component.
type ComponentMap map[string]Component

// Config is the decoded pipeline configuration.
type Config struct {
	// API is the raw `api` block. Its content is ignored; only presence matters.
	API any
	// Enterprise is the raw `enterprise` block, same semantics as API.
	Enterprise any

	Sources    ComponentMap
	Transforms ComponentMap
	Sinks      ComponentMap
}

// HasAPI reports whether the `api` block is present.
func (c *Config) HasAPI() bool {
	return c.API != nil
}

// HasEnterprise reports whether the `enterprise` block is present.
func (c *Config) HasEnterprise() bool {
	return c.Enterprise != nil
}

// Components returns the components of the given section.
// Unknown sections yield nil.
func (c *Config) Components(section Section) ComponentMap {
	switch section {
	case SectionSources:
		return c.Sources
	case SectionTransforms:
		return c.Transforms
	case SectionSinks:
		return c.Sinks
	default:
		return nil
	}
}
