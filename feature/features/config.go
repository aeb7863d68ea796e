package features

// Config holds configuration for feature extraction.
type Config struct {
	// Format is the output format of the feature list (lines, csv, json).
	Format string `mapstructure:"format" default:"lines"`
	// Suppress lists features removed from every result, comma separated
	// when given through the environment.
	Suppress []string `mapstructure:"suppress" default:""`
}

const (
	FormatLines = "lines"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// IsValidFormat checks if the configured output format is supported.
func (c Config) IsValidFormat() bool {
	return IsValidFormat(c.Format)
}

// IsValidFormat checks if format names a supported output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatLines, FormatCSV, FormatJSON:
		return true
	default:
		return false
	}
}
