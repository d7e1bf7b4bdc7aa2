package output

import "strings"

// OutputFormat specifies the output format.
type OutputFormat string

const (
	// FormatTable outputs a styled table.
	FormatTable OutputFormat = "table"

	// FormatJSON outputs in JSON format.
	FormatJSON OutputFormat = "json"

	// FormatYAML outputs in YAML format.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses a string into an OutputFormat.
// Unknown values are returned as-is so callers can reject them with IsValid.
func ParseOutputFormat(s string) OutputFormat {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return OutputFormat(s)
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
