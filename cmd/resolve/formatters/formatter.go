package formatters

import (
	"fmt"

	"github.com/incpath/incpath/resolver"
)

// OutputFormat represents an output format type.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// String returns the string representation of the format.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses a format name.
func ParseOutputFormat(format string) (OutputFormat, bool) {
	switch OutputFormat(format) {
	case OutputFormatText, OutputFormatJSON:
		return OutputFormat(format), true
	default:
		return "", false
	}
}

// SupportedFormats lists the valid format names for error messages.
func SupportedFormats() string {
	return "text, json"
}

// Formatter is the interface that all result formatters must implement.
type Formatter interface {
	// Format converts a resolution result to its string representation.
	Format(res *resolver.Result) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (Formatter, error) {
	f, ok := ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormats())
	}

	switch f {
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	default:
		return &TextFormatter{}, nil
	}
}
