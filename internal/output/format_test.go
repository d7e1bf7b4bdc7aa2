package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want OutputFormat
	}{
		{"", FormatTable},
		{"table", FormatTable},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
		{"xml", OutputFormat("xml")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseOutputFormat(tt.in))
		})
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	for _, f := range ValidFormats() {
		assert.True(t, OutputFormat(f).IsValid(), f)
	}
	assert.False(t, OutputFormat("dir").IsValid())
}
