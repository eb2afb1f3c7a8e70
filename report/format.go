package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat indicates an output format other than table or json.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrFrameOutOfRange indicates a trajectory frame outside [0, N).
var ErrFrameOutOfRange = errors.New("report: frame out of range")

// Format selects the rendering of WriteReport and WriteStudy.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat accepts "table" or "json" (case-insensitive, surrounding space ignored).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
