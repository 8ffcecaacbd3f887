package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"socctl/pkg/soc"
)

// Format is a file export format.
type Format string

const (
	FormatICS  Format = "ics"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts a format name or a file name ending in a known extension.
func ParseFormat(s string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(s), "."))
	if ext == "" {
		ext = strings.ToLower(strings.TrimSpace(s))
	}
	switch Format(ext) {
	case FormatICS, FormatXLSX:
		return Format(ext), nil
	}
	return "", fmt.Errorf("unsupported export format %q (want ics or xlsx)", s)
}

// EnsureExt appends the format's extension to name when it is missing.
func (f Format) EnsureExt(name string) string {
	if strings.HasSuffix(strings.ToLower(name), "."+string(f)) {
		return name
	}
	return name + "." + string(f)
}

// WriteFile exports courses to path in the given format. opts is only used for ICS.
func WriteFile(path string, format Format, courses []soc.CourseEntry, opts ICSOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatICS:
		err = GenerateICS(courses, opts, file)
	case FormatXLSX:
		err = GenerateXLSX(courses, file)
	default:
		err = fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", format, err)
	}
	return file.Close()
}
