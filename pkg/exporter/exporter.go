package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fastygo/planner/domain"
)

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

const baseFileName = "academic-planner-data"

// ParseFormat accepts a format name or a file extension.
func ParseFormat(value string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), ".") {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", value)
}

// FormatFromPath infers the format from a file name, defaulting to JSON.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatJSON
	}
	return f
}

// DefaultFileName returns the suggested download name for format.
func DefaultFileName(format Format) string {
	return baseFileName + "." + string(format)
}

// ContentType returns the MIME type for format.
func ContentType(format Format) string {
	switch format {
	case FormatYAML:
		return "application/yaml"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Encode writes snapshot to w.
func Encode(w io.Writer, snapshot domain.Snapshot, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return err
		}
		return enc.Close()
	case FormatXLSX:
		return writeWorkbook(w, snapshot)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// Decode reads a snapshot document. Collections missing from the document
// stay nil so that importing it leaves them untouched.
func Decode(r io.Reader, format Format) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	switch format {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode json snapshot: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&snapshot); err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode yaml snapshot: %w", err)
		}
	default:
		return domain.Snapshot{}, fmt.Errorf("format %q cannot be imported", format)
	}
	return snapshot, nil
}
