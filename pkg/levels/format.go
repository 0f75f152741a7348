package levels

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cargograph/pkg/errors"
)

// Format is a level listing output format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format %q (available: text, json, yaml)", s)
}

// extension returns the default file extension for the format.
func (f Format) extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	default:
		return ".txt"
	}
}

// Write renders r in the given format.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatText, "":
		return WriteText(w, r)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", f)
}

// WriteText writes one "name  :   dep1, dep2" line per node. An empty
// listing is written as a single newline.
func WriteText(w io.Writer, r Report) error {
	lines := make([]string, len(r.Nodes))
	for i, e := range r.Nodes {
		lines[i] = fmt.Sprintf("%s  :   %s", e.Name, strings.Join(e.Dependencies, ", "))
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(lines, "\n"))
	bw.WriteString("\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write levels: %w", err)
	}
	return nil
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML writes r as a YAML document.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// DefaultOutputPath derives an output path from the input path:
// "deps.mmd" at level 2 going up becomes "deps.up.level2.txt". JSON and YAML
// listings use their own extension.
func DefaultOutputPath(input string, level int, dir Direction, f Format) string {
	base := input
	// Dotfiles such as ".deps" have no extension.
	if ext := filepath.Ext(input); ext != filepath.Base(input) {
		base = strings.TrimSuffix(input, ext)
	}
	return fmt.Sprintf("%s.%s.level%d%s", base, dir, level, f.extension())
}
