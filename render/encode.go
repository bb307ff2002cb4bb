// Package render writes scanned directory trees as JSON, YAML or a tree
// diagram.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hayeah/projtree/scanner"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTree Format = "tree"
)

// ParseFormat parses a format name, case-insensitively. "yml" is accepted
// for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "tree":
		return FormatTree, nil
	default:
		return "", fmt.Errorf("unknown format %q: valid values are json, yaml, tree", s)
	}
}

// JSON writes node as indented JSON followed by a newline.
func JSON(w io.Writer, node scanner.DirectoryNode) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(node)
}

// YAML writes node as a YAML document.
func YAML(w io.Writer, node scanner.DirectoryNode) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// Write encodes node in the given format.
func Write(w io.Writer, node scanner.DirectoryNode, format Format, opts DiagramOptions) error {
	switch format {
	case FormatJSON:
		return JSON(w, node)
	case FormatYAML:
		return YAML(w, node)
	case FormatTree:
		return Diagram(w, node, opts)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
