// Package hujsonutil edits HuJSON documents (JSON with comments and
// trailing commas) in place, so hand-written comments in config files
// survive programmatic updates.
package hujsonutil

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tailscale/hujson"
)

// Value wraps hujson.Value to provide convenience helpers.
type Value struct {
	*hujson.Value
}

// NewValue wraps a hujson.Value.
func NewValue(v *hujson.Value) *Value {
	return &Value{Value: v}
}

// Parse parses a HuJSON document.
func Parse(data []byte) (*Value, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	return NewValue(&v), nil
}

// Decode unmarshals the value at path (JSON Pointer syntax) into out.
// It reports false when nothing exists at path.
func (v *Value) Decode(path string, out any) (bool, error) {
	if v.Value == nil {
		return false, fmt.Errorf("nil Value")
	}
	found := v.Find(path)
	if found == nil {
		return false, nil
	}
	std := found.Clone()
	std.Standardize()
	if err := json.Unmarshal(std.Pack(), out); err != nil {
		return true, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

// InsertToArray inserts value at the end of the array located at path.
// The path uses JSON Pointer syntax. If the array does not exist, it is created.
// Returns an error if the path points to a non-array value.
func (v *Value) InsertToArray(path string, val any) error {
	if v.Value == nil {
		return fmt.Errorf("nil Value")
	}

	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	elem, err := hujson.Parse(b)
	if err != nil {
		return err
	}

	if existing := v.Find(path); existing != nil {
		if _, ok := existing.Value.(*hujson.Array); !ok {
			return fmt.Errorf("path %s is not an array", path)
		}
		patch := fmt.Sprintf(`[{"op":"add","path":"%s/-","value":%s}]`, path, elem.Pack())
		return v.Patch([]byte(patch))
	}

	patch := fmt.Sprintf(`[`+
		`{"op":"add","path":"%s","value":[]},`+
		`{"op":"add","path":"%s/-","value":%s}`+
		`]`, path, path, elem.Pack())
	return v.Patch([]byte(patch))
}

// AppendUnique appends s to the string array at path unless it is already
// there. It reports whether the document changed.
func (v *Value) AppendUnique(path string, s string) (bool, error) {
	var existing []string
	if _, err := v.Decode(path, &existing); err != nil {
		return false, err
	}
	if slices.Contains(existing, s) {
		return false, nil
	}
	if err := v.InsertToArray(path, s); err != nil {
		return false, err
	}
	return true, nil
}
