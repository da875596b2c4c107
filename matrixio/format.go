// SPDX-License-Identifier: MIT

// Package matrixio - wire formats and their codec handles.

package matrixio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ugorji/go/codec"
)

// Format names a wire format.
type Format string

const (
	JSON    Format = "json"
	Msgpack Format = "msgpack"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{JSON, Msgpack}

// extensions maps a lower-cased file extension to its format.
var extensions = map[string]Format{
	".json":    JSON,
	".msgpack": Msgpack,
	".mp":      Msgpack,
}

// ParseFormat resolves a format by name (case-insensitive).
// Errors: ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, err := f.handle(); err != nil {
		return "", err
	}

	return f, nil
}

// FormatFromPath picks the format from the extension of path.
// Errors: ErrUnknownFormat.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("extension %q: %w", ext, ErrUnknownFormat)
}

// handle returns a fresh codec handle for f.
func (f Format) handle() (codec.Handle, error) {
	switch f {
	case JSON:
		h := &codec.JsonHandle{}
		h.Canonical = true
		return h, nil
	case Msgpack:
		h := &codec.MsgpackHandle{}
		h.WriteExt = true
		h.Canonical = true
		return h, nil
	}

	return nil, fmt.Errorf("format %q: %w", string(f), ErrUnknownFormat)
}

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }
