// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package schema

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/petar-djukic/rmodgen/pkg/rust"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported model format")
	ErrInvalidModel      = errors.New("invalid model")
)

// Format is the encoding of a model document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, errors.WithHint(
			errors.Wrapf(ErrUnsupportedFormat, "%s", path),
			"model files must end in .yaml, .yml, .json or .toml")
	}
}

// Load reads, decodes and builds the model file at path.
func Load(path string) (rust.File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return rust.File{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return rust.File{}, errors.Wrapf(err, "reading model %s", path)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return rust.File{}, errors.Wrapf(err, "decoding model %s", path)
	}

	file, err := Build(doc)
	if err != nil {
		return rust.File{}, errors.Wrapf(err, "building model %s", path)
	}
	return file, nil
}

// Decode parses a document. Keys that do not belong to the schema are
// rejected in every format. Empty input yields an empty document.
func Decode(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML, FormatJSON:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "format %d", int(format))
	}
}

// decodeYAML also serves JSON documents, which are valid YAML.
func decodeYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, errors.WithHint(
			errors.Mark(err, ErrInvalidModel),
			"check key names and value types against the model schema")
	}
	return &doc, nil
}

func decodeTOML(data []byte) (*Document, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.WithHint(
			errors.Mark(err, ErrInvalidModel),
			"check the TOML syntax; items are written as [[items]] tables")
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidModel, "unknown keys: %s", strings.Join(keys, ", ")),
			"remove or rename the keys; see the model schema for valid names")
	}
	return &doc, nil
}
