package spec

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/chartkit/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported document extension %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Load reads, decodes and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "document %s not found", path)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "read %s", path)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "load %s", path)
	}
	return doc, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported document format %q", format)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidSpec, err, "decode %s", format)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Find returns the chart with the given name, with defaults applied.
func (d *Document) Find(name string) (Chart, error) {
	for _, c := range d.Charts {
		if c.Name == name {
			return c.WithDefaults(), nil
		}
	}
	return Chart{}, errs.New(errs.ErrCodeChartNotFound, "chart %q not found", name)
}
