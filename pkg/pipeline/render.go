package pipeline

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/sink"
	"github.com/matzehuels/chartkit/pkg/spec"
)

// BuildScene computes the scene of c with the interaction overrides of opts.
func BuildScene(c spec.Chart, opts Options) (render.Scene, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return render.Scene{}, err
	}
	return render.Build(c, opts.RenderOptions()...), nil
}

// Render serializes a scene in the requested formats.
func Render(s render.Scene, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		data, err := renderFormat(s, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(s render.Scene, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.SVG(s), nil
	case FormatJSON:
		return sink.JSON(s)
	default:
		return nil, ValidateFormat(format)
	}
}
