package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartkit/pkg/render"
)

// JSON renders the scene as indented JSON. The output is the [render.Scene]
// itself, so consumers can draw it with any toolkit.
func JSON(s render.Scene) ([]byte, error) {
	if s.Elements == nil {
		s.Elements = []render.Element{}
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ReadJSON decodes a scene written by JSON.
func ReadJSON(data []byte) (render.Scene, error) {
	var s render.Scene
	err := json.Unmarshal(data, &s)
	return s, err
}
