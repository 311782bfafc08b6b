// Package sink writes render scenes to output formats.
//
// Both sinks are deterministic: the same scene always produces the same
// bytes, which keeps the artifact cache and golden tests stable.
//
//	svg := sink.SVG(scene)
//	data, err := sink.JSON(scene)
package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/render"
)

const (
	fontSize      = 11.0
	titleSize     = 14.0
	legendSwatch  = 10.0
	legendSpacing = 90.0
	tickLength    = 4.0
	axisColor     = "#666"
	gridColor     = "#ddd"
	textColor     = "#333"
)

const sceneCSS = `
    .mark { transition: opacity 0.15s ease; cursor: pointer; }
    .axis text, .legend text { font: %.0fpx sans-serif; fill: %s; }
    .title { font: bold %.0fpx sans-serif; fill: %s; }`

// SVG renders the scene as a standalone SVG document.
func SVG(s render.Scene) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %s %s" width="%s" height="%s" data-type="%s">`+"\n",
		escape(s.ID), geom.Num(s.Width), geom.Num(s.Height), geom.Num(s.Width), geom.Num(s.Height), s.Type)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", fmt.Sprintf(sceneCSS, fontSize, textColor, titleSize, textColor))

	if s.Title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
			geom.Num(s.Width/2), geom.Num(render.MarginTop/2+titleSize/3), escape(s.Title))
	}

	renderGrid(&buf, s)
	renderAxes(&buf, s)
	renderElements(&buf, s)
	renderLegend(&buf, s)

	if s.Tooltip != "" {
		fmt.Fprintf(&buf, `  <text class="tooltip" x="%s" y="%s" text-anchor="end" font-size="%s" fill="%s">%s</text>`+"\n",
			geom.Num(s.Width-render.MarginRight), geom.Num(render.MarginTop-8), geom.Num(fontSize), textColor, escape(s.Tooltip))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, s render.Scene) {
	if len(s.Grid) == 0 && len(s.Spokes) == 0 {
		return
	}
	buf.WriteString(`  <g class="grid" fill="none" stroke="` + gridColor + `">` + "\n")
	for _, d := range s.Grid {
		fmt.Fprintf(buf, `    <path d="%s"/>`+"\n", d)
	}
	for _, l := range s.Spokes {
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
			geom.Num(l.From.X), geom.Num(l.From.Y), geom.Num(l.To.X), geom.Num(l.To.Y))
	}
	buf.WriteString("  </g>\n")
}

func renderAxes(buf *bytes.Buffer, s render.Scene) {
	p := s.Plot
	for _, a := range s.Axes {
		fmt.Fprintf(buf, `  <g class="axis axis-%s">`+"\n", a.Orient)
		switch a.Orient {
		case render.OrientBottom:
			y := p.Y + p.H
			fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
				geom.Num(p.X), geom.Num(y), geom.Num(p.X+p.W), geom.Num(y), axisColor)
			for _, t := range a.Ticks {
				fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
					geom.Num(t.Position), geom.Num(y), geom.Num(t.Position), geom.Num(y+tickLength), axisColor)
				fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="middle">%s</text>`+"\n",
					geom.Num(t.Position), geom.Num(y+tickLength+fontSize+2), escape(t.Label))
			}
		case render.OrientLeft:
			fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
				geom.Num(p.X), geom.Num(p.Y), geom.Num(p.X), geom.Num(p.Y+p.H), axisColor)
			for _, t := range a.Ticks {
				fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
					geom.Num(p.X-tickLength), geom.Num(t.Position), geom.Num(p.X+p.W), geom.Num(t.Position), gridColor)
				fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="end">%s</text>`+"\n",
					geom.Num(p.X-tickLength-2), geom.Num(t.Position+fontSize/3), escape(t.Label))
			}
		case render.OrientRadial:
			for _, t := range a.Ticks {
				if t.At == nil {
					continue
				}
				fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="%s">%s</text>`+"\n",
					geom.Num(t.At.X), geom.Num(t.At.Y+fontSize/3), radialAnchor(t.At.X, p.X+p.W/2), escape(t.Label))
			}
		}
		buf.WriteString("  </g>\n")
	}
}

func radialAnchor(x, cx float64) string {
	switch {
	case x < cx-1:
		return "end"
	case x > cx+1:
		return "start"
	default:
		return "middle"
	}
}

func renderElements(buf *bytes.Buffer, s render.Scene) {
	buf.WriteString(`  <g class="marks">` + "\n")
	for _, e := range s.Elements {
		attrs := elementAttrs(e)
		switch e.Shape {
		case render.ShapeRect:
			if e.Rect == nil {
				continue
			}
			fmt.Fprintf(buf, `    <rect id="%s" class="mark" x="%s" y="%s" width="%s" height="%s"%s>`,
				escape(e.ID), geom.Num(e.Rect.X), geom.Num(e.Rect.Y), geom.Num(e.Rect.W), geom.Num(e.Rect.H), attrs)
			writeTitle(buf, e.Title)
			buf.WriteString("</rect>\n")
		case render.ShapeCircle:
			if e.Circle == nil {
				continue
			}
			fmt.Fprintf(buf, `    <circle id="%s" class="mark" cx="%s" cy="%s" r="%s"%s>`,
				escape(e.ID), geom.Num(e.Circle.CX), geom.Num(e.Circle.CY), geom.Num(e.Circle.R), attrs)
			writeTitle(buf, e.Title)
			buf.WriteString("</circle>\n")
		case render.ShapePath:
			if e.Path == "" {
				continue
			}
			fmt.Fprintf(buf, `    <path id="%s" class="mark" d="%s"%s>`, escape(e.ID), e.Path, attrs)
			writeTitle(buf, e.Title)
			buf.WriteString("</path>\n")
		}
	}
	buf.WriteString("  </g>\n")
}

func elementAttrs(e render.Element) string {
	var b bytes.Buffer
	fill := e.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, escape(fill))
	if e.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="2"`, escape(e.Stroke))
	}
	if e.Fill != "" && e.Point < 0 {
		// Series-wide fills (areas, radar polygons) overlap.
		b.WriteString(` fill-opacity="0.35"`)
	}
	if e.Opacity != 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, geom.Num(e.Opacity))
	}
	fmt.Fprintf(&b, ` data-series="%d" data-point="%d"`, e.Series, e.Point)
	return b.String()
}

func writeTitle(buf *bytes.Buffer, title string) {
	if title != "" {
		fmt.Fprintf(buf, "<title>%s</title>", escape(title))
	}
}

func renderLegend(buf *bytes.Buffer, s render.Scene) {
	if len(s.Legend) == 0 {
		return
	}
	y := s.Height - legendSwatch - 4
	buf.WriteString(`  <g class="legend">` + "\n")
	for i, item := range s.Legend {
		x := render.MarginLeft + float64(i)*legendSpacing
		opacity := ""
		if !item.Active {
			opacity = ` opacity="0.5"`
		}
		fmt.Fprintf(buf, `    <g class="legend-item" data-index="%d"%s><rect x="%s" y="%s" width="%s" height="%s" fill="%s"/><text x="%s" y="%s">%s</text></g>`+"\n",
			item.Index, opacity,
			geom.Num(x), geom.Num(y), geom.Num(legendSwatch), geom.Num(legendSwatch), escape(item.Color),
			geom.Num(x+legendSwatch+4), geom.Num(y+legendSwatch-1), escape(item.Label))
	}
	buf.WriteString("  </g>\n")
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
