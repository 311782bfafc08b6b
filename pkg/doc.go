// Package pkg provides the core libraries for chartkit.
//
// # Overview
//
// chartkit computes everything a chart needs before it is drawn: scales,
// axis ticks, stacked bands, SVG path data, pie arcs, legend entries,
// tooltip text and the hover and selection state of every mark. The pkg
// directory is organized into three main areas:
//
//  1. [chart] - The framework-neutral engine (scales, ticks, geometry,
//     stacking, interaction and legend)
//  2. [spec], [render] - Chart documents and the scenes built from them
//  3. [pipeline], [cache] - Orchestration (load → scene → artifact) with
//     file and Redis caching
//
// # Architecture
//
// The typical data flow through chartkit:
//
//	Chart document (TOML, YAML, JSON)
//	         ↓
//	    [spec] package (decode, validate, apply defaults)
//	         ↓
//	    [render] package (scales + ticks + geometry + interaction → Scene)
//	         ↓
//	    [render/sink] package (SVG, JSON)
//
// # Quick Start
//
// Load a document and render one chart:
//
//	doc, _ := spec.Load("charts.toml")
//	c, _ := doc.Find("revenue")
//	scene := render.Build(c)
//	svg := sink.SVG(scene)
//
// Drive interaction like a component:
//
//	r := render.New(c, render.WithSelectHandler(func(o interact.Optional[interact.Ref]) {
//	    fmt.Println("selected", o)
//	}))
//	r.HoverEnter(interact.Ref{Point: 1})
//	r.Click(interact.Ref{Point: 1})
//	scene := r.Scene()
//
// Use the engine without documents:
//
//	y := scale.NewLinear([2]float64{0, 97}, scale.Range{300, 0})
//	for _, t := range ticks.AxisTicks[float64](y, ticks.Options[float64]{Count: 5}) {
//	    fmt.Println(t.Label, t.Position)
//	}
//
// # Main Packages
//
// [chart/scale] - Linear, band and point scales sharing one generic
// interface.
//
// [chart/ticks] - Nice tick values and labels for any scale.
//
// [chart/geom] - Line, area and arc path generation with linear, step and
// monotone curves.
//
// [chart/stack] - Stacked series layout.
//
// [chart/interact] - Hover and selection resolution with controlled and
// uncontrolled props, plus mark opacity.
//
// [chart/legend] - Legend items and tooltip text.
//
// [pipeline] - Scene and artifact rendering with two cache tiers, used by
// every CLI command.
//
// [cache] - Null, file and Redis cache backends and cache key derivation.
//
// [errors] - Structured error codes with user messages and HTTP status
// mapping.
//
// [observability] - Hooks for load, render, cache and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./...                          # All tests
//	go test ./pkg/chart/...                # Engine only
//	CHARTKIT_TEST_REDIS=localhost:6379 go test ./pkg/cache/...
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart
// [chart/scale]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/scale
// [chart/ticks]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/ticks
// [chart/geom]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/geom
// [chart/stack]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/stack
// [chart/interact]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/interact
// [chart/legend]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart/legend
// [spec]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/spec
// [render]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/observability
package pkg
