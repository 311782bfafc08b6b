// Package legend builds legend entries and tooltip text for charts.
//
// Legend items carry a label, a colour and whether the item is active
// according to the interaction resolver: all of them while nothing is
// focused, only the focused one otherwise. Colours come from a per-datum
// getter when provided, then from the datum itself (chart.Point.Color,
// chart.Series.Color), then from a [Palette] cycled by index.
package legend

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
)

// Item is one legend entry.
type Item struct {
	Index  int    `json:"index"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

// ItemOptions supplies optional per-datum getters. A getter returning ""
// falls through to the default.
type ItemOptions[T any] struct {
	Label func(d T, i int) string
	Color func(d T, i int) string
}

// Items returns one legend item per datum. With no active index every item
// is active; otherwise only item i with active == i is. An empty palette
// means Category10.
func Items[T any](data []T, palette Palette, active interact.Optional[int], opts ItemOptions[T]) []Item {
	items := make([]Item, len(data))
	for i, d := range data {
		label := ""
		if opts.Label != nil {
			label = opts.Label(d, i)
		}
		if label == "" {
			label = defaultLabel(d, i)
		}

		color := ""
		if opts.Color != nil {
			color = opts.Color(d, i)
		}
		if color == "" {
			color = defaultColor(d)
		}
		if color == "" {
			color = palette.Color(i)
		}

		items[i] = Item{
			Index:  i,
			Label:  label,
			Color:  color,
			Active: !active.Valid() || active.Is(i),
		}
	}
	return items
}

func defaultLabel(d any, i int) string {
	switch v := d.(type) {
	case chart.Point:
		return v.Name(i)
	case chart.Series:
		if v.Name != "" {
			return v.Name
		}
		return "Series " + strconv.Itoa(i+1)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return "Item " + strconv.Itoa(i+1)
}

func defaultColor(d any) string {
	switch v := d.(type) {
	case chart.Point:
		return v.Color
	case chart.Series:
		return v.Color
	}
	return ""
}
