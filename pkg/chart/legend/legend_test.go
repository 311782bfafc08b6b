package legend

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
)

func TestItems(t *testing.T) {
	points := []chart.Point{
		{Key: "a", Y: 1},
		{Label: "Bravo", Y: 2, Color: "#123456"},
		{Y: 3},
	}
	got := Items(points, Tol, interact.Some(1), ItemOptions[chart.Point]{})
	want := []Item{
		{Index: 0, Label: "a", Color: "#4477AA"},
		{Index: 1, Label: "Bravo", Color: "#123456", Active: true},
		{Index: 2, Label: "#3", Color: "#228833"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsGetters(t *testing.T) {
	data := []string{"x", "y", "z"}
	got := Items(data, Palette{"red", "blue"}, interact.None[int](), ItemOptions[string]{
		Label: func(d string, i int) string { return d + "!" },
		Color: func(d string, i int) string {
			if d == "y" {
				return "green"
			}
			return ""
		},
	})
	want := []Item{
		{Index: 0, Label: "x!", Color: "red", Active: true},
		{Index: 1, Label: "y!", Color: "green", Active: true},
		{Index: 2, Label: "z!", Color: "red", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsActive(t *testing.T) {
	points := []chart.Point{{Key: "a"}, {Key: "b"}, {Key: "c"}}
	tests := []struct {
		name   string
		active interact.Optional[int]
		want   []bool
	}{
		{"nothing focused", interact.None[int](), []bool{true, true, true}},
		{"first", interact.Some(0), []bool{true, false, false}},
		{"last", interact.Some(2), []bool{false, false, true}},
		{"out of range", interact.Some(3), []bool{false, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Items(points, nil, tt.active, ItemOptions[chart.Point]{})
			for i, it := range items {
				if it.Active != tt.want[i] {
					t.Errorf("item %d Active = %v, want %v", i, it.Active, tt.want[i])
				}
			}
		})
	}
}

func TestItemsSeries(t *testing.T) {
	series := []chart.Series{{Name: "2023"}, {}}
	got := Items(series, nil, interact.Some(5), ItemOptions[chart.Series]{})
	if got[0].Label != "2023" || got[1].Label != "Series 2" {
		t.Errorf("labels = %q, %q, want 2023, Series 2", got[0].Label, got[1].Label)
	}
	if got[1].Color != Category10[1] {
		t.Errorf("empty palette color = %q, want Category10[1] %q", got[1].Color, Category10[1])
	}
	for _, it := range got {
		if it.Active {
			t.Errorf("item %d active for out-of-range index", it.Index)
		}
	}
}

func TestPalette(t *testing.T) {
	if len(Category10) != 10 || len(Tableau10) != 10 || len(Tol) != 10 {
		t.Fatalf("palette sizes = %d, %d, %d, want 10", len(Category10), len(Tableau10), len(Tol))
	}
	if Category10[0] != "#1f77b4" || Category10[9] != "#17becf" {
		t.Errorf("Category10 = %v", Category10)
	}
	if Tableau10[0] != "#4e79a7" {
		t.Errorf("Tableau10[0] = %q, want #4e79a7", Tableau10[0])
	}

	p := Palette{"a", "b", "c"}
	tests := map[int]string{0: "a", 2: "c", 3: "a", 7: "b", -1: "c"}
	for i, want := range tests {
		if got := p.Color(i); got != want {
			t.Errorf("Color(%d) = %q, want %q", i, got, want)
		}
	}

	if _, ok := ParsePalette(" Tol "); !ok {
		t.Error("ParsePalette(Tol) not found")
	}
	if _, ok := ParsePalette("viridis"); ok {
		t.Error("ParsePalette(viridis) should not be found")
	}
}

func TestTooltip(t *testing.T) {
	points := []chart.Point{{Key: "mon", Y: 12.5}, {Label: "Tuesday", Y: -3}}
	tests := []struct {
		name    string
		hovered interact.Optional[int]
		format  func(chart.Point, int) string
		want    string
	}{
		{"nothing hovered", interact.None[int](), nil, ""},
		{"out of range", interact.Some(9), nil, ""},
		{"negative index", interact.Some(-1), nil, ""},
		{"default", interact.Some(0), nil, "mon: 12.5"},
		{"label wins", interact.Some(1), nil, "Tuesday: -3"},
		{"custom", interact.Some(0), func(p chart.Point, i int) string { return p.Key + "=" + chart.FormatNumber(p.Y*2) }, "mon=25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tooltip(points, tt.hovered, tt.format); got != tt.want {
				t.Errorf("Tooltip() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMultiTooltip(t *testing.T) {
	series := []chart.Series{
		{Name: "rain", Points: []chart.Point{{Key: "jan", Y: 80}, {Key: "feb", Y: 61}}},
		{Points: []chart.Point{{Key: "jan", Y: 4}}},
	}
	tests := []struct {
		name    string
		hovered interact.Optional[interact.Ref]
		want    string
	}{
		{"none", interact.None[interact.Ref](), ""},
		{"named series", interact.Some(interact.Ref{Series: 0, Point: 1}), "rain, feb: 61"},
		{"unnamed series", interact.Some(interact.Ref{Series: 1, Point: 0}), "Series 2, jan: 4"},
		{"missing point", interact.Some(interact.Ref{Series: 1, Point: 1}), ""},
		{"missing series", interact.Some(interact.Ref{Series: 2, Point: 0}), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MultiTooltip(series, tt.hovered, nil); got != tt.want {
				t.Errorf("MultiTooltip() = %q, want %q", got, tt.want)
			}
		})
	}
}
