package interact

import (
	"encoding/json"
	"testing"
)

type recorder[K comparable, T any] struct {
	hover, sel, click []Event[K, T]
}

func (rec *recorder[K, T]) options(o Options[K, T]) Options[K, T] {
	o.OnHoverChange = func(e Event[K, T]) { rec.hover = append(rec.hover, e) }
	o.OnSelectChange = func(e Event[K, T]) { rec.sel = append(rec.sel, e) }
	o.OnItemClick = func(e Event[K, T]) { rec.click = append(rec.click, e) }
	return o
}

var fruit = []string{"apple", "banana", "cherry"}

func TestPropResolve(t *testing.T) {
	local := Some(2)
	tests := []struct {
		name string
		prop Prop[int]
		want Optional[int]
	}{
		{"uncontrolled uses local", Uncontrolled[int](), Some(2)},
		{"controlled value wins", Controlled(Some(0)), Some(0)},
		{"controlled none is not uncontrolled", Controlled(None[int]()), None[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prop.Resolve(local); got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", local, got, tt.want)
			}
		})
	}
}

func TestActiveIndexPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		hoverable bool
		hovered   Prop[int]
		selected  Prop[int]
		want      Optional[int]
	}{
		{"nothing", true, Uncontrolled[int](), Uncontrolled[int](), None[int]()},
		{"hover only", true, Controlled(Some(1)), Uncontrolled[int](), Some(1)},
		{"selection wins", true, Controlled(Some(1)), Controlled(Some(2)), Some(2)},
		{"hover ignored when not hoverable", false, Controlled(Some(1)), Uncontrolled[int](), None[int]()},
		{"selection without hover", false, Controlled(Some(1)), Controlled(Some(0)), Some(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(fruit, Options[int, string]{
				Hoverable: tt.hoverable,
				Hovered:   tt.hovered,
				Selected:  tt.selected,
			})
			if got := r.ActiveIndex(); got != tt.want {
				t.Errorf("ActiveIndex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUncontrolledHover(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{Hoverable: true}))

	r.HoverEnter(1)
	if got := r.HoveredIndex(); got != Some(1) {
		t.Errorf("HoveredIndex() after HoverEnter(1) = %v, want 1", got)
	}
	r.HoverLeave()
	if got := r.HoveredIndex(); got.Valid() {
		t.Errorf("HoveredIndex() after HoverLeave() = %v, want none", got)
	}

	if len(rec.hover) != 2 {
		t.Fatalf("hover events = %d, want 2", len(rec.hover))
	}
	if e := rec.hover[0]; e.Key != Some(1) || !e.Found || e.Datum != "banana" {
		t.Errorf("first hover event = %+v, want banana at 1", e)
	}
	if e := rec.hover[1]; e.Key.Valid() || e.Found {
		t.Errorf("second hover event = %+v, want none", e)
	}
}

func TestControlledHoverIgnoresLocalWrites(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{
		Hoverable: true,
		Hovered:   Controlled(None[int]()),
	}))

	r.HoverEnter(2)
	if got := r.HoveredIndex(); got.Valid() {
		t.Errorf("HoveredIndex() = %v, want controlled none", got)
	}
	if len(rec.hover) != 1 || rec.hover[0].Key != Some(2) {
		t.Errorf("hover events = %+v, want one event for 2", rec.hover)
	}

	// The owner accepts the change and re-renders with the new prop.
	r.SetProps(Controlled(Some(2)), Uncontrolled[int]())
	if got := r.HoveredIndex(); got != Some(2) {
		t.Errorf("HoveredIndex() after SetProps = %v, want 2", got)
	}

	// Releasing control falls back to the untouched local state.
	r.SetProps(Uncontrolled[int](), Uncontrolled[int]())
	if got := r.HoveredIndex(); got.Valid() {
		t.Errorf("HoveredIndex() after release = %v, want none", got)
	}
}

func TestHoverDisabled(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{}))
	r.HoverEnter(0)
	r.HoverLeave()
	if r.HoveredIndex().Valid() || len(rec.hover) != 0 {
		t.Errorf("hover not ignored: state %v, events %d", r.HoveredIndex(), len(rec.hover))
	}
}

func TestClickTogglesSelection(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{Selectable: true}))

	r.Click(0)
	if got := r.SelectedIndex(); got != Some(0) {
		t.Errorf("SelectedIndex() after first click = %v, want 0", got)
	}
	r.Click(2)
	if got := r.SelectedIndex(); got != Some(2) {
		t.Errorf("SelectedIndex() after other click = %v, want 2", got)
	}
	r.Click(2)
	if got := r.SelectedIndex(); got.Valid() {
		t.Errorf("SelectedIndex() after second click = %v, want none", got)
	}

	wantSel := []Optional[int]{Some(0), Some(2), None[int]()}
	if len(rec.sel) != len(wantSel) {
		t.Fatalf("select events = %d, want %d", len(rec.sel), len(wantSel))
	}
	for i, e := range rec.sel {
		if e.Key != wantSel[i] {
			t.Errorf("select event %d = %v, want %v", i, e.Key, wantSel[i])
		}
	}
	if len(rec.click) != 3 {
		t.Errorf("click events = %d, want 3", len(rec.click))
	}
}

func TestClickNotSelectable(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{}))

	r.Click(1)
	if r.SelectedIndex().Valid() {
		t.Errorf("SelectedIndex() = %v, want none", r.SelectedIndex())
	}
	if len(rec.sel) != 0 {
		t.Errorf("select events = %d, want 0", len(rec.sel))
	}
	if len(rec.click) != 1 || rec.click[0].Datum != "banana" {
		t.Errorf("click events = %+v, want one for banana", rec.click)
	}
}

func TestControlledSelection(t *testing.T) {
	var rec recorder[int, string]
	r := New(fruit, rec.options(Options[int, string]{
		Selectable: true,
		Selected:   Controlled(Some(1)),
	}))

	// Clicking the controlled selection proposes clearing it.
	r.Click(1)
	if got := r.SelectedIndex(); got != Some(1) {
		t.Errorf("SelectedIndex() = %v, want controlled 1", got)
	}
	if len(rec.sel) != 1 || rec.sel[0].Key.Valid() {
		t.Errorf("select events = %+v, want one proposing none", rec.sel)
	}
}

func TestKeyDown(t *testing.T) {
	tests := []struct {
		name       string
		selectable bool
		key        string
		handled    bool
		selected   Optional[int]
	}{
		{"enter", true, "Enter", true, Some(1)},
		{"space char", true, " ", true, Some(1)},
		{"space name", true, "space", true, Some(1)},
		{"other key", true, "a", false, None[int]()},
		{"not selectable", false, "enter", false, None[int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(fruit, Options[int, string]{Selectable: tt.selectable})
			if got := r.KeyDown(1, tt.key); got != tt.handled {
				t.Errorf("KeyDown(1, %q) = %v, want %v", tt.key, got, tt.handled)
			}
			if got := r.SelectedIndex(); got != tt.selected {
				t.Errorf("SelectedIndex() = %v, want %v", got, tt.selected)
			}
		})
	}
}

func TestOpacity(t *testing.T) {
	r := New(fruit, Options[int, string]{Hoverable: true, Selectable: true})

	if _, ok := r.Opacity(0); ok {
		t.Error("Opacity() with nothing active should not override")
	}

	r.HoverEnter(1)
	if o, ok := r.Opacity(1); !ok || o != 1 {
		t.Errorf("Opacity(hovered) = %v, %v, want 1, true", o, ok)
	}
	if o, ok := r.Opacity(0); !ok || o != 0.3 {
		t.Errorf("Opacity(other) = %v, %v, want 0.3, true", o, ok)
	}

	custom := New(fruit, Options[int, string]{
		Selected:        Controlled(Some(2)),
		ActiveOpacity:   0.9,
		InactiveOpacity: 0.1,
	})
	if o, _ := custom.Opacity(2); o != 0.9 {
		t.Errorf("custom active opacity = %v, want 0.9", o)
	}
	if o, _ := custom.Opacity(0); o != 0.1 {
		t.Errorf("custom inactive opacity = %v, want 0.1", o)
	}
}

func TestMultiResolver(t *testing.T) {
	series := [][]float64{{1, 2, 3}, {4, 5}}
	var got []Event[Ref, float64]
	r := NewMulti(series, Options[Ref, float64]{
		Hoverable:     true,
		OnHoverChange: func(e Event[Ref, float64]) { got = append(got, e) },
	})

	r.HoverEnter(Ref{Series: 1, Point: 1})
	r.HoverEnter(Ref{Series: 1, Point: 7})

	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if !got[0].Found || got[0].Datum != 5 {
		t.Errorf("event 0 = %+v, want datum 5", got[0])
	}
	if got[1].Found {
		t.Errorf("event 1 = %+v, want not found", got[1])
	}

	r.HoverEnter(Ref{Series: 0, Point: 2})
	sameSeries := func(s int) func(Ref) bool {
		return func(active Ref) bool { return active.Series == s }
	}
	if o, _ := r.OpacityWhere(sameSeries(0)); o != 1 {
		t.Errorf("series 0 opacity = %v, want 1", o)
	}
	if o, _ := r.OpacityWhere(sameSeries(1)); o != 0.3 {
		t.Errorf("series 1 opacity = %v, want 0.3", o)
	}
	if s := SeriesOf(r.ActiveIndex()); s != Some(0) {
		t.Errorf("SeriesOf(active) = %v, want 0", s)
	}
}

func TestMapProp(t *testing.T) {
	toPoint := func(r Ref) int { return r.Point }
	if p := MapProp(Uncontrolled[Ref](), toPoint); p.IsControlled() {
		t.Error("MapProp(uncontrolled) should stay uncontrolled")
	}
	p := MapProp(Controlled(Some(Ref{Series: 0, Point: 4})), toPoint)
	if !p.IsControlled() || p.Value() != Some(4) {
		t.Errorf("MapProp(controlled) = %+v, want controlled 4", p)
	}
}

func TestOptionalJSON(t *testing.T) {
	state := State[int]{Hovered: Some(3), Selected: None[int]()}
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"hovered":3,"selected":null,"active":null}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back State[int]
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Hovered != Some(3) || back.Selected.Valid() {
		t.Errorf("Unmarshal = %+v", back)
	}
}
