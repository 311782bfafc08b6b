package interact

import (
	"fmt"
	"strings"
)

// Default opacities applied while an element is active.
const (
	DefaultActiveOpacity   = 1.0
	DefaultInactiveOpacity = 0.3
)

// Ref addresses one point of a multi-series chart.
type Ref struct {
	Series int `json:"series"`
	Point  int `json:"point"`
}

// String formats the ref as "series:point".
func (r Ref) String() string { return fmt.Sprintf("%d:%d", r.Series, r.Point) }

// Event is passed to the change callbacks.
type Event[K comparable, T any] struct {
	// Key is the new value. For hover and selection changes it may be None.
	Key Optional[K]
	// Datum is the data behind Key; Found is false when Key is None or out
	// of range.
	Datum T
	Found bool
}

// Options configures a Resolver.
type Options[K comparable, T any] struct {
	Hoverable  bool
	Selectable bool

	Hovered  Prop[K]
	Selected Prop[K]

	// Zero means DefaultActiveOpacity / DefaultInactiveOpacity.
	ActiveOpacity   float64
	InactiveOpacity float64

	OnHoverChange  func(Event[K, T])
	OnSelectChange func(Event[K, T])
	OnItemClick    func(Event[K, T])
}

// State is a snapshot of the resolved keys.
type State[K comparable] struct {
	Hovered  Optional[K] `json:"hovered"`
	Selected Optional[K] `json:"selected"`
	Active   Optional[K] `json:"active"`
}

// Resolver tracks hover and selection for one chart instance.
type Resolver[K comparable, T any] struct {
	opts   Options[K, T]
	lookup func(K) (T, bool)

	hovered  Optional[K]
	selected Optional[K]
}

// New creates a resolver for a flat chart whose elements are keyed by index
// into data.
func New[T any](data []T, opts Options[int, T]) *Resolver[int, T] {
	return NewWithLookup(func(i int) (T, bool) {
		if i < 0 || i >= len(data) {
			var zero T
			return zero, false
		}
		return data[i], true
	}, opts)
}

// NewMulti creates a resolver for a multi-series chart whose elements are
// keyed by Ref into series.
func NewMulti[T any](series [][]T, opts Options[Ref, T]) *Resolver[Ref, T] {
	return NewWithLookup(func(r Ref) (T, bool) {
		if r.Series < 0 || r.Series >= len(series) || r.Point < 0 || r.Point >= len(series[r.Series]) {
			var zero T
			return zero, false
		}
		return series[r.Series][r.Point], true
	}, opts)
}

// NewWithLookup creates a resolver with a custom key to datum lookup.
func NewWithLookup[K comparable, T any](lookup func(K) (T, bool), opts Options[K, T]) *Resolver[K, T] {
	if opts.ActiveOpacity == 0 {
		opts.ActiveOpacity = DefaultActiveOpacity
	}
	if opts.InactiveOpacity == 0 {
		opts.InactiveOpacity = DefaultInactiveOpacity
	}
	return &Resolver[K, T]{opts: opts, lookup: lookup}
}

// SetProps replaces the hovered and selected props, as an owner does when it
// re-renders the chart with new inputs. Local state is kept.
func (r *Resolver[K, T]) SetProps(hovered, selected Prop[K]) {
	r.opts.Hovered = hovered
	r.opts.Selected = selected
}

// HoveredIndex returns the effective hovered key.
func (r *Resolver[K, T]) HoveredIndex() Optional[K] {
	return r.opts.Hovered.Resolve(r.hovered)
}

// SelectedIndex returns the effective selected key.
func (r *Resolver[K, T]) SelectedIndex() Optional[K] {
	return r.opts.Selected.Resolve(r.selected)
}

// ActiveIndex returns the selected key, or the hovered key when hovering is
// enabled, or None.
func (r *Resolver[K, T]) ActiveIndex() Optional[K] {
	if sel := r.SelectedIndex(); sel.Valid() {
		return sel
	}
	if r.opts.Hoverable {
		if h := r.HoveredIndex(); h.Valid() {
			return h
		}
	}
	return None[K]()
}

// State returns the resolved hovered, selected and active keys.
func (r *Resolver[K, T]) State() State[K] {
	return State[K]{
		Hovered:  r.HoveredIndex(),
		Selected: r.SelectedIndex(),
		Active:   r.ActiveIndex(),
	}
}

// HoverEnter reports that the pointer entered element k.
func (r *Resolver[K, T]) HoverEnter(k K) {
	if !r.opts.Hoverable {
		return
	}
	r.setHovered(Some(k))
}

// HoverLeave reports that the pointer left the hovered element.
func (r *Resolver[K, T]) HoverLeave() {
	if !r.opts.Hoverable {
		return
	}
	r.setHovered(None[K]())
}

func (r *Resolver[K, T]) setHovered(next Optional[K]) {
	if !r.opts.Hovered.IsControlled() {
		r.hovered = next
	}
	r.emit(r.opts.OnHoverChange, next)
}

// Click reports a click on element k. When the chart is selectable the
// selection toggles: clicking the selected element clears it, any other
// element becomes selected. The item click callback fires in both cases.
func (r *Resolver[K, T]) Click(k K) {
	if r.opts.Selectable {
		next := Some(k)
		if r.SelectedIndex().Is(k) {
			next = None[K]()
		}
		if !r.opts.Selected.IsControlled() {
			r.selected = next
		}
		r.emit(r.opts.OnSelectChange, next)
	}
	r.emit(r.opts.OnItemClick, Some(k))
}

// KeyDown reports a key press while element k has focus. Enter and space
// act like a click when the chart is selectable. It reports whether the key
// was handled.
func (r *Resolver[K, T]) KeyDown(k K, key string) bool {
	if !r.opts.Selectable {
		return false
	}
	switch strings.ToLower(key) {
	case "enter", " ", "space":
		r.Click(k)
		return true
	}
	return false
}

// Opacity returns the opacity for element k and true, or false when no
// element is active and no override applies.
func (r *Resolver[K, T]) Opacity(k K) (float64, bool) {
	return r.OpacityWhere(func(active K) bool { return active == k })
}

// OpacityWhere is Opacity for elements that match the active key by a
// predicate, such as a whole series of a multi-series chart.
func (r *Resolver[K, T]) OpacityWhere(match func(active K) bool) (float64, bool) {
	active, ok := r.ActiveIndex().Get()
	if !ok {
		return 0, false
	}
	if match(active) {
		return r.opts.ActiveOpacity, true
	}
	return r.opts.InactiveOpacity, true
}

// Datum returns the data behind k.
func (r *Resolver[K, T]) Datum(k Optional[K]) (T, bool) {
	key, ok := k.Get()
	if !ok || r.lookup == nil {
		var zero T
		return zero, false
	}
	return r.lookup(key)
}

func (r *Resolver[K, T]) emit(fn func(Event[K, T]), key Optional[K]) {
	if fn == nil {
		return
	}
	d, found := r.Datum(key)
	fn(Event[K, T]{Key: key, Datum: d, Found: found})
}

// SeriesOf reduces a point ref to its series index.
func SeriesOf(o Optional[Ref]) Optional[int] {
	return MapOptional(o, func(r Ref) int { return r.Series })
}
