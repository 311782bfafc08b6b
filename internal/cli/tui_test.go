package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/spec"
)

func exploreChart() spec.Chart {
	return spec.Chart{
		Name:       "sales",
		Type:       chart.KindBar,
		Categories: []string{"a", "b", "c"},
		Series: []spec.Series{
			{Name: "web", Values: []float64{1, 2, 3}},
			{Name: "app", Values: []float64{3, 2, 1}},
		},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *ExploreModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestExploreHoversFirstElement(t *testing.T) {
	m := NewExploreModel(render.New(exploreChart()))
	if got := m.renderer.Scene().State.Hovered; got != "0:0" {
		t.Errorf("Hovered = %q, want 0:0", got)
	}
}

func TestExploreNavigation(t *testing.T) {
	m := NewExploreModel(render.New(exploreChart()))

	press(m, tea.KeyMsg{Type: tea.KeyRight}, runes("l"))
	if got := m.Cursor(); got != (interact.Ref{Series: 0, Point: 2}) {
		t.Errorf("Cursor after two steps right = %v", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor().Point; got != 2 {
		t.Errorf("Cursor should clamp at the last point, got %d", got)
	}

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Cursor(); got != (interact.Ref{Series: 1, Point: 1}) {
		t.Errorf("Cursor = %v, want 1:1", got)
	}
	if got := m.renderer.Scene().State.Hovered; got != "1:1" {
		t.Errorf("Hovered = %q, want 1:1", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.renderer.Scene().State.Hovered; got != "" {
		t.Errorf("Hovered after esc = %q, want none", got)
	}
}

func TestExploreSelect(t *testing.T) {
	m := NewExploreModel(render.New(exploreChart()))

	press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.renderer.Scene().State.Selected; got != "0:1" {
		t.Errorf("Selected = %q, want 0:1", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.renderer.Scene().State.Selected; got != "" {
		t.Errorf("Selected after second activation = %q, want none", got)
	}
	if m.Status() != "" {
		t.Errorf("Status = %q, want empty", m.Status())
	}
}

func TestExploreNotSelectable(t *testing.T) {
	c := exploreChart()
	no := false
	c.Interaction.Selectable = &no
	m := NewExploreModel(render.New(c))

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Status() != "chart is not selectable" {
		t.Errorf("Status = %q", m.Status())
	}
	if got := m.renderer.Scene().State.Selected; got != "" {
		t.Errorf("Selected = %q, want none", got)
	}

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Status() != "" {
		t.Error("Status should reset on the next key")
	}
}

func TestExplorePieHasOneSeries(t *testing.T) {
	c := spec.Chart{
		Name: "share",
		Type: chart.KindPie,
		Series: []spec.Series{
			{Name: "browsers", Points: []spec.Point{{Key: "chrome", Y: 65}, {Key: "firefox", Y: 20}}},
		},
	}
	m := NewExploreModel(render.New(c))
	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Cursor(); got != (interact.Ref{Series: 0, Point: 1}) {
		t.Errorf("Cursor = %v, want 0:1", got)
	}
}

func TestExploreQuit(t *testing.T) {
	m := NewExploreModel(render.New(exploreChart()))
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestExploreView(t *testing.T) {
	c := exploreChart()
	c.Title = "Sales by channel"
	m := NewExploreModel(render.New(c))
	view := m.View()

	for _, want := range []string{"Sales by channel", "web", "app", "hovered 0:0", "selected none"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestNewExploreRenderer(t *testing.T) {
	path := writeDoc(t)
	c := testCLI(nil)

	r, err := c.newExploreRenderer(context.Background(), path, "", pipeline.Options{Selected: "1"})
	if err != nil {
		t.Fatalf("newExploreRenderer() error: %v", err)
	}
	if r.Chart().Name != "revenue" {
		t.Errorf("default chart = %q, want the first chart", r.Chart().Name)
	}
	if got := r.Scene().State.Selected; got != "0:1" {
		t.Errorf("Selected = %q, want controlled 0:1", got)
	}

	if _, err := c.newExploreRenderer(context.Background(), path, "nope", pipeline.Options{}); err == nil {
		t.Error("unknown chart should fail")
	}
}
