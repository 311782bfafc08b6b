package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/interact"
	"github.com/matzehuels/chartkit/pkg/chart/legend"
	"github.com/matzehuels/chartkit/pkg/render"
)

// barWidth is the width of the longest bar in the explorer.
const barWidth = 40

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Key Bindings
// =============================================================================

type exploreKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Leave  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newExploreKeyMap() exploreKeyMap {
	return exploreKeyMap{
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev point")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next point")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev series")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next series")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎/space", "select")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Up, k.Down},
		{k.Select, k.Leave},
		{k.Help, k.Quit},
	}
}

// =============================================================================
// ExploreModel - Keyboard-driven chart interaction
// =============================================================================

// ExploreModel is the bubbletea model of the explore command. The arrow keys
// move a focus cursor over the chart's elements and report it to the
// renderer as a hover; enter and space are forwarded as key presses, so they
// select exactly when the chart is selectable.
type ExploreModel struct {
	renderer *render.Renderer
	cursor   interact.Ref
	keys     exploreKeyMap
	help     help.Model
	status   string
}

// NewExploreModel creates an explorer for the chart of r and hovers its
// first element.
func NewExploreModel(r *render.Renderer) *ExploreModel {
	m := &ExploreModel{
		renderer: r,
		keys:     newExploreKeyMap(),
		help:     help.New(),
	}
	m.hover()
	return m
}

// Init implements tea.Model.
func (m *ExploreModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Prev):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Next):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Up):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Leave):
			m.renderer.HoverLeave()
		case key.Matches(msg, m.keys.Select):
			if !m.renderer.KeyDown(m.cursor, msg.String()) {
				m.status = "chart is not selectable"
			}
		}
	}
	return m, nil
}

// Cursor returns the focused element.
func (m *ExploreModel) Cursor() interact.Ref { return m.cursor }

// Status returns the last status message, if any.
func (m *ExploreModel) Status() string { return m.status }

// move shifts the cursor by ds series and dp points, clamped to the data.
func (m *ExploreModel) move(ds, dp int) {
	data := m.series()
	if len(data) == 0 {
		return
	}
	s := clamp(m.cursor.Series+ds, 0, len(data)-1)
	p := clamp(m.cursor.Point+dp, 0, len(data[s].Points)-1)
	m.cursor = interact.Ref{Series: s, Point: p}
	m.hover()
}

func (m *ExploreModel) hover() {
	if len(m.series()) > 0 {
		m.renderer.HoverEnter(m.cursor)
	}
}

// series returns the navigable series. Pie and donut charts only have one.
func (m *ExploreModel) series() []chart.Series {
	data := m.renderer.Data()
	if isPie(m.renderer.Chart().Type) && len(data) > 1 {
		return data[:1]
	}
	return data
}

// View implements tea.Model.
func (m *ExploreModel) View() string {
	c := m.renderer.Chart()
	scene := m.renderer.Scene()
	var b strings.Builder

	title := c.Name
	if c.Title != "" {
		title = c.Title
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s chart", c.Type)))
	b.WriteString("\n\n")

	data := m.series()
	if len(data) > 0 {
		series := data[m.cursor.Series]
		if len(data) > 1 {
			b.WriteString(StyleHighlight.Render(series.Name))
			b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor.Series+1, len(data))))
			b.WriteString("\n")
		}
		b.WriteString(m.bars(series))
	}

	b.WriteString("\n")
	b.WriteString(legendLine(scene.Legend))
	b.WriteString("\n")
	tooltip := scene.Tooltip
	if tooltip == "" {
		tooltip = "—"
	}
	b.WriteString(StyleValue.Render(tooltip))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("hovered %s · selected %s", orNone(scene.State.Hovered), orNone(scene.State.Selected))))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// bars draws one horizontal bar per point, dimmed like the chart's marks.
func (m *ExploreModel) bars(series chart.Series) string {
	maxAbs := 0.0
	labelWidth := 0
	for i, p := range series.Points {
		if !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y) {
			maxAbs = math.Max(maxAbs, math.Abs(p.Y))
		}
		labelWidth = max(labelWidth, len(p.Name(i)))
	}

	var b strings.Builder
	for i, p := range series.Points {
		ref := interact.Ref{Series: m.cursor.Series, Point: i}
		n := 0
		if maxAbs > 0 && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) {
			n = int(math.Round(math.Abs(p.Y) / maxAbs * barWidth))
		}

		cursor := "  "
		labelStyle := listNormalStyle
		if ref == m.cursor {
			cursor = "▸ "
			labelStyle = listSelectedStyle
		}
		barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.color(series, p, i)))
		if opacity, ok := m.renderer.Opacity(ref); ok && opacity < 1 {
			barStyle = listDimStyle
		}

		fmt.Fprintf(&b, "%s%s %s %s\n",
			cursor,
			labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, p.Name(i))),
			barStyle.Render(strings.Repeat("█", n)),
			StyleNumber.Render(chart.FormatNumber(p.Y)))
	}
	return b.String()
}

func (m *ExploreModel) color(series chart.Series, p chart.Point, i int) string {
	if p.Color != "" {
		return p.Color
	}
	palette := m.renderer.Chart().ColorPalette()
	if isPie(m.renderer.Chart().Type) {
		return palette.Color(i)
	}
	if series.Color != "" {
		return series.Color
	}
	return palette.Color(m.cursor.Series)
}

func isPie(k chart.Kind) bool {
	return k == chart.KindPie || k == chart.KindDonut
}

func legendLine(items []legend.Item) string {
	parts := make([]string, len(items))
	for i, item := range items {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("■")
		label := listNormalStyle.Render(item.Label)
		if item.Active {
			label = listSelectedStyle.Render(item.Label)
		}
		parts[i] = swatch + " " + label
	}
	return strings.Join(parts, "   ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
