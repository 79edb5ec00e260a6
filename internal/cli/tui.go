package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
	"github.com/matzehuels/cardgrid/pkg/pipeline"
)

// Preview styles
var (
	previewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// chromeHeight is the number of screen lines used by header and footer.
const chromeHeight = 4

// =============================================================================
// GridModel - Interactive grid preview
// =============================================================================

// GridModel is the bubbletea model for the live grid preview. The cards are
// built once; every resize repacks them for the new width.
type GridModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	grid   *grid.Grid
	config config.GridConfig

	Lines  []string
	Result *pipeline.Result
	Err    error
	Height int
	Offset int
}

// NewGridModel creates a preview model for g. The first layout is computed
// immediately using the configured width.
func NewGridModel(ctx context.Context, runner *pipeline.Runner, g *grid.Grid, gc config.GridConfig) GridModel {
	m := GridModel{
		ctx:    ctx,
		runner: runner,
		grid:   g,
		config: gc,
		Height: 20,
	}
	m.repack()
	return m
}

func (m GridModel) Init() tea.Cmd {
	return nil
}

func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.scroll(-1)
		case "down", "j":
			m.scroll(1)
		case "pgup":
			m.scroll(-m.Height)
		case "pgdown", " ":
			m.scroll(m.Height)
		case "s":
			if m.config.Strategy == grid.StrategyFast {
				m.config.Strategy = grid.StrategyExact
			} else {
				m.config.Strategy = grid.StrategyFast
			}
			m.repack()
		}
	case tea.WindowSizeMsg:
		m.config.Width = msg.Width
		m.Height = max(msg.Height-chromeHeight, 1)
		m.repack()
	}
	return m, nil
}

// repack recomputes the layout for the current config and clamps the
// scroll offset to the new line count.
func (m *GridModel) repack() {
	m.Result, m.Err = m.runner.Run(m.ctx, m.grid, m.config)
	m.Lines = nil
	if m.Err == nil {
		m.Lines = strings.Split(strings.TrimSuffix(m.Result.Output, "\n"), "\n")
	}
	m.scroll(0)
}

func (m *GridModel) scroll(delta int) {
	limit := max(len(m.Lines)-m.Height, 0)
	m.Offset = min(max(m.Offset+delta, 0), limit)
}

func (m GridModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Card Grid"))
	b.WriteString("  ")
	b.WriteString(previewDimStyle.Render("↑/↓ scroll  s strategy  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(previewErrorStyle.Render(iconError + " " + errors.UserMessage(m.Err)))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Lines))
	for _, line := range m.Lines[m.Offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	s := m.Result.Stats
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("  %s · %d cards · %d columns · %d/%d wide · lines %d-%d of %d",
		m.Result.Layout.Strategy, s.Elements, s.Columns, s.Width, s.Budget, m.Offset+1, end, len(m.Lines))))

	return b.String()
}
