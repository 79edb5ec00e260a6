package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/grid"
	"github.com/matzehuels/cardgrid/pkg/observability"
	"github.com/matzehuels/cardgrid/pkg/template"
	"github.com/matzehuels/cardgrid/pkg/termsize"
)

// Runner executes pipeline runs. It holds no per-run state, so one
// Runner can serve any number of runs.
type Runner struct {
	Logger   *log.Logger
	Terminal termsize.Provider
}

// NewRunner creates a runner. A nil logger discards log output. A nil
// terminal skips the TTY query when the width is auto.
func NewRunner(logger *log.Logger, terminal termsize.Provider) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{Logger: logger, Terminal: terminal}
}

// Execute runs build → pack → render for recs.
func (r *Runner) Execute(ctx context.Context, recs []template.Values, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	card, err := CompileCard(opts.Card)
	if err != nil {
		return nil, err
	}

	buildStart := time.Now()
	g, err := r.Build(card, recs, opts.Index)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	buildTime := time.Since(buildStart)
	r.warnUnresolved(card, recs, opts.Index)

	result, err := r.Run(ctx, g, opts.Grid)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = buildTime
	return result, nil
}

// Preview renders the card template as a single card, placeholders
// shown verbatim.
func (r *Runner) Preview(ctx context.Context, lines []config.LineConfig, gc config.GridConfig) (*Result, error) {
	card, err := CompileCard(lines)
	if err != nil {
		return nil, err
	}
	g := grid.New()
	if err := card.Literal(g.NewElement()); err != nil {
		return nil, err
	}
	return r.Run(ctx, g, gc)
}

// Build creates one card per record, in record order.
func (r *Runner) Build(card *Card, recs []template.Values, index bool) (*grid.Grid, error) {
	g := grid.New()
	for i, values := range recs {
		if index {
			values = withIndex(values, i+1)
		}
		if err := card.Fill(g.NewElement(), values); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	r.Logger.Debug("built cards", "cards", g.Len(), "lines", card.Len())
	return g, nil
}

// Run packs and renders an already built grid.
func (r *Runner) Run(ctx context.Context, g *grid.Grid, gc config.GridConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	layout, packTime, err := r.Pack(ctx, g, gc)
	if err != nil {
		return nil, fmt.Errorf("pack: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, renderTime, err := r.Render(ctx, layout)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return &Result{
		Output: out,
		Layout: layout,
		Stats: Stats{
			Elements:   layout.Len(),
			Columns:    layout.Columns,
			Rows:       layout.Rows,
			Width:      layout.Width(),
			Budget:     layout.Budget,
			PackTime:   packTime,
			RenderTime: renderTime,
		},
	}, nil
}

// Pack computes the layout for g.
func (r *Runner) Pack(ctx context.Context, g *grid.Grid, gc config.GridConfig) (*grid.Layout, time.Duration, error) {
	opts, err := gc.Options()
	if err != nil {
		return nil, 0, err
	}
	opts.Terminal = r.Terminal

	hooks := observability.Grid()
	hooks.OnPackStart(ctx, opts.Strategy.Name(), g.Len())
	start := time.Now()
	layout, err := g.Pack(opts)
	elapsed := time.Since(start)

	columns := 0
	if layout != nil {
		columns = layout.Columns
	}
	hooks.OnPackComplete(ctx, opts.Strategy.Name(), columns, elapsed, err)
	if err != nil {
		return nil, elapsed, err
	}

	r.Logger.Debug("packed grid",
		"strategy", layout.Strategy,
		"budget", layout.Budget,
		"columns", layout.Columns,
		"rows", layout.Rows,
		"widths", layout.ColumnWidths,
		"duration", elapsed)
	return layout, elapsed, nil
}

// Render draws layout.
func (r *Runner) Render(ctx context.Context, layout *grid.Layout) (string, time.Duration, error) {
	hooks := observability.Grid()
	hooks.OnRenderStart(ctx, layout.Rows)
	start := time.Now()
	out, err := layout.Render()
	elapsed := time.Since(start)
	hooks.OnRenderComplete(ctx, len(out), elapsed, err)
	if err != nil {
		return "", elapsed, err
	}
	r.Logger.Debug("rendered grid", "bytes", len(out), "duration", elapsed)
	return out, elapsed, nil
}

// warnUnresolved logs card fields that some records do not define. Those
// placeholders are printed verbatim.
func (r *Runner) warnUnresolved(card *Card, recs []template.Values, index bool) {
	for _, field := range card.Fields() {
		if index && field == IndexField {
			continue
		}
		missing := 0
		for _, values := range recs {
			if _, ok := values[field]; !ok {
				missing++
			}
		}
		if missing > 0 {
			r.Logger.Warn("unresolved placeholder", "field", field, "records", missing)
		}
	}
}
