package grid

import (
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/termsize"
)

// AutoWidth asks the terminal for the width budget.
const AutoWidth = 0

// Options configures packing.
type Options struct {
	// Width is the character budget for a full grid row. AutoWidth
	// queries Terminal, then $COLUMNS, then FallbackWidth.
	Width int

	// FallbackWidth is used when Width is AutoWidth and the terminal
	// size is unknown. Zero means termsize.DefaultFallback.
	FallbackWidth int

	// Terminal reports the terminal size for AutoWidth. Nil skips the
	// terminal query.
	Terminal termsize.Provider

	// MaxColumns caps the column count. Zero means no cap.
	MaxColumns int

	// Strategy picks the column count. Nil means Exact.
	Strategy Strategy

	// RequireUniformHeight makes Render fail when cards differ in line
	// count. Otherwise short cards are padded with their blank fill.
	RequireUniformHeight bool
}

// Budget resolves the width budget.
func (o Options) Budget() int {
	if o.Width != AutoWidth {
		return o.Width
	}
	return termsize.Width(o.Terminal, o.FallbackWidth)
}

func (o Options) strategy() Strategy {
	if o.Strategy == nil {
		return Exact
	}
	return o.Strategy
}

// Grid collects cards in display order.
type Grid struct {
	elements []*Element
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{}
}

// NewElement appends an empty card and returns it for filling.
func (g *Grid) NewElement() *Element {
	e := NewElement()
	g.elements = append(g.elements, e)
	return e
}

// Len returns the number of cards.
func (g *Grid) Len() int { return len(g.elements) }

// Pack computes the layout for the cards added so far.
func (g *Grid) Pack(opts Options) (*Layout, error) {
	return Pack(g.elements, opts)
}

// Compile packs and renders in one step.
func (g *Grid) Compile(opts Options) (string, error) {
	layout, err := g.Pack(opts)
	if err != nil {
		return "", err
	}
	return layout.Render()
}

// Cell is a card's grid position.
type Cell struct {
	Row, Column int
}

// Layout is the result of packing. It holds a snapshot of the cards, so
// later changes to them do not leak into it.
type Layout struct {
	Strategy     string
	Budget       int
	Columns      int
	Rows         int
	ColumnWidths []int
	Assignment   []Cell // indexed like the packed cards

	elements []Element
	uniform  bool
}

// Pack places elements row-major into the columns chosen by
// opts.Strategy. Zero elements give an empty layout.
func Pack(elements []*Element, opts Options) (*Layout, error) {
	if opts.Width < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "width budget cannot be negative: %d", opts.Width)
	}
	if opts.MaxColumns < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "max columns cannot be negative: %d", opts.MaxColumns)
	}

	strategy := opts.strategy()
	layout := &Layout{
		Strategy: strategy.Name(),
		uniform:  opts.RequireUniformHeight,
	}
	if len(elements) == 0 {
		return layout, nil
	}

	layout.Budget = opts.Budget()
	layout.elements = make([]Element, len(elements))
	widths := make([]int, len(elements))
	for i, e := range elements {
		layout.elements[i] = e.snapshot()
		widths[i] = e.MinWidth()
	}

	columns, err := strategy.Fit(widths, layout.Budget, opts.MaxColumns)
	if err != nil {
		return nil, err
	}

	layout.Columns = len(columns)
	layout.ColumnWidths = columns
	layout.Rows = (len(elements) + layout.Columns - 1) / layout.Columns
	layout.Assignment = make([]Cell, len(elements))
	for i := range elements {
		layout.Assignment[i] = Cell{Row: i / layout.Columns, Column: i % layout.Columns}
	}
	return layout, nil
}

// Len returns the number of packed cards.
func (l *Layout) Len() int { return len(l.elements) }

// Width is the rendered width of a full row, borders included.
func (l *Layout) Width() int {
	if l.Columns == 0 {
		return 0
	}
	return gridWidth(l.ColumnWidths)
}

// Row returns the card indexes in the given row, left to right.
func (l *Layout) Row(row int) []int {
	if row < 0 || row >= l.Rows {
		return nil
	}
	start := row * l.Columns
	end := min(start+l.Columns, len(l.elements))
	indexes := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indexes = append(indexes, i)
	}
	return indexes
}

// RowWidth is the rendered width of the given row, which is shorter than
// Width for a partially filled last row.
func (l *Layout) RowWidth(row int) int {
	cells := len(l.Row(row))
	if cells == 0 {
		return 0
	}
	return gridWidth(l.ColumnWidths[:cells])
}
