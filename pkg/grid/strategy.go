package grid

import (
	"slices"
	"strings"

	"github.com/matzehuels/cardgrid/pkg/errors"
)

// Strategy decides how many columns a row-major grid gets and how wide
// each column is.
type Strategy interface {
	// Name identifies the strategy in configuration and logs.
	Name() string

	// Fit returns one width per column for cards with the given minimum
	// widths, packed row-major into at most maxColumns columns (no cap
	// when maxColumns <= 0) so that 1 + Σ(width+1) <= budget.
	// widths is never empty.
	Fit(widths []int, budget, maxColumns int) ([]int, error)
}

// Strategy names accepted by [StrategyByName].
const (
	StrategyExact = "exact"
	StrategyFast  = "fast"
)

var (
	// Exact finds the largest column count that fits.
	Exact Strategy = exactStrategy{}

	// Fast sizes every column to the widest card.
	Fast Strategy = fastStrategy{}
)

// StrategyByName resolves a configured strategy name. The empty name
// selects [Exact].
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyExact:
		return Exact, nil
	case StrategyFast:
		return Fast, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStrategy,
			"invalid strategy: %q (must be one of: exact, fast)", name)
	}
}

// columnLimit caps the column count by the override and the card count.
func columnLimit(n, maxColumns int) int {
	if maxColumns > 0 {
		return min(n, maxColumns)
	}
	return n
}

// gridWidth is the rendered width of a row using all columns.
func gridWidth(columns []int) int {
	total := 1
	for _, w := range columns {
		total += w + 1
	}
	return total
}

// =============================================================================
// Fast
// =============================================================================

type fastStrategy struct{}

func (fastStrategy) Name() string { return StrategyFast }

func (fastStrategy) Fit(widths []int, budget, maxColumns int) ([]int, error) {
	widest := slices.Max(widths)
	// One leading border, then each cell plus its trailing border.
	count := (budget - 1) / (widest + 1)
	count = min(count, columnLimit(len(widths), maxColumns))
	if count <= 0 {
		return nil, errors.New(errors.ErrCodeNoFit,
			"widest card needs %d columns, budget is %d", widest+2, budget)
	}
	columns := make([]int, count)
	for i := range columns {
		columns[i] = widest
	}
	return columns, nil
}

// =============================================================================
// Exact
// =============================================================================

type exactStrategy struct{}

func (exactStrategy) Name() string { return StrategyExact }

func (exactStrategy) Fit(widths []int, budget, maxColumns int) ([]int, error) {
	for count := upperBound(widths, budget, maxColumns); count > 0; count-- {
		if columns, ok := assign(widths, count, budget); ok {
			return columns, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNoFit,
		"no column count fits %d cards in %d columns", len(widths), budget)
}

// upperBound counts how many of the narrowest cards fit side by side.
// The first row of any k-column grid holds k distinct cards, so it is at
// least as wide as the k narrowest ones: no larger count can fit.
func upperBound(widths []int, budget, maxColumns int) int {
	limit := columnLimit(len(widths), maxColumns)
	total := 1
	count := 0
	for _, w := range slices.Sorted(slices.Values(widths)) {
		if count == limit || total+w+1 > budget {
			break
		}
		total += w + 1
		count++
	}
	return count
}

// assign places cards row-major into count columns, growing each column
// to its widest card, and reports false as soon as the grid overflows.
func assign(widths []int, count, budget int) ([]int, bool) {
	columns := make([]int, count)
	total := 1 + count
	if total > budget {
		return nil, false
	}
	for i, w := range widths {
		col := i % count
		if w <= columns[col] {
			continue
		}
		total += w - columns[col]
		columns[col] = w
		if total > budget {
			return nil, false
		}
	}
	return columns, true
}
