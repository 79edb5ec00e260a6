// Package grid packs multi-line text cards into a bordered ASCII grid.
//
// # Overview
//
// A card is an [Element]: an ordered stack of [Line] values, each made of
// a left, middle and right segment plus a single fill character. Cards
// are added to a [Grid] in display order, packed into as many columns as
// fit a character budget, and rendered row-major with "|" borders and "-"
// separator rows:
//
//	g := grid.New()
//	card := g.NewElement()
//	_ = card.AddLine("1.", "", "Uncletopia", " ")
//	_ = card.AddLine("", "", "24ms", " ")
//
//	layout, err := g.Pack(grid.Options{Width: 80, Strategy: grid.Exact})
//	if err != nil {
//	    return err
//	}
//	out, err := layout.Render()
//
// # Justification
//
// [Justify] centers the middle segment between the left and right
// segments. When the padding is odd the extra fill cell goes after the
// middle segment:
//
//	grid.Justify(7, "A", "B", "C", "*") // "A**B**C"
//
// Widths are measured in terminal cells, so wide runes count twice.
//
// # Strategies
//
//   - [Exact]: the largest column count whose row-major assignment fits the
//     budget, with each column as wide as its widest card
//   - [Fast]: every column as wide as the widest card; never overflows but
//     may use fewer columns than [Exact]
//
// Packing returns an immutable [Layout]. Adding cards to a [Grid] after
// packing does not affect layouts that were already produced.
//
// # Errors
//
// All failures are *errors.Error values from pkg/errors with one of the
// codes INVALID_FILL, WIDTH_TOO_SMALL, NO_FIT or HEIGHT_MISMATCH. The
// package does no logging and never truncates content to force a fit.
package grid
