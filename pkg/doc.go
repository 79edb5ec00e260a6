// Package pkg provides the core libraries for cardgrid terminal card grids.
//
// # Overview
//
// Cardgrid renders records as small multi-line text cards and packs them
// into as many bordered columns as fit a width budget, usually the width of
// the terminal. The pkg directory is organized into three areas:
//
//  1. [grid] - Layout engine (line justification, cards, packing, rendering)
//  2. [pipeline] - Orchestration (records → cards → layout → text)
//  3. Support - [config], [records], [template], [termsize], [errors],
//     [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow through cardgrid:
//
//	records file (JSON/TOML)
//	         ↓
//	    [records] package (decode into string fields)
//	         ↓
//	    [template] + [pipeline] packages (fill the card template)
//	         ↓
//	    [grid] package (pack into columns + render)
//	         ↓
//	    bordered text grid
//
// # Quick Start
//
// Pack two cards into a 40-column grid:
//
//	import "github.com/matzehuels/cardgrid/pkg/grid"
//
//	g := grid.New()
//	a := g.NewElement()
//	a.AddLine("web-01", "", "12ms", " ")
//	b := g.NewElement()
//	b.AddLine("db-01", "", "3ms", " ")
//
//	out, err := g.Compile(grid.Options{Width: 40})
//
// Or run the full pipeline over decoded records:
//
//	recs, _ := records.Load("servers.json")
//	cfg := config.Default()
//	runner := pipeline.NewRunner(logger, termsize.ForFile(os.Stdout))
//	result, err := runner.Execute(ctx, recs, pipeline.Options{
//	    Grid:  cfg.Grid,
//	    Card:  cfg.Card.Lines,
//	    Index: true,
//	})
//
// # Error Handling
//
// Every package reports failures as [errors.Error] values carrying a
// machine-readable code, so callers can branch with [errors.Is].
package pkg
