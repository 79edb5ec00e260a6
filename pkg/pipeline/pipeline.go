// Package pipeline turns display records into a rendered card grid.
//
// The pipeline has three stages:
//
//  1. Build: fill one card per record from the compiled card templates
//  2. Pack: choose the column count and widths for the width budget
//  3. Render: draw the bordered grid
//
// # Usage
//
//	runner := pipeline.NewRunner(logger, termsize.ForFile(os.Stdout))
//	opts := pipeline.Options{
//	    Grid:  cfg.Grid,
//	    Card:  cfg.Card.Lines,
//	    Index: true,
//	}
//	result, err := runner.Execute(ctx, recs, opts)
//	if err != nil {
//	    return err
//	}
//	fmt.Print(result.Output)
package pipeline

import (
	"time"

	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
)

// IndexField is the field holding a record's 1-based position.
const IndexField = "index"

// Options contains all configuration for one pipeline run.
type Options struct {
	// Grid holds the packing options.
	Grid config.GridConfig

	// Card is the display template, one entry per card line.
	Card []config.LineConfig

	// Index adds IndexField to records that do not define it.
	Index bool
}

// Validate checks the packing options and card templates.
func (o Options) Validate() error {
	if err := o.Grid.Validate(); err != nil {
		return err
	}
	if len(o.Card) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "card template has no lines")
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Output is the rendered grid.
	Output string

	// Layout is the packing decision behind Output.
	Layout *grid.Layout

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Elements   int
	Columns    int
	Rows       int
	Width      int
	Budget     int
	BuildTime  time.Duration
	PackTime   time.Duration
	RenderTime time.Duration
}
