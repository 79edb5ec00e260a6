package pipeline

import (
	"slices"
	"strconv"

	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
	"github.com/matzehuels/cardgrid/pkg/template"
)

// Card is a compiled card template.
type Card struct {
	lines []cardLine
}

type cardLine struct {
	left, middle, right *template.Template
	fill                string
}

// CompileCard compiles each line's segments. Fills are validated here so
// a bad template fails before any record is read.
func CompileCard(lines []config.LineConfig) (*Card, error) {
	c := &Card{lines: make([]cardLine, len(lines))}
	for i, l := range lines {
		fill := l.Fill
		if fill == "" {
			fill = grid.DefaultFill
		}
		if _, err := grid.NewLine("", "", "", fill); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "card line %d", i)
		}
		c.lines[i] = cardLine{
			left:   template.Compile(l.Left),
			middle: template.Compile(l.Middle),
			right:  template.Compile(l.Right),
			fill:   fill,
		}
	}
	return c, nil
}

// Len returns the number of lines per card.
func (c *Card) Len() int { return len(c.lines) }

// Fields returns the placeholder names used anywhere in the card.
func (c *Card) Fields() []string {
	var fields []string
	for _, l := range c.lines {
		for _, t := range []*template.Template{l.left, l.middle, l.right} {
			for _, f := range t.Fields() {
				if !slices.Contains(fields, f) {
					fields = append(fields, f)
				}
			}
		}
	}
	return fields
}

// Fill appends one line per template line to e, rendered against values.
func (c *Card) Fill(e *grid.Element, values template.Values) error {
	for _, l := range c.lines {
		if err := e.AddLine(l.left.Render(values), l.middle.Render(values), l.right.Render(values), l.fill); err != nil {
			return err
		}
	}
	return nil
}

// Literal appends the template source text itself, placeholders
// included. It shows what a card template looks like before any record
// is applied.
func (c *Card) Literal(e *grid.Element) error {
	for _, l := range c.lines {
		if err := e.AddLine(l.left.String(), l.middle.String(), l.right.String(), l.fill); err != nil {
			return err
		}
	}
	return nil
}

// withIndex returns values with IndexField set to the 1-based position,
// unless the record already has one.
func withIndex(values template.Values, position int) template.Values {
	if _, ok := values[IndexField]; ok {
		return values
	}
	out := values.Clone()
	out[IndexField] = strconv.Itoa(position)
	return out
}
