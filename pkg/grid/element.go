package grid

import "slices"

// Element is one card: lines stacked top to bottom in insertion order.
// The zero value is an empty card.
type Element struct {
	lines    []Line
	minWidth int
	blank    string
}

// NewElement returns an empty card that is not attached to any grid.
// Most callers use [Grid.NewElement] instead.
func NewElement() *Element {
	return &Element{blank: DefaultFill}
}

// AddLine appends a line built from the given segments.
func (e *Element) AddLine(left, middle, right, fill string) error {
	line, err := NewLine(left, middle, right, fill)
	if err != nil {
		return err
	}
	e.Append(line)
	return nil
}

// Append adds an already validated line.
func (e *Element) Append(line Line) {
	e.lines = append(e.lines, line)
	e.minWidth = max(e.minWidth, line.minWidth)
}

// SetBlankFill sets the character used for rows this card does not have
// when it shares a grid row with taller cards.
func (e *Element) SetBlankFill(fill string) error {
	if err := validateFill(fill); err != nil {
		return err
	}
	e.blank = fill
	return nil
}

// BlankFill returns the fill used for missing rows.
func (e *Element) BlankFill() string {
	if e.blank == "" {
		return DefaultFill
	}
	return e.blank
}

// MinWidth is the widest line's minimum width, or 0 for an empty card.
func (e *Element) MinWidth() int { return e.minWidth }

// Len returns the number of lines.
func (e *Element) Len() int { return len(e.lines) }

// Lines returns a copy of the card's lines.
func (e *Element) Lines() []Line { return slices.Clone(e.lines) }

func (e *Element) snapshot() Element {
	return Element{
		lines:    slices.Clone(e.lines),
		minWidth: e.minWidth,
		blank:    e.BlankFill(),
	}
}
