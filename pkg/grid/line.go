package grid

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/cardgrid/pkg/errors"
)

// DefaultFill pads lines when the caller has no preference.
const DefaultFill = " "

// Line is one row of a card: three literal segments and a fill character.
// Lines are immutable once constructed.
type Line struct {
	left, middle, right string
	fill                string
	minWidth            int
}

// NewLine validates fill and returns the line.
func NewLine(left, middle, right, fill string) (Line, error) {
	if err := validateFill(fill); err != nil {
		return Line{}, err
	}
	return Line{
		left:     left,
		middle:   middle,
		right:    right,
		fill:     fill,
		minWidth: runewidth.StringWidth(left) + runewidth.StringWidth(middle) + runewidth.StringWidth(right),
	}, nil
}

// Left returns the left segment.
func (l Line) Left() string { return l.left }

// Middle returns the middle segment.
func (l Line) Middle() string { return l.middle }

// Right returns the right segment.
func (l Line) Right() string { return l.right }

// Fill returns the fill character.
func (l Line) Fill() string { return l.fill }

// MinWidth is the width of the segments with no padding.
func (l Line) MinWidth() int { return l.minWidth }

// Justify renders the line exactly width cells wide.
func (l Line) Justify(width int) (string, error) {
	spaces := width - l.minWidth
	if spaces < 0 {
		return "", errors.New(errors.ErrCodeWidthTooSmall,
			"width %d is smaller than line minimum width %d", width, l.minWidth)
	}
	leftPad := spaces / 2
	rightPad := spaces - leftPad

	var b strings.Builder
	b.Grow(len(l.left) + len(l.middle) + len(l.right) + spaces*len(l.fill))
	b.WriteString(l.left)
	b.WriteString(strings.Repeat(l.fill, leftPad))
	b.WriteString(l.middle)
	b.WriteString(strings.Repeat(l.fill, rightPad))
	b.WriteString(l.right)
	return b.String(), nil
}

// Justify renders left, middle and right in exactly width cells, with
// middle centered and the odd fill cell placed after it.
func Justify(width int, left, middle, right, fill string) (string, error) {
	line, err := NewLine(left, middle, right, fill)
	if err != nil {
		return "", err
	}
	return line.Justify(width)
}

// validateFill requires a single rune occupying a single cell.
func validateFill(fill string) error {
	if utf8.RuneCountInString(fill) != 1 || runewidth.StringWidth(fill) != 1 {
		return errors.New(errors.ErrCodeInvalidFill, "fill must be a single one-cell character, got %q", fill)
	}
	return nil
}
