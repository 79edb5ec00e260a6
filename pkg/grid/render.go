package grid

import (
	"strings"

	"github.com/matzehuels/cardgrid/pkg/errors"
)

const (
	borderVertical   = "|"
	borderHorizontal = "-"
)

// Render draws the layout. An empty layout renders as "".
func (l *Layout) Render() (string, error) {
	if len(l.elements) == 0 {
		return "", nil
	}
	if l.uniform {
		if err := l.checkHeights(); err != nil {
			return "", err
		}
	}

	separator := strings.Repeat(borderHorizontal, l.Width())

	var b strings.Builder
	b.WriteString(separator)
	b.WriteByte('\n')
	for row := 0; row < l.Rows; row++ {
		cards := l.Row(row)
		height := 0
		for _, i := range cards {
			height = max(height, l.elements[i].Len())
		}
		for lineIndex := 0; lineIndex < height; lineIndex++ {
			b.WriteString(borderVertical)
			for col, i := range cards {
				cell, err := l.cell(&l.elements[i], lineIndex, l.ColumnWidths[col])
				if err != nil {
					return "", err
				}
				b.WriteString(cell)
				b.WriteString(borderVertical)
			}
			b.WriteByte('\n')
		}
		b.WriteString(separator[:l.RowWidth(row)])
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (l *Layout) cell(e *Element, lineIndex, width int) (string, error) {
	if lineIndex >= len(e.lines) {
		return strings.Repeat(e.BlankFill(), width), nil
	}
	return e.lines[lineIndex].Justify(width)
}

func (l *Layout) checkHeights() error {
	want := l.elements[0].Len()
	for i := range l.elements {
		if got := l.elements[i].Len(); got != want {
			return errors.New(errors.ErrCodeHeightMismatch,
				"card %d has %d lines, card 0 has %d", i, got, want)
		}
	}
	return nil
}
