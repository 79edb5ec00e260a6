package grid

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/cardgrid/pkg/errors"
)

func TestJustify(t *testing.T) {
	tests := []struct {
		name                string
		width               int
		left, middle, right string
		fill                string
		want                string
	}{
		{"even padding", 7, "A", "B", "C", "*", "A**B**C"},
		{"odd padding goes right", 6, "A", "B", "C", "*", "A*B**C"},
		{"single odd space", 4, "A", "B", "C", "-", "AB-C"},
		{"minimum width", 3, "A", "B", "C", "-", "ABC"},
		{"left only", 2, "AB", "", "", " ", "AB"},
		{"left only padded", 5, "AB", "", "", ".", "AB..."},
		{"right only padded", 5, "", "", "AB", ".", "...AB"},
		{"middle only", 6, "", "mid", "", " ", " mid  "},
		{"all empty", 3, "", "", "", "=", "==="},
		{"zero width all empty", 0, "", "", "", " ", ""},
		{"wide rune counts twice", 6, "日", "", "", "-", "日----"},
		{"punctuation fill", 5, "a", "", "b", "~", "a~~~b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Justify(tt.width, tt.left, tt.middle, tt.right, tt.fill)
			if err != nil {
				t.Fatalf("Justify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Justify() = %q, want %q", got, tt.want)
			}
			if w := runewidth.StringWidth(got); w != tt.width {
				t.Errorf("Justify() width = %d, want %d", w, tt.width)
			}
		})
	}
}

func TestJustifyErrors(t *testing.T) {
	tests := []struct {
		name  string
		width int
		left  string
		fill  string
		code  errors.Code
	}{
		{"undersize", 1, "AB", " ", errors.ErrCodeWidthTooSmall},
		{"negative width", -1, "", " ", errors.ErrCodeWidthTooSmall},
		{"empty fill", 5, "AB", "", errors.ErrCodeInvalidFill},
		{"long fill", 5, "AB", "--", errors.ErrCodeInvalidFill},
		{"wide fill", 5, "AB", "日", errors.ErrCodeInvalidFill},
		{"bad fill wins over undersize", 1, "AB", "", errors.ErrCodeInvalidFill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Justify(tt.width, tt.left, "", "", tt.fill)
			if !errors.Is(err, tt.code) {
				t.Errorf("Justify() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestJustifyShape(t *testing.T) {
	left, middle, right := "[L]", "mid", "[R]"
	for width := 9; width < 40; width++ {
		got, err := Justify(width, left, middle, right, "~")
		if err != nil {
			t.Fatalf("Justify(%d) error = %v", width, err)
		}
		if len(got) != width {
			t.Errorf("len(Justify(%d)) = %d", width, len(got))
		}
		if !strings.HasPrefix(got, left) || !strings.HasSuffix(got, right) {
			t.Errorf("Justify(%d) = %q, want %q...%q", width, got, left, right)
		}
		if strings.Count(got, middle) != 1 {
			t.Errorf("Justify(%d) = %q, want one %q", width, got, middle)
		}
		pad := width - 9
		leftPad := strings.Index(got, middle) - len(left)
		if leftPad != pad/2 {
			t.Errorf("Justify(%d) left pad = %d, want %d", width, leftPad, pad/2)
		}
	}
}

func TestNewLine(t *testing.T) {
	line, err := NewLine("1.", "Uncletopia", "24ms", " ")
	if err != nil {
		t.Fatalf("NewLine() error = %v", err)
	}
	if line.MinWidth() != 16 {
		t.Errorf("MinWidth() = %d, want 16", line.MinWidth())
	}
	if line.Left() != "1." || line.Middle() != "Uncletopia" || line.Right() != "24ms" || line.Fill() != " " {
		t.Errorf("segments = %q %q %q %q", line.Left(), line.Middle(), line.Right(), line.Fill())
	}

	if _, err := NewLine("a", "b", "c", "xy"); !errors.Is(err, errors.ErrCodeInvalidFill) {
		t.Errorf("NewLine() with long fill error = %v, want %v", err, errors.ErrCodeInvalidFill)
	}
}
