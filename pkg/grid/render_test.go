package grid

import (
	"strings"
	"testing"

	"github.com/matzehuels/cardgrid/pkg/errors"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		build func(g *Grid)
		opts  Options
		want  []string
	}{
		{
			name: "single card",
			build: func(g *Grid) {
				e := g.NewElement()
				_ = e.AddLine("1.", "", "Badwater", " ")
				_ = e.AddLine("", "", "24ms", " ")
			},
			opts: Options{Width: 80},
			want: []string{
				"------------",
				"|1.Badwater|",
				"|      24ms|",
				"------------",
			},
		},
		{
			name: "columns take widest card",
			build: func(g *Grid) {
				for _, name := range []string{"a", "bbbbb", "cc", "d"} {
					e := g.NewElement()
					_ = e.AddLine("[", name, "]", "-")
				}
			},
			opts: Options{Width: 17},
			want: []string{
				"--------------",
				"|[a-]|[bbbbb]|",
				"--------------",
				"|[cc]|[--d--]|",
				"--------------",
			},
		},
		{
			name: "short cards use blank fill",
			build: func(g *Grid) {
				tall := g.NewElement()
				_ = tall.AddLine("ab", "", "", " ")
				_ = tall.AddLine("cd", "", "", " ")
				short := g.NewElement()
				_ = short.SetBlankFill(".")
				_ = short.AddLine("xyz", "", "", " ")
			},
			opts: Options{Width: 20},
			want: []string{
				"--------",
				"|ab|xyz|",
				"|cd|...|",
				"--------",
			},
		},
		{
			name: "trailing row separator is shorter",
			build: func(g *Grid) {
				for _, s := range []string{"one", "two", "six"} {
					_ = g.NewElement().AddLine(s, "", "", " ")
				}
			},
			opts: Options{Width: 10, Strategy: Fast},
			want: []string{
				"---------",
				"|one|two|",
				"---------",
				"|six|",
				"-----",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.build(g)
			got, err := g.Compile(tt.opts)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if got != want {
				t.Errorf("Compile() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRenderHeightMismatch(t *testing.T) {
	g := New()
	a := g.NewElement()
	_ = a.AddLine("a", "", "", " ")
	_ = a.AddLine("b", "", "", " ")
	_ = g.NewElement().AddLine("c", "", "", " ")

	layout, err := g.Pack(Options{Width: 20, RequireUniformHeight: true})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if _, err := layout.Render(); !errors.Is(err, errors.ErrCodeHeightMismatch) {
		t.Errorf("Render() error = %v, want %v", err, errors.ErrCodeHeightMismatch)
	}

	layout, err = g.Pack(Options{Width: 20})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if _, err := layout.Render(); err != nil {
		t.Errorf("Render() without uniform height error = %v", err)
	}
}

func TestRenderUniformHeight(t *testing.T) {
	g := New()
	for _, s := range []string{"a", "b", "c"} {
		e := g.NewElement()
		_ = e.AddLine(s, "", "", " ")
		_ = e.AddLine("", s, "", " ")
	}
	got, err := g.Compile(Options{Width: 7, RequireUniformHeight: true})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := "-------\n|a|b|c|\n|a|b|c|\n-------\n"
	if got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestRenderEmptyCard(t *testing.T) {
	g := New()
	g.NewElement()
	_ = g.NewElement().AddLine("ab", "", "", " ")

	got, err := g.Compile(Options{Width: 10})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	want := "-----\n||ab|\n-----\n"
	if got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestRenderLinesMatchWidth(t *testing.T) {
	g := New()
	for i := range 7 {
		e := g.NewElement()
		_ = e.AddLine(strings.Repeat("L", i), "m", strings.Repeat("R", 7-i), " ")
		_ = e.AddLine("", strings.Repeat("w", i*2), "", "=")
	}
	layout, err := g.Pack(Options{Width: 50})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	out, err := layout.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	row := 0
	for i, line := range lines {
		if i == 0 {
			continue
		}
		want := layout.RowWidth(row)
		if len(line) != want {
			t.Errorf("line %d %q has width %d, want %d", i, line, len(line), want)
		}
		if strings.HasPrefix(line, "-") {
			row++
		}
		if len(line) > layout.Budget {
			t.Errorf("line %d exceeds budget %d", i, layout.Budget)
		}
	}
}
