// Package template fills "{field}" placeholders from an explicit map of
// field values.
//
// Templates are compiled once and rendered per record. Placeholders with
// no matching value are left in the output verbatim, braces included, so
// a typo in a card template shows up on screen instead of failing:
//
//	t := template.Compile("{index}. {name}")
//	t.Render(template.Values{"index": "3", "name": "Badwater"}) // "3. Badwater"
//	t.Render(template.Values{"index": "3"})                     // "3. {name}"
//
// Placeholders do not nest and cannot contain "}".
package template

import (
	"regexp"
	"slices"
	"strings"
)

// Values maps field names to display strings.
type Values map[string]string

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}
	return out
}

var placeholder = regexp.MustCompile(`\{([^}]+)\}`)

type part struct {
	text  string
	field bool
}

// Template is a compiled template string.
type Template struct {
	source string
	parts  []part
}

// Compile splits src into literal text and placeholders.
func Compile(src string) *Template {
	t := &Template{source: src}
	last := 0
	for _, m := range placeholder.FindAllStringSubmatchIndex(src, -1) {
		if m[0] > last {
			t.parts = append(t.parts, part{text: src[last:m[0]]})
		}
		t.parts = append(t.parts, part{text: src[m[2]:m[3]], field: true})
		last = m[1]
	}
	if last < len(src) {
		t.parts = append(t.parts, part{text: src[last:]})
	}
	return t
}

// Render substitutes values into the template.
func (t *Template) Render(values Values) string {
	var b strings.Builder
	for _, p := range t.parts {
		if !p.field {
			b.WriteString(p.text)
			continue
		}
		if v, ok := values[p.text]; ok {
			b.WriteString(v)
		} else {
			b.WriteString("{" + p.text + "}")
		}
	}
	return b.String()
}

// String returns the source text.
func (t *Template) String() string { return t.source }

// Fields returns the distinct placeholder names in order of first use.
func (t *Template) Fields() []string {
	var fields []string
	for _, p := range t.parts {
		if p.field && !slices.Contains(fields, p.text) {
			fields = append(fields, p.text)
		}
	}
	return fields
}
