package records

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/template"
)

func TestDecodeJSON(t *testing.T) {
	src := `[
		{"name": "Uncletopia | Chicago", "ping": 24, "players": 18, "ratio": 0.75, "vac": true, "note": null},
		{"name": "Badwater", "ping": 103.5}
	]`
	got, err := Decode(strings.NewReader(src), FormatJSON)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []template.Values{
		{"name": "Uncletopia | Chicago", "ping": "24", "players": "18", "ratio": "0.75", "vac": "true", "note": ""},
		{"name": "Badwater", "ping": "103.5"},
	}
	assertRecords(t, got, want)
}

func TestDecodeTOML(t *testing.T) {
	src := `
[[record]]
name = "Uncletopia | Chicago"
ping = 24
ratio = 0.5
vac = false
seen = 2025-01-02T03:04:05Z

[[record]]
name = "Badwater"
`
	got, err := Decode(strings.NewReader(src), FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := []template.Values{
		{"name": "Uncletopia | Chicago", "ping": "24", "ratio": "0.5", "vac": "false", "seen": "2025-01-02T03:04:05Z"},
		{"name": "Badwater"},
	}
	assertRecords(t, got, want)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format Format
		code   errors.Code
	}{
		{"json syntax", `[{"name": }]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"json not array", `{"name": "x"}`, FormatJSON, errors.ErrCodeInvalidInput},
		{"json nested", `[{"tags": ["a"]}]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"json brace key", `[{"na}me": "x"}]`, FormatJSON, errors.ErrCodeInvalidInput},
		{"toml syntax", `[[record]`, FormatTOML, errors.ErrCodeInvalidInput},
		{"toml nested", "[[record]]\n[record.sub]\na = 1", FormatTOML, errors.ErrCodeInvalidInput},
		{"unknown format", `[]`, Format("yaml"), errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"servers.json", FormatJSON, false},
		{"data/SERVERS.JSON", FormatJSON, false},
		{"servers.toml", FormatTOML, false},
		{"servers.yaml", "", true},
		{"servers", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servers.json")
	if err := os.WriteFile(path, []byte(`[{"name": "a"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	assertRecords(t, got, []template.Values{{"name": "a"}})

	if _, err := Load(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(\"\") error = %v, want %v", err, errors.ErrCodeInvalidPath)
	}
}

func assertRecords(t *testing.T, got, want []template.Values) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Errorf("record %d = %v, want %v", i, got[i], want[i])
			continue
		}
		for k, v := range want[i] {
			if got[i][k] != v {
				t.Errorf("record %d field %q = %q, want %q", i, k, got[i][k], v)
			}
		}
	}
}
