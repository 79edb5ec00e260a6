// Package records reads display records from JSON or TOML files.
//
// A record is a flat table of scalar fields. JSON files hold an array of
// objects; TOML files hold [[record]] tables:
//
//	[[record]]
//	name = "Uncletopia | Chicago"
//	ping = 24
//
// Every field is turned into its display string up front, so the rest of
// the program only ever sees template.Values.
package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/template"
)

// Format is a record file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported record file %q (must end in .json or .toml)", filepath.Base(path))
	}
}

// Load reads the record file at path.
func Load(path string) ([]template.Values, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "record file %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode parses records in the given format.
func Decode(r io.Reader, format Format) ([]template.Values, error) {
	var raw []map[string]any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON records")
		}
	case FormatTOML:
		var doc struct {
			Records []map[string]any `toml:"record"`
		}
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode TOML records")
		}
		raw = doc.Records
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported record format %q", format)
	}
	return Normalize(raw)
}

// Normalize converts decoded records to display strings.
func Normalize(raw []map[string]any) ([]template.Values, error) {
	out := make([]template.Values, len(raw))
	for i, rec := range raw {
		values := make(template.Values, len(rec))
		for k, v := range rec {
			if err := errors.ValidateFieldName(k); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "record %d", i)
			}
			s, err := stringify(v)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "record %d field %q", i, k)
			}
			values[k] = s
		}
		out[i] = values
	}
	return out, nil
}

func stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T (fields must be scalars)", v)
	}
}
