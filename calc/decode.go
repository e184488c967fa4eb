package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeRequests reads a list of requests encoded as f.
// Unknown fields are rejected so typos in argument names do not silently
// evaluate with zero values.
func DecodeRequests(r io.Reader, f Format) ([]Request, error) {
	var reqs []Request
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&reqs); err != nil && err != io.EOF {
			return nil, fmt.Errorf("calc: decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("calc: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrFormat)
	}

	return reqs, nil
}

// FormatFromPath guesses a Format from a file extension; anything that is
// not .json is treated as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}
