package app

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseArgs decodes a JSON array into trigger arguments.
//
// An empty string yields no arguments. Numbers decode as float64, objects
// as map[string]any and arrays as []any.
func ParseArgs(raw string) ([]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrInvalidArgs)
	}

	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidArgs, parsed.Type)
	}

	elems := parsed.Array()
	args := make([]any, 0, len(elems))
	for _, elem := range elems {
		args = append(args, elem.Value())
	}
	return args, nil
}
