// Package groups holds the static table mapping group keys (TP1A, TP2B, ...)
// to the identifiers the timetable site expects.
package groups

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

var ErrConfigLoad = errors.New("unable to load groups config file")

// Table is read-only once loaded and safe for concurrent use.
type Table struct {
	ids map[string]string
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is not a JSON object", ErrConfigLoad)
	}

	ids := make(map[string]string, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			ids[key] = s
			continue
		}
		// numbers and other scalars are used as their JSON text
		ids[key] = string(value)
	}
	return &Table{ids: ids}, nil
}

// Lookup upper-cases key before searching; keys are stored as written in the file.
func (t *Table) Lookup(key string) (string, bool) {
	id, ok := t.ids[strings.ToUpper(key)]
	return id, ok
}

func (t *Table) Len() int {
	return len(t.ids)
}

func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.ids))
	for k := range t.ids {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
