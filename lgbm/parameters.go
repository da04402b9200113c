package lgbm

import (
	"fmt"
	"strings"
)

// Parameters is an ordered set of key=value pairs flattened into the
// space-joined string the C API parses (e.g. "objective=binary num_leaves=31").
// Setting an existing key overwrites its value in place.
type Parameters struct {
	keys   []string
	values map[string]string
}

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{values: make(map[string]string)}
}

// Set records key=value, formatting value with fmt.Sprint. It returns the
// receiver for chaining.
func (p *Parameters) Set(key string, value any) *Parameters {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = fmt.Sprint(value)
	return p
}

// Len returns the number of distinct keys.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// String flattens the parameters in insertion order. A nil receiver yields
// the empty string, which the native layer treats as "all defaults".
func (p *Parameters) String() string {
	if p == nil || len(p.keys) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p.values[k])
	}
	return sb.String()
}
