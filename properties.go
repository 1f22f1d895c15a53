package dualmap

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Properties holds the attributes of a feature.
type Properties map[string]interface{}

// Number returns the attribute as a finite float64. Strings, nulls, NaN and
// infinities count as missing.
func (p Properties) Number(name string) (float64, bool) {
	v, ok := p[name]
	if !ok {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// GetString returns a string attribute.
func (p Properties) GetString(name string) (string, bool) {
	s, ok := p[name].(string)
	return s, ok
}

func (p Properties) clone() Properties {
	r := make(Properties, len(p))
	for k, v := range p {
		r[k] = v
	}
	return r
}

func (p Properties) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := "Properties{"
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %#v", k, p[k])
	}
	return s + "}"
}
