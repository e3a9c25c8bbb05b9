package resource

import (
	"maps"
	"math"
	"time"
)

// HrefPropName is the well-known property holding a resource's identifying reference.
const HrefPropName = "href"

// Properties is the property map of a resource fetched from the identity service.
// Getters never fail: an absent property, a nil value or a value of another type
// reads as the zero value.
type Properties map[string]any

// Href returns the resource reference. The boolean is false when the property is
// absent or nil. A present value that is not a string is reported as present with
// an empty reference.
func (p Properties) Href() (string, bool) {
	v, ok := p[HrefPropName]
	if !ok || v == nil {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

func (p Properties) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// Int64 reads integer properties. JSON decoding yields float64 so both are accepted.
func (p Properties) Int64(name string) int64 {
	n, _ := p.Number(name)
	return n
}

// Number reads an integer property. The boolean is false when the property is absent,
// not numeric, or a float outside the int64 range.
func (p Properties) Number(name string) (int64, bool) {
	switch v := p[name].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		// -2^63 is exact as a float64; 2^63 is the first value past MaxInt64.
		if math.IsNaN(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// Time reads timestamp properties, either time.Time values or RFC 3339 strings.
func (p Properties) Time(name string) time.Time {
	switch v := p[name].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	return time.Time{}
}

func (p Properties) Map(name string) map[string]any {
	m, _ := p[name].(map[string]any)
	return m
}

// Reference reads a nested resource reference of the form {"href": "..."}.
func (p Properties) Reference(name string) (string, bool) {
	ref := p.Map(name)
	if ref == nil {
		return "", false
	}
	return Properties(ref).Href()
}

// Copy returns a copy of a property value with nested maps and slices copied too.
func Copy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return map[string]any(Properties(t).DeepClone())
	case Properties:
		return t.DeepClone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Copy(e)
		}
		return out
	}
	return v
}

// DeepClone returns a copy of the map that shares no nested maps or slices with it.
func (p Properties) DeepClone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = Copy(v)
	}
	return out
}

// Clone returns a shallow copy of the map.
func (p Properties) Clone() Properties {
	if p == nil {
		return Properties{}
	}
	return maps.Clone(p)
}
