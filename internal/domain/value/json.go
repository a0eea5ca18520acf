package value

import (
	"encoding/json"
	"strconv"
)

// FromJSON converts a decoded JSON scalar into a Literal. It accepts the
// types encoding/json produces (nil, bool, string, float64, json.Number)
// plus native Go integers for convenience. Objects, arrays and non-finite
// floats report false.
func FromJSON(v any) (Literal, bool) {
	switch t := v.(type) {
	case nil:
		return Null(), true
	case bool:
		return Bool(t), true
	case string:
		return Str(t), true
	case json.Number:
		n, ok := fromJSONNumber(t)
		if !ok {
			return Literal{}, false
		}
		return Num(n), true
	case float64:
		return Float(t)
	case float32:
		return Float(float64(t))
	case int:
		return Int(int64(t)), true
	case int64:
		return Int(t), true
	case uint64:
		return Uint(t), true
	default:
		return Literal{}, false
	}
}

// fromJSONNumber classifies a json.Number exactly: non-negative integers
// become the unsigned variant, negative integers the signed one, and
// everything else falls back to float parsing.
func fromJSONNumber(n json.Number) (Number, bool) {
	s := n.String()
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromUint64(u), true
	}
	if i, err := n.Int64(); err == nil {
		return FromInt64(i), true
	}
	f, err := n.Float64()
	if err != nil {
		return Number{}, false
	}
	return FromFloat64(f)
}
