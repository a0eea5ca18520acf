package query

import (
	"strings"

	"github.com/kailas-cloud/gitdocs/internal/domain/value"
)

// DocResolver returns a Resolver over a decoded JSON document. Field names
// are dotted paths through nested objects, one object level per segment.
// Resolution fails when the document root is not an object, a segment is
// missing or not an object, or the addressed value is not a scalar; arrays
// are not addressable.
func DocResolver(doc any) Resolver {
	return func(field string) (value.Literal, bool) {
		cur, ok := doc.(map[string]any)
		if !ok {
			return value.Literal{}, false
		}
		segments := strings.Split(field, ".")
		for _, seg := range segments[:len(segments)-1] {
			next, ok := cur[seg].(map[string]any)
			if !ok {
				return value.Literal{}, false
			}
			cur = next
		}
		v, ok := cur[segments[len(segments)-1]]
		if !ok {
			return value.Literal{}, false
		}
		return value.FromJSON(v)
	}
}
