// Package jsonpath applies dotted-path updates to decoded JSON documents.
// A path like "a.b.c" addresses one object level per segment; dotted-path
// addressing is for object trees only and never creates arrays.
package jsonpath

import "strings"

// Set walks the document's root object along the dotted path and sets the
// final key to val. Missing intermediate keys are created as empty objects;
// an intermediate that is not an object is replaced by an empty object. A
// non-object root is a no-op. The document is modified in place and
// returned.
func Set(doc any, path string, val any) any {
	cur, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[seg] = next
		}
		cur = next
	}
	cur[segments[len(segments)-1]] = val
	return doc
}

// Delete removes the leaf at the dotted path. Every intermediate segment
// must exist and be an object and the final key must exist; any violation
// leaves the document unchanged. A missing nested key is an expected
// condition, not a fault, so there is no error path. The document is
// modified in place and returned.
func Delete(doc any, path string) any {
	cur, ok := doc.(map[string]any)
	if !ok {
		return doc
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return doc
		}
		cur = next
	}
	delete(cur, segments[len(segments)-1])
	return doc
}
