package gitdocs

import (
	"github.com/kailas-cloud/gitdocs/internal/domain/query"
	"github.com/kailas-cloud/gitdocs/internal/domain/value"
)

// Re-exported value model. Number is a JSON-compatible number with exact
// variant classification; Literal is a scalar (null, bool, number,
// string); Term is a literal optionally bound to a document field name.
type (
	Number  = value.Number
	Literal = value.Literal
	Term    = value.Term
	Query   = query.Expr
)

// Null returns the null Literal.
func Null() Literal { return value.Null() }

// Bool creates a boolean Literal.
func Bool(b bool) Literal { return value.Bool(b) }

// Int creates an integer Literal.
func Int(i int64) Literal { return value.Int(i) }

// Uint creates an unsigned integer Literal.
func Uint(u uint64) Literal { return value.Uint(u) }

// Float creates a float Literal; non-finite floats are rejected.
func Float(f float64) (Literal, bool) { return value.Float(f) }

// Str creates a string Literal.
func Str(s string) Literal { return value.Str(s) }

// LiteralFromJSON converts a decoded JSON scalar (nil, bool, string,
// float64, json.Number or a native Go integer) into a Literal. Objects,
// arrays and non-finite floats report false.
func LiteralFromJSON(v any) (Literal, bool) { return value.FromJSON(v) }

// Num creates a numeric Literal.
func Num(n Number) Literal { return value.Num(n) }

// Lit creates a constant query Term.
func Lit(l Literal) Term { return value.Lit(l) }

// Field creates a query Term bound to a document field; the field's value
// is resolved against each document during a find.
func Field(name string, l Literal) Term { return value.Field(name, l) }

// Eq matches when both operands resolve to equal values; values of
// different types are never equal.
func Eq(a, b Term) Query { return query.Eq(a, b) }

// Ne matches when Eq does not.
func Ne(a, b Term) Query { return query.Ne(a, b) }

// Ge matches when a >= b; a type mismatch makes any ordering comparison
// false.
func Ge(a, b Term) Query { return query.Ge(a, b) }

// Gt matches when a > b.
func Gt(a, b Term) Query { return query.Gt(a, b) }

// Le matches when a <= b.
func Le(a, b Term) Query { return query.Le(a, b) }

// Lt matches when a < b.
func Lt(a, b Term) Query { return query.Lt(a, b) }

// And matches when both sub-queries match.
func And(l, r Query) Query { return query.And(l, r) }

// Or matches when either sub-query matches.
func Or(l, r Query) Query { return query.Or(l, r) }

// Not inverts a sub-query.
func Not(q Query) Query { return query.Not(q) }
