// Package query provides a boolean expression tree for filtering JSON
// documents by field values.
package query

import (
	"fmt"

	"github.com/kailas-cloud/gitdocs/internal/domain/value"
)

// Op identifies an expression node type.
type Op uint8

const (
	OpEq Op = iota
	OpNe
	OpGe
	OpGt
	OpLe
	OpLt
	OpAnd
	OpOr
	OpNot
)

// String returns the operator name.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "Eq"
	case OpNe:
		return "Ne"
	case OpGe:
		return "Ge"
	case OpGt:
		return "Gt"
	case OpLe:
		return "Le"
	case OpLt:
		return "Lt"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpNot:
		return "Not"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Expr is an immutable boolean query: comparison leaves over two Terms
// combined with And/Or/Not. The zero value compares Null to Null and
// evaluates to true. Evaluation is a pure function of the tree.
type Expr struct {
	op          Op
	lhs, rhs    value.Term
	left, right *Expr
}

// Eq matches when both operands resolve to equal values. Values of
// different types are never equal.
func Eq(a, b value.Term) Expr { return Expr{op: OpEq, lhs: a, rhs: b} }

// Ne matches when Eq does not.
func Ne(a, b value.Term) Expr { return Expr{op: OpNe, lhs: a, rhs: b} }

// Ge matches when a >= b within the same comparable variant; a type
// mismatch makes the comparison false, as with all ordering operators.
func Ge(a, b value.Term) Expr { return Expr{op: OpGe, lhs: a, rhs: b} }

// Gt matches when a > b within the same comparable variant.
func Gt(a, b value.Term) Expr { return Expr{op: OpGt, lhs: a, rhs: b} }

// Le matches when a <= b within the same comparable variant.
func Le(a, b value.Term) Expr { return Expr{op: OpLe, lhs: a, rhs: b} }

// Lt matches when a < b within the same comparable variant.
func Lt(a, b value.Term) Expr { return Expr{op: OpLt, lhs: a, rhs: b} }

// And matches when both sub-expressions match.
func And(l, r Expr) Expr { return Expr{op: OpAnd, left: &l, right: &r} }

// Or matches when either sub-expression matches.
func Or(l, r Expr) Expr { return Expr{op: OpOr, left: &l, right: &r} }

// Not inverts a sub-expression.
func Not(e Expr) Expr { return Expr{op: OpNot, left: &e} }

// Op returns the node's operator.
func (e Expr) Op() Op { return e.op }

// Resolver looks up a document field by name and converts it to a Literal.
// A field that is missing or not a scalar reports ok=false.
type Resolver func(field string) (value.Literal, bool)

// Evaluate computes the expression over its embedded terms only; field
// names are ignored and each Term stands for its wrapped Literal.
func (e Expr) Evaluate() bool {
	return e.EvaluateWith(nil)
}

// EvaluateWith computes the expression, resolving field-bound terms through
// the given Resolver. A term whose field cannot be resolved fails its leaf
// comparison: the leaf is false for every operator, so a document without
// the field never matches.
func (e Expr) EvaluateWith(resolve Resolver) bool {
	switch e.op {
	case OpAnd:
		return e.left.EvaluateWith(resolve) && e.right.EvaluateWith(resolve)
	case OpOr:
		return e.left.EvaluateWith(resolve) || e.right.EvaluateWith(resolve)
	case OpNot:
		return !e.left.EvaluateWith(resolve)
	default:
		return e.evaluateLeaf(resolve)
	}
}

func (e Expr) evaluateLeaf(resolve Resolver) bool {
	l, ok := resolveTerm(e.lhs, resolve)
	if !ok {
		return false
	}
	r, ok := resolveTerm(e.rhs, resolve)
	if !ok {
		return false
	}
	switch e.op {
	case OpEq:
		return l == r
	case OpNe:
		return l != r
	case OpGe:
		return l.GreaterOrEqual(r)
	case OpGt:
		return l.Greater(r)
	case OpLe:
		return l.LessOrEqual(r)
	default:
		return l.Less(r)
	}
}

// resolveTerm substitutes a field-bound term with the document's value for
// that field. Without a resolver every term stands for its own literal.
func resolveTerm(t value.Term, resolve Resolver) (value.Literal, bool) {
	name, bound := t.FieldName()
	if !bound || resolve == nil {
		return t.Literal(), true
	}
	return resolve(name)
}

// String formats the expression tree for diagnostics.
func (e Expr) String() string {
	switch e.op {
	case OpAnd, OpOr:
		return fmt.Sprintf("%s(%s, %s)", e.op, e.left, e.right)
	case OpNot:
		return fmt.Sprintf("Not(%s)", e.left)
	default:
		return fmt.Sprintf("%s(%s, %s)", e.op, e.lhs, e.rhs)
	}
}
