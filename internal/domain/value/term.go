package value

import "fmt"

// Term is one operand of a query comparison: either a bare Literal constant
// or a Literal bound to a document field name. Accessors delegate to the
// wrapped Literal either way, so the query layer treats constants and field
// references uniformly.
type Term struct {
	field    string
	hasField bool
	lit      Literal
}

// Lit creates a constant Term.
func Lit(l Literal) Term { return Term{lit: l} }

// Field creates a Term bound to a document field name.
func Field(name string, l Literal) Term {
	return Term{field: name, hasField: true, lit: l}
}

// FieldName returns the bound field name, if any.
func (t Term) FieldName() (string, bool) { return t.field, t.hasField }

// Literal returns the wrapped Literal.
func (t Term) Literal() Literal { return t.lit }

// IsNull reports whether the wrapped Literal is null.
func (t Term) IsNull() bool { return t.lit.IsNull() }

// IsBool reports whether the wrapped Literal is a boolean.
func (t Term) IsBool() bool { return t.lit.IsBool() }

// AsBool returns the wrapped boolean value, if any.
func (t Term) AsBool() (bool, bool) { return t.lit.AsBool() }

// IsNumber reports whether the wrapped Literal is numeric.
func (t Term) IsNumber() bool { return t.lit.IsNumber() }

// AsNumber returns the wrapped Number, if any.
func (t Term) AsNumber() (Number, bool) { return t.lit.AsNumber() }

// IsString reports whether the wrapped Literal is a string.
func (t Term) IsString() bool { return t.lit.IsString() }

// AsString returns the wrapped string value, if any.
func (t Term) AsString() (string, bool) { return t.lit.AsString() }

// IsInt64 reports whether the wrapped number fits int64.
func (t Term) IsInt64() bool { return t.lit.IsInt64() }

// AsInt64 returns the wrapped number as int64, if representable.
func (t Term) AsInt64() (int64, bool) { return t.lit.AsInt64() }

// IsUint64 reports whether the wrapped number fits uint64.
func (t Term) IsUint64() bool { return t.lit.IsUint64() }

// AsUint64 returns the wrapped number as uint64, if representable.
func (t Term) AsUint64() (uint64, bool) { return t.lit.AsUint64() }

// IsFloat64 reports whether the wrapped number is a float.
func (t Term) IsFloat64() bool { return t.lit.IsFloat64() }

// AsFloat64 returns the wrapped number converted to float64, if numeric.
func (t Term) AsFloat64() (float64, bool) { return t.lit.AsFloat64() }

// String formats the Term for diagnostics.
func (t Term) String() string {
	if t.hasField {
		return fmt.Sprintf("Field(%s,%s)", t.field, t.lit)
	}
	return t.lit.String()
}
