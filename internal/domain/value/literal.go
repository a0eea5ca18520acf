package value

import (
	"fmt"
	"strings"
)

// Kind identifies the variant held by a Literal.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Literal is a scalar JSON-compatible value: null, boolean, number or
// string. The zero value is Null. Literal is comparable; == is equality
// within a variant and always false across variants.
type Literal struct {
	kind Kind
	b    bool
	num  Number
	str  string
}

// Null returns the null Literal.
func Null() Literal { return Literal{} }

// Bool creates a boolean Literal.
func Bool(b bool) Literal { return Literal{kind: KindBool, b: b} }

// Num creates a numeric Literal.
func Num(n Number) Literal { return Literal{kind: KindNumber, num: n} }

// Int creates an integer Literal.
func Int(i int64) Literal { return Num(FromInt64(i)) }

// Uint creates an unsigned integer Literal.
func Uint(u uint64) Literal { return Num(FromUint64(u)) }

// Float creates a float Literal. Non-finite floats are rejected.
func Float(f float64) (Literal, bool) {
	n, ok := FromFloat64(f)
	if !ok {
		return Literal{}, false
	}
	return Num(n), true
}

// Str creates a string Literal.
func Str(s string) Literal { return Literal{kind: KindString, str: s} }

// Kind returns the variant held by the Literal.
func (l Literal) Kind() Kind { return l.kind }

// IsNull reports whether the Literal is null.
func (l Literal) IsNull() bool { return l.kind == KindNull }

// IsBool reports whether AsBool will succeed.
func (l Literal) IsBool() bool { return l.kind == KindBool }

// AsBool returns the boolean value if the Literal is a Bool.
func (l Literal) AsBool() (bool, bool) {
	if l.kind == KindBool {
		return l.b, true
	}
	return false, false
}

// IsNumber reports whether AsNumber will succeed.
func (l Literal) IsNumber() bool { return l.kind == KindNumber }

// AsNumber returns the Number if the Literal is numeric.
func (l Literal) AsNumber() (Number, bool) {
	if l.kind == KindNumber {
		return l.num, true
	}
	return Number{}, false
}

// IsString reports whether AsString will succeed.
func (l Literal) IsString() bool { return l.kind == KindString }

// AsString returns the string value if the Literal is a String.
func (l Literal) AsString() (string, bool) {
	if l.kind == KindString {
		return l.str, true
	}
	return "", false
}

// IsInt64 reports whether the Literal is a number representable as int64.
func (l Literal) IsInt64() bool {
	return l.kind == KindNumber && l.num.IsInt64()
}

// IsUint64 reports whether the Literal is a number representable as uint64.
func (l Literal) IsUint64() bool {
	return l.kind == KindNumber && l.num.IsUint64()
}

// IsFloat64 reports whether the Literal is a float number.
func (l Literal) IsFloat64() bool {
	return l.kind == KindNumber && l.num.IsFloat64()
}

// AsInt64 returns the number as int64 if losslessly representable.
func (l Literal) AsInt64() (int64, bool) {
	if l.kind != KindNumber {
		return 0, false
	}
	return l.num.AsInt64()
}

// AsUint64 returns the number as uint64 if losslessly representable.
func (l Literal) AsUint64() (uint64, bool) {
	if l.kind != KindNumber {
		return 0, false
	}
	return l.num.AsUint64()
}

// AsFloat64 returns the number converted to float64.
func (l Literal) AsFloat64() (float64, bool) {
	if l.kind != KindNumber {
		return 0, false
	}
	return l.num.AsFloat64()
}

// Compare orders two Literals of the same variant: -1, 0 or 1. Null equals
// Null. Cross-variant pairs are unordered and report ok=false, as are
// numbers of different numeric variants.
func (l Literal) Compare(other Literal) (int, bool) {
	if l.kind != other.kind {
		return 0, false
	}
	switch l.kind {
	case KindNull:
		return 0, true
	case KindBool:
		switch {
		case l.b == other.b:
			return 0, true
		case other.b:
			return -1, true
		default:
			return 1, true
		}
	case KindNumber:
		return l.num.Compare(other.num)
	default:
		return strings.Compare(l.str, other.str), true
	}
}

// Less reports l < other; unordered pairs report false, as with the other
// ordering predicates.
func (l Literal) Less(other Literal) bool {
	c, ok := l.Compare(other)
	return ok && c < 0
}

// LessOrEqual reports l <= other within the same variant.
func (l Literal) LessOrEqual(other Literal) bool {
	c, ok := l.Compare(other)
	return ok && c <= 0
}

// Greater reports l > other within the same variant.
func (l Literal) Greater(other Literal) bool {
	c, ok := l.Compare(other)
	return ok && c > 0
}

// GreaterOrEqual reports l >= other within the same variant.
func (l Literal) GreaterOrEqual(other Literal) bool {
	c, ok := l.Compare(other)
	return ok && c >= 0
}

// String formats the Literal as a tagged diagnostic string, e.g.
// Bool(true), Number(5), String("x"). JSON encoding is not this layer's
// concern.
func (l Literal) String() string {
	switch l.kind {
	case KindNull:
		return "Null"
	case KindBool:
		return fmt.Sprintf("Bool(%t)", l.b)
	case KindNumber:
		return fmt.Sprintf("Number(%s)", l.num)
	default:
		return fmt.Sprintf("String(%q)", l.str)
	}
}
