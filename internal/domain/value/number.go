package value

import (
	"math"
	"math/big"
	"strconv"
)

type numKind uint8

const (
	numPosInt numKind = iota
	numNegInt
	numFloat
)

// Number is a JSON-compatible number: a non-negative integer up to the full
// uint64 range, a strictly negative int64, or a finite float64. The zero
// value is the integer 0.
//
// Number is comparable; == is exact equality within a variant and always
// false across variants, so an integer 5 and a float 5.0 are distinct.
// Number is safe to use as a map key: Go's float hashing already treats
// +0.0 and -0.0 as the same key.
type Number struct {
	kind numKind
	u    uint64
	i    int64
	f    float64
}

// FromInt64 creates a Number from a signed integer.
func FromInt64(i int64) Number {
	if i < 0 {
		return Number{kind: numNegInt, i: i}
	}
	return Number{kind: numPosInt, u: uint64(i)}
}

// FromUint64 creates a Number from an unsigned integer.
func FromUint64(u uint64) Number {
	return Number{kind: numPosInt, u: u}
}

// FromFloat64 creates a Number from a finite float. NaN and infinities are
// not JSON numbers and are rejected.
func FromFloat64(f float64) (Number, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, false
	}
	return Number{kind: numFloat, f: f}, true
}

// FromBigInt creates a Number from an arbitrary-precision integer. Values
// outside [math.MinInt64, math.MaxUint64] are rejected: the model is limited
// to 64 bits of magnitude.
func FromBigInt(n *big.Int) (Number, bool) {
	if n.IsUint64() {
		return FromUint64(n.Uint64()), true
	}
	if n.IsInt64() {
		return FromInt64(n.Int64()), true
	}
	return Number{}, false
}

// IsInt64 reports whether AsInt64 will succeed.
func (n Number) IsInt64() bool {
	switch n.kind {
	case numPosInt:
		return n.u <= math.MaxInt64
	case numNegInt:
		return true
	default:
		return false
	}
}

// IsUint64 reports whether AsUint64 will succeed.
func (n Number) IsUint64() bool {
	return n.kind == numPosInt
}

// IsFloat64 reports whether the Number holds a float variant. Integers
// report false even when exactly representable as float64.
func (n Number) IsFloat64() bool {
	return n.kind == numFloat
}

// AsInt64 returns the value as int64 if the stored variant represents it
// losslessly.
func (n Number) AsInt64() (int64, bool) {
	switch n.kind {
	case numPosInt:
		if n.u <= math.MaxInt64 {
			return int64(n.u), true
		}
		return 0, false
	case numNegInt:
		return n.i, true
	default:
		return 0, false
	}
}

// AsUint64 returns the value as uint64 if the stored variant is a
// non-negative integer.
func (n Number) AsUint64() (uint64, bool) {
	if n.kind == numPosInt {
		return n.u, true
	}
	return 0, false
}

// AsFloat64 returns the value converted to float64. Every variant converts;
// integers above 2^53 lose precision, which callers opting into float
// arithmetic accept.
func (n Number) AsFloat64() (float64, bool) {
	switch n.kind {
	case numPosInt:
		return float64(n.u), true
	case numNegInt:
		return float64(n.i), true
	default:
		return n.f, true
	}
}

// AsBigInt returns the value as an arbitrary-precision integer. Float
// variants are not integers and return false.
func (n Number) AsBigInt() (*big.Int, bool) {
	switch n.kind {
	case numPosInt:
		return new(big.Int).SetUint64(n.u), true
	case numNegInt:
		return big.NewInt(n.i), true
	default:
		return nil, false
	}
}

// Compare orders two Numbers of the same variant: -1, 0 or 1. Cross-variant
// pairs are unordered and report ok=false.
func (n Number) Compare(other Number) (int, bool) {
	if n.kind != other.kind {
		return 0, false
	}
	switch n.kind {
	case numPosInt:
		return cmpOrdered(n.u, other.u), true
	case numNegInt:
		return cmpOrdered(n.i, other.i), true
	default:
		return cmpOrdered(n.f, other.f), true
	}
}

// Less reports n < other. Cross-variant pairs are unordered, so Less is
// false for them; the same holds for the other ordering predicates.
func (n Number) Less(other Number) bool {
	c, ok := n.Compare(other)
	return ok && c < 0
}

// LessOrEqual reports n <= other within the same variant.
func (n Number) LessOrEqual(other Number) bool {
	c, ok := n.Compare(other)
	return ok && c <= 0
}

// Greater reports n > other within the same variant.
func (n Number) Greater(other Number) bool {
	c, ok := n.Compare(other)
	return ok && c > 0
}

// GreaterOrEqual reports n >= other within the same variant.
func (n Number) GreaterOrEqual(other Number) bool {
	c, ok := n.Compare(other)
	return ok && c >= 0
}

// String formats the Number in its minimal round-trip form: standard
// decimal for integers, shortest decimal that reparses to the same value
// for floats.
func (n Number) String() string {
	switch n.kind {
	case numPosInt:
		return strconv.FormatUint(n.u, 10)
	case numNegInt:
		return strconv.FormatInt(n.i, 10)
	default:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
}

func cmpOrdered[T uint64 | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
