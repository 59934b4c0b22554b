package bigdecimal

import (
	"errors"
	"fmt"
	"math/big"
)

// Number is the set of operations shared by [Decimal], [NaN] and [Infinite].
// Every binary operation accepts any Number as its second operand, so
// decimals and special values can be mixed freely.
//
// Operations whose name ends with Scale take an explicit result scale,
// which must be non-negative.
// Operations without the suffix use the scale implied by their operands.
//
// A type outside this package may implement Number too.
// Operations that do not recognize their second operand ask that operand
// to perform the operation instead, relying on commutativity, so such
// a type must handle [Decimal], [NaN] and [Infinite] operands itself.
type Number interface {
	fmt.Stringer

	Add(e Number) (Number, error)
	AddScale(e Number, scale int) (Number, error)
	Sub(e Number) (Number, error)
	SubScale(e Number, scale int) (Number, error)
	Mul(e Number) (Number, error)
	MulScale(e Number, scale int) (Number, error)
	Quo(e Number) (Number, error)
	QuoScale(e Number, scale int) (Number, error)

	Equal(e Number) bool
	EqualScale(e Number, scale int) (bool, error)

	IsZero() bool
	IsZeroScale(scale int) (bool, error)
	IsPos() bool
	IsNeg() bool
	IsNaN() bool
	IsInf() bool
}

// Comparable is a [Number] with a total order.
type Comparable interface {
	Number

	// Cmp returns -1, 0 or +1 depending on whether the receiver is
	// less than, equal to or greater than e.
	Cmp(e Number) (int, error)
	CmpScale(e Number, scale int) (int, error)
}

// AdditiveGroup is a [Number] with an additive inverse.
// Subtraction of an unrecognized operand is computed as the addition
// of its inverse.
type AdditiveGroup interface {
	Number

	AdditiveInverse() Number
}

var (
	// ErrInvalidInput is returned when a required value is nil.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidScale is returned when a scale is negative.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrUnparsable is returned when a string is not a decimal number.
	ErrUnparsable = errors.New("unparsable decimal string")
	// ErrExponentRange is returned when an exponent exceeds [MaxExponent]
	// or the scale of a power does not fit in an int.
	ErrExponentRange = errors.New("exponent out of range")
	// ErrUnsupportedType is returned by [Create] for values it cannot convert.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrNotImplemented is returned when an operation has no defined
	// result for the given operands.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNotComparable is returned when NaN takes part in a comparison.
	ErrNotComparable = errors.New("not comparable")
)

var (
	_ Comparable    = Decimal{}
	_ AdditiveGroup = Decimal{}
	_ Comparable    = NaN{}
	_ AdditiveGroup = NaN{}
	_ Comparable    = Infinite{}
	_ AdditiveGroup = Infinite{}
)

// noScale marks an omitted scale argument in internal functions.
const noScale = -1

// checkScale validates an explicit scale argument.
func checkScale(scale int) error {
	if scale < 0 {
		return fmt.Errorf("scale %v: %w", scale, ErrInvalidScale)
	}
	return nil
}

// operand returns e with pointers to package types dereferenced.
func operand(e Number) (Number, error) {
	switch p := e.(type) {
	case nil:
		return nil, fmt.Errorf("operand is nil: %w", ErrInvalidInput)
	case *Decimal:
		if p == nil {
			return nil, fmt.Errorf("operand is nil: %w", ErrInvalidInput)
		}
		return *p, nil
	case *NaN:
		if p == nil {
			return nil, fmt.Errorf("operand is nil: %w", ErrInvalidInput)
		}
		return *p, nil
	case *Infinite:
		if p == nil {
			return nil, fmt.Errorf("operand is nil: %w", ErrInvalidInput)
		}
		return *p, nil
	}
	return e, nil
}

// The following helpers re-dispatch an operation to e.
// A scale equal to noScale selects the variant without explicit scale.

func addTo(e, d Number, scale int) (Number, error) {
	if scale == noScale {
		return e.Add(d)
	}
	return e.AddScale(d, scale)
}

func mulTo(e, d Number, scale int) (Number, error) {
	if scale == noScale {
		return e.Mul(d)
	}
	return e.MulScale(d, scale)
}

func equalTo(e, d Number, scale int) (bool, error) {
	if scale == noScale {
		return e.Equal(d), nil
	}
	return e.EqualScale(d, scale)
}

// cmpFrom returns the comparison of d and e computed by e.
func cmpFrom(e, d Number, scale int) (int, error) {
	c, ok := e.(Comparable)
	if !ok {
		return 0, fmt.Errorf("comparing %v with %T: %w", d, e, ErrNotImplemented)
	}
	var r int
	var err error
	if scale == noScale {
		r, err = c.Cmp(d)
	} else {
		r, err = c.CmpScale(d, scale)
	}
	if err != nil {
		return 0, err
	}
	return -r, nil
}

// subFrom computes d - e for an operand e that is only known to be
// an additive group member.
func subFrom(d, e Number, scale int) (Number, error) {
	g, ok := e.(AdditiveGroup)
	if !ok {
		return nil, fmt.Errorf("subtracting %T from %v: %w", e, d, ErrNotImplemented)
	}
	inv := g.AdditiveInverse()
	if d.IsZero() {
		return inv, nil
	}
	return addTo(inv, d, scale)
}

// Create converts v to a [Number].
// The following types are supported:
//
//   - int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
//     see [NewFromInt64] and [NewFromBigInt].
//   - float32, float64:
//     see [NewFromFloat64].
//   - string:
//     see [Parse].
//   - Decimal, *Decimal:
//     returned as is.
//
// Create returns an error if v is nil or has any other type.
func Create(v any) (Number, error) {
	return create(v, noScale)
}

// CreateScale is similar to [Create], but the result has the given scale.
// See [NewFromInt64Scale], [NewFromFloat64Scale], [ParseScale] and
// [NewFromDecimal].
func CreateScale(v any, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return create(v, scale)
}

func create(v any, scale int) (Number, error) {
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("value is nil: %w", ErrInvalidInput)
	case int:
		return newFromInt64(int64(v), scale), nil
	case int8:
		return newFromInt64(int64(v), scale), nil
	case int16:
		return newFromInt64(int64(v), scale), nil
	case int32:
		return newFromInt64(int64(v), scale), nil
	case int64:
		return newFromInt64(v, scale), nil
	case uint:
		return newFromUint64(uint64(v), scale), nil
	case uint8:
		return newFromUint64(uint64(v), scale), nil
	case uint16:
		return newFromUint64(uint64(v), scale), nil
	case uint32:
		return newFromUint64(uint64(v), scale), nil
	case uint64:
		return newFromUint64(v, scale), nil
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("value is nil: %w", ErrInvalidInput)
		}
		return newFromBigInt(v, scale), nil
	case float32:
		return newFromFloat64(float64(v), scale), nil
	case float64:
		return newFromFloat64(v, scale), nil
	case string:
		d, err := parse(v, scale)
		if err != nil {
			return nil, err
		}
		return d, nil
	case Decimal:
		return newFromDecimal(v, scale), nil
	case *Decimal:
		if v == nil {
			return nil, fmt.Errorf("value is nil: %w", ErrInvalidInput)
		}
		return newFromDecimal(*v, scale), nil
	}
	return nil, fmt.Errorf("creating number from %T: %w", v, ErrUnsupportedType)
}
