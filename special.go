package bigdecimal

import "fmt"

// NaN type represents Not-a-Number.
// It absorbs every arithmetic operation it takes part in: the result of
// adding, subtracting, multiplying or dividing NaN is always NaN.
// NaN is never equal to any number, itself included, and cannot be compared.
//
// All NaN values are identical; [NotANumber] is provided for convenience.
type NaN struct{}

// NotANumber is the NaN value.
var NotANumber = NaN{}

// String returns "NaN".
func (n NaN) String() string {
	return "NaN"
}

// absorb validates the arguments of a binary operation and returns NaN.
func (n NaN) absorb(e Number) (Number, error) {
	if _, err := operand(e); err != nil {
		return nil, err
	}
	return n, nil
}

func (n NaN) absorbScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return n.absorb(e)
}

// Add returns NaN.
func (n NaN) Add(e Number) (Number, error) { return n.absorb(e) }

// AddScale returns NaN.
func (n NaN) AddScale(e Number, scale int) (Number, error) { return n.absorbScale(e, scale) }

// Sub returns NaN.
func (n NaN) Sub(e Number) (Number, error) { return n.absorb(e) }

// SubScale returns NaN.
func (n NaN) SubScale(e Number, scale int) (Number, error) { return n.absorbScale(e, scale) }

// Mul returns NaN.
func (n NaN) Mul(e Number) (Number, error) { return n.absorb(e) }

// MulScale returns NaN.
func (n NaN) MulScale(e Number, scale int) (Number, error) { return n.absorbScale(e, scale) }

// Quo returns NaN.
func (n NaN) Quo(e Number) (Number, error) { return n.absorb(e) }

// QuoScale returns NaN.
func (n NaN) QuoScale(e Number, scale int) (Number, error) { return n.absorbScale(e, scale) }

// Equal returns false.
func (n NaN) Equal(e Number) bool {
	return false
}

// EqualScale returns false.
func (n NaN) EqualScale(e Number, scale int) (bool, error) {
	if _, err := n.absorbScale(e, scale); err != nil {
		return false, err
	}
	return false, nil
}

// Cmp always returns an error.
func (n NaN) Cmp(e Number) (int, error) {
	if _, err := n.absorb(e); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("comparing %v with %v: %w", n, e, ErrNotComparable)
}

// CmpScale always returns an error.
func (n NaN) CmpScale(e Number, scale int) (int, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	return n.Cmp(e)
}

// AdditiveInverse returns NaN.
func (n NaN) AdditiveInverse() Number {
	return n
}

// IsZero returns false.
func (n NaN) IsZero() bool {
	return false
}

// IsZeroScale returns false.
func (n NaN) IsZeroScale(scale int) (bool, error) {
	if err := checkScale(scale); err != nil {
		return false, err
	}
	return false, nil
}

// IsPos returns false.
func (n NaN) IsPos() bool {
	return false
}

// IsNeg returns false.
func (n NaN) IsNeg() bool {
	return false
}

// IsNaN returns true.
func (n NaN) IsNaN() bool {
	return true
}

// IsInf returns false.
func (n NaN) IsInf() bool {
	return false
}

// Infinite type represents a signed infinity.
// It behaves as the limit of a decimal growing without bound:
// adding or subtracting a decimal leaves it unchanged, and multiplying or
// dividing it by a decimal can only change its sign.
// Operations without a meaningful limit, such as adding infinities of
// opposite signs or multiplying an infinity by 0, give [NaN].
//
// There are exactly two infinities, [PositiveInfinite] and
// [NegativeInfinite]; the zero value is PositiveInfinite.
type Infinite struct {
	neg bool
}

var (
	// PositiveInfinite is the positive infinity.
	PositiveInfinite = Infinite{}
	// NegativeInfinite is the negative infinity.
	NegativeInfinite = Infinite{neg: true}
)

// String returns "+Inf" or "-Inf".
func (i Infinite) String() string {
	if i.neg {
		return "-Inf"
	}
	return "+Inf"
}

// Neg returns the infinity of the opposite sign.
func (i Infinite) Neg() Infinite {
	return Infinite{neg: !i.neg}
}

// AdditiveInverse returns the infinity of the opposite sign.
// It implements the [AdditiveGroup] interface.
func (i Infinite) AdditiveInverse() Number {
	return i.Neg()
}

// Add returns the sum of i and e:
//
//   - i, if e is a decimal or an infinity of the same sign;
//   - [NaN], if e is NaN or an infinity of the opposite sign.
//
// For other kinds of numbers the result is computed by e.
// Add returns an error if e is nil.
func (i Infinite) Add(e Number) (Number, error) {
	return i.add(e, noScale)
}

// AddScale is similar to [Infinite.Add].
// The scale is validated and passed on to numbers of other kinds.
func (i Infinite) AddScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return i.add(e, scale)
}

func (i Infinite) add(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		if e.neg != i.neg {
			return NotANumber, nil
		}
		return i, nil
	case Decimal:
		return i, nil
	}
	return addTo(e, i, scale)
}

// Sub returns the difference of i and e:
//
//   - i, if e is a decimal or an infinity of the opposite sign;
//   - [NaN], if e is NaN or an infinity of the same sign.
//
// Any other e must implement [AdditiveGroup].
// Sub returns an error if e is nil or has no additive inverse.
func (i Infinite) Sub(e Number) (Number, error) {
	return i.sub(e, noScale)
}

// SubScale is similar to [Infinite.Sub].
// The scale is validated and passed on to numbers of other kinds.
func (i Infinite) SubScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return i.sub(e, scale)
}

func (i Infinite) sub(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		if e.neg == i.neg {
			return NotANumber, nil
		}
		return i, nil
	case Decimal:
		return i, nil
	}
	return subFrom(i, e, scale)
}

// Mul returns the product of i and e:
//
//   - [NaN], if e is NaN or 0;
//   - an infinity whose sign is the product of the signs of i and e,
//     if e is a non-zero decimal or an infinity.
//
// For other kinds of numbers the result is computed by e.
// Mul returns an error if e is nil.
func (i Infinite) Mul(e Number) (Number, error) {
	return i.mul(e, noScale)
}

// MulScale is similar to [Infinite.Mul].
// The scale is validated and passed on to numbers of other kinds.
func (i Infinite) MulScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return i.mul(e, scale)
}

func (i Infinite) mul(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		return Infinite{neg: i.neg != e.neg}, nil
	case Decimal:
		switch {
		case e.IsZero():
			return NotANumber, nil
		case e.IsNeg():
			return i.Neg(), nil
		}
		return i, nil
	}
	return mulTo(e, i, scale)
}

// Quo returns the quotient of i and e:
//
//   - [NaN], if e is NaN, an infinity or 0;
//   - an infinity whose sign is the product of the signs of i and e,
//     if e is a non-zero decimal.
//
// Quo returns an error if e is nil, or is neither a decimal nor a special
// value.
func (i Infinite) Quo(e Number) (Number, error) {
	return i.quo(e)
}

// QuoScale is similar to [Infinite.Quo].
// The scale is validated and otherwise ignored.
func (i Infinite) QuoScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return i.quo(e)
}

func (i Infinite) quo(e Number) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN, Infinite:
		return NotANumber, nil
	case Decimal:
		switch {
		case e.IsZero():
			return NotANumber, nil
		case e.IsNeg():
			return i.Neg(), nil
		}
		return i, nil
	}
	return nil, fmt.Errorf("dividing %v by %T: %w", i, e, ErrNotImplemented)
}

// Equal returns true if e is an infinity of the same sign.
// For numbers of other kinds the result is the one reported by e.
// Equal returns false if e is nil.
func (i Infinite) Equal(e Number) bool {
	r, err := i.equal(e, noScale)
	if err != nil {
		return false
	}
	return r
}

// EqualScale is similar to [Infinite.Equal].
// The scale is validated and passed on to numbers of other kinds.
func (i Infinite) EqualScale(e Number, scale int) (bool, error) {
	if err := checkScale(scale); err != nil {
		return false, err
	}
	return i.equal(e, scale)
}

func (i Infinite) equal(e Number, scale int) (bool, error) {
	e, err := operand(e)
	if err != nil {
		return false, err
	}
	switch e := e.(type) {
	case Infinite:
		return e.neg == i.neg, nil
	case NaN, Decimal:
		return false, nil
	}
	return equalTo(e, i, scale)
}

// Cmp compares i and e and returns:
//
//	-1 if i < e
//	 0 if i == e
//	+1 if i > e
//
// Infinities of the same sign are equal.
// Cmp returns an error if e is nil or NaN.
func (i Infinite) Cmp(e Number) (int, error) {
	return i.cmp(e, noScale)
}

// CmpScale is similar to [Infinite.Cmp].
// The scale is validated and passed on to numbers of other kinds.
func (i Infinite) CmpScale(e Number, scale int) (int, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	return i.cmp(e, scale)
}

func (i Infinite) cmp(e Number, scale int) (int, error) {
	e, err := operand(e)
	if err != nil {
		return 0, err
	}
	switch e := e.(type) {
	case NaN:
		return 0, fmt.Errorf("comparing %v with %v: %w", i, e, ErrNotComparable)
	case Infinite:
		switch {
		case i.neg == e.neg:
			return 0, nil
		case i.neg:
			return -1, nil
		}
		return 1, nil
	case Decimal:
		if i.neg {
			return -1, nil
		}
		return 1, nil
	}
	return cmpFrom(e, i, scale)
}

// IsZero returns false.
func (i Infinite) IsZero() bool {
	return false
}

// IsZeroScale returns false.
func (i Infinite) IsZeroScale(scale int) (bool, error) {
	if err := checkScale(scale); err != nil {
		return false, err
	}
	return false, nil
}

// IsPos returns true for the positive infinity.
func (i Infinite) IsPos() bool {
	return !i.neg
}

// IsNeg returns true for the negative infinity.
func (i Infinite) IsNeg() bool {
	return i.neg
}

// IsNaN returns false.
func (i Infinite) IsNaN() bool {
	return false
}

// IsInf returns true.
func (i Infinite) IsInf() bool {
	return true
}
