package bigdecimal

import (
	"fmt"
	"math"
)

// Add returns the sum of d and e.
// If e is a decimal, the sum is exact and its scale is the larger of the
// scales of d and e.
// Otherwise the result is computed by e, so adding [NaN] gives NaN and adding
// an infinity gives the same infinity.
//
// Add returns an error if e is nil.
func (d Decimal) Add(e Number) (Number, error) {
	return d.add(e, noScale)
}

// AddScale is similar to [Decimal.Add], but a decimal sum is rounded half
// away from zero, or zero-padded, to the specified number of digits after
// the decimal point.
//
// AddScale returns an error if e is nil or scale is negative.
func (d Decimal) AddScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return d.add(e, scale)
}

func (d Decimal) add(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	f, ok := e.(Decimal)
	if !ok {
		return addTo(e, d, scale)
	}
	return d.addDecimal(f).rescale(scale), nil
}

func (d Decimal) addDecimal(e Decimal) Decimal {
	var (
		dcoef *bint
		ecoef *bint
		neg   bool
		scale int
	)

	dcoef = newBint()
	ecoef = getBint()
	defer putBint(ecoef)

	// Alignment and scale
	scale = max(d.Scale(), e.Scale())
	dcoef.lsh(d.c(), scale-d.Scale())
	ecoef.lsh(e.c(), scale-e.Scale())

	// Sign
	if dcoef.cmp(ecoef) > 0 {
		neg = d.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Coefficient
	if d.IsNeg() != e.IsNeg() {
		dcoef.dist(dcoef, ecoef)
	} else {
		dcoef.add(dcoef, ecoef)
	}

	return newDecimal(neg, dcoef, scale)
}

// Sub returns the difference of d and e.
// If e is a decimal, the difference is exact and its scale is the larger of
// the scales of d and e.
// If d and e are numerically equal, the result is 0 with scale 0.
// Subtracting [NaN] gives NaN, and subtracting an infinity gives the
// infinity of the opposite sign.
// Any other e must implement [AdditiveGroup], and the result is computed as
// the sum of d and the additive inverse of e.
//
// Sub returns an error if e is nil or has no additive inverse.
func (d Decimal) Sub(e Number) (Number, error) {
	return d.sub(e, noScale)
}

// SubScale is similar to [Decimal.Sub], but a decimal difference is rounded
// half away from zero, or zero-padded, to the specified number of digits
// after the decimal point.
// Decimals that are equal at the specified scale have a zero difference.
//
// SubScale returns an error if e is nil or has no additive inverse,
// or scale is negative.
func (d Decimal) SubScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return d.sub(e, scale)
}

func (d Decimal) sub(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		return e.Neg(), nil
	case Decimal:
		if d.cmpDecimal(e, scale) == 0 {
			return newFromInt64(0, scale), nil
		}
		return d.addDecimal(e.Neg()).rescale(scale), nil
	}
	return subFrom(d, e, scale)
}

// Mul returns the product of d and e.
// If e is a decimal, the product is exact and its scale is the sum of
// the scales of d and e.
// Otherwise the result is computed by e.
//
// Mul returns an error if e is nil.
func (d Decimal) Mul(e Number) (Number, error) {
	return d.mul(e, noScale)
}

// MulScale is similar to [Decimal.Mul], but a decimal product is rounded half
// away from zero, or zero-padded, to the specified number of digits after
// the decimal point.
//
// MulScale returns an error if e is nil or scale is negative.
func (d Decimal) MulScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return d.mul(e, scale)
}

func (d Decimal) mul(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	f, ok := e.(Decimal)
	if !ok {
		return mulTo(e, d, scale)
	}
	return d.mulDecimal(f).rescale(scale), nil
}

func (d Decimal) mulDecimal(e Decimal) Decimal {
	coef := newBint()
	coef.mul(d.c(), e.c())
	return newDecimal(d.IsNeg() != e.IsNeg(), coef, d.Scale()+e.Scale())
}

// Quo returns the quotient of d and e truncated towards zero.
//
// The number of digits after the decimal point of the quotient is:
//
//   - 2 + m, if both d and e are integers (have scale 0);
//   - max(2 + m, d.Scale() + e.Scale()), otherwise;
//
// where m is the number of orders of magnitude by which |e| exceeds |d|,
// that is ⌈log10(|e|) - log10(|d|)⌉, or 0 if |e| does not exceed |d|.
// For example, 1 / 3 is 0.333, 10 / 4 is 2.50 and 1 / 1000 is 0.00100.
//
// Special cases are:
//
//   - division by 0 or by [NaN] gives NaN;
//   - division of 0 gives 0 with the scale of d;
//   - division by an infinity gives 0 with the scale of d.
//
// Quo returns an error if e is nil, or is neither a decimal nor a special
// value.
func (d Decimal) Quo(e Number) (Number, error) {
	return d.quo(e, noScale)
}

// QuoScale is similar to [Decimal.Quo], but the quotient has at least the
// specified number of digits after the decimal point.
// The specified scale never reduces the number of digits chosen by
// [Decimal.Quo].
// Division by an infinity gives 0 with the specified scale.
//
// QuoScale returns an error if e is nil, or is neither a decimal nor
// a special value, or scale is negative.
func (d Decimal) QuoScale(e Number, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return d.quo(e, scale)
}

func (d Decimal) quo(e Number, scale int) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		if scale == noScale {
			scale = d.Scale()
		}
		return newFromInt64(0, scale), nil
	case Decimal:
		// Special case: zero divisor
		if e.IsZero() {
			return NotANumber, nil
		}
		// Special case: zero dividend
		if d.IsZero() {
			return d, nil
		}
		// General case
		return d.quoDecimal(e, max(quoScale(d, e), scale)), nil
	}
	return nil, fmt.Errorf("dividing %v by %T: %w", d, e, ErrNotImplemented)
}

// quoScale returns the number of digits after the decimal point
// kept in the quotient of d and e.
func quoScale(d, e Decimal) int {
	m := magnitudeGap(d, e)
	if d.Scale() == 0 && e.Scale() == 0 {
		return guardDigits + m
	}
	return max(guardDigits, guardDigits+m, d.Scale()+e.Scale())
}

// magnitudeGap calculates ⌈log10(|e|) - log10(|d|)⌉ if |e| > |d|,
// and returns 0 otherwise.
// d must not be zero.
func magnitudeGap(d, e Decimal) int {
	dcoef, ecoef := getBint(), getBint()
	defer putBint(dcoef)
	defer putBint(ecoef)

	// Alignment to the scale d.Scale() + e.Scale()
	dcoef.lsh(d.c(), e.Scale())
	ecoef.lsh(e.c(), d.Scale())
	if ecoef.cmp(dcoef) <= 0 {
		return 0
	}

	// Smallest m such that |d| * 10^m >= |e|
	m := ecoef.prec() - dcoef.prec()
	dcoef.lsh(dcoef, m)
	if dcoef.cmp(ecoef) < 0 {
		m++
	}
	return m
}

// quoDecimal calculates d / e truncated to the specified number of digits
// after the decimal point.
func (d Decimal) quoDecimal(e Decimal, scale int) Decimal {
	var (
		dcoef *bint
		ecoef *bint
	)

	dcoef = newBint()
	ecoef = getBint()
	defer putBint(ecoef)

	// Alignment
	if shift := scale + e.Scale() - d.Scale(); shift >= 0 {
		dcoef.lsh(d.c(), shift)
		ecoef.setBint(e.c())
	} else {
		dcoef.setBint(d.c())
		ecoef.lsh(e.c(), -shift)
	}

	// Coefficient
	dcoef.quo(dcoef, ecoef)

	return newDecimal(d.IsNeg() != e.IsNeg(), dcoef, scale)
}

// Pow returns d raised to the integer power exp.
// For non-negative exp the result is exact and its scale is
// d.Scale() * exp.
// For negative exp the result is 1 / d^(-exp) computed by [Decimal.Quo],
// so raising 0 to a negative power gives [NaN].
//
// Pow returns an error if the absolute value of exp exceeds [MaxExponent]
// or the scale of the power overflows an int.
func (d Decimal) Pow(exp int) (Number, error) {
	if exp < -MaxExponent || exp > MaxExponent {
		return nil, fmt.Errorf("power %v: %w", exp, ErrExponentRange)
	}
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	if abs != 0 && d.Scale() > math.MaxInt/abs {
		return nil, fmt.Errorf("power %v: scale of %v: %w", exp, d.Scale(), ErrExponentRange)
	}
	if exp < 0 {
		return NewFromInt64(1).Quo(d.pow(abs))
	}
	return d.pow(exp), nil
}

func (d Decimal) pow(exp int) Decimal {
	coef := newBint()
	coef.pow(d.c(), exp)
	return newDecimal(d.IsNeg() && exp%2 == 1, coef, d.Scale()*exp)
}

// Mod returns the remainder of the division of d by e truncated towards zero,
// so that d = e * q + r for an integer q, and r has the sign of d.
// The scale of the remainder is the larger of the scales of d and e.
//
// Special cases are:
//
//   - modulo 0 or [NaN] gives NaN;
//   - modulo an infinity gives d.
//
// Mod returns an error if e is nil, or is neither a decimal nor a special
// value.
func (d Decimal) Mod(e Number) (Number, error) {
	e, err := operand(e)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case NaN:
		return NotANumber, nil
	case Infinite:
		return d, nil
	case Decimal:
		if e.IsZero() {
			return NotANumber, nil
		}
		scale := max(d.Scale(), e.Scale())
		q, r := getBint(), newBint()
		defer putBint(q)
		q.quoRem(d.signed(scale), e.signed(scale), r)
		neg := r.sign() < 0
		r.abs(r)
		return newDecimal(neg, r, scale), nil
	}
	return nil, fmt.Errorf("dividing %v by %T: %w", d, e, ErrNotImplemented)
}
