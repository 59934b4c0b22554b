package bigdecimal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Decimal type is a representation of a finite arbitrary-precision decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal type is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the decimal is negative.
//   - Scale: a non-negative integer indicating the number of digits after
//     the decimal point.
//   - Coefficient: an unbounded integer value of the decimal without the
//     decimal point.
//
// For example, a decimal with a coefficient of 12345 and a scale of 2
// represents the value 123.45.
// The scale is part of the value: 1, 1.0 and 1.00 are equal numbers,
// but their string representations differ.
//
// Decimals are immutable.
// Every operation returns a new decimal and leaves its operands intact.
// Negative zeros cannot be created.
type Decimal struct {
	neg   bool  // indicates whether the decimal is negative
	scale int   // the number of digits after the decimal point
	coef  *bint // the absolute value of the coefficient, nil for zero
}

const (
	// DefaultFloatScale is the scale of decimals created by [NewFromFloat64].
	DefaultFloatScale = 8

	// MaxExponent is the largest absolute exponent accepted by [Parse]
	// in scientific notation and by [Decimal.Pow].
	MaxExponent = 1_000_000

	// guardDigits is the minimum number of digits after the decimal point
	// kept by [Decimal.Quo].
	guardDigits = 2
)

func newDecimal(neg bool, coef *bint, scale int) Decimal {
	if coef.sign() == 0 {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

// c returns the coefficient of d.
func (d Decimal) c() *bint {
	if d.coef == nil {
		return bzero
	}
	return d.coef
}

// NewFromInt64 returns a decimal equal to n with scale 0.
func NewFromInt64(n int64) Decimal {
	return newFromInt64(n, noScale)
}

// NewFromInt64Scale returns a decimal equal to n that is zero-padded to
// the specified number of digits after the decimal point.
// For example, NewFromInt64Scale(5, 2) is 5.00.
//
// NewFromInt64Scale returns an error if scale is negative.
func NewFromInt64Scale(n int64, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return newFromInt64(n, scale), nil
}

func newFromInt64(n int64, scale int) Decimal {
	coef := newBint()
	coef.setInt64(n)
	coef.abs(coef)
	d := newDecimal(n < 0, coef, 0)
	return d.rescale(scale)
}

func newFromUint64(n uint64, scale int) Decimal {
	coef := newBint()
	coef.setUint64(n)
	d := newDecimal(false, coef, 0)
	return d.rescale(scale)
}

// NewFromBigInt returns a decimal equal to x that is zero-padded to
// the specified number of digits after the decimal point.
// Later changes to x do not affect the decimal.
//
// NewFromBigInt returns an error if x is nil or scale is negative.
func NewFromBigInt(x *big.Int, scale int) (Decimal, error) {
	if x == nil {
		return Decimal{}, fmt.Errorf("big.Int is nil: %w", ErrInvalidInput)
	}
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return newFromBigInt(x, scale), nil
}

func newFromBigInt(x *big.Int, scale int) Decimal {
	coef := newBint()
	coef.abs((*bint)(x))
	d := newDecimal(x.Sign() < 0, coef, 0)
	return d.rescale(scale)
}

// NewFromFloat64 converts a float to a number with [DefaultFloatScale]
// digits after the decimal point.
// Also see [NewFromFloat64Scale].
func NewFromFloat64(f float64) Number {
	return newFromFloat64(f, noScale)
}

// NewFromFloat64Scale converts a float to a number.
// Infinities are converted to [PositiveInfinite] and [NegativeInfinite],
// and a float NaN is converted to [NotANumber].
// A finite float is converted to a decimal with the specified number of
// digits after the decimal point.
// The conversion is correctly rounded: the result is the decimal closest to
// the exact binary value of f, with ties rounded to even, as produced by
// [strconv.FormatFloat].
//
// NewFromFloat64Scale returns an error if scale is negative.
func NewFromFloat64Scale(f float64, scale int) (Number, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}
	return newFromFloat64(f, scale), nil
}

func newFromFloat64(f float64, scale int) Number {
	switch {
	case math.IsNaN(f):
		return NotANumber
	case math.IsInf(f, 1):
		return PositiveInfinite
	case math.IsInf(f, -1):
		return NegativeInfinite
	}
	if scale == noScale {
		scale = DefaultFloatScale
	}
	s := strconv.FormatFloat(f, 'f', scale, 64)
	d, err := parse(s, scale)
	if err != nil {
		panic(fmt.Sprintf("NewFromFloat64(%v) failed: %v", f, err))
	}
	return d
}

// NewFromDecimal returns d rounded to the specified number of digits after
// the decimal point.
// Discarded digits are rounded half away from zero, and the result is
// zero-padded to the right if the scale of d is less than the specified scale.
// If the scale is equal to the scale of d, d is returned.
//
// NewFromDecimal returns an error if scale is negative.
func NewFromDecimal(d Decimal, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return newFromDecimal(d, scale), nil
}

func newFromDecimal(d Decimal, scale int) Decimal {
	return d.rescale(scale)
}

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	2.2E-9
//
// The formal EBNF grammar for the supported formats is as follows:
//
//	sign           ::= '+' | '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	nonzero        ::= '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	zeros          ::= { '0' }
//	fraction       ::= '.' digit { digit }
//	plain          ::= [sign] zeros ( nonzero { digit } | digit ) [fraction]
//	exponent       ::= ('e' | 'E') [sign] nonzero { digit }
//	scientific     ::= [sign] zeros digit [fraction] exponent
//	numeric-string ::= plain | scientific
//
// Parse removes leading zeros from the integer part of the input string,
// and preserves trailing zeros in the fractional part.
// The scale of a plain string is the number of its fractional digits.
// The scale of a scientific string is the smallest scale that represents
// its value exactly, given the fractional digits of the mantissa.
// For example, 1.50 has scale 2, 1.5e2 has scale 0 and 2.5e-1 has scale 2.
//
// Parse returns an error if the string does not match the grammar
// or the absolute value of the exponent exceeds [MaxExponent].
func Parse(s string) (Decimal, error) {
	return parse(s, noScale)
}

// ParseScale is similar to [Parse], but the result is rounded half away from
// zero, or zero-padded, to the specified number of digits after
// the decimal point.
//
// ParseScale returns an error if the string does not match the grammar,
// the exponent is out of range or scale is negative.
func ParseScale(s string, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return parse(s, scale)
}

func parse(s string, scale int) (Decimal, error) {
	var (
		pos    int
		width  int
		neg    bool
		zeros  bool
		intg   string
		frac   string
		hasexp bool
		eneg   bool
		exp    int
		err    error
	)

	width = len(s)

	// Sign
	if pos < width && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	// Leading zeros
	for pos < width && s[pos] == '0' {
		zeros = true
		pos++
	}

	// Integer
	start := pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intg = s[start:pos]
	if !zeros && intg == "" {
		return Decimal{}, fmt.Errorf("parsing %q: no integer part: %w", s, ErrUnparsable)
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		frac = s[start:pos]
		if frac == "" {
			return Decimal{}, fmt.Errorf("parsing %q: no fractional digits: %w", s, ErrUnparsable)
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasexp = true
		pos++
		// Sign
		if pos < width && (s[pos] == '-' || s[pos] == '+') {
			eneg = s[pos] == '-'
			pos++
		}
		// Integer
		if pos == width || s[pos] < '1' || s[pos] > '9' {
			return Decimal{}, fmt.Errorf("parsing %q: exponent must start with a non-zero digit: %w", s, ErrUnparsable)
		}
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		exp, err = strconv.Atoi(s[start:pos])
		if err != nil || exp > MaxExponent {
			return Decimal{}, fmt.Errorf("parsing %q: %w: %w", s, ErrExponentRange, ErrUnparsable)
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], ErrUnparsable)
	}
	if hasexp && len(intg) > 1 {
		return Decimal{}, fmt.Errorf("parsing %q: mantissa must have a single integer digit: %w", s, ErrUnparsable)
	}

	// Coefficient
	coef := newBint()
	if digits := intg + frac; digits != "" {
		if !coef.setDigits(digits) {
			return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrUnparsable)
		}
	}

	var d Decimal
	switch {
	case !hasexp:
		d = newDecimal(neg, coef, len(frac))
	case eneg:
		d = newDecimal(neg, coef, len(frac)+exp)
	case len(frac) >= exp:
		d = newDecimal(neg, coef, len(frac)-exp)
	default:
		coef.lsh(coef, exp-len(frac))
		d = newDecimal(neg, coef, 0)
	}

	return d.rescale(scale), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface and returns
// the canonical representation of a decimal value.
// The returned string does not use scientific notation, has no leading zeros
// and has exactly [Decimal.Scale] digits after the decimal point.
// It is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	coef := d.c().string()

	// Leading zeros of the fractional part
	if n := d.Scale() + 1 - len(coef); n > 0 {
		pad := make([]byte, n, n+len(coef))
		for i := range pad {
			pad[i] = '0'
		}
		coef = string(append(pad, coef...))
	}

	buf := make([]byte, 0, len(coef)+2)

	// Sign
	if d.IsNeg() {
		buf = append(buf, '-')
	}

	// Integer and fractional parts
	point := len(coef) - d.Scale()
	buf = append(buf, coef[:point]...)
	if d.Scale() > 0 {
		buf = append(buf, '.')
		buf = append(buf, coef[point:]...)
	}

	return string(buf)
}

// Prec returns number of digits in the coefficient.
// Prec returns 0 for zero.
func (d Decimal) Prec() int {
	return d.c().prec()
}

// Coef returns the absolute value of the coefficient of the decimal.
// The returned integer is a copy.
func (d Decimal) Coef() *big.Int {
	return new(big.Int).Set((*big.Int)(d.c()))
}

// Scale returns number of digits after the decimal point.
func (d Decimal) Scale() int {
	return d.scale
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	if d.Scale() == 0 {
		return true
	}
	z := getBint()
	defer putBint(z)
	z.rshDown(d.c(), d.Scale())
	z.lsh(z, d.Scale())
	return z.cmp(d.c()) == 0
}

// rescale returns d with exactly scale digits after the decimal point.
// Discarded digits are rounded half away from zero.
// If scale is noScale, d is returned.
func (d Decimal) rescale(scale int) Decimal {
	switch {
	case scale == noScale || scale == d.Scale():
		return d
	case d.Scale() < scale:
		coef := newBint()
		coef.lsh(d.c(), scale-d.Scale())
		return newDecimal(d.IsNeg(), coef, scale)
	}
	coef := newBint()
	coef.rshHalfUp(d.c(), d.Scale()-scale)
	return newDecimal(d.IsNeg(), coef, scale)
}

// Round returns d that is rounded to the specified number of digits after
// the decimal point.
// Discarded digits are rounded half away from zero, so 1.005 is rounded
// to 1.01 and -1.005 is rounded to -1.01.
// If the scale of d is less than or equal to the specified scale, d is returned.
//
// Round returns an error if scale is negative.
func (d Decimal) Round(scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if d.Scale() <= scale {
		return d, nil
	}
	return d.rescale(scale), nil
}

// Trunc returns d that is truncated to the specified number of digits after
// the decimal point.
// If the scale of d is less than or equal to the specified scale, d is returned.
//
// Trunc returns an error if scale is negative.
func (d Decimal) Trunc(scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if d.Scale() <= scale {
		return d, nil
	}
	coef := newBint()
	coef.rshDown(d.c(), d.Scale()-scale)
	return newDecimal(d.IsNeg(), coef, scale), nil
}

// Ceil returns d that is rounded towards positive infinity to the specified
// number of digits after the decimal point.
// If the scale of d is less than or equal to the specified scale, d is returned.
//
// Ceil returns an error if scale is negative.
func (d Decimal) Ceil(scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if d.Scale() <= scale {
		return d, nil
	}
	coef := newBint()
	if d.IsNeg() {
		coef.rshDown(d.c(), d.Scale()-scale)
	} else {
		coef.rshUp(d.c(), d.Scale()-scale)
	}
	return newDecimal(d.IsNeg(), coef, scale), nil
}

// Floor returns d that is rounded towards negative infinity to the specified
// number of digits after the decimal point.
// If the scale of d is less than or equal to the specified scale, d is returned.
//
// Floor returns an error if scale is negative.
func (d Decimal) Floor(scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if d.Scale() <= scale {
		return d, nil
	}
	coef := newBint()
	if d.IsNeg() {
		coef.rshUp(d.c(), d.Scale()-scale)
	} else {
		coef.rshDown(d.c(), d.Scale()-scale)
	}
	return newDecimal(d.IsNeg(), coef, scale), nil
}

// Neg returns d with opposite sign.
// Zero is returned unchanged.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.c(), d.Scale())
}

// AdditiveInverse returns d with opposite sign.
// It implements the [AdditiveGroup] interface.
// Also see method [Decimal.Neg].
func (d Decimal) AdditiveInverse() Number {
	return d.Neg()
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	if !d.IsNeg() {
		return d
	}
	return d.Neg()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if the string representation of d has no minus sign.
// Since negative zeros do not exist, IsPos returns true for zero.
func (d Decimal) IsPos() bool {
	return !d.neg
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.c().sign() == 0
}

// IsZeroScale returns true if d rounded to the specified number of digits
// after the decimal point is equal to 0.
// For example, 0.004 is zero at scale 2, but 0.005 is not.
//
// IsZeroScale returns an error if scale is negative.
func (d Decimal) IsZeroScale(scale int) (bool, error) {
	if err := checkScale(scale); err != nil {
		return false, err
	}
	return d.rescale(scale).IsZero(), nil
}

// IsNaN returns false.
func (d Decimal) IsNaN() bool {
	return false
}

// IsInf returns false.
func (d Decimal) IsInf() bool {
	return false
}

// signed returns the signed coefficient of d at the specified scale,
// which must not be less than the scale of d.
func (d Decimal) signed(scale int) *bint {
	z := newBint()
	z.lsh(d.c(), scale-d.Scale())
	if d.IsNeg() {
		z.neg(z)
	}
	return z
}

// Float64 returns the nearest binary floating-point number rounded
// using "half to even" rule.
// If the result cannot be represented as a finite float64, ok is false.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int64 returns the integer part of d truncated towards zero.
// If the result cannot be represented as int64, ok is false.
func (d Decimal) Int64() (i int64, ok bool) {
	z := getBint()
	defer putBint(z)
	z.rshDown(d.c(), d.Scale())
	if d.IsNeg() {
		z.neg(z)
	}
	if !(*big.Int)(z).IsInt64() {
		return 0, false
	}
	return (*big.Int)(z).Int64(), true
}

// Equal returns true if d and e are numerically equal.
// Decimals with different scales are compared exactly, so 1.0 and 1.00
// are equal, while 1.0 and 1.01 are not.
// For other kinds of numbers the result is the one reported by e.
// Equal returns false if e is nil.
func (d Decimal) Equal(e Number) bool {
	r, err := d.equal(e, noScale)
	if err != nil {
		return false
	}
	return r
}

// EqualScale is similar to [Decimal.Equal], but d and e are first rounded
// half away from zero to the specified number of digits after
// the decimal point.
// For example, 1.2345 and 1.2346 are equal at scale 3.
//
// EqualScale returns an error if e is nil or scale is negative.
func (d Decimal) EqualScale(e Number, scale int) (bool, error) {
	if err := checkScale(scale); err != nil {
		return false, err
	}
	return d.equal(e, scale)
}

func (d Decimal) equal(e Number, scale int) (bool, error) {
	e, err := operand(e)
	if err != nil {
		return false, err
	}
	if f, ok := e.(Decimal); ok {
		return d.cmpDecimal(f, scale) == 0, nil
	}
	return equalTo(e, d, scale)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Infinities compare greater or less than every decimal.
// Cmp returns an error if e is nil or NaN.
func (d Decimal) Cmp(e Number) (int, error) {
	return d.cmp(e, noScale)
}

// CmpScale is similar to [Decimal.Cmp], but d and e are first rounded
// half away from zero to the specified number of digits after
// the decimal point.
//
// CmpScale returns an error if e is nil or NaN, or scale is negative.
func (d Decimal) CmpScale(e Number, scale int) (int, error) {
	if err := checkScale(scale); err != nil {
		return 0, err
	}
	return d.cmp(e, scale)
}

func (d Decimal) cmp(e Number, scale int) (int, error) {
	e, err := operand(e)
	if err != nil {
		return 0, err
	}
	switch e := e.(type) {
	case Decimal:
		return d.cmpDecimal(e, scale), nil
	case NaN:
		return 0, fmt.Errorf("comparing %v with %v: %w", d, e, ErrNotComparable)
	}
	return cmpFrom(e, d, scale)
}

// cmpDecimal compares d and e rounded to the specified scale.
// If scale is noScale, d and e are compared exactly.
func (d Decimal) cmpDecimal(e Decimal, scale int) int {
	d = d.rescale(scale)
	e = e.rescale(scale)

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.Sign() == 0:
		return 0
	}

	// General case
	dcoef, ecoef := getBint(), getBint()
	defer putBint(dcoef)
	defer putBint(ecoef)
	s := max(d.Scale(), e.Scale())
	dcoef.lsh(d.c(), s-d.Scale())
	ecoef.lsh(e.c(), s-e.Scale())
	r := dcoef.cmp(ecoef)
	if d.IsNeg() {
		return -r
	}
	return r
}

// Max returns maximum of d and e.
// If d and e are equal, d is returned.
func (d Decimal) Max(e Decimal) Decimal {
	if d.cmpDecimal(e, noScale) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// If d and e are equal, d is returned.
func (d Decimal) Min(e Decimal) Decimal {
	if d.cmpDecimal(e, noScale) <= 0 {
		return d
	}
	return e
}
