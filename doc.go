/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers
together with the special values NaN and signed infinity.
It is designed for exact decimal computation, such as financial calculations,
where the rounding errors of binary floating-point numbers are unacceptable.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unbounded non-negative integer representing the numeric
    value of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the number of digits after
    the decimal point.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 are equal numbers with different scales.
The scale is preserved by conversions to strings, see [Decimal.String].
Negative zeros are never created.

# Special values

[NaN] and [Infinite] are numbers too.
All three types implement [Number], and every binary operation accepts any
Number as its second operand:

  - NaN absorbs every arithmetic operation: the result is always NaN.
    Division by 0 gives NaN rather than an error.
  - An infinity is the limit of a growing decimal: adding a decimal to it
    leaves it unchanged, and multiplying it by a non-zero decimal gives an
    infinity of the corresponding sign.
    Operations without a limit, such as subtracting equal infinities or
    multiplying an infinity by 0, give NaN.

[NotANumber], [PositiveInfinite] and [NegativeInfinite] are the only
special values.
They are immutable and can be shared by any number of goroutines.

# Conversions

The package provides functions for creating numbers:

  - from int64 and *big.Int:
    [NewFromInt64], [NewFromInt64Scale], [NewFromBigInt].
  - from float64:
    [NewFromFloat64], [NewFromFloat64Scale].
  - from string:
    [Parse], [ParseScale], [MustParse].
  - from another decimal:
    [NewFromDecimal].
  - from any of the above:
    [Create], [CreateScale].

Decimals are converted back with [Decimal.String], [Decimal.Float64] and
[Decimal.Int64].

# Operations

Arithmetic on decimals uses the following scales:

  - [Decimal.Add], [Decimal.Sub]:
    the larger of the operand scales; the result is exact.
  - [Decimal.Mul]:
    the sum of the operand scales; the result is exact.
  - [Decimal.Quo]:
    the sum of the operand scales, but never fewer than 2 digits plus
    one digit for every order of magnitude by which the divisor exceeds the
    dividend; the result is truncated.

The variants [Decimal.AddScale], [Decimal.SubScale] and [Decimal.MulScale]
round the result to the specified scale.
[Decimal.QuoScale] uses the specified scale only if it is larger than the
one chosen by [Decimal.Quo].

# Rounding

Explicit rounding is available with the following methods:

  - half away from zero:
    [Decimal.Round], [NewFromDecimal], [ParseScale].
  - towards positive infinity:
    [Decimal.Ceil].
  - towards negative infinity:
    [Decimal.Floor].
  - towards zero:
    [Decimal.Trunc].

Half away from zero means that 1.005 is rounded to 1.01 and -1.005 to -1.01.
Comparisons with an explicit scale, such as [Decimal.EqualScale], round
their operands the same way before comparing.

# Errors

All methods are pure and report errors through return values.
Errors wrap one of the following sentinels and can be checked
with [errors.Is]:

  - [ErrInvalidInput]: a nil number or *big.Int was passed.
  - [ErrInvalidScale]: a negative scale was passed.
  - [ErrUnparsable]: a string does not represent a decimal.
  - [ErrExponentRange]: an exponent exceeds [MaxExponent] or the scale
    of a power does not fit in an int.
  - [ErrUnsupportedType]: [Create] received a value of an unsupported type.
  - [ErrNotImplemented]: an operation has no result for its operands,
    for example a decimal divided by a foreign [Number].
  - [ErrNotComparable]: NaN was compared with [Decimal.Cmp].

The Must functions, such as [MustParse] and [Decimal.MustAdd], panic instead.
*/
package bigdecimal
