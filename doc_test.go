package bigdecimal_test

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/bigdecimal"
)

func evaluate(input string) (bigdecimal.Number, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return nil, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := processTokens(tokens)
	if err != nil {
		return nil, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("post-processed stack contains %v, expected exactly one item", stack)
	}
	return stack[0], nil
}

func parseTokens(input string) ([]string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens")
	}
	return tokens, nil
}

func processTokens(tokens []string) ([]bigdecimal.Number, error) {
	stack := make([]bigdecimal.Number, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		switch token {
		case "+", "-", "*", "/":
			stack, err = processOperator(stack, token)
		default:
			stack, err = processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func processOperator(stack []bigdecimal.Number, token string) ([]bigdecimal.Number, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands")
	}
	right := stack[len(stack)-2]
	left := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result bigdecimal.Number
	var err error
	switch token {
	case "+":
		result, err = left.Add(right)
	case "-":
		result, err = left.Sub(right)
	case "*":
		result, err = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", left, token, right, err)
	}
	return append(stack, result), nil
}

func processOperand(stack []bigdecimal.Number, token string) ([]bigdecimal.Number, error) {
	d, err := bigdecimal.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}

// This example implements a simple calculator that evaluates mathematical
// expressions written in postfix (or reverse Polish) notation.
// The calculator can handle basic arithmetic operations such as addition,
// subtraction, multiplication, and division.
// Division by zero does not stop the calculation, it produces NaN instead.
func Example_postfixCalculator() {
	for _, expr := range []string{
		"* 10 + 1.23 4.56",
		"/ 1 3",
		"+ 5 / 1 0",
	} {
		d, err := evaluate(expr)
		if err != nil {
			panic(err)
		}
		fmt.Println(d)
	}
	// Output:
	// 57.90
	// 0.333
	// NaN
}

// This example calculates the balance of a deposit with interest compounded
// yearly and rounded to cents after each year.
func Example_compoundInterest() {
	balance := bigdecimal.Number(bigdecimal.MustParse("1000.00"))
	rate := bigdecimal.MustParse("1.05")
	for year := 1; year <= 3; year++ {
		var err error
		balance, err = balance.MulScale(rate, 2)
		if err != nil {
			panic(err)
		}
		fmt.Println(year, balance)
	}
	// Output:
	// 1 1050.00
	// 2 1102.50
	// 3 1157.63
}

func ExampleNewFromInt64() {
	fmt.Println(bigdecimal.NewFromInt64(-123))
	fmt.Println(bigdecimal.NewFromInt64Scale(-123, 2))
	// Output:
	// -123
	// -123.00 <nil>
}

func ExampleNewFromBigInt() {
	x := big.NewInt(42)
	fmt.Println(bigdecimal.NewFromBigInt(x, 3))
	// Output: 42.000 <nil>
}

func ExampleNewFromFloat64() {
	fmt.Println(bigdecimal.NewFromFloat64(0.1))
	fmt.Println(bigdecimal.NewFromFloat64Scale(1.23e-2, 2))
	fmt.Println(bigdecimal.NewFromFloat64(math.Inf(1)))
	fmt.Println(bigdecimal.NewFromFloat64(math.NaN()))
	// Output:
	// 0.10000000
	// 0.01 <nil>
	// +Inf
	// NaN
}

func ExampleNewFromDecimal() {
	d := bigdecimal.MustParse("15.6789")
	fmt.Println(bigdecimal.NewFromDecimal(d, 2))
	fmt.Println(bigdecimal.NewFromDecimal(d, 6))
	// Output:
	// 15.68 <nil>
	// 15.678900 <nil>
}

func ExampleCreate() {
	fmt.Println(bigdecimal.Create(5))
	fmt.Println(bigdecimal.Create("1.5e2"))
	fmt.Println(bigdecimal.CreateScale(0.5, 2))
	fmt.Println(bigdecimal.Create(struct{}{}))
	// Output:
	// 5 <nil>
	// 150 <nil>
	// 0.50 <nil>
	// <nil> creating number from struct {}: unsupported type
}

func ExampleParse() {
	fmt.Println(bigdecimal.Parse("-1.23"))
	fmt.Println(bigdecimal.Parse("007.50"))
	fmt.Println(bigdecimal.Parse("1.5e2"))
	fmt.Println(bigdecimal.Parse("2.5E-1"))
	// Output:
	// -1.23 <nil>
	// 7.50 <nil>
	// 150 <nil>
	// 0.25 <nil>
}

func ExampleParseScale() {
	fmt.Println(bigdecimal.ParseScale("-1.005", 2))
	fmt.Println(bigdecimal.ParseScale("1.5", 3))
	// Output:
	// -1.01 <nil>
	// 1.500 <nil>
}

func ExampleMustParse() {
	fmt.Println(bigdecimal.MustParse("-1.23"))
	// Output: -1.23
}

func ExampleDecimal_String() {
	d := bigdecimal.MustParse("1234567890.123456789")
	fmt.Println(d.String())
	// Output: 1234567890.123456789
}

func ExampleDecimal_Float64() {
	d := bigdecimal.MustParse("0.1")
	e := bigdecimal.MustParse("123.456")
	f := bigdecimal.MustParse("1234567890.123456789")
	fmt.Println(d.Float64())
	fmt.Println(e.Float64())
	fmt.Println(f.Float64())
	// Output:
	// 0.1 true
	// 123.456 true
	// 1.2345678901234567e+09 true
}

func ExampleDecimal_Int64() {
	d := bigdecimal.MustParse("123.567")
	e := bigdecimal.MustParse("-123.567")
	fmt.Println(d.Int64())
	fmt.Println(e.Int64())
	// Output:
	// 123 true
	// -123 true
}

func ExampleDecimal_Coef() {
	d := bigdecimal.MustParse("-123.45")
	fmt.Println(d.Coef())
	// Output: 12345
}

func ExampleDecimal_Prec() {
	d := bigdecimal.MustParse("-123.45")
	e := bigdecimal.MustParse("0.00")
	fmt.Println(d.Prec())
	fmt.Println(e.Prec())
	// Output:
	// 5
	// 0
}

func ExampleDecimal_Add() {
	d := bigdecimal.MustParse("-5.67")
	e := bigdecimal.MustParse("23")
	fmt.Println(d.Add(e))
	fmt.Println(d.AddScale(e, 1))
	fmt.Println(d.Add(bigdecimal.PositiveInfinite))
	// Output:
	// 17.33 <nil>
	// 17.3 <nil>
	// +Inf <nil>
}

func ExampleDecimal_Sub() {
	d := bigdecimal.MustParse("-5.67")
	e := bigdecimal.MustParse("23")
	fmt.Println(d.Sub(e))
	fmt.Println(bigdecimal.MustParse("3.00").Sub(bigdecimal.MustParse("3")))
	fmt.Println(d.Sub(bigdecimal.PositiveInfinite))
	// Output:
	// -28.67 <nil>
	// 0 <nil>
	// -Inf <nil>
}

func ExampleDecimal_Mul() {
	d := bigdecimal.MustParse("-5.67")
	e := bigdecimal.MustParse("23")
	fmt.Println(d.Mul(e))
	fmt.Println(d.MulScale(e, 1))
	// Output:
	// -130.41 <nil>
	// -130.4 <nil>
}

func ExampleDecimal_Quo() {
	d := bigdecimal.MustParse("1")
	fmt.Println(d.Quo(bigdecimal.MustParse("3")))
	fmt.Println(d.QuoScale(bigdecimal.MustParse("3"), 5))
	fmt.Println(d.Quo(bigdecimal.MustParse("1000")))
	fmt.Println(bigdecimal.MustParse("7").Quo(bigdecimal.MustParse("2.5")))
	fmt.Println(d.Quo(bigdecimal.MustParse("0")))
	// Output:
	// 0.333 <nil>
	// 0.33333 <nil>
	// 0.00100 <nil>
	// 2.80 <nil>
	// NaN <nil>
}

func ExampleDecimal_Pow() {
	fmt.Println(bigdecimal.MustParse("2").Pow(10))
	fmt.Println(bigdecimal.MustParse("-1.5").Pow(3))
	fmt.Println(bigdecimal.MustParse("2").Pow(-2))
	fmt.Println(bigdecimal.MustParse("2").Pow(bigdecimal.MaxExponent + 1))
	// Output:
	// 1024 <nil>
	// -3.375 <nil>
	// 0.250 <nil>
	// <nil> power 1000001: exponent out of range
}

func ExampleDecimal_Mod() {
	fmt.Println(bigdecimal.MustParse("7.5").Mod(bigdecimal.MustParse("2")))
	fmt.Println(bigdecimal.MustParse("-7").Mod(bigdecimal.MustParse("3")))
	// Output:
	// 1.5 <nil>
	// -1 <nil>
}

func ExampleDecimal_Cmp() {
	d := bigdecimal.MustParse("-23")
	e := bigdecimal.MustParse("5.67")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	fmt.Println(d.Cmp(bigdecimal.NegativeInfinite))
	// Output:
	// -1 <nil>
	// 0 <nil>
	// 1 <nil>
	// 1 <nil>
}

func ExampleDecimal_CmpScale() {
	d := bigdecimal.MustParse("1.2345")
	e := bigdecimal.MustParse("1.2346")
	fmt.Println(d.CmpScale(e, 4))
	fmt.Println(d.CmpScale(e, 3))
	// Output:
	// -1 <nil>
	// 0 <nil>
}

func ExampleDecimal_Equal() {
	d := bigdecimal.MustParse("1.0")
	e := bigdecimal.MustParse("1.00")
	fmt.Println(d.Equal(e))
	fmt.Println(d.Equal(bigdecimal.NotANumber))
	// Output:
	// true
	// false
}

func ExampleDecimal_EqualScale() {
	d := bigdecimal.MustParse("1.2345")
	e := bigdecimal.MustParse("1.2346")
	fmt.Println(d.EqualScale(e, 4))
	fmt.Println(d.EqualScale(e, 3))
	// Output:
	// false <nil>
	// true <nil>
}

func ExampleDecimal_Max() {
	d := bigdecimal.MustParse("23")
	e := bigdecimal.MustParse("-5.67")
	fmt.Println(d.Max(e))
	// Output: 23
}

func ExampleDecimal_Min() {
	d := bigdecimal.MustParse("23")
	e := bigdecimal.MustParse("-5.67")
	fmt.Println(d.Min(e))
	// Output: -5.67
}

func ExampleDecimal_Round() {
	d := bigdecimal.MustParse("15.6789")
	fmt.Println(d.Round(5))
	fmt.Println(d.Round(4))
	fmt.Println(d.Round(3))
	fmt.Println(d.Round(2))
	fmt.Println(d.Round(1))
	fmt.Println(d.Round(0))
	fmt.Println(bigdecimal.MustParse("-1.005").Round(2))
	// Output:
	// 15.6789 <nil>
	// 15.6789 <nil>
	// 15.679 <nil>
	// 15.68 <nil>
	// 15.7 <nil>
	// 16 <nil>
	// -1.01 <nil>
}

func ExampleDecimal_Trunc() {
	d := bigdecimal.MustParse("15.6789")
	fmt.Println(d.Trunc(5))
	fmt.Println(d.Trunc(4))
	fmt.Println(d.Trunc(3))
	fmt.Println(d.Trunc(2))
	fmt.Println(d.Trunc(1))
	fmt.Println(d.Trunc(0))
	// Output:
	// 15.6789 <nil>
	// 15.6789 <nil>
	// 15.678 <nil>
	// 15.67 <nil>
	// 15.6 <nil>
	// 15 <nil>
}

func ExampleDecimal_Ceil() {
	d := bigdecimal.MustParse("15.6789")
	fmt.Println(d.Ceil(5))
	fmt.Println(d.Ceil(4))
	fmt.Println(d.Ceil(3))
	fmt.Println(d.Ceil(2))
	fmt.Println(d.Ceil(1))
	fmt.Println(d.Ceil(0))
	// Output:
	// 15.6789 <nil>
	// 15.6789 <nil>
	// 15.679 <nil>
	// 15.68 <nil>
	// 15.7 <nil>
	// 16 <nil>
}

func ExampleDecimal_Floor() {
	d := bigdecimal.MustParse("-15.6789")
	fmt.Println(d.Floor(5))
	fmt.Println(d.Floor(4))
	fmt.Println(d.Floor(3))
	fmt.Println(d.Floor(2))
	fmt.Println(d.Floor(1))
	fmt.Println(d.Floor(0))
	// Output:
	// -15.6789 <nil>
	// -15.6789 <nil>
	// -15.679 <nil>
	// -15.68 <nil>
	// -15.7 <nil>
	// -16 <nil>
}

func ExampleDecimal_Scale() {
	d := bigdecimal.MustParse("23.0000")
	e := bigdecimal.MustParse("-15.670")
	fmt.Println(d.Scale())
	fmt.Println(e.Scale())
	// Output:
	// 4
	// 3
}

func ExampleDecimal_Abs() {
	d := bigdecimal.MustParse("-15.67")
	fmt.Println(d.Abs())
	// Output: 15.67
}

func ExampleDecimal_Neg() {
	d := bigdecimal.MustParse("15.67")
	e := bigdecimal.MustParse("0.00")
	fmt.Println(d.Neg())
	fmt.Println(e.Neg())
	// Output:
	// -15.67
	// 0.00
}

func ExampleDecimal_Sign() {
	d := bigdecimal.MustParse("-23")
	e := bigdecimal.MustParse("0")
	f := bigdecimal.MustParse("5.67")
	fmt.Println(d.Sign())
	fmt.Println(e.Sign())
	fmt.Println(f.Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleDecimal_IsPos() {
	d := bigdecimal.MustParse("-23")
	e := bigdecimal.MustParse("0")
	f := bigdecimal.MustParse("5.67")
	fmt.Println(d.IsPos())
	fmt.Println(e.IsPos())
	fmt.Println(f.IsPos())
	// Output:
	// false
	// true
	// true
}

func ExampleDecimal_IsNeg() {
	d := bigdecimal.MustParse("-23")
	e := bigdecimal.MustParse("0")
	f := bigdecimal.MustParse("5.67")
	fmt.Println(d.IsNeg())
	fmt.Println(e.IsNeg())
	fmt.Println(f.IsNeg())
	// Output:
	// true
	// false
	// false
}

func ExampleDecimal_IsZeroScale() {
	d := bigdecimal.MustParse("0.004")
	fmt.Println(d.IsZero())
	fmt.Println(d.IsZeroScale(3))
	fmt.Println(d.IsZeroScale(2))
	// Output:
	// false
	// false <nil>
	// true <nil>
}

func ExampleDecimal_IsInt() {
	d := bigdecimal.MustParse("1.00")
	e := bigdecimal.MustParse("1.01")
	fmt.Println(d.IsInt())
	fmt.Println(e.IsInt())
	// Output:
	// true
	// false
}

func ExampleNaN() {
	d := bigdecimal.MustParse("1")
	fmt.Println(bigdecimal.NotANumber.Add(d))
	fmt.Println(d.Mul(bigdecimal.NotANumber))
	fmt.Println(bigdecimal.NotANumber.Equal(bigdecimal.NotANumber))
	fmt.Println(bigdecimal.NotANumber.Cmp(d))
	// Output:
	// NaN <nil>
	// NaN <nil>
	// false
	// 0 comparing NaN with 1: not comparable
}

func ExampleInfinite_Add() {
	fmt.Println(bigdecimal.PositiveInfinite.Add(bigdecimal.MustParse("-1000")))
	fmt.Println(bigdecimal.PositiveInfinite.Add(bigdecimal.PositiveInfinite))
	fmt.Println(bigdecimal.PositiveInfinite.Add(bigdecimal.NegativeInfinite))
	// Output:
	// +Inf <nil>
	// +Inf <nil>
	// NaN <nil>
}

func ExampleInfinite_Mul() {
	fmt.Println(bigdecimal.PositiveInfinite.Mul(bigdecimal.MustParse("-2")))
	fmt.Println(bigdecimal.NegativeInfinite.Mul(bigdecimal.NegativeInfinite))
	fmt.Println(bigdecimal.PositiveInfinite.Mul(bigdecimal.MustParse("0")))
	// Output:
	// -Inf <nil>
	// +Inf <nil>
	// NaN <nil>
}

func ExampleInfinite_Quo() {
	fmt.Println(bigdecimal.NegativeInfinite.Quo(bigdecimal.MustParse("-0.5")))
	fmt.Println(bigdecimal.PositiveInfinite.Quo(bigdecimal.PositiveInfinite))
	// Output:
	// +Inf <nil>
	// NaN <nil>
}

func ExampleInfinite_Cmp() {
	fmt.Println(bigdecimal.PositiveInfinite.Cmp(bigdecimal.MustParse("1e100")))
	fmt.Println(bigdecimal.NegativeInfinite.Cmp(bigdecimal.PositiveInfinite))
	// Output:
	// 1 <nil>
	// -1 <nil>
}
