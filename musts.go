package bigdecimal

import "fmt"

// MustCreate is like [Create] but panics if the value cannot be converted.
func MustCreate(v any) Number {
	n, err := Create(v)
	if err != nil {
		panic(fmt.Sprintf("MustCreate(%v) failed: %v", v, err))
	}
	return n
}

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal) MustAdd(e Number) Number {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustAdd(%v) failed: %v", d, e, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal) MustSub(e Number) Number {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustSub(%v) failed: %v", d, e, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal) MustMul(e Number) Number {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustMul(%v) failed: %v", d, e, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Number) Number {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("%q.MustQuo(%v) failed: %v", d, e, err))
	}
	return f
}
