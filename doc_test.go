package fraction_test

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/fraction"
)

func harmonic(terms int) (fraction.Fraction, error) {
	sum := fraction.Zero
	for k := 1; k <= terms; k++ {
		term, err := fraction.New(1, int64(k))
		if err != nil {
			return fraction.Fraction{}, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return fraction.Fraction{}, err
		}
	}
	return sum, nil
}

// This example calculates the 10th harmonic number 1 + 1/2 + ... + 1/10.
// Every partial sum is exact, so the only rounding happens during
// the final conversion to float64.
func Example_harmonicNumber() {
	h, err := harmonic(10)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	fmt.Println(h.Float64())
	// Output:
	// 7381/2520
	// 2.9289682539682538 false
}

// This example adds -0.1 ten times.
// Unlike float64 arithmetic, the result is exactly -1.
func Example_sumOfTenths() {
	n := fraction.MustParse("-0.1")
	sum := fraction.Zero
	for i := 0; i < 10; i++ {
		sum = sum.MustAdd(n)
	}
	fmt.Println(sum)
	fmt.Println(sum == fraction.NegOne)
	// Output:
	// -1
	// true
}

func ExampleNew() {
	fmt.Println(fraction.New(-6, 8))
	fmt.Println(fraction.New(6, -8))
	fmt.Println(fraction.New(0, 5))
	fmt.Println(fraction.New(1, 0))
	// Output:
	// -3/4 <nil>
	// -3/4 <nil>
	// 0 <nil>
	// 0 division by zero
}

func ExampleMustNew() {
	fmt.Println(fraction.MustNew(10, 4))
	// Output: 5/2
}

func ExampleNewFromInt64() {
	fmt.Println(fraction.NewFromInt64(-3))
	// Output: -3 <nil>
}

func ExampleNewFromFloat64() {
	fmt.Println(fraction.NewFromFloat64(0.1))
	fmt.Println(fraction.NewFromFloat64(0.25))
	fmt.Println(fraction.NewFromFloat64(-1.5))
	// Output:
	// 1/10 <nil>
	// 1/4 <nil>
	// -3/2 <nil>
}

func ExampleParse() {
	fmt.Println(fraction.Parse("-0.1"))
	fmt.Println(fraction.Parse("0.25"))
	fmt.Println(fraction.Parse("3"))
	// Output:
	// -1/10 <nil>
	// 1/4 <nil>
	// 3 <nil>
}

func ExampleParseRatio() {
	fmt.Println(fraction.ParseRatio("6/8"))
	fmt.Println(fraction.ParseRatio("-1/2"))
	// Output:
	// 3/4 <nil>
	// -1/2 <nil>
}

func ExampleMustParse() {
	fmt.Println(fraction.MustParse("-1.25"))
	// Output: -5/4
}

func ExampleFraction_String() {
	f := fraction.MustNew(-5, 4)
	g := fraction.MustNew(4, 2)
	fmt.Println(f.String())
	fmt.Println(g.String())
	// Output:
	// -5/4
	// 2
}

func ExampleFraction_FloatString() {
	f := fraction.MustNew(1, 3)
	g := fraction.MustNew(-1, 8)
	fmt.Println(f.FloatString(3))
	fmt.Println(g.FloatString(2))
	fmt.Println(g.FloatString(0))
	// Output:
	// 0.333
	// -0.13
	// 0
}

func ExampleFraction_Float64() {
	f := fraction.MustNew(1, 4)
	g := fraction.MustNew(1, 10)
	h := fraction.MustNew(1, 3)
	fmt.Println(f.Float64())
	fmt.Println(g.Float64())
	fmt.Println(h.Float64())
	// Output:
	// 0.25 true
	// 0.1 false
	// 0.3333333333333333 false
}

func ExampleFraction_Num() {
	f := fraction.MustNew(6, -8)
	fmt.Println(f.Num())
	fmt.Println(f.Den())
	// Output:
	// -3
	// 4
}

type Value struct {
	Number fraction.Fraction `json:"number"`
}

func ExampleFraction_UnmarshalText() {
	b := []byte(`{"number": "-0.1"}`)
	var v Value
	err := json.Unmarshal(b, &v)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: {-1/10}
}

func ExampleFraction_MarshalText() {
	f := fraction.MustParse("-0.1")
	v := Value{Number: f}
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: {"number":"-1/10"}
}

func ExampleFraction_Scan() {
	f := &fraction.Fraction{}
	err := f.Scan("6/8")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output: 3/4
}

func ExampleFraction_Value() {
	f := fraction.MustParse("-0.1")
	s, err := f.Value()
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: -1/10
}

func ExampleFraction_Format() {
	f := fraction.MustNew(-5, 4)
	g := fraction.MustNew(1, 3)
	fmt.Printf("%v\n", f)
	fmt.Printf("%q\n", f)
	fmt.Printf("%f\n", f)
	fmt.Printf("%f\n", g)
	fmt.Printf("%.2f\n", g)
	fmt.Printf("%+v\n", g)
	// Output:
	// -5/4
	// "-5/4"
	// -1.25
	// 0.333333
	// 0.33
	// +1/3
}

func ExampleFraction_Add() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Add(g))
	// Output: 5/6 <nil>
}

func ExampleFraction_Sub() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Sub(g))
	// Output: 1/6 <nil>
}

func ExampleFraction_Mul() {
	f := fraction.MustNew(2, 3)
	g := fraction.MustNew(3, 4)
	fmt.Println(f.Mul(g))
	// Output: 1/2 <nil>
}

func ExampleFraction_Quo() {
	f := fraction.MustNew(3, 4)
	g := fraction.MustNew(2, 3)
	fmt.Println(f.Quo(g))
	fmt.Println(f.Quo(fraction.Zero))
	// Output:
	// 9/8 <nil>
	// 0 computing [3/4 / 0]: division by zero
}

func ExampleFraction_QuoInt64() {
	f := fraction.MustNew(3, 1)
	g, err := f.QuoInt64(5)
	if err != nil {
		panic(err)
	}
	fmt.Println(g)
	fmt.Println(g.MulInt64(5))
	// Output:
	// 3/5
	// 3 <nil>
}

func ExampleFraction_Inv() {
	f := fraction.MustNew(-2, 3)
	fmt.Println(f.Inv())
	// Output: -3/2 <nil>
}

func ExampleFraction_Pow() {
	f := fraction.MustNew(2, 3)
	fmt.Println(f.Pow(3))
	fmt.Println(f.Pow(0))
	fmt.Println(f.Pow(-2))
	// Output:
	// 8/27 <nil>
	// 1 <nil>
	// 9/4 <nil>
}

func ExampleFraction_Cmp() {
	f := fraction.MustNew(1, 3)
	g := fraction.MustNew(1, 2)
	fmt.Println(f.Cmp(g))
	fmt.Println(g.Cmp(f))
	fmt.Println(f.Cmp(f))
	// Output:
	// -1
	// 1
	// 0
}

func ExampleFraction_Max() {
	f := fraction.MustNew(1, 3)
	g := fraction.MustNew(1, 2)
	fmt.Println(f.Max(g))
	fmt.Println(f.Min(g))
	// Output:
	// 1/2
	// 1/3
}

func ExampleFraction_Round() {
	f := fraction.MustNew(-7, 2)
	g := fraction.MustNew(5, 2)
	fmt.Println(f.Trunc(), f.Floor(), f.Ceil(), f.Round())
	fmt.Println(g.Trunc(), g.Floor(), g.Ceil(), g.Round())
	// Output:
	// -3 -4 -3 -4
	// 2 2 3 2
}

func ExampleFraction_Neg() {
	f := fraction.MustNew(5, 4)
	fmt.Println(f.Neg())
	fmt.Println(f.Neg().Abs())
	// Output:
	// -5/4
	// 5/4
}

func ExampleFraction_Sign() {
	f := fraction.MustNew(-5, 4)
	g := fraction.MustNew(3, 1)
	h := fraction.MustNew(0, 7)
	fmt.Println(f.Sign())
	fmt.Println(g.Sign())
	fmt.Println(h.Sign())
	// Output:
	// -1
	// 1
	// 0
}

func ExampleFraction_IsInt() {
	f := fraction.MustParse("1.00")
	g := fraction.MustParse("1.01")
	fmt.Println(f.IsInt())
	fmt.Println(g.IsInt())
	// Output:
	// true
	// false
}
