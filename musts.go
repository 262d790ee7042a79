package fraction

import "fmt"

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return f
}

// MustParseRatio is like [ParseRatio] but panics if the string cannot be parsed.
func MustParseRatio(s string) Fraction {
	f, err := ParseRatio(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseRatio(%q) failed: %v", s, err))
	}
	return f
}

// MustAdd is like [Fraction.Add] but panics if computing error.
func (f Fraction) MustAdd(e Fraction) Fraction {
	g, err := f.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return g
}

// MustSub is like [Fraction.Sub] but panics if computing error.
func (f Fraction) MustSub(e Fraction) Fraction {
	g, err := f.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return g
}

// MustMul is like [Fraction.Mul] but panics if computing error.
func (f Fraction) MustMul(e Fraction) Fraction {
	g, err := f.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return g
}

// MustQuo is like [Fraction.Quo] but panics if computing error.
func (f Fraction) MustQuo(e Fraction) Fraction {
	g, err := f.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return g
}
