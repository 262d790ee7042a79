package fraction

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
// It holds the magnitude of a numerator or a denominator.
type fint uint64

// maxFint is a maximum value of fint.
const maxFint = math.MaxInt64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
func (x fint) quoRem(y fint) (q, r fint, ok bool) {
	if y == 0 {
		return 0, 0, false
	}
	q = x / y
	r = x - q*y
	return q, r, true
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// gcd calculates the greatest common divisor of x and y.
// gcd(0, y) is y, gcd(0, 0) is 0.
func (x fint) gcd(y fint) fint {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// lsh (Left Shift) calculates x * 10^shift and checks overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case shift <= 0:
		return x, true
	case shift == 1 && x < maxFint/10: // to speed up common case
		return x * 10, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	y := pow10[shift]
	return x.mul(y)
}

// fsa (Fused Shift and Addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

// cmpMul compares x * y with u * v without overflow and returns:
//
//	-1 if x * y < u * v
//	 0 if x * y == u * v
//	+1 if x * y > u * v
func cmpMul(x, y, u, v fint) int {
	hi1, lo1 := bits.Mul64(uint64(x), uint64(y))
	hi2, lo2 := bits.Mul64(uint64(u), uint64(v))
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return 1
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return 1
	}
	return 0
}

// isPow2 returns true if x is a power of two.
func (x fint) isPow2() bool {
	return x != 0 && bits.OnesCount64(uint64(x)) == 1
}

// bitLen returns the number of bits required to represent x.
func (x fint) bitLen() int {
	return bits.Len64(uint64(x))
}

// bint (Big INTeger) is a wrapper around big.Int.
// It is used on the slow path, when the magnitudes of intermediate results
// do not fit into fint.
type bint big.Int

// mustParseBint converts a string to *big.Int, panicking on error.
// Use only for package variable initialization and test code!
func mustParseBint(s string) *bint {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Errorf("mustParseBint(%q) failed: parsing error", s))
	}
	if z.Sign() < 0 {
		panic(fmt.Errorf("mustParseBint(%q) failed: negative number", s))
	}
	return (*bint)(z)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// fint converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	f := (*big.Int)(z).Uint64()
	return fint(f)
}

// isFint returns true if z can be represented as fint without overflow.
func (z *bint) isFint() bool {
	b := (*big.Int)(z)
	return b.IsUint64() && b.Uint64() <= maxFint
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = |x - y|.
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
	default:
		(*big.Int)(z).Sub((*big.Int)(y), (*big.Int)(x))
	}
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = ⌊x / y⌋.
func (z *bint) quo(x, y *bint) {
	(*big.Int)(z).Quo((*big.Int)(x), (*big.Int)(y))
}

// gcd calculates z = gcd(x, y).
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// pow10 calculates z = 10^power.
func (z *bint) pow10(power int) {
	x := big.NewInt(10)
	y := big.NewInt(int64(power))
	(*big.Int)(z).Exp(x, y, nil)
}

// setDigits sets z to the value of a string of decimal digits.
func (z *bint) setDigits(digs []byte) {
	if _, ok := (*big.Int)(z).SetString(string(digs), 10); !ok {
		panic(fmt.Sprintf("setDigits(%q) failed: parsing error", digs))
	}
}

// bpool is a cache of reusable *big.Int instances.
var bpool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return bpool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	bpool.Put(b)
}
