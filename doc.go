/*
Package fraction implements immutable exact rational numbers.
It is designed for calculations where decimal inputs such as 0.1 must be
combined without any rounding error.

# Representation

[Fraction] is a struct with three fields:

  - Sign: a boolean indicating whether the fraction is negative.
  - Numerator: an unsigned integer holding the absolute value of the numerator.
  - Denominator: a positive integer.

The numerical value of a fraction is calculated as:

  - -Numerator / Denominator, if Sign is true.
  - Numerator / Denominator, if Sign is false.

Every fraction is kept in canonical form: the numerator and the denominator
have no common divisor other than 1, and zero is always represented as 0/1.
Consequently, each numeric value has exactly one representation, and
fractions can be compared with the == operator or used as map keys.

# Constraints

The absolute value of the numerator and the value of the denominator
range from 0 to [MaxNum] and from 1 to [MaxDen] respectively, which is
9,223,372,036,854,775,807 in both cases.
The limits are checked after reduction, so intermediate values may be much
larger.

# Conversions

The package provides methods for converting fractions:

  - from/to string:
    [Parse], [ParseRatio], [Fraction.String], [Fraction.FloatString], [Fraction.Format].
  - from/to float64:
    [NewFromFloat64], [Fraction.Float64].
  - from/to int64:
    [New], [NewFromInt64], [Fraction.Num], [Fraction.Den].

Conversion to float64 is lossy: 1/10 and 1/3 have no exact binary
representation.

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the reduced result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated using [big.Int] arithmetic.
    The exact result is reduced to lowest terms.
    If the reduced numerator or denominator does not fit, an overflow error
    is returned.

Results are never rounded. An operation either returns the exact result
or an error.

Integers can be combined with fractions using [Fraction.AddInt64],
[Fraction.SubInt64], [Fraction.MulInt64] and [Fraction.QuoInt64].

# Errors

All methods are panic-free and pure, except for the Must* helpers.
Errors are returned in the following cases:

  - Division by Zero.
    [New] with a zero denominator, [Fraction.Quo] and [Fraction.Inv] with a zero
    divisor, and [Fraction.Pow] of zero with a negative exponent return
    [ErrDivisionByZero].

  - Invalid Format.
    [Parse] and [ParseRatio] return [ErrInvalidFormat] if the string does not
    match the grammar.

  - Overflow.
    Unlike standard integers, there is no "wrap around" for fractions.
    For out-of-range values, operations return [ErrOverflow].

Errors are wrapped with the failing operation, so they should be checked
with [errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package fraction
