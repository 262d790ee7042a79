package fraction

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Fraction type is a representation of an exact rational number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A fraction is always kept in canonical form:
//
//   - Numerator: a signed integer that carries the sign of the fraction.
//   - Denominator: a positive integer.
//   - Numerator and denominator have no common divisor other than 1.
//
// For example, New(2, -4) is stored as -1/2, and New(0, 5) is stored as 0/1.
// Since every value has exactly one representation, two fractions are
// numerically equal if and only if they are equal according to the == operator.
type Fraction struct {
	neg bool // indicates whether the fraction is negative
	num fint // the absolute value of the numerator
	den fint // the denominator minus one, so that the zero value is 0/1
}

const (
	MaxNum = maxFint // maximum absolute value of the numerator
	MaxDen = maxFint // maximum value of the denominator
)

var (
	NegOne = MustNew(-1, 1) // NegOne represents the fraction value of -1.
	Zero   = MustNew(0, 1)  // Zero represents the fraction value of 0.
	One    = MustNew(1, 1)  // One represents the fraction value of 1.
	Two    = MustNew(2, 1)  // Two represents the fraction value of 2.
	Ten    = MustNew(10, 1) // Ten represents the fraction value of 10.
	Half   = MustNew(1, 2)  // Half represents the fraction value of 1/2.
)

var (
	// ErrDivisionByZero is returned when a zero denominator or a zero divisor
	// is encountered.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidFormat is returned when a string or a binary value does not
	// represent a fraction.
	ErrInvalidFormat = errors.New("invalid fraction")
	// ErrOverflow is returned when the numerator or the denominator of
	// the reduced result exceeds [MaxNum] or [MaxDen].
	ErrOverflow = errors.New("fraction overflow")
)

// newFraction reduces num/den and checks the range of the result.
func newFraction(neg bool, num, den fint) (Fraction, error) {
	switch {
	case den == 0:
		return Fraction{}, ErrDivisionByZero
	case num == 0:
		return Fraction{}, nil
	}
	if g := num.gcd(den); g != 1 {
		num, den = num/g, den/g
	}
	if num > maxFint || den > maxFint {
		return Fraction{}, ErrOverflow
	}
	return Fraction{neg: neg, num: num, den: den - 1}, nil
}

// newFractionFromBint reduces num/den and checks the range of the result.
// The values of num and den are modified.
func newFractionFromBint(neg bool, num, den *bint) (Fraction, error) {
	switch {
	case den.sign() == 0:
		return Fraction{}, ErrDivisionByZero
	case num.sign() == 0:
		return Fraction{}, nil
	}
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	num.quo(num, g)
	den.quo(den, g)
	if !num.isFint() || !den.isFint() {
		return Fraction{}, ErrOverflow
	}
	return newFraction(neg, num.fint(), den.fint())
}

// New returns a fraction equal to num / den in canonical form.
// The sign is moved to the numerator and both parts are divided by their
// greatest common divisor.
//
// New returns an error if:
//   - den is 0;
//   - the reduced numerator or denominator is equal to math.MinInt64.
func New(num, den int64) (Fraction, error) {
	neg := (num < 0) != (den < 0)
	return newFraction(neg, absInt64(num), absInt64(den))
}

// absInt64 returns |x| as fint, including math.MinInt64.
func absInt64(x int64) fint {
	if x < 0 {
		return fint(-uint64(x))
	}
	return fint(x)
}

// NewFromInt64 converts an integer to a fraction with denominator 1.
// See also method [Fraction.Num].
func NewFromInt64(n int64) (Fraction, error) {
	return New(n, 1)
}

// NewFromFloat64 converts a float to a fraction.
// The result is the fraction of the shortest decimal representation
// of f that round-trips, so 0.1 is converted to 1/10.
// See also method [Fraction.Float64].
//
// NewFromFloat64 returns an error if:
//   - the float is a special value (NaN or Inf);
//   - the numerator or the denominator of the result does not fit.
func NewFromFloat64(f float64) (Fraction, error) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	g, err := Parse(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return g, nil
}

// Parse converts a decimal string to an exact fraction.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	.5
//	5.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// At least one digit must be present.
// A string with k digits after the decimal point is converted to
// (integer part * 10^k + fractional part) / 10^k and then reduced,
// so "0.25" is parsed as 1/4 and "-0.1" as -1/10.
// See also [ParseRatio] for the "n/d" format.
//
// Parse returns an error if:
//   - the string does not represent a valid decimal number;
//   - the numerator or the denominator of the reduced result does not fit.
func Parse(s string) (Fraction, error) {
	f, err := parseFint(s)
	if err != nil {
		f, err = parseBint(s)
		if err != nil {
			return Fraction{}, err
		}
	}
	return f, nil
}

// parseFint parses short strings using uint64 arithmetic.
func parseFint(s string) (Fraction, error) {
	var (
		pos     int
		width   int
		neg     bool
		num     fint
		scale   int
		hasdigs bool
		ok      bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		hasdigs = true
		num, ok = num.fsa(1, s[pos]-'0')
		if !ok {
			return Fraction{}, ErrOverflow
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			hasdigs = true
			if scale >= len(pow10)-1 {
				return Fraction{}, ErrOverflow
			}
			num, ok = num.fsa(1, s[pos]-'0')
			if !ok {
				return Fraction{}, ErrOverflow
			}
			scale++
			pos++
		}
	}

	if pos != width {
		return Fraction{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if !hasdigs {
		return Fraction{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	return newFraction(neg, num, pow10[scale])
}

// parseBint parses strings of any length using big.Int arithmetic.
func parseBint(s string) (Fraction, error) {
	var (
		pos   int
		width int
		neg   bool
		digs  []byte
		scale int
	)

	width = len(s)
	digs = make([]byte, 0, width)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && isDigit(s[pos]) {
		digs = append(digs, s[pos])
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && isDigit(s[pos]) {
			digs = append(digs, s[pos])
			scale++
			pos++
		}
	}

	if pos != width {
		return Fraction{}, fmt.Errorf("invalid character %q: %w", s[pos], ErrInvalidFormat)
	}
	if len(digs) == 0 {
		return Fraction{}, fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}

	num := getBint()
	defer putBint(num)
	num.setDigits(digs)

	den := getBint()
	defer putBint(den)
	den.pow10(scale)

	return newFractionFromBint(neg, num, den)
}

// ParseRatio converts a string in the "n/d" format to a fraction.
// This is the format produced by [Fraction.String] for non-integer values.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign         ::= '+' | '-'
//	digits       ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	ratio-string ::= [sign] digits '/' digits
//
// Both parts must have at least one digit.
// The ratio does not need to be in lowest terms, but the result will be.
//
// ParseRatio returns an error if:
//   - the string does not represent a valid ratio;
//   - the denominator is 0;
//   - the numerator or the denominator of the reduced result does not fit.
func ParseRatio(s string) (Fraction, error) {
	var neg bool
	switch {
	case s == "":
		// skip
	case s[0] == '-':
		neg = true
		s = s[1:]
	case s[0] == '+':
		s = s[1:]
	}

	nums, dens, found := strings.Cut(s, "/")
	if !found {
		return Fraction{}, fmt.Errorf("no separator: %w", ErrInvalidFormat)
	}
	if err := checkDigits(nums); err != nil {
		return Fraction{}, fmt.Errorf("numerator: %w", err)
	}
	if err := checkDigits(dens); err != nil {
		return Fraction{}, fmt.Errorf("denominator: %w", err)
	}

	// Fast path
	num, nok := parseDigits(nums)
	den, dok := parseDigits(dens)
	if nok && dok {
		return newFraction(neg, num, den)
	}

	// Slow path
	bnum := getBint()
	defer putBint(bnum)
	bnum.setDigits([]byte(nums))

	bden := getBint()
	defer putBint(bden)
	bden.setDigits([]byte(dens))

	return newFractionFromBint(neg, bnum, bden)
}

// checkDigits returns an error if s is empty or has a non-digit character.
func checkDigits(s string) error {
	if s == "" {
		return fmt.Errorf("no digits: %w", ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return fmt.Errorf("invalid character %q: %w", s[i], ErrInvalidFormat)
		}
	}
	return nil
}

// parseDigits converts a string of digits to fint.
// It returns false if the value overflows.
func parseDigits(s string) (fint, bool) {
	var (
		x  fint
		ok bool
	)
	for i := 0; i < len(s); i++ {
		x, ok = x.fsa(1, s[i]-'0')
		if !ok {
			return 0, false
		}
	}
	return x, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// parseText accepts both the decimal and the ratio formats.
func parseText(s string) (Fraction, error) {
	if strings.IndexByte(s, '/') >= 0 {
		return ParseRatio(s)
	}
	return Parse(s)
}

// String method implements the [fmt.Stringer] interface and returns
// an exact string representation of a fraction.
// Integers are formatted without a denominator.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	numeric-string ::= [sign] digits [ '/' digits ]
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	var (
		buf [41]byte
		pos int
	)

	pos = len(buf) - 1

	// Denominator
	if !f.IsInt() {
		pos = putDigits(buf[:], pos, f.denom())
		buf[pos] = '/'
		pos--
	}

	// Numerator
	pos = putDigits(buf[:], pos, f.num)

	// Sign
	if f.IsNeg() {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// putDigits writes decimal digits of x right to left, ending at pos.
// It returns the position before the first digit.
func putDigits(buf []byte, pos int, x fint) int {
	for {
		buf[pos] = byte(x%10) + '0'
		pos--
		x /= 10
		if x == 0 {
			return pos
		}
	}
}

// FloatString returns a decimal representation of f with prec digits after
// the decimal point.
// The last digit is rounded to nearest, with halves rounded away from zero.
// Negative prec is treated as 0.
// Unlike [Fraction.String], the result is an approximation.
func (f Fraction) FloatString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	s := big.NewRat(f.Num(), f.Den()).FloatString(prec)
	// Values rounded to zero are printed without a sign.
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}
	return s
}

// exactScale returns the number of digits after the decimal point
// required to represent f exactly.
// It returns false if the decimal expansion of f does not terminate.
func (f Fraction) exactScale() (int, bool) {
	den := uint64(f.denom())
	twos := bits.TrailingZeros64(den)
	den >>= twos
	fives := 0
	for den%5 == 0 {
		den /= 5
		fives++
	}
	if den != 1 {
		return 0, false
	}
	return max(twos, fives), true
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -5/4
//	%q:    "-5/4"
//	%f:     -1.25
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f verb.
// The default precision is the number of digits required to represent
// the fraction exactly, or 6 if its decimal expansion does not terminate.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction) Format(state fmt.State, verb rune) {
	var body string

	// Digits
	switch verb {
	case 'f', 'F':
		prec, ok := state.Precision()
		if !ok {
			prec, ok = f.exactScale()
			if !ok {
				prec = 6
			}
		}
		body = f.Abs().FloatString(prec)
	default:
		body = f.Abs().String()
	}

	// Arithmetic sign
	// Values rounded to zero are printed without a minus sign.
	neg := f.IsNeg() && strings.Trim(body, "0.") != ""
	rsign := 0
	if neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(body) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = appendRepeat(buf, ' ', lspaces)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case neg:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, body...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fraction.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, c)
	}
	return buf
}

// Float64 returns the nearest binary floating-point number rounded
// using [rounding half to even] (banker's rounding).
// The conversion is lossy: exact is false if the result differs from f,
// for example, for 1/10 or 1/3.
// See also constructor [NewFromFloat64].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (f Fraction) Float64() (g float64, exact bool) {
	num, den := f.num, f.denom()

	// Fast path: both parts are exact floats, so the quotient is
	// correctly rounded.
	if num.bitLen() <= 53 && den.bitLen() <= 53 {
		g = float64(num) / float64(den)
		if f.IsNeg() {
			g = -g
		}
		return g, den.isPow2()
	}

	// Slow path
	return big.NewRat(f.Num(), f.Den()).Float64()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Both the decimal and the ratio formats are accepted.
// See also constructors [Parse] and [ParseRatio].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (f *Fraction) UnmarshalText(text []byte) error {
	var err error
	*f, err = parseText(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Fraction.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also method [Fraction.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (f *Fraction) UnmarshalBinary(data []byte) error {
	num, n := binary.Varint(data)
	if n <= 0 {
		return fmt.Errorf("reading numerator: %w", ErrInvalidFormat)
	}
	den, m := binary.Uvarint(data[n:])
	if m <= 0 {
		return fmt.Errorf("reading denominator: %w", ErrInvalidFormat)
	}
	if n+m != len(data) {
		return fmt.Errorf("trailing bytes: %w", ErrInvalidFormat)
	}
	if den > maxFint {
		return ErrOverflow
	}
	var err error
	*f, err = New(num, int64(den))
	return err
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The numerator is encoded as a varint and the denominator as an uvarint,
// see [binary.AppendVarint].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
// [binary.AppendVarint]: https://pkg.go.dev/encoding/binary#AppendVarint
func (f Fraction) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, 2*binary.MaxVarintLen64)
	buf = binary.AppendVarint(buf, f.Num())
	buf = binary.AppendUvarint(buf, uint64(f.denom()))
	return buf, nil
}

// Scan implements the [sql.Scanner] interface.
// Strings and byte slices may use the decimal or the ratio format.
// Floats are converted with [NewFromFloat64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (f *Fraction) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*f, err = parseText(value)
	case []byte:
		*f, err = parseText(string(value))
	case int64:
		*f, err = NewFromInt64(value)
	case float64:
		*f, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Fraction{}, ErrInvalidFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Fractions are stored as strings in the ratio format.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (f Fraction) Value() (driver.Value, error) {
	return f.String(), nil
}

// NullFraction represents a fraction that can be null.
// Its zero value is null.
// NullFraction is not thread-safe.
type NullFraction struct {
	Fraction Fraction
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Fraction.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullFraction) Scan(value any) error {
	if value == nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return nil
	}
	err := n.Fraction.Scan(value)
	if err != nil {
		n.Fraction = Fraction{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Fraction.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullFraction) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Fraction.Value()
}

// denom returns the actual denominator of f.
func (f Fraction) denom() fint {
	return f.den + 1
}

// Num returns the numerator of the fraction.
// The numerator carries the sign of the fraction.
func (f Fraction) Num() int64 {
	if f.IsNeg() {
		return -int64(f.num)
	}
	return int64(f.num)
}

// Den returns the denominator of the fraction.
// The denominator is always positive.
func (f Fraction) Den() int64 {
	return int64(f.denom())
}

// IsInt returns true if the denominator of f is 1.
func (f Fraction) IsInt() bool {
	return f.den == 0
}

// IsOne returns true if f == -1 or f == 1.
func (f Fraction) IsOne() bool {
	return f.num == 1 && f.IsInt()
}

// Trunc returns the integer part of f, rounded towards zero.
func (f Fraction) Trunc() Fraction {
	q, _, _ := f.num.quoRem(f.denom())
	return Fraction{neg: f.neg && q != 0, num: q}
}

// Floor returns the largest integer less than or equal to f.
func (f Fraction) Floor() Fraction {
	q, r, _ := f.num.quoRem(f.denom())
	if f.IsNeg() && r != 0 {
		q++
	}
	return Fraction{neg: f.neg && q != 0, num: q}
}

// Ceil returns the smallest integer greater than or equal to f.
func (f Fraction) Ceil() Fraction {
	q, r, _ := f.num.quoRem(f.denom())
	if !f.IsNeg() && r != 0 {
		q++
	}
	return Fraction{neg: f.neg && q != 0, num: q}
}

// Round returns the integer nearest to f, using [rounding half to even].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (f Fraction) Round() Fraction {
	den := f.denom()
	q, r, _ := f.num.quoRem(den)
	// r < den <= maxFint, so 2 * r does not overflow
	switch r2 := 2 * r; {
	case r2 > den:
		q++
	case r2 == den && q%2 == 1:
		q++
	}
	return Fraction{neg: f.neg && q != 0, num: q}
}

// Neg returns a fraction with opposite sign.
func (f Fraction) Neg() Fraction {
	if f.IsZero() {
		return f
	}
	return Fraction{neg: !f.neg, num: f.num, den: f.den}
}

// Abs returns the absolute value of f.
func (f Fraction) Abs() Fraction {
	return Fraction{num: f.num, den: f.den}
}

// CopySign returns f with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (f Fraction) CopySign(e Fraction) Fraction {
	switch {
	case e.IsZero():
		return f
	case f.IsNeg() != e.IsNeg():
		return f.Neg()
	default:
		return f
	}
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f == 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	switch {
	case f.neg:
		return -1
	case f.num == 0:
		return 0
	}
	return 1
}

// IsPos returns true if f > 0.
func (f Fraction) IsPos() bool {
	return f.num != 0 && !f.neg
}

// IsNeg returns true if f < 0.
func (f Fraction) IsNeg() bool {
	return f.neg
}

// IsZero returns true if f == 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// inv swaps the numerator and the denominator of a non-zero fraction.
func (f Fraction) inv() Fraction {
	return Fraction{neg: f.neg, num: f.denom(), den: f.num - 1}
}

// Inv returns the reciprocal of f, 1 / f.
//
// Inv returns an error if f is 0.
func (f Fraction) Inv() (Fraction, error) {
	if f.IsZero() {
		return Fraction{}, fmt.Errorf("computing [1 / %v]: %w", f, ErrDivisionByZero)
	}
	return f.inv(), nil
}

// Add returns the exact sum of f and e.
//
// Add returns an error if the numerator or the denominator of the sum
// exceeds [MaxNum] or [MaxDen].
func (f Fraction) Add(e Fraction) (Fraction, error) {
	g, err := add(f, e)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, e, err)
	}
	return g, nil
}

// Sub returns the exact difference of f and e.
//
// Sub returns an error if the numerator or the denominator of the difference
// exceeds [MaxNum] or [MaxDen].
func (f Fraction) Sub(e Fraction) (Fraction, error) {
	g, err := add(f, e.Neg())
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, e, err)
	}
	return g, nil
}

func add(f, e Fraction) (Fraction, error) {
	g, err := f.addFint(e)
	if err != nil {
		g, err = f.addBint(e)
		if err != nil {
			return Fraction{}, err
		}
	}
	return g, nil
}

// addFint computes the sum using uint64 arithmetic.
// The common factor of the denominators is removed up front to keep
// intermediate products small.
func (f Fraction) addFint(e Fraction) (Fraction, error) {
	var (
		fnum, fden fint
		enum, eden fint
		num, den   fint
		neg        bool
		ok         bool
	)

	fnum, fden = f.num, f.denom()
	enum, eden = e.num, e.denom()

	// Alignment
	g := fden.gcd(eden)
	fnum, ok = fnum.mul(eden / g)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	enum, ok = enum.mul(fden / g)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = fden.mul(eden / g)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	// Sign
	if enum < fnum {
		neg = f.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Numerator
	if f.IsNeg() != e.IsNeg() {
		num = fnum.dist(enum)
	} else {
		num, ok = fnum.add(enum)
		if !ok {
			return Fraction{}, ErrOverflow
		}
	}

	return newFraction(neg, num, den)
}

// addBint computes the sum using big.Int arithmetic.
func (f Fraction) addBint(e Fraction) (Fraction, error) {
	var (
		fnum, fden *bint
		enum, eden *bint
		neg        bool
	)

	fnum, fden = getBint(), getBint()
	defer putBint(fnum)
	defer putBint(fden)
	enum, eden = getBint(), getBint()
	defer putBint(enum)
	defer putBint(eden)

	fnum.setFint(f.num)
	fden.setFint(f.denom())
	enum.setFint(e.num)
	eden.setFint(e.denom())

	// Alignment
	fnum.mul(fnum, eden)
	enum.mul(enum, fden)
	fden.mul(fden, eden)

	// Sign
	if fnum.cmp(enum) > 0 {
		neg = f.IsNeg()
	} else {
		neg = e.IsNeg()
	}

	// Numerator
	if f.IsNeg() != e.IsNeg() {
		fnum.dist(fnum, enum)
	} else {
		fnum.add(fnum, enum)
	}

	return newFractionFromBint(neg, fnum, fden)
}

// Mul returns the exact product of f and e.
//
// Mul returns an error if the numerator or the denominator of the product
// exceeds [MaxNum] or [MaxDen].
func (f Fraction) Mul(e Fraction) (Fraction, error) {
	g, err := mul(f, e)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, e, err)
	}
	return g, nil
}

// Quo returns the exact quotient of f and e.
//
// Quo returns an error if:
//   - e is 0;
//   - the numerator or the denominator of the quotient exceeds [MaxNum] or [MaxDen].
func (f Fraction) Quo(e Fraction) (Fraction, error) {
	if e.IsZero() {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, e, ErrDivisionByZero)
	}
	g, err := mul(f, e.inv())
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, e, err)
	}
	return g, nil
}

func mul(f, e Fraction) (Fraction, error) {
	g, err := f.mulFint(e)
	if err != nil {
		g, err = f.mulBint(e)
		if err != nil {
			return Fraction{}, err
		}
	}
	return g, nil
}

// mulFint computes the product using uint64 arithmetic.
// Both operands are in lowest terms, so only the cross factors can cancel.
func (f Fraction) mulFint(e Fraction) (Fraction, error) {
	var (
		fnum, fden fint
		enum, eden fint
		num, den   fint
		ok         bool
	)

	fnum, fden = f.num, f.denom()
	enum, eden = e.num, e.denom()

	// Cross reduction
	if g := fnum.gcd(eden); g > 1 {
		fnum, eden = fnum/g, eden/g
	}
	if g := enum.gcd(fden); g > 1 {
		enum, fden = enum/g, fden/g
	}

	// Product
	num, ok = fnum.mul(enum)
	if !ok {
		return Fraction{}, ErrOverflow
	}
	den, ok = fden.mul(eden)
	if !ok {
		return Fraction{}, ErrOverflow
	}

	return newFraction(f.IsNeg() != e.IsNeg(), num, den)
}

// mulBint computes the product using big.Int arithmetic.
func (f Fraction) mulBint(e Fraction) (Fraction, error) {
	var (
		num, den *bint
		tmp      *bint
	)

	num, den, tmp = getBint(), getBint(), getBint()
	defer putBint(num)
	defer putBint(den)
	defer putBint(tmp)

	// Numerator
	num.setFint(f.num)
	tmp.setFint(e.num)
	num.mul(num, tmp)

	// Denominator
	den.setFint(f.denom())
	tmp.setFint(e.denom())
	den.mul(den, tmp)

	return newFractionFromBint(f.IsNeg() != e.IsNeg(), num, den)
}

// AddInt64 returns the exact sum of f and n.
// See also methods [Fraction.Add] and [NewFromInt64].
func (f Fraction) AddInt64(n int64) (Fraction, error) {
	e, err := NewFromInt64(n)
	if err != nil {
		return Fraction{}, err
	}
	return f.Add(e)
}

// SubInt64 returns the exact difference of f and n.
// See also methods [Fraction.Sub] and [NewFromInt64].
func (f Fraction) SubInt64(n int64) (Fraction, error) {
	e, err := NewFromInt64(n)
	if err != nil {
		return Fraction{}, err
	}
	return f.Sub(e)
}

// MulInt64 returns the exact product of f and n.
// See also methods [Fraction.Mul] and [NewFromInt64].
func (f Fraction) MulInt64(n int64) (Fraction, error) {
	e, err := NewFromInt64(n)
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(e)
}

// QuoInt64 returns the exact quotient of f and n.
// See also methods [Fraction.Quo] and [NewFromInt64].
func (f Fraction) QuoInt64(n int64) (Fraction, error) {
	e, err := NewFromInt64(n)
	if err != nil {
		return Fraction{}, err
	}
	return f.Quo(e)
}

// Pow returns f raised to the power of exp.
// Negative powers are computed as powers of the reciprocal.
//
// Pow returns an error if:
//   - f is 0 and exp is negative;
//   - the numerator or the denominator of the result exceeds [MaxNum] or [MaxDen].
func (f Fraction) Pow(exp int) (Fraction, error) {
	g, err := f.pow(exp)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v^%v]: %w", f, exp, err)
	}
	return g, nil
}

func (f Fraction) pow(exp int) (Fraction, error) {
	var (
		base Fraction
		res  Fraction
		pow  uint64
		err  error
	)

	base = f
	pow = uint64(exp)
	if exp < 0 {
		if f.IsZero() {
			return Fraction{}, ErrDivisionByZero
		}
		base = f.inv()
		pow = -pow
	}

	// Exponentiation by squaring
	res = One
	for ; pow > 0; pow >>= 1 {
		if pow&1 == 1 {
			res, err = mul(res, base)
			if err != nil {
				return Fraction{}, err
			}
		}
		if pow > 1 {
			base, err = mul(base, base)
			if err != nil {
				return Fraction{}, err
			}
		}
	}
	return res, nil
}

// Cmp compares f and e numerically and returns:
//
//	-1 if f < e
//	 0 if f == e
//	+1 if f > e
func (f Fraction) Cmp(e Fraction) int {
	// Special case: different signs
	switch {
	case e.Sign() < f.Sign():
		return 1
	case f.Sign() < e.Sign():
		return -1
	}

	// General case
	r := cmpMul(f.num, e.denom(), e.num, f.denom())
	if f.IsNeg() {
		return -r
	}
	return r
}

// CmpAbs compares absolute values of f and e and returns:
//
//	-1 if |f| < |e|
//	 0 if |f| == |e|
//	+1 if |f| > |e|
func (f Fraction) CmpAbs(e Fraction) int {
	return cmpMul(f.num, e.denom(), e.num, f.denom())
}

// Equal returns true if f == e.
// It is equivalent to the == operator.
func (f Fraction) Equal(e Fraction) bool {
	return f == e
}

// Less returns true if f < e.
func (f Fraction) Less(e Fraction) bool {
	return f.Cmp(e) < 0
}

// Max returns the larger of f and e.
func (f Fraction) Max(e Fraction) Fraction {
	if f.Cmp(e) >= 0 {
		return f
	}
	return e
}

// Min returns the smaller of f and e.
func (f Fraction) Min(e Fraction) Fraction {
	if f.Cmp(e) <= 0 {
		return f
	}
	return e
}
