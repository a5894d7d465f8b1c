package literal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Radix selects how a Value is written back out.
type Radix int

const (
	Decimal Radix = iota
	Hexadecimal
	Binary
)

func (r Radix) base() int {
	switch r {
	case Hexadecimal:
		return 16
	case Binary:
		return 2
	default:
		return 10
	}
}

func (r Radix) prefix() string {
	switch r {
	case Hexadecimal:
		return "0x"
	case Binary:
		return "0b"
	default:
		return ""
	}
}

func (r Radix) String() string {
	switch r {
	case Hexadecimal:
		return "hexadecimal"
	case Binary:
		return "binary"
	default:
		return "decimal"
	}
}

// Value is an unsigned numeric literal that remembers the radix it was
// written in.
type Value struct {
	N     uint64
	Radix Radix
}

// Dec, Hex and Bin build values without going through text.
func Dec(n uint64) Value { return Value{N: n, Radix: Decimal} }
func Hex(n uint64) Value { return Value{N: n, Radix: Hexadecimal} }
func Bin(n uint64) Value { return Value{N: n, Radix: Binary} }

// Parse reads a numeric literal with an optional, case-insensitive 0d/0x/0b
// prefix. Literals without a prefix are decimal.
func Parse(s string) (Value, error) {
	radix := Decimal
	digits := s
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'd', 'D':
			radix, digits = Decimal, s[2:]
		case 'x', 'X':
			radix, digits = Hexadecimal, s[2:]
		case 'b', 'B':
			radix, digits = Binary, s[2:]
		}
	}
	if digits == "" {
		return Value{}, errors.Wrapf(ErrInvalidNumber, "%q has no digits", s)
	}
	for _, c := range digits {
		if !validDigit(c, radix) {
			return Value{}, errors.Wrapf(ErrInvalidNumber, "%q: %q is not a %s digit", s, c, radix)
		}
	}
	n, err := strconv.ParseUint(digits, radix.base(), 64)
	if err != nil {
		return Value{}, errors.Wrapf(ErrInvalidNumber, "%q: %v", s, err)
	}
	return Value{N: n, Radix: radix}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func validDigit(c rune, radix Radix) bool {
	switch radix {
	case Hexadecimal:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	case Binary:
		return c == '0' || c == '1'
	default:
		return c >= '0' && c <= '9'
	}
}

// String renders the canonical form: bare decimal, 0x plus lowercase hex, or
// 0b plus binary digits.
func (v Value) String() string {
	return v.Radix.prefix() + strings.ToLower(strconv.FormatUint(v.N, v.Radix.base()))
}

// With returns n written in the radix of v.
func (v Value) With(n uint64) Value {
	return Value{N: n, Radix: v.Radix}
}

func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
