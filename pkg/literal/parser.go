package literal

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
)

var (
	addressParser = participle.MustBuild[addressExpr](
		participle.Lexer(ExprLexer),
		participle.UseLookahead(2),
	)
	positionParser = participle.MustBuild[positionExpr](
		participle.Lexer(ExprLexer),
	)
)

// ParseAddress reads an address in the colon-delimited text form.
func ParseAddress(s string) (Address, error) {
	expr, err := addressParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %v", s, err)
	}
	if expr.Auto {
		return Auto{}, nil
	}

	base, err := Parse(expr.Fixed.Base)
	if err != nil {
		return nil, errors.Wrapf(err, "address %q", s)
	}
	if expr.Fixed.Stride == nil {
		return Fixed{Base: base}, nil
	}

	count, err := Parse(expr.Fixed.Stride.Count)
	if err != nil {
		return nil, errors.Wrapf(err, "address %q: stride count", s)
	}
	strided := Strided{Base: base, Count: count}
	if expr.Fixed.Stride.Increment != nil {
		inc, err := Parse(*expr.Fixed.Stride.Increment)
		if err != nil {
			return nil, errors.Wrapf(err, "address %q: stride increment", s)
		}
		strided.Increment = &inc
	}
	return strided, nil
}

// ParsePosition reads a field position, either "<bit>" or "<msb>:<lsb>".
func ParsePosition(s string) (Position, error) {
	expr, err := positionParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidPosition, "%q: %v", s, err)
	}
	msb, err := Parse(expr.Msb)
	if err != nil {
		return nil, errors.Wrapf(err, "position %q", s)
	}
	if expr.Lsb == nil {
		return Bit{N: msb}, nil
	}
	lsb, err := Parse(*expr.Lsb)
	if err != nil {
		return nil, errors.Wrapf(err, "position %q", s)
	}
	return Range{Msb: msb, Lsb: lsb}, nil
}
