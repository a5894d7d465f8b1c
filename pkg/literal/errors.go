package literal

import "github.com/pkg/errors"

var (
	// ErrInvalidNumber is returned for empty digit bodies, digits outside
	// the radix and values that do not fit in 64 bits.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidAddress is returned for address strings that are not
	// "auto", "<value>" or "<value>:stride:<count>[:<increment>]".
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidPosition is returned for field positions that are not
	// "<bit>" or "<msb>:<lsb>".
	ErrInvalidPosition = errors.New("invalid field position")
)
