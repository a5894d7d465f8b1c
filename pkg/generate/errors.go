package generate

import "errors"

var (
	// ErrUnknownProtocol means an interface names a protocol the catalog
	// does not have.
	ErrUnknownProtocol = errors.New("generate: unknown protocol")
	// ErrFieldPosition means a field's msb is below its lsb.
	ErrFieldPosition = errors.New("generate: msb below lsb")
)

// BuildError locates a build failure in the source model. Page is the path
// of the offending element, such as interfaces/spi.
type BuildError struct {
	Page    string
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	return e.Page + ": " + e.Message
}

func (e *BuildError) Unwrap() error { return e.Err }

func buildError(page string, err error) *BuildError {
	return &BuildError{Page: page, Message: err.Error(), Err: err}
}
