package pdf

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	DecodeError ErrorKind = iota + 1
	InvalidPageError
	ConversionError
	ExtractionError
)

func (k ErrorKind) String() string {
	switch k {
	case DecodeError:
		return "DecodeError"
	case InvalidPageError:
		return "InvalidPageError"
	case ConversionError:
		return "ConversionError"
	case ExtractionError:
		return "ExtractionError"
	default:
		return "UnknownError"
	}
}

// Error is returned by every operation in this package. Err holds the library
// failure, or a message describing the rejected input.
type Error struct {
	Kind ErrorKind
	Page int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func invalidPage(page int) *Error {
	return &Error{
		Kind: InvalidPageError,
		Page: page,
		Err:  fmt.Errorf("Número de página inválido. Não foi possível acessar a página %d.", page),
	}
}

func KindOf(err error) ErrorKind {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind
	}
	return 0
}
