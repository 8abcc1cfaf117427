package wide

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is used as the panic value when Quo, Rem or QuoRem is
// called with a zero divisor. It is detected before any division work
// begins; the operands are untouched.
var ErrDivideByZero = errors.New("wide: division by zero")

// ParseError is returned by FromString and the unmarshalling methods when
// the input is malformed or does not fit in the destination width.
type ParseError struct {
	Input  string
	Base   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wide: cannot parse %q in base %d: %s", e.Input, e.Base, e.Reason)
}
