package model

import (
	"errors"
	"fmt"

	"github.com/sarchlab/rtlsim/axi"
	"github.com/sarchlab/rtlsim/bits"
)

// SignalRangeError reports an input value wider than its declared signal.
type SignalRangeError = bits.RangeError

// BackendAssertionError reports that the wrapped generated model detected
// a violation of one of its own invariants during Eval.
type BackendAssertionError struct {
	Backend string
	Err     error
}

func (e *BackendAssertionError) Error() string {
	return fmt.Sprintf("%s: backend assertion failed: %v", e.Backend, e.Err)
}

func (e *BackendAssertionError) Unwrap() error {
	return e.Err
}

// FitInputs applies the width policy to an AXI input snapshot for the named
// port. Range errors name the offending signal as <port>.<field>.
func FitInputs(port string, in axi.Inputs, p bits.Policy) (axi.Inputs, error) {
	fitted, err := in.Fit(p)

	var rangeErr *bits.RangeError
	if errors.As(err, &rangeErr) {
		return axi.Inputs{}, &SignalRangeError{
			Signal: port + "." + rangeErr.Signal,
			Width:  rangeErr.Width,
			Value:  rangeErr.Value,
		}
	}

	return fitted, err
}
