package bits

import (
	"fmt"
	"strings"
)

// RangeError reports a value that does not fit the declared width of a
// signal.
type RangeError struct {
	Signal string
	Width  int
	Value  uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("signal %s: value 0x%x does not fit in %d bits",
		e.Signal, e.Value, e.Width)
}

// Policy decides what happens when a value is wider than its signal.
type Policy int

const (
	// Reject fails the conversion with a *RangeError.
	Reject Policy = iota
	// Truncate drops the high bits silently.
	Truncate
	// Saturate clamps to the largest representable value.
	Saturate
)

var policyNames = map[Policy]string{
	Reject:   "reject",
	Truncate: "truncate",
	Saturate: "saturate",
}

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}

	return Reject, fmt.Errorf("unknown width policy %q", name)
}

func (p Policy) String() string {
	if n, ok := policyNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	_, ok := policyNames[p]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid width policy %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}

// Fit applies the policy to v for a width-bit signal. Values that already
// fit are returned unchanged under every policy.
func (p Policy) Fit(signal string, width int, v uint64) (uint64, error) {
	if Fits(width, v) {
		return v, nil
	}

	switch p {
	case Truncate:
		return v & Mask(width), nil
	case Saturate:
		return Mask(width), nil
	default:
		return 0, &RangeError{Signal: signal, Width: width, Value: v}
	}
}

// Convert is Fit followed by New.
func (p Policy) Convert(signal string, width int, v uint64) (UInt, error) {
	fitted, err := p.Fit(signal, width, v)
	if err != nil {
		return UInt{}, err
	}
	return New(width, fitted), nil
}
