// Package bits provides fixed-width unsigned bit vectors as used by
// generated RTL models, where every signal carries an explicit width.
package bits

import "fmt"

// MaxWidth is the widest vector that fits in a single machine word.
const MaxWidth = 64

// UInt is an unsigned bit vector of 1 to 64 bits.
// The zero value is a 0-bit vector; use New or FromBool to build one.
type UInt struct {
	width uint8
	value uint64
}

// New creates a width-bit vector holding v. Bits above width are dropped,
// matching the constructor semantics of the generated models.
// New panics if width is not in [1, MaxWidth].
func New(width int, v uint64) UInt {
	checkWidth(width)
	return UInt{width: uint8(width), value: v & Mask(width)}
}

// FromBool creates a 1-bit vector.
func FromBool(b bool) UInt {
	if b {
		return UInt{width: 1, value: 1}
	}
	return UInt{width: 1}
}

// Width returns the declared width in bits.
func (u UInt) Width() int {
	return int(u.width)
}

// AsSingleWord returns the value as a machine word.
func (u UInt) AsSingleWord() uint64 {
	return u.value
}

// Bool reports whether any bit is set.
func (u UInt) Bool() bool {
	return u.value != 0
}

// IsZero reports whether all bits are clear.
func (u UInt) IsZero() bool {
	return u.value == 0
}

// Add returns u+v truncated to u's width.
func (u UInt) Add(v uint64) UInt {
	return UInt{width: u.width, value: (u.value + v) & Mask(int(u.width))}
}

// String formats the vector the way FIRRTL literals are written.
func (u UInt) String() string {
	return fmt.Sprintf("UInt<%d>(0x%x)", u.width, u.value)
}

// Mask returns a word with the low width bits set.
func Mask(width int) uint64 {
	checkWidth(width)
	if width == MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// Fits reports whether v is representable in width bits.
func Fits(width int, v uint64) bool {
	return v&^Mask(width) == 0
}

func checkWidth(width int) {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bits: invalid width %d", width))
	}
}
