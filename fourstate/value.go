package fourstate

import (
	"math/bits"

	"github.com/hdlkit/dpi-runtime/errors"
)

// Uint is the set of native storage types for Value. Vectors wider than 64
// bits use Vector instead, since Go has no 128-bit integer type.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// StorageBits returns the bit capacity of the storage type T.
func StorageBits[T Uint]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// mask returns a T with the low width bits set.
func mask[T Uint](width uint) T {
	if width >= StorageBits[T]() {
		return ^T(0)
	}
	return T(1)<<width - 1
}

// Value is a 4-state logic vector held in a native unsigned type. The
// logical width may be smaller than the storage type; plane bits at
// positions >= width are zero in both planes at all times. Values are
// immutable: operators return new values.
type Value[T Uint] struct {
	aval  T
	bval  T
	width uint
}

// New returns the all-zero value of the given logical width.
func New[T Uint](width uint) (Value[T], error) {
	if err := checkWidth[T](width); err != nil {
		return Value[T]{}, err
	}
	return Value[T]{width: width}, nil
}

// FromUint lifts a plain 2-state integer into a full-width value. Every
// bit is a definite 0 or 1, so the b-plane is zero.
func FromUint[T Uint](v T) Value[T] {
	return Value[T]{aval: v, width: StorageBits[T]()}
}

// FromBits constructs a value of the given logical width from raw plane
// bits. Plane bits above width are masked off.
func FromBits[T Uint](aval, bval T, width uint) (Value[T], error) {
	if err := checkWidth[T](width); err != nil {
		return Value[T]{}, err
	}
	m := mask[T](width)
	return Value[T]{aval: aval & m, bval: bval & m, width: width}, nil
}

func checkWidth[T Uint](width uint) error {
	if width == 0 {
		return errors.InvalidInput(errors.PhaseValidate, "width must be positive")
	}
	if sb := StorageBits[T](); width > sb {
		return errors.WidthOverflow(errors.PhaseValidate, width, sb)
	}
	return nil
}

// Width returns the logical bit-width.
func (v Value[T]) Width() uint {
	return v.width
}

// Aval returns the a-plane.
func (v Value[T]) Aval() T {
	return v.aval
}

// Bval returns the b-plane.
func (v Value[T]) Bval() T {
	return v.bval
}

// Bit returns the logic state of bit i.
func (v Value[T]) Bit(i uint) (Logic, error) {
	if i >= v.width {
		return X, errors.InvalidInput(errors.PhaseOperate, "bit index %d out of range for width %d", i, v.width)
	}
	a := Logic(v.aval>>i) & 1
	b := Logic(v.bval>>i) & 1
	return a | b<<1, nil
}

// HasUnknown reports whether any bit is X or Z.
func (v Value[T]) HasUnknown() bool {
	return v.bval != 0
}

// Uint returns the 2-state interpretation of v. The second result is false
// when any bit is X or Z, in which case there is no 2-state interpretation.
func (v Value[T]) Uint() (T, bool) {
	if v.bval != 0 {
		return 0, false
	}
	return v.aval, true
}
