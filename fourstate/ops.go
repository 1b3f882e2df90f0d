package fourstate

import (
	"github.com/hdlkit/dpi-runtime/errors"
)

// The packed operators below work plane-wise over whole words. They agree
// bit-for-bit with the scalar tables in logic.go; the per-word algebra is
// expressed in terms of three derived masks per operand:
//
//	definite-0  ^aval & ^bval
//	definite-1   aval & ^bval
//	unknown      bval           (covers both X and Z)

// Not returns the 4-state inversion: 0 and 1 flip, X and Z both become X.
// Padding bits stay zero.
func (v Value[T]) Not() Value[T] {
	m := mask[T](v.width)
	return Value[T]{
		aval:  (^v.aval | v.bval) & m,
		bval:  v.bval,
		width: v.width,
	}
}

// And returns the 4-state conjunction. A definite 0 on either side forces
// the result bit to 0 regardless of the other side; otherwise any X or Z
// operand bit yields X.
func (v Value[T]) And(o Value[T]) (Value[T], error) {
	if v.width != o.width {
		return Value[T]{}, operandWidths(v.width, o.width)
	}
	zero := (^v.aval & ^v.bval) | (^o.aval & ^o.bval)
	k := (v.bval | o.bval) &^ zero
	one := (v.aval &^ v.bval) & (o.aval &^ o.bval)
	return Value[T]{aval: one | k, bval: k, width: v.width}, nil
}

// Or returns the 4-state disjunction. A definite 1 on either side forces
// the result bit to 1; otherwise any X or Z operand bit yields X.
func (v Value[T]) Or(o Value[T]) (Value[T], error) {
	if v.width != o.width {
		return Value[T]{}, operandWidths(v.width, o.width)
	}
	one := (v.aval &^ v.bval) | (o.aval &^ o.bval)
	k := (v.bval | o.bval) &^ one
	return Value[T]{aval: one | k, bval: k, width: v.width}, nil
}

// Xor returns the 4-state exclusive or. Any X or Z operand bit yields X.
func (v Value[T]) Xor(o Value[T]) (Value[T], error) {
	if v.width != o.width {
		return Value[T]{}, operandWidths(v.width, o.width)
	}
	k := v.bval | o.bval
	return Value[T]{
		aval:  (v.aval^o.aval)&^k | k,
		bval:  k,
		width: v.width,
	}, nil
}

// CaseEqual is the === comparison: true iff both planes are identical.
// It distinguishes X from Z and always yields a definite answer. Values
// of different widths are never case-equal.
func (v Value[T]) CaseEqual(o Value[T]) bool {
	return v.width == o.width && v.aval == o.aval && v.bval == o.bval
}

// LogicalEqual is the == comparison: L1 or L0 when every compared bit is a
// definite 0 or 1, X when either operand carries any X or Z bit.
func (v Value[T]) LogicalEqual(o Value[T]) (Logic, error) {
	if v.width != o.width {
		return X, operandWidths(v.width, o.width)
	}
	if v.bval|o.bval != 0 {
		return X, nil
	}
	if v.aval == o.aval {
		return L1, nil
	}
	return L0, nil
}

// Bool1 lifts a scalar logic bit into the 1-bit value form used for
// comparison results.
func Bool1(l Logic) Value[uint8] {
	return Value[uint8]{aval: uint8(l) & 1, bval: uint8(l) >> 1 & 1, width: 1}
}

func operandWidths(a, b uint) *errors.Error {
	return errors.WidthMismatch(errors.PhaseOperate, "operand widths differ: %d vs %d", a, b)
}
