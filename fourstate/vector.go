package fourstate

import (
	"fmt"
	"io"
	"strings"

	"github.com/hdlkit/dpi-runtime/errors"
)

const planeWordBits = 64

// Vector is a 4-state logic vector of arbitrary width, packed into 64-bit
// plane words with word 0 least significant. It carries the same encoding
// and invariants as Value: plane bits at positions >= width are zero in
// both planes, and operators return new vectors. Widths beyond the native
// types, 128-bit vectors in particular, are served by this type.
type Vector struct {
	width uint
	aval  []uint64
	bval  []uint64
}

func planeWords(width uint) int {
	return int((width + planeWordBits - 1) / planeWordBits)
}

func tailMask(width uint) uint64 {
	r := width % planeWordBits
	if r == 0 {
		return ^uint64(0)
	}
	return uint64(1)<<r - 1
}

// NewVector returns the all-zero vector of the given logical width.
func NewVector(width uint) (Vector, error) {
	if width == 0 {
		return Vector{}, errors.InvalidInput(errors.PhaseValidate, "width must be positive")
	}
	n := planeWords(width)
	return Vector{width: width, aval: make([]uint64, n), bval: make([]uint64, n)}, nil
}

// VectorFromUint64 lifts a plain 2-state integer into a vector of the
// given width. Bits of v at positions >= width are discarded.
func VectorFromUint64(v uint64, width uint) (Vector, error) {
	z, err := NewVector(width)
	if err != nil {
		return Vector{}, err
	}
	z.aval[0] = v
	z.maskTail()
	return z, nil
}

// VectorFromPlanes constructs a vector from raw plane words, word 0 least
// significant. Both slices must hold exactly ceil(width/64) words; their
// contents are copied and tail bits above width are masked off.
func VectorFromPlanes(aval, bval []uint64, width uint) (Vector, error) {
	if width == 0 {
		return Vector{}, errors.InvalidInput(errors.PhaseValidate, "width must be positive")
	}
	n := planeWords(width)
	if len(aval) != n || len(bval) != n {
		return Vector{}, errors.WidthMismatch(errors.PhaseValidate,
			"plane length %d/%d, need %d words for width %d", len(aval), len(bval), n, width)
	}
	z := Vector{
		width: width,
		aval:  append([]uint64(nil), aval...),
		bval:  append([]uint64(nil), bval...),
	}
	z.maskTail()
	return z, nil
}

func (v *Vector) maskTail() {
	if n := len(v.aval); n > 0 {
		m := tailMask(v.width)
		v.aval[n-1] &= m
		v.bval[n-1] &= m
	}
}

// Width returns the logical bit-width.
func (v Vector) Width() uint {
	return v.width
}

// WordLen returns the number of 64-bit plane words.
func (v Vector) WordLen() int {
	return len(v.aval)
}

// PlaneWord returns the i-th 64-bit word of the a-plane and b-plane.
func (v Vector) PlaneWord(i int) (aval, bval uint64) {
	return v.aval[i], v.bval[i]
}

// Bit returns the logic state of bit i.
func (v Vector) Bit(i uint) (Logic, error) {
	if i >= v.width {
		return X, errors.InvalidInput(errors.PhaseOperate, "bit index %d out of range for width %d", i, v.width)
	}
	w, s := i/planeWordBits, i%planeWordBits
	a := Logic(v.aval[w]>>s) & 1
	b := Logic(v.bval[w]>>s) & 1
	return a | b<<1, nil
}

// HasUnknown reports whether any bit is X or Z.
func (v Vector) HasUnknown() bool {
	for _, w := range v.bval {
		if w != 0 {
			return true
		}
	}
	return false
}

// Not returns the 4-state inversion: 0 and 1 flip, X and Z both become X.
func (v Vector) Not() Vector {
	z := Vector{width: v.width, aval: make([]uint64, len(v.aval)), bval: make([]uint64, len(v.bval))}
	for i := range v.aval {
		z.aval[i] = ^v.aval[i] | v.bval[i]
		z.bval[i] = v.bval[i]
	}
	z.maskTail()
	return z
}

// And returns the 4-state conjunction of v and o.
func (v Vector) And(o Vector) (Vector, error) {
	if v.width != o.width {
		return Vector{}, operandWidths(v.width, o.width)
	}
	z := Vector{width: v.width, aval: make([]uint64, len(v.aval)), bval: make([]uint64, len(v.bval))}
	for i := range v.aval {
		zero := (^v.aval[i] & ^v.bval[i]) | (^o.aval[i] & ^o.bval[i])
		k := (v.bval[i] | o.bval[i]) &^ zero
		one := (v.aval[i] &^ v.bval[i]) & (o.aval[i] &^ o.bval[i])
		z.aval[i] = one | k
		z.bval[i] = k
	}
	return z, nil
}

// Or returns the 4-state disjunction of v and o.
func (v Vector) Or(o Vector) (Vector, error) {
	if v.width != o.width {
		return Vector{}, operandWidths(v.width, o.width)
	}
	z := Vector{width: v.width, aval: make([]uint64, len(v.aval)), bval: make([]uint64, len(v.bval))}
	for i := range v.aval {
		one := (v.aval[i] &^ v.bval[i]) | (o.aval[i] &^ o.bval[i])
		k := (v.bval[i] | o.bval[i]) &^ one
		z.aval[i] = one | k
		z.bval[i] = k
	}
	return z, nil
}

// Xor returns the 4-state exclusive or of v and o.
func (v Vector) Xor(o Vector) (Vector, error) {
	if v.width != o.width {
		return Vector{}, operandWidths(v.width, o.width)
	}
	z := Vector{width: v.width, aval: make([]uint64, len(v.aval)), bval: make([]uint64, len(v.bval))}
	for i := range v.aval {
		k := v.bval[i] | o.bval[i]
		z.aval[i] = (v.aval[i]^o.aval[i])&^k | k
		z.bval[i] = k
	}
	return z, nil
}

// CaseEqual is the === comparison: true iff both planes are identical.
func (v Vector) CaseEqual(o Vector) bool {
	if v.width != o.width {
		return false
	}
	for i := range v.aval {
		if v.aval[i] != o.aval[i] || v.bval[i] != o.bval[i] {
			return false
		}
	}
	return true
}

// LogicalEqual is the == comparison: L1 or L0 when every compared bit is a
// definite 0 or 1, X when either operand carries any X or Z bit.
func (v Vector) LogicalEqual(o Vector) (Logic, error) {
	if v.width != o.width {
		return X, operandWidths(v.width, o.width)
	}
	if v.HasUnknown() || o.HasUnknown() {
		return X, nil
	}
	for i := range v.aval {
		if v.aval[i] != o.aval[i] {
			return L0, nil
		}
	}
	return L1, nil
}

// String renders the vector as binary digits, most significant bit first.
func (v Vector) String() string {
	var b strings.Builder
	v.writeBinary(&b)
	return b.String()
}

// Format implements fmt.Formatter for the %b, %x, %s and %v verbs, with
// the '#' flag adding the usual 0b/0x prefix. Hex digits follow the same
// z/Z/x/X nibble rules as Value.
func (v Vector) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b':
		if f.Flag('#') {
			io.WriteString(f, "0b")
		}
		v.writeBinary(f)
	case 'x':
		if f.Flag('#') {
			io.WriteString(f, "0x")
		}
		v.writeHex(f)
	case 's', 'v':
		v.writeBinary(f)
	default:
		fmt.Fprintf(f, "%%!%c(fourstate.Vector)", verb)
	}
}

func (v Vector) writeHex(w io.Writer) {
	const digits = "0123456789abcdef"

	// A nibble never straddles a plane word, since 64 is a multiple of 4.
	nibbles := (v.width + 3) / 4
	last := len(v.aval) - 1
	buf := make([]byte, nibbles)

	for n := uint(0); n < nibbles; n++ {
		wd, sh := int(n*4/planeWordBits), n*4%planeWordBits
		aval, bval := v.aval[wd], v.bval[wd]
		wm := ^uint64(0)
		if wd == last {
			wm = tailMask(v.width)
		}
		m := wm >> sh & 0xf
		x := (aval & bval) >> sh & 0xf
		z := (bval &^ aval) >> sh & 0xf
		vp := (aval &^ bval) >> sh & 0xf

		var c byte
		switch {
		case z == m && z != 0:
			c = 'z'
		case z != 0:
			c = 'Z'
		case x == m && x != 0:
			c = 'x'
		case x != 0:
			c = 'X'
		default:
			c = digits[vp]
		}
		buf[nibbles-n-1] = c
	}
	w.Write(buf)
}

func (v Vector) writeBinary(w io.Writer) {
	buf := make([]byte, v.width)
	for i := uint(0); i < v.width; i++ {
		wd, s := i/planeWordBits, i%planeWordBits
		a := v.aval[wd]>>s&1 == 1
		b := v.bval[wd]>>s&1 == 1
		buf[v.width-i-1] = logicByte(a, b)
	}
	w.Write(buf)
}

// ParseVector builds a vector from a binary rendering, in the same form
// accepted by Parse but without a width cap.
func ParseVector(s string) (Vector, error) {
	digits, err := parseDigits(s)
	if err != nil {
		return Vector{}, err
	}
	z, err := NewVector(uint(len(digits)))
	if err != nil {
		return Vector{}, err
	}
	for i, l := range digits {
		pos := z.width - uint(i) - 1
		w, sh := pos/planeWordBits, pos%planeWordBits
		z.aval[w] |= uint64(l&1) << sh
		z.bval[w] |= uint64(l>>1&1) << sh
	}
	return z, nil
}
