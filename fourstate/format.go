package fourstate

import (
	"fmt"
	"io"
	"strings"

	"github.com/hdlkit/dpi-runtime/errors"
)

// String renders the value as binary digits, most significant bit first,
// using 'x' and 'z' for unknown and high-impedance bits.
func (v Value[T]) String() string {
	var b strings.Builder
	v.writeBinary(&b)
	return b.String()
}

// Format implements fmt.Formatter for the %b, %x, %s and %v verbs. The '#'
// flag adds the usual 0b/0x prefix. Hex digits whose nibble contains any
// X or Z bit render as a letter instead: 'z' when every defined bit of the
// nibble is Z, 'Z' when only some are, and likewise 'x'/'X' for unknowns.
func (v Value[T]) Format(f fmt.State, verb rune) {
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
		fmt.Fprintf(f, "%%!%c(fourstate.Value)", verb)
	}
}

func (v Value[T]) writeBinary(w io.Writer) {
	buf := make([]byte, v.width)
	for i := uint(0); i < v.width; i++ {
		a := v.aval >> i & 1
		b := v.bval >> i & 1
		buf[v.width-i-1] = logicByte(a == 1, b == 1)
	}
	w.Write(buf)
}

func logicByte(a, b bool) byte {
	switch {
	case b && a:
		return 'x'
	case b:
		return 'z'
	case a:
		return '1'
	default:
		return '0'
	}
}

func (v Value[T]) writeHex(w io.Writer) {
	const digits = "0123456789abcdef"

	nibbles := (v.width + 3) / 4
	xp := v.aval & v.bval
	zp := v.bval &^ v.aval
	vp := v.aval &^ v.bval
	buf := make([]byte, nibbles)

	for n := uint(0); n < nibbles; n++ {
		shift := n * 4
		m := uint64(mask[T](v.width) >> shift & 0xf)
		x := uint64(xp >> shift & 0xf)
		z := uint64(zp >> shift & 0xf)

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
			c = digits[vp>>shift&0xf]
		}
		buf[nibbles-n-1] = c
	}
	w.Write(buf)
}

// Parse builds a value from a binary rendering: the digits 0, 1, x and z
// (either case), most significant first, with optional 0b prefix and
// underscore separators. The logical width is the number of digits.
func Parse[T Uint](s string) (Value[T], error) {
	digits, err := parseDigits(s)
	if err != nil {
		return Value[T]{}, err
	}
	width := uint(len(digits))
	if err := checkWidth[T](width); err != nil {
		return Value[T]{}, err
	}

	var aval, bval T
	for _, l := range digits {
		aval = aval<<1 | T(l&1)
		bval = bval<<1 | T(l>>1&1)
	}
	return Value[T]{aval: aval, bval: bval, width: width}, nil
}

func parseDigits(s string) ([]Logic, error) {
	s = strings.TrimPrefix(s, "0b")
	digits := make([]Logic, 0, len(s))
	for _, r := range s {
		switch r {
		case '_':
		case '0':
			digits = append(digits, L0)
		case '1':
			digits = append(digits, L1)
		case 'z', 'Z':
			digits = append(digits, Z)
		case 'x', 'X':
			digits = append(digits, X)
		default:
			return nil, errors.InvalidInput(errors.PhaseValidate, "invalid logic digit %q", r)
		}
	}
	if len(digits) == 0 {
		return nil, errors.InvalidInput(errors.PhaseValidate, "empty logic literal")
	}
	return digits, nil
}
