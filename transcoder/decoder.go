package transcoder

import (
	dpiruntime "github.com/hdlkit/dpi-runtime"
	"github.com/hdlkit/dpi-runtime/errors"
	"github.com/hdlkit/dpi-runtime/fourstate"
	"go.uber.org/zap"
)

// Decode unpacks a DPI buffer into a value of logical width, held in the
// native storage type T. The buffer must hold exactly ceil(width/32) word
// pairs and width must not exceed the capacity of T. Bits in the final
// word pair above width are discarded; the result's padding is known 0.
func Decode[T fourstate.Uint](buf []dpiruntime.WordPair, width uint) (fourstate.Value[T], error) {
	var zero fourstate.Value[T]

	if width == 0 {
		return zero, errors.InvalidInput(errors.PhaseDecode, "width must be positive")
	}
	if sb := fourstate.StorageBits[T](); width > sb {
		Logger().Debug("requested width exceeds storage",
			zap.Uint("width", width),
			zap.Uint("capacity", sb))
		return zero, errors.WidthOverflow(errors.PhaseDecode, width, sb)
	}
	if want := int(dpiruntime.Words(width)); len(buf) != want {
		Logger().Debug("decode buffer length mismatch",
			zap.Uint("width", width),
			zap.Int("want", want),
			zap.Int("got", len(buf)))
		return zero, errors.BufferLength(errors.PhaseDecode, width, want, len(buf))
	}

	var aval, bval T
	for i, wp := range buf {
		shift := uint(i) * dpiruntime.WordBits
		aval |= T(wp.Aval) << shift
		bval |= T(wp.Bval) << shift
	}
	return fourstate.FromBits(aval, bval, width)
}

// DecodeVector unpacks a DPI buffer of any logical width into a packed
// vector, under the same contract as Decode.
func DecodeVector(buf []dpiruntime.WordPair, width uint) (fourstate.Vector, error) {
	if width == 0 {
		return fourstate.Vector{}, errors.InvalidInput(errors.PhaseDecode, "width must be positive")
	}
	if want := int(dpiruntime.Words(width)); len(buf) != want {
		Logger().Debug("decode buffer length mismatch",
			zap.Uint("width", width),
			zap.Int("want", want),
			zap.Int("got", len(buf)))
		return fourstate.Vector{}, errors.BufferLength(errors.PhaseDecode, width, want, len(buf))
	}

	words := int(width+63) / 64
	aval := make([]uint64, words)
	bval := make([]uint64, words)
	for i, wp := range buf {
		w, shift := i/2, uint(i%2)*dpiruntime.WordBits
		aval[w] |= uint64(wp.Aval) << shift
		bval[w] |= uint64(wp.Bval) << shift
	}
	return fourstate.VectorFromPlanes(aval, bval, width)
}

// DecodeLanes reinterprets a whole DPI buffer as consecutive lanes of the
// full storage width of T, lane 0 least significant. When the buffer does
// not divide evenly the final lane is padded with known 0 bits. Total: a
// lane's width is fixed by T, so there is no width to mismatch.
func DecodeLanes[T fourstate.Uint](buf []dpiruntime.WordPair) []fourstate.Value[T] {
	laneBits := fourstate.StorageBits[T]()
	totalBits := uint(len(buf)) * dpiruntime.WordBits
	lanes := (totalBits + laneBits - 1) / laneBits

	out := make([]fourstate.Value[T], 0, lanes)
	for j := uint(0); j < lanes; j++ {
		var aval, bval T
		for k := uint(0); k < laneBits; k += dpiruntime.WordBits {
			bitpos := j*laneBits + k
			w := int(bitpos / dpiruntime.WordBits)
			if w >= len(buf) {
				break
			}
			sub := bitpos % dpiruntime.WordBits
			aval |= T(buf[w].Aval>>sub) << k
			bval |= T(buf[w].Bval>>sub) << k
		}
		lane, _ := fourstate.FromBits(aval, bval, laneBits)
		out = append(out, lane)
	}
	return out
}
