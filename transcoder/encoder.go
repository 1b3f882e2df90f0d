package transcoder

import (
	dpiruntime "github.com/hdlkit/dpi-runtime"
	"github.com/hdlkit/dpi-runtime/errors"
	"github.com/hdlkit/dpi-runtime/fourstate"
	"go.uber.org/zap"
)

// Encode packs a value into a freshly allocated DPI buffer of
// ceil(width/32) word pairs. Exact inverse of Decode at the same width.
func Encode[T fourstate.Uint](v fourstate.Value[T]) []dpiruntime.WordPair {
	buf := make([]dpiruntime.WordPair, dpiruntime.Words(v.Width()))
	encodeValue(v, buf)
	return buf
}

// EncodeInto packs a value into a caller-supplied DPI buffer, the shape
// used for output and inout arguments at the foreign boundary. Every word
// is written in full, including the defined-0 padding bits of the final
// word, so the buffer need not be cleared first.
func EncodeInto[T fourstate.Uint](v fourstate.Value[T], buf []dpiruntime.WordPair) error {
	if want := int(dpiruntime.Words(v.Width())); len(buf) != want {
		Logger().Debug("encode buffer length mismatch",
			zap.Uint("width", v.Width()),
			zap.Int("want", want),
			zap.Int("got", len(buf)))
		return errors.BufferLength(errors.PhaseEncode, v.Width(), want, len(buf))
	}
	encodeValue(v, buf)
	return nil
}

func encodeValue[T fourstate.Uint](v fourstate.Value[T], buf []dpiruntime.WordPair) {
	aval, bval := v.Aval(), v.Bval()
	for i := range buf {
		shift := uint(i) * dpiruntime.WordBits
		buf[i] = dpiruntime.WordPair{
			Aval: uint32(aval >> shift),
			Bval: uint32(bval >> shift),
		}
	}
}

// EncodeVector packs a vector into a freshly allocated DPI buffer. Exact
// inverse of DecodeVector at the same width.
func EncodeVector(v fourstate.Vector) []dpiruntime.WordPair {
	buf := make([]dpiruntime.WordPair, dpiruntime.Words(v.Width()))
	encodeVector(v, buf)
	return buf
}

// EncodeVectorInto packs a vector into a caller-supplied DPI buffer under
// the same contract as EncodeInto.
func EncodeVectorInto(v fourstate.Vector, buf []dpiruntime.WordPair) error {
	if want := int(dpiruntime.Words(v.Width())); len(buf) != want {
		Logger().Debug("encode buffer length mismatch",
			zap.Uint("width", v.Width()),
			zap.Int("want", want),
			zap.Int("got", len(buf)))
		return errors.BufferLength(errors.PhaseEncode, v.Width(), want, len(buf))
	}
	encodeVector(v, buf)
	return nil
}

func encodeVector(v fourstate.Vector, buf []dpiruntime.WordPair) {
	for i := range buf {
		aval, bval := v.PlaneWord(i / 2)
		shift := uint(i%2) * dpiruntime.WordBits
		buf[i] = dpiruntime.WordPair{
			Aval: uint32(aval >> shift),
			Bval: uint32(bval >> shift),
		}
	}
}
