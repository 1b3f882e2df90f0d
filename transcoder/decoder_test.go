package transcoder

import (
	"errors"
	"testing"

	dpiruntime "github.com/hdlkit/dpi-runtime"
	dpierrors "github.com/hdlkit/dpi-runtime/errors"
	"github.com/hdlkit/dpi-runtime/fourstate"
)

func isWidthMismatch(err error) bool {
	var de *dpierrors.Error
	return errors.As(err, &de) && de.Kind == dpierrors.KindWidthMismatch
}

func TestDecode_SingleWord(t *testing.T) {
	buf := []dpiruntime.WordPair{{Aval: 0x01234567}}

	v, err := Decode[uint32](buf, 32)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Width() != 32 {
		t.Errorf("Width = %d, want 32", v.Width())
	}
	if u, ok := v.Uint(); !ok || u != 0x01234567 {
		t.Errorf("Uint = (%#x, %v), want (0x1234567, true)", u, ok)
	}
}

func TestDecode_Width36(t *testing.T) {
	// Two word pairs decoded at width 36: the defined bits are 36 ones and
	// everything above is known 0 in both planes.
	buf := []dpiruntime.WordPair{
		{Aval: 0xFFFFFFFF},
		{Aval: 0x0000000F},
	}

	v, err := Decode[uint64](buf, 36)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if u, ok := v.Uint(); !ok || u != 0xF_FFFFFFFF {
		t.Errorf("Uint = (%#x, %v), want (0xfffffffff, true)", u, ok)
	}
	if v.Aval()>>36 != 0 || v.Bval() != 0 {
		t.Errorf("padding bits set: planes = (%#x, %#x)", v.Aval(), v.Bval())
	}

	out := Encode(v)
	if len(out) != 2 || out[0] != buf[0] || out[1] != buf[1] {
		t.Errorf("re-encode = %v, want %v", out, buf)
	}
}

func TestDecode_MasksGarbage(t *testing.T) {
	// Bits 36..63 of the final word carry garbage in both planes; the
	// decoded value must read known 0 there, never X or Z.
	buf := []dpiruntime.WordPair{
		{Aval: 0x00000003, Bval: 0x00000000},
		{Aval: 0xDEADBEE0, Bval: 0xCAFEF000},
	}

	v, err := Decode[uint64](buf, 36)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v.Aval()>>36 != 0 || v.Bval()>>36 != 0 {
		t.Errorf("garbage survived: planes = (%#x, %#x)", v.Aval(), v.Bval())
	}
	for i := uint(32); i < 36; i++ {
		if got, _ := v.Bit(i); got != fourstate.L0 {
			t.Errorf("Bit(%d) = %v, want 0", i, got)
		}
	}
}

func TestDecode_FourState(t *testing.T) {
	buf := []dpiruntime.WordPair{{Aval: 0b1100, Bval: 0b1010}}

	v, err := Decode[uint8](buf, 4)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := []fourstate.Logic{fourstate.L0, fourstate.L0, fourstate.Z, fourstate.X}
	for i, wl := range want {
		if got, _ := v.Bit(uint(i)); got != wl {
			t.Errorf("Bit(%d) = %v, want %v", i, got, wl)
		}
	}
}

func TestDecode_BufferLengthMismatch(t *testing.T) {
	// Width 40 needs two word pairs.
	buf := []dpiruntime.WordPair{{Aval: 1}}

	_, err := Decode[uint64](buf, 40)
	if !isWidthMismatch(err) {
		t.Fatalf("want width mismatch, got %v", err)
	}

	var de *dpierrors.Error
	if !errors.As(err, &de) || de.Phase != dpierrors.PhaseDecode || de.Width != 40 {
		t.Errorf("error context = %+v", de)
	}
}

func TestDecode_WidthOverflow(t *testing.T) {
	buf := make([]dpiruntime.WordPair, 3)
	if _, err := Decode[uint64](buf, 72); !isWidthMismatch(err) {
		t.Error("width 72 should not fit uint64 storage")
	}
	if _, err := Decode[uint8]([]dpiruntime.WordPair{{}}, 9); !isWidthMismatch(err) {
		t.Error("width 9 should not fit uint8 storage")
	}
}

func TestDecode_ZeroWidth(t *testing.T) {
	if _, err := Decode[uint32](nil, 0); err == nil {
		t.Error("width 0 should be rejected")
	}
}

func TestDecodeVector(t *testing.T) {
	buf := []dpiruntime.WordPair{
		{Aval: 0x11111111},
		{Aval: 0x22222222, Bval: 0x0000F000},
		{Aval: 0x33333333},
		{Aval: 0xFFFFFFF4, Bval: 0xFFFFFF00},
	}

	v, err := DecodeVector(buf, 100)
	if err != nil {
		t.Fatalf("DecodeVector failed: %v", err)
	}
	if v.Width() != 100 || v.WordLen() != 2 {
		t.Fatalf("got width %d in %d words", v.Width(), v.WordLen())
	}

	a, b := v.PlaneWord(0)
	if a != 0x22222222_11111111 {
		t.Errorf("aval word 0 = %#x", a)
	}
	if b != 0x0000F000_00000000 {
		t.Errorf("bval word 0 = %#x", b)
	}

	// Only 36 of the second plane word's bits are in range; the rest of
	// the final word pair is garbage and must be masked.
	a, b = v.PlaneWord(1)
	if a != 0x4_33333333 {
		t.Errorf("aval word 1 = %#x, want 0x433333333", a)
	}
	if b != 0 {
		t.Errorf("bval word 1 = %#x, want 0", b)
	}
}

func TestDecodeVector_Errors(t *testing.T) {
	if _, err := DecodeVector(make([]dpiruntime.WordPair, 3), 100); !isWidthMismatch(err) {
		t.Error("width 100 needs 4 word pairs")
	}
	if _, err := DecodeVector(nil, 0); err == nil {
		t.Error("width 0 should be rejected")
	}
}

// Lane decoding reinterprets a whole buffer as consecutive full-width
// lanes. The fixtures below exercise one clean word pair and one fully
// 4-state word pair.
var laneBuf = []dpiruntime.WordPair{
	{Aval: 0x01234567, Bval: 0x00000000},
	{Aval: 0x89ABCDEF, Bval: 0xFFFFFFFF},
}

func checkLane[T fourstate.Uint](t *testing.T, lanes []fourstate.Value[T], i int, aval, bval T) {
	t.Helper()
	if lanes[i].Aval() != aval || lanes[i].Bval() != bval {
		t.Errorf("lane %d = (%#x, %#x), want (%#x, %#x)", i, lanes[i].Aval(), lanes[i].Bval(), aval, bval)
	}
	if w := lanes[i].Width(); w != fourstate.StorageBits[T]() {
		t.Errorf("lane %d width = %d", i, w)
	}
}

func TestDecodeLanes_U8(t *testing.T) {
	lanes := DecodeLanes[uint8](laneBuf)
	if len(lanes) != 8 {
		t.Fatalf("got %d lanes, want 8", len(lanes))
	}
	checkLane(t, lanes, 0, uint8(0x67), 0)
	checkLane(t, lanes, 1, uint8(0x45), 0)
	checkLane(t, lanes, 2, uint8(0x23), 0)
	checkLane(t, lanes, 3, uint8(0x01), 0)
	checkLane(t, lanes, 4, uint8(0xEF), 0xFF)
	checkLane(t, lanes, 5, uint8(0xCD), 0xFF)
	checkLane(t, lanes, 6, uint8(0xAB), 0xFF)
	checkLane(t, lanes, 7, uint8(0x89), 0xFF)
}

func TestDecodeLanes_U16(t *testing.T) {
	lanes := DecodeLanes[uint16](laneBuf)
	if len(lanes) != 4 {
		t.Fatalf("got %d lanes, want 4", len(lanes))
	}
	checkLane(t, lanes, 0, uint16(0x4567), 0)
	checkLane(t, lanes, 1, uint16(0x0123), 0)
	checkLane(t, lanes, 2, uint16(0xCDEF), 0xFFFF)
	checkLane(t, lanes, 3, uint16(0x89AB), 0xFFFF)
}

func TestDecodeLanes_U32(t *testing.T) {
	lanes := DecodeLanes[uint32](laneBuf)
	if len(lanes) != 2 {
		t.Fatalf("got %d lanes, want 2", len(lanes))
	}
	checkLane(t, lanes, 0, uint32(0x01234567), 0)
	checkLane(t, lanes, 1, uint32(0x89ABCDEF), 0xFFFFFFFF)
}

func TestDecodeLanes_U64(t *testing.T) {
	lanes := DecodeLanes[uint64](laneBuf)
	if len(lanes) != 1 {
		t.Fatalf("got %d lanes, want 1", len(lanes))
	}
	checkLane(t, lanes, 0, uint64(0x89ABCDEF_01234567), 0xFFFFFFFF_00000000)
}

func TestDecodeLanes_PartialLane(t *testing.T) {
	// One word pair does not fill a 64-bit lane; the upper half must be
	// known 0, not X or Z.
	lanes := DecodeLanes[uint64](laneBuf[:1])
	if len(lanes) != 1 {
		t.Fatalf("got %d lanes, want 1", len(lanes))
	}
	checkLane(t, lanes, 0, uint64(0x01234567), 0)
}

func TestDecodeLanes_Empty(t *testing.T) {
	if lanes := DecodeLanes[uint32](nil); len(lanes) != 0 {
		t.Errorf("got %d lanes, want 0", len(lanes))
	}
}
