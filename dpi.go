package dpiruntime

// WordPair is the DPI wire unit: one pair of 32-bit planes representing
// 32 logic bits. Aval carries the value plane and Bval the control plane;
// the bit pair (aval, bval) at each position encodes one logic bit:
//
//	aval  bval  logic
//	----  ----  -----
//	 0     0     0
//	 1     0     1
//	 0     1     Z
//	 1     1     X
//
// A vector wider than 32 bits is an ordered sequence of WordPairs, index 0
// holding the least-significant word. The layout matches the svLogicVecVal
// representation used by the SystemVerilog DPI calling convention for
// logic [N-1:0] arguments bit-for-bit.
type WordPair struct {
	Aval uint32
	Bval uint32
}

// WordBits is the number of logic bits carried by one WordPair.
const WordBits = 32

// Words returns the number of WordPairs required to carry width logic bits.
func Words(width uint) uint {
	return (width + WordBits - 1) / WordBits
}
