package fourstate

// Logic is a single 4-state logic bit. The low bit is the a-plane bit and
// the next bit is the b-plane bit, matching the vector encoding.
type Logic uint8

const (
	L0 Logic = 0b00 // logic 0
	L1 Logic = 0b01 // logic 1
	Z  Logic = 0b10 // high impedance
	X  Logic = 0b11 // unknown
)

var logicNames = [...]string{
	L0: "0",
	L1: "1",
	Z:  "z",
	X:  "x",
}

func (l Logic) String() string {
	if int(l) < len(logicNames) {
		return logicNames[l]
	}
	return "x"
}

// Rune returns the single-character rendering of l.
func (l Logic) Rune() rune {
	switch l {
	case L0:
		return '0'
	case L1:
		return '1'
	case Z:
		return 'z'
	}
	return 'x'
}

// Known reports whether l is a definite 0 or 1.
func (l Logic) Known() bool {
	return l == L0 || l == L1
}

// The scalar truth tables below are the authoritative definition of the
// 4-state operators. Z has no complement and acts as X in every binary
// operator; no binary operator ever produces Z.

var notTable = [4]Logic{
	L0: L1,
	L1: L0,
	Z:  X,
	X:  X,
}

var andTable = [4][4]Logic{
	L0: {L0: L0, L1: L0, Z: L0, X: L0},
	L1: {L0: L0, L1: L1, Z: X, X: X},
	Z:  {L0: L0, L1: X, Z: X, X: X},
	X:  {L0: L0, L1: X, Z: X, X: X},
}

var orTable = [4][4]Logic{
	L0: {L0: L0, L1: L1, Z: X, X: X},
	L1: {L0: L1, L1: L1, Z: L1, X: L1},
	Z:  {L0: X, L1: L1, Z: X, X: X},
	X:  {L0: X, L1: L1, Z: X, X: X},
}

var xorTable = [4][4]Logic{
	L0: {L0: L0, L1: L1, Z: X, X: X},
	L1: {L0: L1, L1: L0, Z: X, X: X},
	Z:  {L0: X, L1: X, Z: X, X: X},
	X:  {L0: X, L1: X, Z: X, X: X},
}

// Not returns the 4-state inversion of l.
func (l Logic) Not() Logic {
	return notTable[l&3]
}

// And returns the 4-state conjunction of l and o.
func (l Logic) And(o Logic) Logic {
	return andTable[l&3][o&3]
}

// Or returns the 4-state disjunction of l and o.
func (l Logic) Or(o Logic) Logic {
	return orTable[l&3][o&3]
}

// Xor returns the 4-state exclusive or of l and o.
func (l Logic) Xor(o Logic) Logic {
	return xorTable[l&3][o&3]
}
