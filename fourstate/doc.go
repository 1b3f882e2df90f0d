// Package fourstate implements SystemVerilog 4-state logic values.
//
// Every bit of a logic vector is one of four states: 0, 1, X (unknown) or
// Z (high impedance). A vector is stored as two same-width bit planes, the
// a-plane and the b-plane, whose bit pair at each position encodes one
// logic bit:
//
//	aval  bval  logic
//	----  ----  -----
//	 0     0     0
//	 1     0     1
//	 0     1     Z
//	 1     1     X
//
// # Key Types
//
//	Logic     - a single 4-state bit with the scalar operator tables
//	Value[T]  - a vector held in a native unsigned type (widths up to 64)
//	Vector    - a packed vector of arbitrary width (64-bit plane words)
//
// Value and Vector are immutable; operators always return new values. The
// plane bits above the logical width are zero in both planes at all times,
// so padding always reads back as known 0, never as X or Z. All
// constructors enforce this by masking.
//
// # Operator Semantics
//
// The operators follow the IEEE 1800 4-state truth tables. Z acts as X in
// every binary operator, and inversion collapses Z to X; Z never appears
// in an operator result. The scalar tables on Logic are the single source
// of truth and the packed implementations agree with them bit-for-bit.
//
// # Equality
//
// CaseEqual is the === operator: an exact comparison of both planes that
// distinguishes X from Z and always yields a definite answer. LogicalEqual
// is the == operator: a 0/1 comparison that yields X whenever either
// operand carries any X or Z bit.
package fourstate
