// Package dpiruntime provides a Go representation of SystemVerilog 4-state
// logic values and lossless conversion to and from the DPI wire format.
//
// SystemVerilog models each bit of a logic vector as one of four states:
// 0, 1, X (unknown) and Z (high impedance). When such a vector crosses the
// DPI foreign-function boundary it travels as a sequence of 32-bit word
// pairs (aval/bval), word 0 least significant. This library owns the value
// encoding, the width-checked packing and unpacking against that wire
// format, and the 4-state bitwise operators.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	dpiruntime/        Root package with the WordPair wire type
//	├── fourstate/     Logic scalars, native-width values, packed vectors
//	│                  and the 4-state operator tables
//	├── transcoder/    Encoding/decoding between values and DPI buffers
//	└── errors/        Structured error types for debugging
//
// # Quick Start
//
// Decode a 36-bit DPI buffer, operate on it and encode the result:
//
//	buf := []dpiruntime.WordPair{
//	    {Aval: 0xFFFFFFFF},
//	    {Aval: 0x0000000F},
//	}
//
//	v, err := transcoder.Decode[uint64](buf, 36)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inv := v.Not()
//	out := transcoder.Encode(inv)
//
// Vectors wider than 64 bits use fourstate.Vector and the corresponding
// transcoder.DecodeVector/EncodeVector pair.
//
// # Thread Safety
//
// All values are immutable once constructed and every operation is a pure
// function, so values may be shared freely across goroutines.
package dpiruntime
