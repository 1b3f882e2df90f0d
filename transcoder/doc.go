// Package transcoder converts 4-state values to and from the DPI wire
// format.
//
// This package handles bidirectional conversion between fourstate values
// and the word-pair buffers exchanged across the SystemVerilog DPI
// foreign-function boundary:
//
//	┌────────────────────────────────────────────────────────────┐
//	│ fourstate.Value / Vector ←→ [Transcoder] ←→ DPI buffer     │
//	└────────────────────────────────────────────────────────────┘
//
// # Wire Format
//
// A logic [N-1:0] argument travels as ceil(N/32) word pairs, word 0 least
// significant. Each pair carries 32 logic bits:
//
//	aval  bval  logic
//	----  ----  -----
//	 0     0     0
//	 1     0     1
//	 0     1     Z
//	 1     1     X
//
// # Decoding Flow
//
//	Decode[T](buf, width)      → Value[T]   (native widths up to 64)
//	DecodeVector(buf, width)   → Vector     (any width, e.g. 128)
//	DecodeLanes[T](buf)        → []Value[T] (buffer as full-width lanes)
//
// Decoding is width-checked: the buffer must hold exactly ceil(width/32)
// word pairs and width must fit the requested storage. Garbage in the
// final word's bits above width is masked off; the decoded value's
// padding is always known 0.
//
// # Encoding Flow
//
//	Encode[T](v)               → []WordPair (freshly allocated)
//	EncodeInto[T](v, buf)      → error      (caller-supplied buffer)
//	EncodeVector(v)            → []WordPair
//	EncodeVectorInto(v, buf)   → error
//
// Encoding writes every word in full, including the defined-0 padding
// bits of the final word, so a dirty destination buffer never leaks into
// the output. EncodeInto matches the output/inout shape of the foreign
// boundary, which supplies the buffer to be written.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] width_mismatch at width 40: buffer holds 1 word pairs, need 2
//
// # Thread Safety
//
// All functions are pure and operate on immutable values; they are safe
// for concurrent use without synchronization.
package transcoder
