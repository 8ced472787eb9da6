// Package asm implements a retargetable machine-code encoder.
//
// An instruction set is described as a table of bit-pattern templates: each
// template compiles into a base word plus one scatter mask per argument, so
// an argument of any width can be packed into arbitrary, possibly
// non-contiguous bit positions of the machine word. A program is an ordered
// sequence of code objects (instructions, raw words, address marks, label
// marks); NewProgram resolves the sequence into per-object addresses and a
// label table in two passes, and Records serializes the encoded words as
// checksummed hexadecimal record lines.
//
// Everything in this package is immutable after construction and safe for
// concurrent read-only sharing.
package asm
