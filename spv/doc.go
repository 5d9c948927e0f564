// Package spv implements the SPIR-V binary module representation and
// its codec.
//
// A Module holds instructions grouped into the sections the format
// mandates: capabilities, extensions, imports, memory model, entry
// points, execution modes, debug information, annotations, types and
// global values, and function bodies. Decode parses a binary into this
// structure, detecting endianness from the magic number; Encode is its
// byte-for-byte inverse on little-endian output.
//
// Instructions are grammar-driven. Operand parsing follows the static
// tables in the grammar package, including enumerant parameters and
// context-dependent literal widths, so a round trip through the codec
// preserves every operand exactly.
//
// Validate and ValidateLayout check the structural rules: section
// ordering, function and block nesting, block termination, id bounds,
// uniqueness and reference resolution.
package spv
