// Package builder assembles SPIR-V modules programmatically.
//
// A Builder tracks one open function and one open block at a time and
// enforces the structural rules as instructions are added: functions
// cannot nest, blocks must be terminated before the next one opens, and
// nothing can be emitted outside a block. Types and constants are
// deduplicated so repeated declarations return the id of the first.
//
// Result ids come from a monotonic allocator starting at 1. Finalizing
// with Module sets the id bound and validates the result; extending an
// existing module with LoadModule reserves its bound first so new ids
// never collide.
package builder
