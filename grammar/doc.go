// Package grammar provides the static SPIR-V instruction grammar.
//
// The grammar maps opcode numbers to their operand-kind sequences, marks
// which opcodes produce result IDs and result types, and carries the
// symbolic-name tables for enum operand kinds. It is built once at package
// init from static tables and is immutable for the process lifetime; all
// lookups are O(1) map accesses.
//
// The binary codec consults the grammar to know how many words an opcode
// consumes and how to interpret each, and the module builder consults it
// to decide whether an emitted instruction receives a fresh result ID.
//
//	spec, ok := grammar.Lookup(grammar.OpTypeInt)
//	// spec.Operands == [LiteralInteger, LiteralInteger], spec.HasResult == true
//
// Enum kinds may carry parameterized enumerants: an enumerant value can
// introduce additional trailing operands (for example Decoration ArrayStride
// carries one literal, and each set bit of ImageOperands pulls its own ID
// operands). EnumerantParams resolves those per-value operand sequences.
package grammar
