package spv

import (
	"fmt"
	"math"
	"strings"

	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv/internal/words"
)

// OperandValueKind discriminates the payload carried by an Operand.
type OperandValueKind uint8

const (
	// OperandInt32 is a one-word literal integer.
	OperandInt32 OperandValueKind = iota
	// OperandInt64 is a two-word literal integer, low word first.
	OperandInt64
	// OperandFloat32 is a one-word IEEE 754 binary32 literal.
	OperandFloat32
	// OperandFloat64 is a two-word IEEE 754 binary64 literal, low word first.
	OperandFloat64
	// OperandString is a NUL-terminated UTF-8 literal packed into words.
	OperandString
	// OperandEnum is a value-enum or bit-enum word, possibly with
	// enumerant parameters in Params.
	OperandEnum
	// OperandID is a result-id reference.
	OperandID
)

// Operand is one decoded instruction operand. The Kind field selects
// which payload field is meaningful: Val for integers, floats (as bit
// patterns), enums and ids, Str for strings. Enum operands carry their
// grammar kind in Enum and any enumerant parameters in Params.
type Operand struct {
	Str    string
	Params []Operand
	Val    uint64
	Enum   grammar.OperandKind
	Kind   OperandValueKind
}

// Int32 builds a one-word literal integer operand.
func Int32(v uint32) Operand {
	return Operand{Kind: OperandInt32, Val: uint64(v)}
}

// Int64 builds a two-word literal integer operand.
func Int64(v uint64) Operand {
	return Operand{Kind: OperandInt64, Val: v}
}

// Float32 builds a one-word float literal operand.
func Float32(v float32) Operand {
	return Operand{Kind: OperandFloat32, Val: uint64(math.Float32bits(v))}
}

// Float64 builds a two-word float literal operand.
func Float64(v float64) Operand {
	return Operand{Kind: OperandFloat64, Val: math.Float64bits(v)}
}

// Str builds a literal string operand.
func Str(s string) Operand {
	return Operand{Kind: OperandString, Str: s}
}

// ID builds a result-id reference operand.
func ID(id uint32) Operand {
	return Operand{Kind: OperandID, Val: uint64(id)}
}

// Enum builds an enum operand of the given grammar kind. For bit enums
// value is the combined mask. Enumerant parameters, if any, follow.
func Enum(kind grammar.OperandKind, value uint32, params ...Operand) Operand {
	return Operand{Kind: OperandEnum, Enum: kind, Val: uint64(value), Params: params}
}

// Uint32 returns the low word of the operand value.
func (o Operand) Uint32() uint32 {
	return uint32(o.Val)
}

// Uint64 returns the full operand value.
func (o Operand) Uint64() uint64 {
	return o.Val
}

// AsFloat32 reinterprets the operand value as a binary32 float.
func (o Operand) AsFloat32() float32 {
	return math.Float32frombits(uint32(o.Val))
}

// AsFloat64 reinterprets the operand value as a binary64 float.
func (o Operand) AsFloat64() float64 {
	return math.Float64frombits(o.Val)
}

// IsID reports whether the operand is a result-id reference.
func (o Operand) IsID() bool {
	return o.Kind == OperandID
}

// WordCount returns the number of words the operand occupies when
// encoded, including enumerant parameters.
func (o Operand) WordCount() int {
	n := 1
	switch o.Kind {
	case OperandInt64, OperandFloat64:
		n = 2
	case OperandString:
		n = words.StringWordCount(o.Str)
	}
	for _, p := range o.Params {
		n += p.WordCount()
	}
	return n
}

// encode appends the operand words to w.
func (o Operand) encode(w *words.Writer) {
	switch o.Kind {
	case OperandInt64, OperandFloat64:
		w.Word(uint32(o.Val))
		w.Word(uint32(o.Val >> 32))
	case OperandString:
		w.WriteString(o.Str)
	default:
		w.Word(uint32(o.Val))
	}
	for _, p := range o.Params {
		p.encode(w)
	}
}

// String renders the operand for listings and error messages.
func (o Operand) String() string {
	var s string
	switch o.Kind {
	case OperandInt32:
		s = fmt.Sprintf("%d", uint32(o.Val))
	case OperandInt64:
		s = fmt.Sprintf("%d", o.Val)
	case OperandFloat32:
		s = fmt.Sprintf("%g", o.AsFloat32())
	case OperandFloat64:
		s = fmt.Sprintf("%g", o.AsFloat64())
	case OperandString:
		s = fmt.Sprintf("%q", o.Str)
	case OperandID:
		s = fmt.Sprintf("%%%d", uint32(o.Val))
	case OperandEnum:
		if o.Enum.IsBitEnum() {
			s = strings.Join(grammar.BitEnumNames(o.Enum, uint32(o.Val)), "|")
		} else {
			s = grammar.EnumName(o.Enum, uint32(o.Val))
		}
	}
	if len(o.Params) > 0 {
		parts := make([]string, 0, len(o.Params))
		for _, p := range o.Params {
			parts = append(parts, p.String())
		}
		s += " " + strings.Join(parts, " ")
	}
	return s
}
