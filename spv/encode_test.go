package spv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
)

// computeModule assembles a small compute shader module by hand: one
// entry point, a storage buffer variable and a function that stores a
// constant through it.
func computeModule() *Module {
	m := NewModule(Version1_0)
	m.Header.Bound = 20

	m.Capabilities = []Instruction{
		{Opcode: grammar.OpCapability, Operands: []Operand{
			Enum(grammar.KindCapability, grammar.CapabilityShader),
		}},
	}
	m.ExtInstImports = []Instruction{
		{Opcode: grammar.OpExtInstImport, ResultID: 1, Operands: []Operand{
			Str("GLSL.std.450"),
		}},
	}
	m.MemoryModel = &Instruction{Opcode: grammar.OpMemoryModel, Operands: []Operand{
		Enum(grammar.KindAddressingModel, grammar.AddressingLogical),
		Enum(grammar.KindMemoryModel, grammar.MemoryModelGLSL450),
	}}
	m.EntryPoints = []Instruction{
		{Opcode: grammar.OpEntryPoint, Operands: []Operand{
			Enum(grammar.KindExecutionModel, grammar.ExecutionModelGLCompute),
			ID(10), Str("main"),
		}},
	}
	m.ExecutionModes = []Instruction{
		{Opcode: grammar.OpExecutionMode, Operands: []Operand{
			ID(10),
			Enum(grammar.KindExecutionMode, grammar.ExecutionModeLocalSize,
				Int32(64), Int32(1), Int32(1)),
		}},
	}
	m.DebugNames = []Instruction{
		{Opcode: grammar.OpName, Operands: []Operand{ID(10), Str("main")}},
	}
	m.Annotations = []Instruction{
		{Opcode: grammar.OpDecorate, Operands: []Operand{
			ID(7),
			Enum(grammar.KindDecoration, grammar.DecorationDescriptorSet, Int32(0)),
		}},
	}
	m.TypesGlobalValues = []Instruction{
		{Opcode: grammar.OpTypeVoid, ResultID: 2},
		{Opcode: grammar.OpTypeFunction, ResultID: 3, Operands: []Operand{ID(2)}},
		{Opcode: grammar.OpTypeInt, ResultID: 4, Operands: []Operand{Int32(32), Int32(0)}},
		{Opcode: grammar.OpConstant, ResultType: 4, ResultID: 5, Operands: []Operand{Int32(7)}},
		{Opcode: grammar.OpTypePointer, ResultID: 6, Operands: []Operand{
			Enum(grammar.KindStorageClass, grammar.StorageStorageBuffer), ID(4),
		}},
		{Opcode: grammar.OpVariable, ResultType: 6, ResultID: 7, Operands: []Operand{
			Enum(grammar.KindStorageClass, grammar.StorageStorageBuffer),
		}},
	}
	m.Functions = []Function{{
		Def: Instruction{Opcode: grammar.OpFunction, ResultType: 2, ResultID: 10,
			Operands: []Operand{
				Enum(grammar.KindFunctionControl, grammar.FunctionControlNone),
				ID(3),
			}},
		Blocks: []Block{{
			Label: Instruction{Opcode: grammar.OpLabel, ResultID: 11},
			Instructions: []Instruction{
				{Opcode: grammar.OpStore, Operands: []Operand{ID(7), ID(5)}},
				{Opcode: grammar.OpReturn},
			},
		}},
	}}
	return m
}

func TestEncodeHeaderOnly(t *testing.T) {
	m := NewModule(Version1_0)
	m.Header.Bound = 10
	m.Header.Generator = 42

	ws, err := m.EncodeWords()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []uint32{Magic, Version1_0.Word(), 42, 10, 0}
	if diff := cmp.Diff(want, ws); diff != "" {
		t.Errorf("header words mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripComputeModule(t *testing.T) {
	m := computeModule()
	ws, err := m.EncodeWords()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeWords(ws)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripBytes(t *testing.T) {
	m := computeModule()
	b, err := m.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b2, err := got.Encode()
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(b, b2) {
		t.Error("re-encoded bytes differ from the original encoding")
	}
}

func TestEncodeWordCountOverflow(t *testing.T) {
	m := NewModule(Version1_0)
	m.DebugStringSource = []Instruction{
		{Opcode: grammar.OpString, ResultID: 1, Operands: []Operand{
			Str(strings.Repeat("x", 4*MaxWordCount)),
		}},
	}
	_, err := m.EncodeWords()
	mustKind(t, err, errors.KindWordCountOverflow)
}

func TestEncodeResultMismatch(t *testing.T) {
	m := NewModule(Version1_0)
	m.Capabilities = []Instruction{
		{Opcode: grammar.OpCapability, ResultID: 3, Operands: []Operand{
			Enum(grammar.KindCapability, grammar.CapabilityShader),
		}},
	}
	_, err := m.EncodeWords()
	mustKind(t, err, errors.KindOperandMismatch)
}

func TestInstructionWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   Instruction
		want int
	}{
		{"no operands", Instruction{Opcode: grammar.OpReturn}, 1},
		{"result only", Instruction{Opcode: grammar.OpLabel, ResultID: 1}, 2},
		{"string", Instruction{Opcode: grammar.OpExtInstImport, ResultID: 1,
			Operands: []Operand{Str("GLSL.std.450")}}, 6},
		{"wide literal", Instruction{Opcode: grammar.OpConstant, ResultType: 1, ResultID: 2,
			Operands: []Operand{Int64(1 << 40)}}, 5},
		{"enum with params", Instruction{Opcode: grammar.OpExecutionMode,
			Operands: []Operand{ID(1),
				Enum(grammar.KindExecutionMode, grammar.ExecutionModeLocalSize,
					Int32(8), Int32(8), Int32(1))}}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.WordCount(); got != tt.want {
				t.Errorf("word count = %d, want %d", got, tt.want)
			}
		})
	}
}
