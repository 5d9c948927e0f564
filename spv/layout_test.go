package spv

import (
	"testing"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
)

func TestValidateLayoutAccepts(t *testing.T) {
	m := computeModule()
	if err := ValidateLayout(m.Instructions()); err != nil {
		t.Fatalf("layout rejected a well-formed module: %v", err)
	}
}

func TestValidateLayoutSectionOrder(t *testing.T) {
	instrs := []Instruction{
		{Opcode: grammar.OpMemoryModel, Operands: []Operand{
			Enum(grammar.KindAddressingModel, grammar.AddressingLogical),
			Enum(grammar.KindMemoryModel, grammar.MemoryModelGLSL450),
		}},
		{Opcode: grammar.OpCapability, Operands: []Operand{
			Enum(grammar.KindCapability, grammar.CapabilityShader),
		}},
	}
	mustKind(t, ValidateLayout(instrs), errors.KindInvalidLayout)
}

func TestValidateLayoutDuplicateMemoryModel(t *testing.T) {
	mm := Instruction{Opcode: grammar.OpMemoryModel, Operands: []Operand{
		Enum(grammar.KindAddressingModel, grammar.AddressingLogical),
		Enum(grammar.KindMemoryModel, grammar.MemoryModelGLSL450),
	}}
	mustKind(t, ValidateLayout([]Instruction{mm, mm}), errors.KindInvalidLayout)
}

func TestValidateLayoutBodyOpAtModuleLevel(t *testing.T) {
	instrs := []Instruction{
		{Opcode: grammar.OpIAdd, ResultType: 1, ResultID: 2,
			Operands: []Operand{ID(3), ID(4)}},
	}
	mustKind(t, ValidateLayout(instrs), errors.KindInvalidLayout)
}

func TestValidateLayoutLabelOutsideFunction(t *testing.T) {
	instrs := []Instruction{{Opcode: grammar.OpLabel, ResultID: 1}}
	mustKind(t, ValidateLayout(instrs), errors.KindInvalidLayout)
}

func TestValidateLayoutParameterAfterBlock(t *testing.T) {
	instrs := []Instruction{
		{Opcode: grammar.OpFunction, ResultType: 1, ResultID: 2, Operands: []Operand{
			Enum(grammar.KindFunctionControl, grammar.FunctionControlNone), ID(3),
		}},
		{Opcode: grammar.OpLabel, ResultID: 4},
		{Opcode: grammar.OpReturn},
		{Opcode: grammar.OpFunctionParameter, ResultType: 5, ResultID: 6},
	}
	mustKind(t, ValidateLayout(instrs), errors.KindInvalidLayout)
}

func TestValidateLayoutFunctionEndInsideBlock(t *testing.T) {
	instrs := []Instruction{
		{Opcode: grammar.OpFunction, ResultType: 1, ResultID: 2, Operands: []Operand{
			Enum(grammar.KindFunctionControl, grammar.FunctionControlNone), ID(3),
		}},
		{Opcode: grammar.OpLabel, ResultID: 4},
		{Opcode: grammar.OpFunctionEnd},
	}
	mustKind(t, ValidateLayout(instrs), errors.KindInvalidLayout)
}

func TestValidateAcceptsComputeModule(t *testing.T) {
	if err := computeModule().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	m := computeModule()
	m.TypesGlobalValues = append(m.TypesGlobalValues,
		Instruction{Opcode: grammar.OpTypeBool, ResultID: 2})
	mustKind(t, m.Validate(), errors.KindDuplicateID)
}

func TestValidateDanglingID(t *testing.T) {
	m := computeModule()
	m.DebugNames = append(m.DebugNames,
		Instruction{Opcode: grammar.OpName, Operands: []Operand{ID(19), Str("ghost")}})
	mustKind(t, m.Validate(), errors.KindDanglingID)
}

func TestValidateBoundTooSmall(t *testing.T) {
	m := computeModule()
	m.Header.Bound = 5
	mustKind(t, m.Validate(), errors.KindInvalidLayout)
}

func TestValidateGlobalForwardReference(t *testing.T) {
	m := computeModule()
	// Pointer type names its pointee before the pointee is declared.
	m.TypesGlobalValues = []Instruction{
		{Opcode: grammar.OpTypePointer, ResultID: 6, Operands: []Operand{
			Enum(grammar.KindStorageClass, grammar.StorageFunction), ID(4),
		}},
		{Opcode: grammar.OpTypeInt, ResultID: 4, Operands: []Operand{Int32(32), Int32(0)}},
		{Opcode: grammar.OpTypeVoid, ResultID: 2},
		{Opcode: grammar.OpTypeFunction, ResultID: 3, Operands: []Operand{ID(2)}},
		{Opcode: grammar.OpConstant, ResultType: 4, ResultID: 5, Operands: []Operand{Int32(7)}},
		{Opcode: grammar.OpVariable, ResultType: 6, ResultID: 7, Operands: []Operand{
			Enum(grammar.KindStorageClass, grammar.StorageFunction),
		}},
	}
	mustKind(t, m.Validate(), errors.KindInvalidLayout)
}

func TestValidateForwardBranchTarget(t *testing.T) {
	m := computeModule()
	f := &m.Functions[0]
	f.Blocks = []Block{
		{
			Label: Instruction{Opcode: grammar.OpLabel, ResultID: 11},
			Instructions: []Instruction{
				{Opcode: grammar.OpBranch, Operands: []Operand{ID(12)}},
			},
		},
		{
			Label: Instruction{Opcode: grammar.OpLabel, ResultID: 12},
			Instructions: []Instruction{
				{Opcode: grammar.OpReturn},
			},
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("forward branch target rejected: %v", err)
	}
}

func TestValidateForwardValueReference(t *testing.T) {
	m := computeModule()
	f := &m.Functions[0]
	// %13 is defined after the add that consumes it.
	f.Blocks[0].Instructions = []Instruction{
		{Opcode: grammar.OpIAdd, ResultType: 4, ResultID: 14,
			Operands: []Operand{ID(13), ID(5)}},
		{Opcode: grammar.OpIAdd, ResultType: 4, ResultID: 13,
			Operands: []Operand{ID(5), ID(5)}},
		{Opcode: grammar.OpReturn},
	}
	mustKind(t, m.Validate(), errors.KindInvalidLayout)
}

func TestValidateUnterminatedBlock(t *testing.T) {
	m := computeModule()
	b := &m.Functions[0].Blocks[0]
	b.Instructions = b.Instructions[:len(b.Instructions)-1]
	mustKind(t, m.Validate(), errors.KindInvalidLayout)
}

func TestValidateTerminatorMidBlock(t *testing.T) {
	m := computeModule()
	b := &m.Functions[0].Blocks[0]
	b.Instructions = []Instruction{
		{Opcode: grammar.OpReturn},
		{Opcode: grammar.OpStore, Operands: []Operand{ID(7), ID(5)}},
		{Opcode: grammar.OpReturn},
	}
	mustKind(t, m.Validate(), errors.KindInvalidLayout)
}
