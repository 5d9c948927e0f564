package spv

import (
	"github.com/wippyai/spirv-tools/grammar"
)

// Header is the five-word module header.
type Header struct {
	Magic     uint32
	Version   Version
	Generator uint32
	Bound     uint32
	Schema    uint32
}

// NewHeader returns a header with the magic set and a minimal bound.
func NewHeader(version Version) Header {
	return Header{
		Magic:     Magic,
		Version:   version,
		Generator: GeneratorUnregistered,
		Bound:     1,
	}
}

// Instruction is a single decoded instruction. ResultType and ResultID
// are zero when the opcode does not produce them.
type Instruction struct {
	Operands   []Operand
	Opcode     grammar.Op
	ResultType uint32
	ResultID   uint32
}

// WordCount returns the encoded size of the instruction in words,
// including the opcode word.
func (i *Instruction) WordCount() int {
	n := 1
	if i.ResultType != 0 {
		n++
	}
	if i.ResultID != 0 {
		n++
	}
	for _, o := range i.Operands {
		n += o.WordCount()
	}
	return n
}

// IDOperands calls visit for every result-id reference the instruction
// makes, including ResultType and enumerant parameters, but not the
// instruction's own ResultID.
func (i *Instruction) IDOperands(visit func(id uint32)) {
	if i.ResultType != 0 {
		visit(i.ResultType)
	}
	for _, o := range i.Operands {
		visitOperandIDs(o, visit)
	}
}

func visitOperandIDs(o Operand, visit func(id uint32)) {
	if o.Kind == OperandID {
		visit(uint32(o.Val))
	}
	for _, p := range o.Params {
		visitOperandIDs(p, visit)
	}
}

// Block is a basic block: an OpLabel followed by its instructions. A
// well-formed block ends with exactly one terminator.
type Block struct {
	Label        Instruction
	Instructions []Instruction
}

// ID returns the block's label id.
func (b *Block) ID() uint32 {
	return b.Label.ResultID
}

// Terminated reports whether the block ends with a terminator.
func (b *Block) Terminated() bool {
	if len(b.Instructions) == 0 {
		return false
	}
	return grammar.IsTerminator(b.Instructions[len(b.Instructions)-1].Opcode)
}

// Function is an OpFunction definition with its parameters and blocks.
// A function with no blocks is a declaration. The closing OpFunctionEnd
// is implicit and synthesized on encode.
type Function struct {
	Def        Instruction
	Parameters []Instruction
	Blocks     []Block
}

// ID returns the function's result id.
func (f *Function) ID() uint32 {
	return f.Def.ResultID
}

// Module is a structured SPIR-V module. Section slices follow the
// logical layout order; encoding emits them in exactly this order.
type Module struct {
	Header Header

	Capabilities      []Instruction
	Extensions        []Instruction
	ExtInstImports    []Instruction
	MemoryModel       *Instruction
	EntryPoints       []Instruction
	ExecutionModes    []Instruction
	DebugStringSource []Instruction
	DebugNames        []Instruction
	Annotations       []Instruction
	TypesGlobalValues []Instruction
	Functions         []Function
}

// NewModule returns an empty module for the given version.
func NewModule(version Version) *Module {
	return &Module{Header: NewHeader(version)}
}

// Instructions flattens the module into the logical instruction stream,
// synthesizing OpFunctionEnd after each function.
func (m *Module) Instructions() []Instruction {
	out := make([]Instruction, 0, m.instructionCount())
	out = append(out, m.Capabilities...)
	out = append(out, m.Extensions...)
	out = append(out, m.ExtInstImports...)
	if m.MemoryModel != nil {
		out = append(out, *m.MemoryModel)
	}
	out = append(out, m.EntryPoints...)
	out = append(out, m.ExecutionModes...)
	out = append(out, m.DebugStringSource...)
	out = append(out, m.DebugNames...)
	out = append(out, m.Annotations...)
	out = append(out, m.TypesGlobalValues...)
	for i := range m.Functions {
		f := &m.Functions[i]
		out = append(out, f.Def)
		out = append(out, f.Parameters...)
		for j := range f.Blocks {
			out = append(out, f.Blocks[j].Label)
			out = append(out, f.Blocks[j].Instructions...)
		}
		out = append(out, Instruction{Opcode: grammar.OpFunctionEnd})
	}
	return out
}

func (m *Module) instructionCount() int {
	n := len(m.Capabilities) + len(m.Extensions) + len(m.ExtInstImports) +
		len(m.EntryPoints) + len(m.ExecutionModes) +
		len(m.DebugStringSource) + len(m.DebugNames) +
		len(m.Annotations) + len(m.TypesGlobalValues)
	if m.MemoryModel != nil {
		n++
	}
	for i := range m.Functions {
		f := &m.Functions[i]
		n += 2 + len(f.Parameters)
		for j := range f.Blocks {
			n += 1 + len(f.Blocks[j].Instructions)
		}
	}
	return n
}

// ComputeBound returns the smallest valid id bound: one greater than
// the largest id defined or referenced anywhere in the module.
func (m *Module) ComputeBound() uint32 {
	var maxID uint32
	note := func(id uint32) {
		if id > maxID {
			maxID = id
		}
	}
	for _, inst := range m.Instructions() {
		note(inst.ResultID)
		inst.IDOperands(note)
	}
	return maxID + 1
}
