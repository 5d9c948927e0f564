package spv

import (
	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
)

// Module layout sections in their mandatory order.
const (
	sectionCapabilities = iota
	sectionExtensions
	sectionExtInstImports
	sectionMemoryModel
	sectionEntryPoints
	sectionExecutionModes
	sectionDebugStringSource
	sectionDebugNames
	sectionAnnotations
	sectionTypesGlobalValues
	sectionFunctions
)

// sectionFor classifies a module-level opcode into its layout section.
// Returns -1 for opcodes that may only appear inside a function body.
func sectionFor(op grammar.Op) int {
	switch op {
	case grammar.OpCapability:
		return sectionCapabilities
	case grammar.OpExtension:
		return sectionExtensions
	case grammar.OpExtInstImport:
		return sectionExtInstImports
	case grammar.OpMemoryModel:
		return sectionMemoryModel
	case grammar.OpEntryPoint:
		return sectionEntryPoints
	case grammar.OpExecutionMode:
		return sectionExecutionModes
	case grammar.OpString, grammar.OpSource, grammar.OpSourceExtension, grammar.OpSourceContinued:
		return sectionDebugStringSource
	case grammar.OpName, grammar.OpMemberName:
		return sectionDebugNames
	case grammar.OpDecorate, grammar.OpMemberDecorate, grammar.OpDecorationGroup,
		grammar.OpGroupDecorate, grammar.OpGroupMemberDecorate:
		return sectionAnnotations
	case grammar.OpFunction:
		return sectionFunctions
	}
	if grammar.IsTypeDecl(op) || grammar.IsConstDecl(op) {
		return sectionTypesGlobalValues
	}
	switch op {
	case grammar.OpVariable, grammar.OpUndef:
		// Also valid inside blocks; at module level they belong to the
		// types and global values section.
		return sectionTypesGlobalValues
	}
	return -1
}

var sectionNames = [...]string{
	"capabilities",
	"extensions",
	"extension instruction imports",
	"memory model",
	"entry points",
	"execution modes",
	"debug strings and sources",
	"debug names",
	"annotations",
	"types and global values",
	"functions",
}

// layoutWalker enforces section ordering and function/block nesting
// over a flat instruction stream. Decoding and validation both drive
// it, one instruction at a time.
type layoutWalker struct {
	section    int
	inFunction bool
	inBlock    bool
	sawMemory  bool
	blockLabel uint32
	funcID     uint32
	hasBlocks  bool
}

// step advances the walker by one instruction. pos is the word offset
// of the instruction for error reporting; validation of already-lifted
// modules passes -1.
func (w *layoutWalker) step(inst *Instruction, pos int) error {
	op := inst.Opcode

	// Line markers float freely between instructions.
	if op == grammar.OpLine || op == grammar.OpNoLine {
		return nil
	}

	if w.inFunction {
		return w.stepFunction(inst, pos)
	}

	if op == grammar.OpFunctionEnd || op == grammar.OpLabel ||
		op == grammar.OpFunctionParameter {
		return errors.InvalidLayout(phaseFor(pos), "%s outside a function", grammar.OpcodeName(op)).WithOffset(pos)
	}

	s := sectionFor(op)
	if s < 0 {
		return errors.InvalidLayout(phaseFor(pos), "%s not allowed at module level", grammar.OpcodeName(op)).WithOffset(pos)
	}
	if s == sectionFunctions {
		w.inFunction = true
		w.inBlock = false
		w.hasBlocks = false
		w.funcID = inst.ResultID
		w.section = sectionFunctions
		return nil
	}
	if s < w.section {
		return errors.InvalidLayout(phaseFor(pos), "%s section after %s section",
			sectionNames[s], sectionNames[w.section]).WithOffset(pos)
	}
	if s == sectionMemoryModel {
		if w.sawMemory {
			return errors.InvalidLayout(phaseFor(pos), "duplicate OpMemoryModel").WithOffset(pos)
		}
		w.sawMemory = true
	}
	w.section = s
	return nil
}

func (w *layoutWalker) stepFunction(inst *Instruction, pos int) error {
	op := inst.Opcode
	switch op {
	case grammar.OpFunction:
		return errors.InvalidLayout(phaseFor(pos), "OpFunction inside function %%%d", w.funcID).WithOffset(pos)
	case grammar.OpFunctionParameter:
		if w.hasBlocks || w.inBlock {
			return errors.InvalidLayout(phaseFor(pos), "OpFunctionParameter after first block").WithOffset(pos)
		}
		return nil
	case grammar.OpLabel:
		if w.inBlock {
			return errors.InvalidLayout(phaseFor(pos), "OpLabel inside unterminated block %%%d", w.blockLabel).WithOffset(pos)
		}
		w.inBlock = true
		w.hasBlocks = true
		w.blockLabel = inst.ResultID
		return nil
	case grammar.OpFunctionEnd:
		if w.inBlock {
			return errors.InvalidLayout(phaseFor(pos), "OpFunctionEnd inside unterminated block %%%d", w.blockLabel).WithOffset(pos)
		}
		w.inFunction = false
		return nil
	}
	if !w.inBlock {
		return errors.InvalidLayout(phaseFor(pos), "%s outside a block in function %%%d",
			grammar.OpcodeName(op), w.funcID).WithOffset(pos)
	}
	if sectionFor(op) >= 0 && op != grammar.OpVariable && op != grammar.OpUndef {
		return errors.InvalidLayout(phaseFor(pos), "%s inside a function body", grammar.OpcodeName(op)).WithOffset(pos)
	}
	if grammar.IsTerminator(op) {
		w.inBlock = false
	}
	return nil
}

// finish checks that no construct is left open at end of stream.
func (w *layoutWalker) finish(pos int) error {
	if w.inBlock {
		return errors.InvalidLayout(phaseFor(pos), "stream ends inside block %%%d", w.blockLabel).WithOffset(pos)
	}
	if w.inFunction {
		return errors.InvalidLayout(phaseFor(pos), "stream ends inside function %%%d", w.funcID).WithOffset(pos)
	}
	return nil
}

// phaseFor picks the error phase from the position convention: word
// offsets are only known while decoding.
func phaseFor(pos int) errors.Phase {
	if pos >= 0 {
		return errors.PhaseDecode
	}
	return errors.PhaseValidate
}

// ValidateLayout checks a flat instruction stream against the module
// layout rules: sections in order, memory model at most once, function
// bodies properly nested, and every block terminated.
func ValidateLayout(instrs []Instruction) error {
	var w layoutWalker
	for i := range instrs {
		if err := w.step(&instrs[i], -1); err != nil {
			return err
		}
	}
	return w.finish(-1)
}

// Validate checks the structured module: layout, bound, id uniqueness
// and reference resolution.
func (m *Module) Validate() error {
	flat := m.Instructions()
	if err := ValidateLayout(flat); err != nil {
		return err
	}

	defined := make(map[uint32]struct{})
	var maxID uint32
	for i := range flat {
		inst := &flat[i]
		if id := inst.ResultID; id != 0 {
			if _, dup := defined[id]; dup {
				return errors.DuplicateID(id)
			}
			defined[id] = struct{}{}
			if id > maxID {
				maxID = id
			}
		}
		var bad uint32
		inst.IDOperands(func(id uint32) {
			if id > maxID {
				maxID = id
			}
			if id == 0 && bad == 0 {
				bad = 1 // id 0 is never valid
			}
		})
		if bad != 0 {
			return errors.InvalidLayout(errors.PhaseValidate, "id 0 used by %s", grammar.OpcodeName(inst.Opcode))
		}
	}
	if m.Header.Bound <= maxID {
		return errors.InvalidLayout(errors.PhaseValidate,
			"bound %d not greater than max id %d", m.Header.Bound, maxID)
	}

	// Every referenced id must be defined somewhere in the module.
	for i := range flat {
		inst := &flat[i]
		var dangling uint32
		inst.IDOperands(func(id uint32) {
			if _, ok := defined[id]; !ok && dangling == 0 {
				dangling = id
			}
		})
		if dangling != 0 {
			return errors.DanglingID(dangling)
		}
	}

	if err := m.validateGlobalOrder(); err != nil {
		return err
	}
	return m.validateFunctionRefs(defined)
}

// validateGlobalOrder requires definition before use within the types
// and global values section. Forward references are not permitted for
// types, constants or global variables.
func (m *Module) validateGlobalOrder() error {
	declared := make(map[uint32]struct{}, len(m.TypesGlobalValues))
	for i := range m.TypesGlobalValues {
		inst := &m.TypesGlobalValues[i]
		var fwd uint32
		inst.IDOperands(func(id uint32) {
			if _, ok := declared[id]; !ok && fwd == 0 {
				fwd = id
			}
		})
		if fwd != 0 {
			return errors.InvalidLayout(errors.PhaseValidate,
				"%s references %%%d before its declaration", grammar.OpcodeName(inst.Opcode), fwd)
		}
		if inst.ResultID != 0 {
			declared[inst.ResultID] = struct{}{}
		}
	}
	return nil
}

// validateFunctionRefs checks reference ordering inside function
// bodies. An id used by a body instruction must be defined at module
// scope, earlier in the same body, or be a block label of the same
// function. OpPhi and OpFunctionCall may reference ids defined later.
func (m *Module) validateFunctionRefs(defined map[uint32]struct{}) error {
	global := make(map[uint32]struct{}, len(defined))
	for i := range m.TypesGlobalValues {
		if id := m.TypesGlobalValues[i].ResultID; id != 0 {
			global[id] = struct{}{}
		}
	}
	for i := range m.ExtInstImports {
		if id := m.ExtInstImports[i].ResultID; id != 0 {
			global[id] = struct{}{}
		}
	}
	for i := range m.Functions {
		if id := m.Functions[i].ID(); id != 0 {
			global[id] = struct{}{}
		}
	}

	for i := range m.Functions {
		f := &m.Functions[i]
		labels := make(map[uint32]struct{}, len(f.Blocks))
		for j := range f.Blocks {
			labels[f.Blocks[j].ID()] = struct{}{}
		}
		local := make(map[uint32]struct{})
		for j := range f.Parameters {
			if id := f.Parameters[j].ResultID; id != 0 {
				local[id] = struct{}{}
			}
		}
		check := func(inst *Instruction) error {
			if inst.Opcode == grammar.OpPhi || inst.Opcode == grammar.OpFunctionCall {
				return nil
			}
			var fwd uint32
			inst.IDOperands(func(id uint32) {
				if fwd != 0 {
					return
				}
				if _, ok := global[id]; ok {
					return
				}
				if _, ok := labels[id]; ok {
					return
				}
				if _, ok := local[id]; ok {
					return
				}
				fwd = id
			})
			if fwd != 0 {
				return errors.InvalidLayout(errors.PhaseValidate,
					"%s in function %%%d references %%%d before its definition",
					grammar.OpcodeName(inst.Opcode), f.ID(), fwd)
			}
			return nil
		}
		for j := range f.Blocks {
			b := &f.Blocks[j]
			for k := range b.Instructions {
				inst := &b.Instructions[k]
				if err := check(inst); err != nil {
					return err
				}
				if inst.ResultID != 0 {
					local[inst.ResultID] = struct{}{}
				}
			}
			if !b.Terminated() {
				return errors.InvalidLayout(errors.PhaseValidate,
					"block %%%d has no terminator", b.ID())
			}
			for k := 0; k < len(b.Instructions)-1; k++ {
				if grammar.IsTerminator(b.Instructions[k].Opcode) {
					return errors.InvalidLayout(errors.PhaseValidate,
						"terminator %s before end of block %%%d",
						grammar.OpcodeName(b.Instructions[k].Opcode), b.ID())
				}
			}
		}
	}
	return nil
}
