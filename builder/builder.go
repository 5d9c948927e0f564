package builder

import (
	"go.uber.org/zap"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv"
)

// Builder assembles a module incrementally. Module-level declarations
// may be added at any time; instructions go into the currently open
// block of the currently open function. Types and constants are
// deduplicated, so declaring the same one twice returns the same id.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	module *spv.Module
	ids    Allocator
	types  map[string]uint32
	consts map[string]uint32

	fn        *spv.Function
	blockOpen bool
}

// New returns a builder for an empty module of the given version.
func New(version spv.Version) *Builder {
	return &Builder{
		module: spv.NewModule(version),
		ids:    NewAllocator(),
		types:  make(map[string]uint32),
		consts: make(map[string]uint32),
	}
}

// LoadModule returns a builder that extends an existing module. The id
// allocator is advanced past the module's bound and existing types and
// constants are indexed for deduplication.
func LoadModule(m *spv.Module) *Builder {
	b := &Builder{
		module: m,
		ids:    NewAllocator(),
		types:  make(map[string]uint32),
		consts: make(map[string]uint32),
	}
	b.ids.ReserveUpTo(m.Header.Bound)
	for i := range m.TypesGlobalValues {
		inst := &m.TypesGlobalValues[i]
		switch {
		case grammar.IsTypeDecl(inst.Opcode):
			b.types[typeKey(inst.Opcode, inst.Operands)] = inst.ResultID
		case grammar.IsConstDecl(inst.Opcode):
			b.consts[constKey(inst.Opcode, inst.ResultType, inst.Operands)] = inst.ResultID
		}
	}
	return b
}

// ID allocates a fresh result id.
func (b *Builder) ID() uint32 {
	return b.ids.Fresh()
}

// AddCapability appends an OpCapability declaration.
func (b *Builder) AddCapability(cap uint32) {
	b.module.Capabilities = append(b.module.Capabilities, spv.Instruction{
		Opcode:   grammar.OpCapability,
		Operands: []spv.Operand{spv.Enum(grammar.KindCapability, cap)},
	})
}

// AddExtension appends an OpExtension declaration.
func (b *Builder) AddExtension(name string) {
	b.module.Extensions = append(b.module.Extensions, spv.Instruction{
		Opcode:   grammar.OpExtension,
		Operands: []spv.Operand{spv.Str(name)},
	})
}

// AddExtInstImport imports an extended instruction set and returns its
// id. Importing the same set twice returns the existing id.
func (b *Builder) AddExtInstImport(name string) uint32 {
	for i := range b.module.ExtInstImports {
		imp := &b.module.ExtInstImports[i]
		if len(imp.Operands) == 1 && imp.Operands[0].Str == name {
			return imp.ResultID
		}
	}
	id := b.ids.Fresh()
	b.module.ExtInstImports = append(b.module.ExtInstImports, spv.Instruction{
		Opcode:   grammar.OpExtInstImport,
		ResultID: id,
		Operands: []spv.Operand{spv.Str(name)},
	})
	return id
}

// SetMemoryModel sets the module's addressing and memory model,
// replacing any previous one.
func (b *Builder) SetMemoryModel(addressing, memory uint32) {
	b.module.MemoryModel = &spv.Instruction{
		Opcode: grammar.OpMemoryModel,
		Operands: []spv.Operand{
			spv.Enum(grammar.KindAddressingModel, addressing),
			spv.Enum(grammar.KindMemoryModel, memory),
		},
	}
}

// AddEntryPoint declares an entry point for the given execution model.
// The interface lists the global variables the entry point accesses.
func (b *Builder) AddEntryPoint(model uint32, fn uint32, name string, iface ...uint32) {
	ops := make([]spv.Operand, 0, 3+len(iface))
	ops = append(ops,
		spv.Enum(grammar.KindExecutionModel, model),
		spv.ID(fn),
		spv.Str(name))
	for _, id := range iface {
		ops = append(ops, spv.ID(id))
	}
	b.module.EntryPoints = append(b.module.EntryPoints, spv.Instruction{
		Opcode:   grammar.OpEntryPoint,
		Operands: ops,
	})
}

// AddExecutionMode attaches an execution mode to an entry point. The
// literals are the mode's extra operands, LocalSize takes three.
func (b *Builder) AddExecutionMode(fn uint32, mode uint32, literals ...uint32) {
	params := make([]spv.Operand, 0, len(literals))
	for _, l := range literals {
		params = append(params, spv.Int32(l))
	}
	b.module.ExecutionModes = append(b.module.ExecutionModes, spv.Instruction{
		Opcode: grammar.OpExecutionMode,
		Operands: []spv.Operand{
			spv.ID(fn),
			spv.Enum(grammar.KindExecutionMode, mode, params...),
		},
	})
}

// AddSource records the source language the module was produced from.
func (b *Builder) AddSource(language uint32, version uint32) {
	b.module.DebugStringSource = append(b.module.DebugStringSource, spv.Instruction{
		Opcode: grammar.OpSource,
		Operands: []spv.Operand{
			spv.Enum(grammar.KindSourceLanguage, language),
			spv.Int32(version),
		},
	})
}

// AddName attaches a debug name to an id.
func (b *Builder) AddName(target uint32, name string) {
	b.module.DebugNames = append(b.module.DebugNames, spv.Instruction{
		Opcode:   grammar.OpName,
		Operands: []spv.Operand{spv.ID(target), spv.Str(name)},
	})
}

// AddMemberName attaches a debug name to a structure member.
func (b *Builder) AddMemberName(structType uint32, member uint32, name string) {
	b.module.DebugNames = append(b.module.DebugNames, spv.Instruction{
		Opcode:   grammar.OpMemberName,
		Operands: []spv.Operand{spv.ID(structType), spv.Int32(member), spv.Str(name)},
	})
}

// AddDecoration decorates an id. Parameterized decorations carry their
// extra operands in params, Location takes one literal.
func (b *Builder) AddDecoration(target uint32, decoration uint32, params ...spv.Operand) {
	b.module.Annotations = append(b.module.Annotations, spv.Instruction{
		Opcode: grammar.OpDecorate,
		Operands: []spv.Operand{
			spv.ID(target),
			spv.Enum(grammar.KindDecoration, decoration, params...),
		},
	})
}

// AddMemberDecoration decorates a structure member.
func (b *Builder) AddMemberDecoration(structType uint32, member uint32, decoration uint32, params ...spv.Operand) {
	b.module.Annotations = append(b.module.Annotations, spv.Instruction{
		Opcode: grammar.OpMemberDecorate,
		Operands: []spv.Operand{
			spv.ID(structType),
			spv.Int32(member),
			spv.Enum(grammar.KindDecoration, decoration, params...),
		},
	})
}

// AddGlobalVariable declares a module-scope variable of the given
// pointer type and storage class. Initializer 0 means none.
func (b *Builder) AddGlobalVariable(pointerType uint32, storage uint32, initializer uint32) uint32 {
	id := b.ids.Fresh()
	ops := []spv.Operand{spv.Enum(grammar.KindStorageClass, storage)}
	if initializer != 0 {
		ops = append(ops, spv.ID(initializer))
	}
	b.module.TypesGlobalValues = append(b.module.TypesGlobalValues, spv.Instruction{
		Opcode:     grammar.OpVariable,
		ResultType: pointerType,
		ResultID:   id,
		Operands:   ops,
	})
	return id
}

// AddLocalVariable declares a function-scope variable of the given
// pointer type. Local variables live at the start of the function's
// first block, so one must be open. Initializer 0 means none.
func (b *Builder) AddLocalVariable(pointerType uint32, initializer uint32) (uint32, error) {
	if b.fn == nil {
		return 0, errors.NoOpenFunction("OpVariable")
	}
	if len(b.fn.Blocks) == 0 {
		return 0, errors.NoOpenBlock("OpVariable")
	}
	id := b.ids.Fresh()
	ops := []spv.Operand{spv.Enum(grammar.KindStorageClass, grammar.StorageFunction)}
	if initializer != 0 {
		ops = append(ops, spv.ID(initializer))
	}
	inst := spv.Instruction{
		Opcode:     grammar.OpVariable,
		ResultType: pointerType,
		ResultID:   id,
		Operands:   ops,
	}
	entry := &b.fn.Blocks[0]
	at := 0
	for at < len(entry.Instructions) && entry.Instructions[at].Opcode == grammar.OpVariable {
		at++
	}
	entry.Instructions = append(entry.Instructions, spv.Instruction{})
	copy(entry.Instructions[at+1:], entry.Instructions[at:])
	entry.Instructions[at] = inst
	return id, nil
}

// BeginFunction opens a function with the given return type, function
// type and control mask, and returns the function's id. Fails with a
// nested function error if a function is already open.
func (b *Builder) BeginFunction(returnType, functionType uint32, control uint32) (uint32, error) {
	if b.fn != nil {
		return 0, errors.NestedFunction(b.fn.ID())
	}
	id := b.ids.Fresh()
	b.fn = &spv.Function{
		Def: spv.Instruction{
			Opcode:     grammar.OpFunction,
			ResultType: returnType,
			ResultID:   id,
			Operands: []spv.Operand{
				spv.Enum(grammar.KindFunctionControl, control),
				spv.ID(functionType),
			},
		},
	}
	b.blockOpen = false
	return id, nil
}

// DeclareParameter adds a parameter to the open function. Parameters
// must all be declared before the first block.
func (b *Builder) DeclareParameter(paramType uint32) (uint32, error) {
	if b.fn == nil {
		return 0, errors.NoOpenFunction("OpFunctionParameter")
	}
	if len(b.fn.Blocks) > 0 {
		return 0, errors.InvalidLayout(errors.PhaseBuild,
			"parameter declared after the function's first block")
	}
	id := b.ids.Fresh()
	b.fn.Parameters = append(b.fn.Parameters, spv.Instruction{
		Opcode:     grammar.OpFunctionParameter,
		ResultType: paramType,
		ResultID:   id,
	})
	return id, nil
}

// BeginBlock opens a new basic block in the open function and returns
// its label id. The previous block, if any, must be terminated.
func (b *Builder) BeginBlock() (uint32, error) {
	return b.BeginBlockWithID(0)
}

// BeginBlockWithID opens a block under a previously allocated label id,
// so branches emitted earlier can name blocks created later. Id 0
// allocates a fresh label.
func (b *Builder) BeginBlockWithID(id uint32) (uint32, error) {
	if b.fn == nil {
		return 0, errors.NoOpenFunction("OpLabel")
	}
	if b.blockOpen {
		return 0, errors.UnterminatedBlock(b.currentBlock().ID())
	}
	if id == 0 {
		id = b.ids.Fresh()
	}
	b.fn.Blocks = append(b.fn.Blocks, spv.Block{
		Label: spv.Instruction{Opcode: grammar.OpLabel, ResultID: id},
	})
	b.blockOpen = true
	return id, nil
}

func (b *Builder) currentBlock() *spv.Block {
	return &b.fn.Blocks[len(b.fn.Blocks)-1]
}

// Emit appends an instruction to the open block. A failed emit leaves
// the block unchanged. Emitting a terminator closes the block.
func (b *Builder) Emit(inst spv.Instruction) error {
	if b.fn == nil {
		return errors.NoOpenFunction(grammar.OpcodeName(inst.Opcode))
	}
	if len(b.fn.Blocks) == 0 {
		return errors.NoOpenBlock(grammar.OpcodeName(inst.Opcode))
	}
	if !b.blockOpen {
		return errors.BlockTerminated(b.currentBlock().ID())
	}
	blk := b.currentBlock()
	blk.Instructions = append(blk.Instructions, inst)
	if grammar.IsTerminator(inst.Opcode) {
		b.blockOpen = false
	}
	return nil
}

// EmitOp builds an instruction from its opcode and operands, allocating
// a result id when the opcode produces one, and emits it.
func (b *Builder) EmitOp(op grammar.Op, resultType uint32, operands ...spv.Operand) (uint32, error) {
	inst := spv.Instruction{Opcode: op, ResultType: resultType, Operands: operands}
	var id uint32
	if grammar.HasResult(op) {
		id = b.ids.Fresh()
		inst.ResultID = id
	}
	if err := b.Emit(inst); err != nil {
		return 0, err
	}
	return id, nil
}

// EndFunction closes the open function and appends it to the module.
// The last block must be terminated.
func (b *Builder) EndFunction() error {
	if b.fn == nil {
		return errors.NoOpenFunction("OpFunctionEnd")
	}
	if b.blockOpen {
		return errors.UnterminatedBlock(b.currentBlock().ID())
	}
	b.module.Functions = append(b.module.Functions, *b.fn)
	b.fn = nil
	return nil
}

// Module finalizes and returns the built module. It fails if a function
// is still open, sets the id bound from the allocator, and validates
// the result.
func (b *Builder) Module() (*spv.Module, error) {
	if b.fn != nil {
		return nil, errors.OpenConstruct("function")
	}
	bound := b.ids.Bound()
	if computed := b.module.ComputeBound(); computed > bound {
		bound = computed
	}
	b.module.Header.Bound = bound
	if err := b.module.Validate(); err != nil {
		return nil, err
	}
	Logger().Debug("finalized module",
		zap.Uint32("bound", bound),
		zap.Int("functions", len(b.module.Functions)))
	return b.module, nil
}
