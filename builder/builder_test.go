package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv"
)

// buildComputeModule assembles a minimal compute shader through the
// builder API.
func buildComputeModule(t *testing.T) *spv.Module {
	t.Helper()
	b := New(spv.Version1_0)
	b.AddCapability(grammar.CapabilityShader)
	b.SetMemoryModel(grammar.AddressingLogical, grammar.MemoryModelGLSL450)

	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)

	fn, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)
	_, err = b.BeginBlock()
	require.NoError(t, err)
	require.NoError(t, b.Emit(spv.Instruction{Opcode: grammar.OpReturn}))
	require.NoError(t, b.EndFunction())

	b.AddEntryPoint(grammar.ExecutionModelGLCompute, fn, "main")
	b.AddExecutionMode(fn, grammar.ExecutionModeLocalSize, 1, 1, 1)

	m, err := b.Module()
	require.NoError(t, err)
	return m
}

func TestBuildMinimalModule(t *testing.T) {
	m := buildComputeModule(t)
	require.Len(t, m.Functions, 1)
	assert.Len(t, m.Functions[0].Blocks, 1)
	assert.True(t, m.Functions[0].Blocks[0].Terminated())
	assert.Greater(t, m.Header.Bound, uint32(1))
}

func TestBuildEncodeDecodeRoundTrip(t *testing.T) {
	m := buildComputeModule(t)
	b, err := m.Encode()
	require.NoError(t, err)
	back, err := spv.Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m.Header, back.Header)
	assert.Equal(t, m.Instructions(), back.Instructions())
}

func TestIDAllocator(t *testing.T) {
	var a Allocator = NewAllocator()
	assert.Equal(t, uint32(1), a.Fresh())
	assert.Equal(t, uint32(2), a.Fresh())
	a.ReserveUpTo(10)
	assert.Equal(t, uint32(10), a.Fresh())
	a.ReserveUpTo(5) // lower bounds never move the cursor back
	assert.Equal(t, uint32(11), a.Fresh())
	assert.Equal(t, uint32(12), a.Bound())
}

func TestTypeDeduplication(t *testing.T) {
	b := New(spv.Version1_0)
	i32 := b.TypeInt(32, 1)
	assert.Equal(t, i32, b.TypeInt(32, 1))
	assert.NotEqual(t, i32, b.TypeInt(32, 0))
	assert.NotEqual(t, i32, b.TypeInt(64, 1))

	vec := b.TypeVector(i32, 4)
	assert.Equal(t, vec, b.TypeVector(i32, 4))

	fn := b.TypeFunction(i32, i32, i32)
	assert.Equal(t, fn, b.TypeFunction(i32, i32, i32))
	assert.NotEqual(t, fn, b.TypeFunction(i32, i32))
}

func TestImageTypes(t *testing.T) {
	b := New(spv.Version1_0)
	f32 := b.TypeFloat(32)

	img := b.TypeImage(f32, grammar.Dim2D, 0, 0, 0, 1, grammar.ImageFormatUnknown)
	assert.Equal(t, img, b.TypeImage(f32, grammar.Dim2D, 0, 0, 0, 1, grammar.ImageFormatUnknown))
	assert.NotEqual(t, img, b.TypeImage(f32, grammar.Dim3D, 0, 0, 0, 1, grammar.ImageFormatUnknown))

	sampled := b.TypeSampledImage(img)
	assert.Equal(t, sampled, b.TypeSampledImage(img))
	assert.Equal(t, b.TypeSampler(), b.TypeSampler())
}

func TestConstantDeduplication(t *testing.T) {
	b := New(spv.Version1_0)
	i32 := b.TypeInt(32, 1)
	f32 := b.TypeFloat(32)

	c := b.DeclareConstant(i32, spv.Int32(7))
	assert.Equal(t, c, b.DeclareConstant(i32, spv.Int32(7)))
	assert.NotEqual(t, c, b.DeclareConstant(i32, spv.Int32(8)))
	// Same bit pattern under a different type is a different constant.
	assert.NotEqual(t, c, b.DeclareConstant(f32, spv.Int32(7)))

	boolType := b.TypeBool()
	assert.Equal(t, b.ConstantTrue(boolType), b.ConstantTrue(boolType))
	assert.NotEqual(t, b.ConstantTrue(boolType), b.ConstantFalse(boolType))
}

func TestEmitOutsideFunction(t *testing.T) {
	b := New(spv.Version1_0)
	err := b.Emit(spv.Instruction{Opcode: grammar.OpReturn})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.NoOpenFunction(""))
}

func TestEmitOutsideBlock(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	err = b.Emit(spv.Instruction{Opcode: grammar.OpReturn})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.NoOpenBlock(""))
}

func TestEmitIntoTerminatedBlock(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)
	_, err = b.BeginBlock()
	require.NoError(t, err)
	require.NoError(t, b.Emit(spv.Instruction{Opcode: grammar.OpReturn}))

	err = b.Emit(spv.Instruction{Opcode: grammar.OpNop})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.BlockTerminated(0))

	// The failed emit left the block unchanged.
	blk := b.fn.Blocks[0]
	require.Len(t, blk.Instructions, 1)
	assert.Equal(t, grammar.OpReturn, blk.Instructions[0].Opcode)
}

func TestNestedFunction(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	_, err = b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.NestedFunction(0))
}

func TestBeginBlockRequiresTermination(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)
	_, err = b.BeginBlock()
	require.NoError(t, err)

	_, err = b.BeginBlock()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.UnterminatedBlock(0))
}

func TestEndFunctionRequiresTermination(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)
	_, err = b.BeginBlock()
	require.NoError(t, err)

	err = b.EndFunction()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.UnterminatedBlock(0))
}

func TestModuleWithOpenFunction(t *testing.T) {
	b := New(spv.Version1_0)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	_, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	_, err = b.Module()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.OpenConstruct(""))
}

func TestParametersBeforeBlocks(t *testing.T) {
	b := New(spv.Version1_0)
	i32 := b.TypeInt(32, 1)
	fnType := b.TypeFunction(i32, i32)
	_, err := b.BeginFunction(i32, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	p, err := b.DeclareParameter(i32)
	require.NoError(t, err)
	assert.NotZero(t, p)

	_, err = b.BeginBlock()
	require.NoError(t, err)
	_, err = b.DeclareParameter(i32)
	require.Error(t, err)
}

func TestForwardBranchTargets(t *testing.T) {
	b := New(spv.Version1_0)
	b.AddCapability(grammar.CapabilityShader)
	b.SetMemoryModel(grammar.AddressingLogical, grammar.MemoryModelGLSL450)
	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)

	fn, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	merge := b.ID()
	_, err = b.BeginBlock()
	require.NoError(t, err)
	require.NoError(t, b.Emit(spv.Instruction{
		Opcode:   grammar.OpBranch,
		Operands: []spv.Operand{spv.ID(merge)},
	}))

	_, err = b.BeginBlockWithID(merge)
	require.NoError(t, err)
	require.NoError(t, b.Emit(spv.Instruction{Opcode: grammar.OpReturn}))
	require.NoError(t, b.EndFunction())

	b.AddEntryPoint(grammar.ExecutionModelGLCompute, fn, "main")
	b.AddExecutionMode(fn, grammar.ExecutionModeLocalSize, 1, 1, 1)

	m, err := b.Module()
	require.NoError(t, err)
	require.Len(t, m.Functions[0].Blocks, 2)
	assert.Equal(t, merge, m.Functions[0].Blocks[1].ID())
}

func TestEmitOpAllocatesResults(t *testing.T) {
	b := New(spv.Version1_0)
	i32 := b.TypeInt(32, 1)
	fnType := b.TypeFunction(i32)
	c := b.DeclareConstant(i32, spv.Int32(20))

	_, err := b.BeginFunction(i32, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)
	_, err = b.BeginBlock()
	require.NoError(t, err)

	sum, err := b.EmitOp(grammar.OpIAdd, i32, spv.ID(c), spv.ID(c))
	require.NoError(t, err)
	assert.NotZero(t, sum)

	ret, err := b.EmitOp(grammar.OpReturnValue, 0, spv.ID(sum))
	require.NoError(t, err)
	assert.Zero(t, ret)
	require.NoError(t, b.EndFunction())
}

func TestLoadModuleReservesIDs(t *testing.T) {
	m := buildComputeModule(t)
	bound := m.Header.Bound

	b := LoadModule(m)
	fresh := b.ID()
	assert.GreaterOrEqual(t, fresh, bound)

	// Existing types are indexed, so declaring them again dedups.
	before := len(m.TypesGlobalValues)
	voidType := b.TypeVoid()
	assert.Equal(t, before, len(m.TypesGlobalValues))
	assert.NotZero(t, voidType)
}

func TestAddLocalVariable(t *testing.T) {
	b := New(spv.Version1_0)
	b.AddCapability(grammar.CapabilityShader)
	b.SetMemoryModel(grammar.AddressingLogical, grammar.MemoryModelGLSL450)

	voidType := b.TypeVoid()
	fnType := b.TypeFunction(voidType)
	i32 := b.TypeInt(32, 1)
	ptr := b.TypePointer(grammar.StorageFunction, i32)
	c := b.DeclareConstant(i32, spv.Int32(1))

	fn, err := b.BeginFunction(voidType, fnType, grammar.FunctionControlNone)
	require.NoError(t, err)

	// No block open yet.
	_, err = b.AddLocalVariable(ptr, 0)
	assert.ErrorIs(t, err, errors.NoOpenBlock("OpVariable"))

	_, err = b.BeginBlock()
	require.NoError(t, err)
	sum, err := b.EmitOp(grammar.OpIAdd, i32, spv.ID(c), spv.ID(c))
	require.NoError(t, err)

	// Declared after other instructions, the variable still lands at
	// the head of the entry block.
	v, err := b.AddLocalVariable(ptr, c)
	require.NoError(t, err)

	_, err = b.EmitOp(grammar.OpStore, 0, spv.ID(v), spv.ID(sum))
	require.NoError(t, err)
	require.NoError(t, b.Emit(spv.Instruction{Opcode: grammar.OpReturn}))
	require.NoError(t, b.EndFunction())
	b.AddEntryPoint(grammar.ExecutionModelGLCompute, fn, "main")
	b.AddExecutionMode(fn, grammar.ExecutionModeLocalSize, 1, 1, 1)

	m, err := b.Module()
	require.NoError(t, err)
	entry := m.Functions[0].Blocks[0]
	require.Equal(t, grammar.OpVariable, entry.Instructions[0].Opcode)
	assert.Equal(t, v, entry.Instructions[0].ResultID)
}

func TestExtInstImportDeduplication(t *testing.T) {
	b := New(spv.Version1_0)
	glsl := b.AddExtInstImport("GLSL.std.450")
	assert.Equal(t, glsl, b.AddExtInstImport("GLSL.std.450"))
	assert.NotEqual(t, glsl, b.AddExtInstImport("OpenCL.std"))
}
