package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/spirv-tools/grammar"
)

func TestLookup(t *testing.T) {
	t.Run("typed result opcode", func(t *testing.T) {
		spec, ok := grammar.Lookup(grammar.OpIAdd)
		require.True(t, ok)
		require.Equal(t, "OpIAdd", spec.Name)
		require.True(t, spec.HasResult)
		require.True(t, spec.HasResultType)
		require.Len(t, spec.Operands, 2)
		require.Equal(t, grammar.KindIDRef, spec.Operands[0].Kind)
	})

	t.Run("result without type", func(t *testing.T) {
		spec, ok := grammar.Lookup(grammar.OpTypeInt)
		require.True(t, ok)
		require.True(t, spec.HasResult)
		require.False(t, spec.HasResultType)
		require.Len(t, spec.Operands, 2)
	})

	t.Run("no result", func(t *testing.T) {
		spec, ok := grammar.Lookup(grammar.OpStore)
		require.True(t, ok)
		require.False(t, spec.HasResult)
		require.False(t, spec.HasResultType)
	})

	t.Run("unknown opcode", func(t *testing.T) {
		_, ok := grammar.Lookup(grammar.Op(9999))
		require.False(t, ok)
		require.Equal(t, "OpUnknown", grammar.OpcodeName(grammar.Op(9999)))
	})
}

func TestLookupName(t *testing.T) {
	op, ok := grammar.LookupName("OpTypeVector")
	require.True(t, ok)
	require.Equal(t, grammar.OpTypeVector, op)

	_, ok = grammar.LookupName("OpNotAnInstruction")
	require.False(t, ok)
}

func TestVariadic(t *testing.T) {
	cases := []struct {
		op       grammar.Op
		variadic bool
	}{
		{grammar.OpTypeStruct, true},
		{grammar.OpCompositeConstruct, true},
		{grammar.OpSwitch, true},
		{grammar.OpPhi, true},
		{grammar.OpTypeFloat, false},
		{grammar.OpReturn, false},
	}
	for _, tc := range cases {
		spec, ok := grammar.Lookup(tc.op)
		require.True(t, ok, grammar.OpcodeName(tc.op))
		require.Equal(t, tc.variadic, spec.IsVariadic(), grammar.OpcodeName(tc.op))
	}
}

func TestEnumerantParams(t *testing.T) {
	t.Run("plain value enum", func(t *testing.T) {
		params, ok := grammar.EnumerantParams(grammar.KindStorageClass, grammar.StorageFunction)
		require.True(t, ok)
		require.Empty(t, params)
	})

	t.Run("parameterized decoration", func(t *testing.T) {
		params, ok := grammar.EnumerantParams(grammar.KindDecoration, grammar.DecorationArrayStride)
		require.True(t, ok)
		require.Len(t, params, 1)
		require.Equal(t, grammar.KindLiteralInteger, params[0].Kind)
	})

	t.Run("decoration with nested enum param", func(t *testing.T) {
		params, ok := grammar.EnumerantParams(grammar.KindDecoration, grammar.DecorationBuiltIn)
		require.True(t, ok)
		require.Len(t, params, 1)
		require.Equal(t, grammar.KindBuiltIn, params[0].Kind)
	})

	t.Run("bit enum accumulates per set bit", func(t *testing.T) {
		mask := grammar.ImageOperandsBias | grammar.ImageOperandsGrad
		params, ok := grammar.EnumerantParams(grammar.KindImageOperands, mask)
		require.True(t, ok)
		// Bias carries one ID, Grad carries two.
		require.Len(t, params, 3)
	})

	t.Run("unknown enumerant", func(t *testing.T) {
		_, ok := grammar.EnumerantParams(grammar.KindStorageClass, 999)
		require.False(t, ok)
	})
}

func TestEnumNames(t *testing.T) {
	require.Equal(t, "GLSL450", grammar.EnumName(grammar.KindMemoryModel, 1))
	require.Equal(t, "Unknown", grammar.EnumName(grammar.KindMemoryModel, 999))

	names := grammar.BitEnumNames(grammar.KindFunctionControl,
		grammar.FunctionControlInline|grammar.FunctionControlConst)
	require.Equal(t, []string{"Inline", "Const"}, names)

	require.Equal(t, []string{"None"}, grammar.BitEnumNames(grammar.KindMemoryAccess, 0))
}

func TestKindPredicates(t *testing.T) {
	require.True(t, grammar.KindIDRef.IsID())
	require.False(t, grammar.KindLiteralString.IsID())
	require.True(t, grammar.KindStorageClass.IsValueEnum())
	require.True(t, grammar.KindImageOperands.IsBitEnum())
	require.False(t, grammar.KindImageOperands.IsValueEnum())
	require.True(t, grammar.KindDecoration.IsEnum())
	require.False(t, grammar.KindLiteralInteger.IsEnum())
}

func TestTerminators(t *testing.T) {
	terminators := []grammar.Op{
		grammar.OpBranch, grammar.OpBranchConditional, grammar.OpSwitch,
		grammar.OpKill, grammar.OpReturn, grammar.OpReturnValue, grammar.OpUnreachable,
	}
	for _, op := range terminators {
		require.True(t, grammar.IsTerminator(op), grammar.OpcodeName(op))
	}
	require.False(t, grammar.IsTerminator(grammar.OpLabel))
	require.False(t, grammar.IsTerminator(grammar.OpIAdd))
}

func TestClassPredicates(t *testing.T) {
	require.True(t, grammar.IsTypeDecl(grammar.OpTypeStruct))
	require.False(t, grammar.IsTypeDecl(grammar.OpConstant))
	require.True(t, grammar.IsConstDecl(grammar.OpConstantNull))
	require.False(t, grammar.IsConstDecl(grammar.OpVariable))
}

func TestResultConsistency(t *testing.T) {
	// Every opcode with a result type must also produce a result.
	for op := grammar.Op(0); op < 320; op++ {
		spec, ok := grammar.Lookup(op)
		if !ok {
			continue
		}
		if spec.HasResultType {
			require.True(t, spec.HasResult, "%s has a result type but no result", spec.Name)
		}
		// Variadic and optional slots only in the tail.
		sawTail := false
		for i, operand := range spec.Operands {
			if operand.Quantifier != grammar.One {
				sawTail = true
				if operand.Quantifier == grammar.Variadic {
					require.Equal(t, len(spec.Operands)-1, i, "%s: variadic slot must be last", spec.Name)
				}
			} else {
				require.False(t, sawTail, "%s: required slot after optional/variadic", spec.Name)
			}
		}
	}
}
