package builder

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv"
)

// typeKey derives the deduplication key for a type declaration from its
// opcode and operand values.
func typeKey(op grammar.Op, operands []spv.Operand) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(op)))
	appendOperandKey(&sb, operands)
	return sb.String()
}

// constKey derives the deduplication key for a constant from its
// opcode, result type and operand bit patterns.
func constKey(op grammar.Op, resultType uint32, operands []spv.Operand) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(op)))
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(uint64(resultType), 10))
	appendOperandKey(&sb, operands)
	return sb.String()
}

func appendOperandKey(sb *strings.Builder, operands []spv.Operand) {
	var word [8]byte
	for _, o := range operands {
		sb.WriteByte('|')
		sb.WriteByte(byte(o.Kind))
		if o.Kind == spv.OperandString {
			sb.WriteString(o.Str)
			continue
		}
		binary.LittleEndian.PutUint64(word[:], o.Uint64())
		sb.Write(word[:])
		appendOperandKey(sb, o.Params)
	}
}

// DeclareType declares a type and returns its id. Declaring a type with
// the same opcode and operands again returns the id of the first
// declaration.
func (b *Builder) DeclareType(op grammar.Op, operands ...spv.Operand) uint32 {
	key := typeKey(op, operands)
	if id, ok := b.types[key]; ok {
		return id
	}
	id := b.ids.Fresh()
	b.types[key] = id
	b.module.TypesGlobalValues = append(b.module.TypesGlobalValues, spv.Instruction{
		Opcode:   op,
		ResultID: id,
		Operands: operands,
	})
	return id
}

// TypeVoid declares the void type.
func (b *Builder) TypeVoid() uint32 {
	return b.DeclareType(grammar.OpTypeVoid)
}

// TypeBool declares the boolean type.
func (b *Builder) TypeBool() uint32 {
	return b.DeclareType(grammar.OpTypeBool)
}

// TypeInt declares an integer type of the given width. Signedness 1
// means signed, 0 unsigned.
func (b *Builder) TypeInt(width, signedness uint32) uint32 {
	return b.DeclareType(grammar.OpTypeInt, spv.Int32(width), spv.Int32(signedness))
}

// TypeFloat declares a floating point type of the given width.
func (b *Builder) TypeFloat(width uint32) uint32 {
	return b.DeclareType(grammar.OpTypeFloat, spv.Int32(width))
}

// TypeVector declares a vector of count components.
func (b *Builder) TypeVector(component uint32, count uint32) uint32 {
	return b.DeclareType(grammar.OpTypeVector, spv.ID(component), spv.Int32(count))
}

// TypeMatrix declares a matrix of count column vectors.
func (b *Builder) TypeMatrix(column uint32, count uint32) uint32 {
	return b.DeclareType(grammar.OpTypeMatrix, spv.ID(column), spv.Int32(count))
}

// TypePointer declares a pointer type in the given storage class.
func (b *Builder) TypePointer(storage uint32, pointee uint32) uint32 {
	return b.DeclareType(grammar.OpTypePointer,
		spv.Enum(grammar.KindStorageClass, storage), spv.ID(pointee))
}

// TypeImage declares an image type. The dim, depth, arrayed, ms,
// sampled and format words follow the OpTypeImage operand order.
func (b *Builder) TypeImage(sampledType, dim, depth, arrayed, ms, sampled, format uint32) uint32 {
	return b.DeclareType(grammar.OpTypeImage,
		spv.ID(sampledType),
		spv.Enum(grammar.KindDim, dim),
		spv.Int32(depth), spv.Int32(arrayed), spv.Int32(ms), spv.Int32(sampled),
		spv.Enum(grammar.KindImageFormat, format))
}

// TypeSampler declares the sampler type.
func (b *Builder) TypeSampler() uint32 {
	return b.DeclareType(grammar.OpTypeSampler)
}

// TypeSampledImage declares a sampled image type over an image type.
func (b *Builder) TypeSampledImage(image uint32) uint32 {
	return b.DeclareType(grammar.OpTypeSampledImage, spv.ID(image))
}

// TypeArray declares an array type. Length names a constant id.
func (b *Builder) TypeArray(element uint32, length uint32) uint32 {
	return b.DeclareType(grammar.OpTypeArray, spv.ID(element), spv.ID(length))
}

// TypeRuntimeArray declares an array type without a compile-time
// length.
func (b *Builder) TypeRuntimeArray(element uint32) uint32 {
	return b.DeclareType(grammar.OpTypeRuntimeArray, spv.ID(element))
}

// TypeStruct declares a structure type with the given member types.
func (b *Builder) TypeStruct(members ...uint32) uint32 {
	ops := make([]spv.Operand, 0, len(members))
	for _, m := range members {
		ops = append(ops, spv.ID(m))
	}
	return b.DeclareType(grammar.OpTypeStruct, ops...)
}

// TypeFunction declares a function type with the given return and
// parameter types.
func (b *Builder) TypeFunction(returnType uint32, params ...uint32) uint32 {
	ops := make([]spv.Operand, 0, 1+len(params))
	ops = append(ops, spv.ID(returnType))
	for _, p := range params {
		ops = append(ops, spv.ID(p))
	}
	return b.DeclareType(grammar.OpTypeFunction, ops...)
}

// declareConstant deduplicates on opcode, result type and operand bit
// patterns.
func (b *Builder) declareConstant(op grammar.Op, resultType uint32, operands ...spv.Operand) uint32 {
	key := constKey(op, resultType, operands)
	if id, ok := b.consts[key]; ok {
		return id
	}
	id := b.ids.Fresh()
	b.consts[key] = id
	b.module.TypesGlobalValues = append(b.module.TypesGlobalValues, spv.Instruction{
		Opcode:     op,
		ResultType: resultType,
		ResultID:   id,
		Operands:   operands,
	})
	return id
}

// DeclareConstant declares a scalar constant of the given type from its
// literal operand. Constants with the same type and bit pattern share
// one id.
func (b *Builder) DeclareConstant(resultType uint32, value spv.Operand) uint32 {
	return b.declareConstant(grammar.OpConstant, resultType, value)
}

// ConstantTrue declares the true constant of a boolean type.
func (b *Builder) ConstantTrue(boolType uint32) uint32 {
	return b.declareConstant(grammar.OpConstantTrue, boolType)
}

// ConstantFalse declares the false constant of a boolean type.
func (b *Builder) ConstantFalse(boolType uint32) uint32 {
	return b.declareConstant(grammar.OpConstantFalse, boolType)
}

// ConstantNull declares the null constant of a type.
func (b *Builder) ConstantNull(resultType uint32) uint32 {
	return b.declareConstant(grammar.OpConstantNull, resultType)
}

// ConstantComposite declares a composite constant from constituent
// constant ids.
func (b *Builder) ConstantComposite(resultType uint32, constituents ...uint32) uint32 {
	ops := make([]spv.Operand, 0, len(constituents))
	for _, c := range constituents {
		ops = append(ops, spv.ID(c))
	}
	return b.declareConstant(grammar.OpConstantComposite, resultType, ops...)
}
