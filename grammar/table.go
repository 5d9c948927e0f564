package grammar

func req(k OperandKind) OperandSpec {
	return OperandSpec{Kind: k, Quantifier: One}
}

func opt(k OperandKind) OperandSpec {
	return OperandSpec{Kind: k, Quantifier: Optional}
}

func star(k OperandKind) OperandSpec {
	return OperandSpec{Kind: k, Quantifier: Variadic}
}

func ops(specs ...OperandSpec) []OperandSpec {
	return specs
}

// typeDecl is the common shape of OpType* instructions: a result ID and
// the listed operands, no result type.
func typeDecl(name string, specs ...OperandSpec) *InstructionSpec {
	return &InstructionSpec{Name: name, Class: ClassTypeDeclaration, HasResult: true, Operands: specs}
}

// constDecl is the common shape of constant-creation instructions.
func constDecl(name string, specs ...OperandSpec) *InstructionSpec {
	return &InstructionSpec{Name: name, Class: ClassConstantCreation, HasResult: true, HasResultType: true, Operands: specs}
}

// unary is a typed one-ID-operand instruction.
func unary(name string, class Class) *InstructionSpec {
	return &InstructionSpec{Name: name, Class: class, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef))}
}

// binary is a typed two-ID-operand instruction.
func binary(name string, class Class) *InstructionSpec {
	return &InstructionSpec{Name: name, Class: class, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef))}
}

var instructions = map[Op]*InstructionSpec{
	OpNop:   {Name: "OpNop", Class: ClassMiscellaneous},
	OpUndef: {Name: "OpUndef", Class: ClassMiscellaneous, HasResult: true, HasResultType: true},

	// Debug
	OpSourceContinued: {Name: "OpSourceContinued", Class: ClassDebug,
		Operands: ops(req(KindLiteralString))},
	OpSource: {Name: "OpSource", Class: ClassDebug,
		Operands: ops(req(KindSourceLanguage), req(KindLiteralInteger), opt(KindIDRef), opt(KindLiteralString))},
	OpSourceExtension: {Name: "OpSourceExtension", Class: ClassDebug,
		Operands: ops(req(KindLiteralString))},
	OpName: {Name: "OpName", Class: ClassDebug,
		Operands: ops(req(KindIDRef), req(KindLiteralString))},
	OpMemberName: {Name: "OpMemberName", Class: ClassDebug,
		Operands: ops(req(KindIDRef), req(KindLiteralInteger), req(KindLiteralString))},
	OpString: {Name: "OpString", Class: ClassDebug, HasResult: true,
		Operands: ops(req(KindLiteralString))},
	OpLine: {Name: "OpLine", Class: ClassDebug,
		Operands: ops(req(KindIDRef), req(KindLiteralInteger), req(KindLiteralInteger))},
	OpNoLine: {Name: "OpNoLine", Class: ClassDebug},

	// Extensions
	OpExtension: {Name: "OpExtension", Class: ClassExtension,
		Operands: ops(req(KindLiteralString))},
	OpExtInstImport: {Name: "OpExtInstImport", Class: ClassExtension, HasResult: true,
		Operands: ops(req(KindLiteralString))},
	OpExtInst: {Name: "OpExtInst", Class: ClassExtension, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindLiteralExtInstInteger), star(KindIDRef))},

	// Mode-setting
	OpMemoryModel: {Name: "OpMemoryModel", Class: ClassModeSetting,
		Operands: ops(req(KindAddressingModel), req(KindMemoryModel))},
	OpEntryPoint: {Name: "OpEntryPoint", Class: ClassModeSetting,
		Operands: ops(req(KindExecutionModel), req(KindIDRef), req(KindLiteralString), star(KindIDRef))},
	OpExecutionMode: {Name: "OpExecutionMode", Class: ClassModeSetting,
		Operands: ops(req(KindIDRef), req(KindExecutionMode))},
	OpCapability: {Name: "OpCapability", Class: ClassModeSetting,
		Operands: ops(req(KindCapability))},

	// Type declarations
	OpTypeVoid:   typeDecl("OpTypeVoid"),
	OpTypeBool:   typeDecl("OpTypeBool"),
	OpTypeInt:    typeDecl("OpTypeInt", req(KindLiteralInteger), req(KindLiteralInteger)),
	OpTypeFloat:  typeDecl("OpTypeFloat", req(KindLiteralInteger)),
	OpTypeVector: typeDecl("OpTypeVector", req(KindIDRef), req(KindLiteralInteger)),
	OpTypeMatrix: typeDecl("OpTypeMatrix", req(KindIDRef), req(KindLiteralInteger)),
	OpTypeImage: typeDecl("OpTypeImage", req(KindIDRef), req(KindDim), req(KindLiteralInteger),
		req(KindLiteralInteger), req(KindLiteralInteger), req(KindLiteralInteger),
		req(KindImageFormat), opt(KindAccessQualifier)),
	OpTypeSampler:      typeDecl("OpTypeSampler"),
	OpTypeSampledImage: typeDecl("OpTypeSampledImage", req(KindIDRef)),
	OpTypeArray:        typeDecl("OpTypeArray", req(KindIDRef), req(KindIDRef)),
	OpTypeRuntimeArray: typeDecl("OpTypeRuntimeArray", req(KindIDRef)),
	OpTypeStruct:       typeDecl("OpTypeStruct", star(KindIDRef)),
	OpTypeOpaque:       typeDecl("OpTypeOpaque", req(KindLiteralString)),
	OpTypePointer:      typeDecl("OpTypePointer", req(KindStorageClass), req(KindIDRef)),
	OpTypeFunction:     typeDecl("OpTypeFunction", req(KindIDRef), star(KindIDRef)),

	// Constant creation
	OpConstantTrue:      constDecl("OpConstantTrue"),
	OpConstantFalse:     constDecl("OpConstantFalse"),
	OpConstant:          constDecl("OpConstant", req(KindLiteralContextDependentNumber)),
	OpConstantComposite: constDecl("OpConstantComposite", star(KindIDRef)),
	OpConstantSampler: constDecl("OpConstantSampler",
		req(KindSamplerAddressingMode), req(KindLiteralInteger), req(KindSamplerFilterMode)),
	OpConstantNull:          constDecl("OpConstantNull"),
	OpSpecConstantTrue:      constDecl("OpSpecConstantTrue"),
	OpSpecConstantFalse:     constDecl("OpSpecConstantFalse"),
	OpSpecConstant:          constDecl("OpSpecConstant", req(KindLiteralContextDependentNumber)),
	OpSpecConstantComposite: constDecl("OpSpecConstantComposite", star(KindIDRef)),
	OpSpecConstantOp: constDecl("OpSpecConstantOp",
		req(KindLiteralSpecConstantOpInteger), star(KindIDRef)),

	// Functions
	OpFunction: {Name: "OpFunction", Class: ClassFunction, HasResult: true, HasResultType: true,
		Operands: ops(req(KindFunctionControl), req(KindIDRef))},
	OpFunctionParameter: {Name: "OpFunctionParameter", Class: ClassFunction, HasResult: true, HasResultType: true},
	OpFunctionEnd:       {Name: "OpFunctionEnd", Class: ClassFunction},
	OpFunctionCall: {Name: "OpFunctionCall", Class: ClassFunction, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), star(KindIDRef))},

	// Memory
	OpVariable: {Name: "OpVariable", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindStorageClass), opt(KindIDRef))},
	OpImageTexelPointer: {Name: "OpImageTexelPointer", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef))},
	OpLoad: {Name: "OpLoad", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), opt(KindMemoryAccess))},
	OpStore: {Name: "OpStore", Class: ClassMemory,
		Operands: ops(req(KindIDRef), req(KindIDRef), opt(KindMemoryAccess))},
	OpCopyMemory: {Name: "OpCopyMemory", Class: ClassMemory,
		Operands: ops(req(KindIDRef), req(KindIDRef), opt(KindMemoryAccess), opt(KindMemoryAccess))},
	OpCopyMemorySized: {Name: "OpCopyMemorySized", Class: ClassMemory,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef), opt(KindMemoryAccess), opt(KindMemoryAccess))},
	OpAccessChain: {Name: "OpAccessChain", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), star(KindIDRef))},
	OpInBoundsAccessChain: {Name: "OpInBoundsAccessChain", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), star(KindIDRef))},
	OpArrayLength: {Name: "OpArrayLength", Class: ClassMemory, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindLiteralInteger))},

	// Annotations
	OpDecorate: {Name: "OpDecorate", Class: ClassAnnotation,
		Operands: ops(req(KindIDRef), req(KindDecoration))},
	OpMemberDecorate: {Name: "OpMemberDecorate", Class: ClassAnnotation,
		Operands: ops(req(KindIDRef), req(KindLiteralInteger), req(KindDecoration))},
	OpDecorationGroup: {Name: "OpDecorationGroup", Class: ClassAnnotation, HasResult: true},
	OpGroupDecorate: {Name: "OpGroupDecorate", Class: ClassAnnotation,
		Operands: ops(req(KindIDRef), star(KindIDRef))},
	OpGroupMemberDecorate: {Name: "OpGroupMemberDecorate", Class: ClassAnnotation,
		Operands: ops(req(KindIDRef), star(KindPairIDRefLiteralInteger))},

	// Composite
	OpVectorExtractDynamic: binary("OpVectorExtractDynamic", ClassComposite),
	OpVectorInsertDynamic: {Name: "OpVectorInsertDynamic", Class: ClassComposite, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef))},
	OpVectorShuffle: {Name: "OpVectorShuffle", Class: ClassComposite, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), star(KindLiteralInteger))},
	OpCompositeConstruct: {Name: "OpCompositeConstruct", Class: ClassComposite, HasResult: true, HasResultType: true,
		Operands: ops(star(KindIDRef))},
	OpCompositeExtract: {Name: "OpCompositeExtract", Class: ClassComposite, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), star(KindLiteralInteger))},
	OpCompositeInsert: {Name: "OpCompositeInsert", Class: ClassComposite, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), star(KindLiteralInteger))},
	OpCopyObject: unary("OpCopyObject", ClassComposite),
	OpTranspose:  unary("OpTranspose", ClassComposite),

	// Image
	OpSampledImage: binary("OpSampledImage", ClassImage),
	OpImageSampleImplicitLod: {Name: "OpImageSampleImplicitLod", Class: ClassImage, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), opt(KindImageOperands))},
	OpImageSampleExplicitLod: {Name: "OpImageSampleExplicitLod", Class: ClassImage, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindImageOperands))},
	OpImageRead: {Name: "OpImageRead", Class: ClassImage, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), opt(KindImageOperands))},
	OpImageWrite: {Name: "OpImageWrite", Class: ClassImage,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef), opt(KindImageOperands))},

	// Conversion
	OpConvertFToU: unary("OpConvertFToU", ClassConversion),
	OpConvertFToS: unary("OpConvertFToS", ClassConversion),
	OpConvertSToF: unary("OpConvertSToF", ClassConversion),
	OpConvertUToF: unary("OpConvertUToF", ClassConversion),
	OpUConvert:    unary("OpUConvert", ClassConversion),
	OpSConvert:    unary("OpSConvert", ClassConversion),
	OpFConvert:    unary("OpFConvert", ClassConversion),
	OpBitcast:     unary("OpBitcast", ClassConversion),

	// Arithmetic
	OpSNegate:           unary("OpSNegate", ClassArithmetic),
	OpFNegate:           unary("OpFNegate", ClassArithmetic),
	OpIAdd:              binary("OpIAdd", ClassArithmetic),
	OpFAdd:              binary("OpFAdd", ClassArithmetic),
	OpISub:              binary("OpISub", ClassArithmetic),
	OpFSub:              binary("OpFSub", ClassArithmetic),
	OpIMul:              binary("OpIMul", ClassArithmetic),
	OpFMul:              binary("OpFMul", ClassArithmetic),
	OpUDiv:              binary("OpUDiv", ClassArithmetic),
	OpSDiv:              binary("OpSDiv", ClassArithmetic),
	OpFDiv:              binary("OpFDiv", ClassArithmetic),
	OpUMod:              binary("OpUMod", ClassArithmetic),
	OpSRem:              binary("OpSRem", ClassArithmetic),
	OpSMod:              binary("OpSMod", ClassArithmetic),
	OpFRem:              binary("OpFRem", ClassArithmetic),
	OpFMod:              binary("OpFMod", ClassArithmetic),
	OpVectorTimesScalar: binary("OpVectorTimesScalar", ClassArithmetic),
	OpMatrixTimesScalar: binary("OpMatrixTimesScalar", ClassArithmetic),
	OpVectorTimesMatrix: binary("OpVectorTimesMatrix", ClassArithmetic),
	OpMatrixTimesVector: binary("OpMatrixTimesVector", ClassArithmetic),
	OpMatrixTimesMatrix: binary("OpMatrixTimesMatrix", ClassArithmetic),
	OpDot:               binary("OpDot", ClassArithmetic),

	// Relational and logical
	OpIsNan:           unary("OpIsNan", ClassRelationalLogical),
	OpIsInf:           unary("OpIsInf", ClassRelationalLogical),
	OpLogicalEqual:    binary("OpLogicalEqual", ClassRelationalLogical),
	OpLogicalNotEqual: binary("OpLogicalNotEqual", ClassRelationalLogical),
	OpLogicalOr:       binary("OpLogicalOr", ClassRelationalLogical),
	OpLogicalAnd:      binary("OpLogicalAnd", ClassRelationalLogical),
	OpLogicalNot:      unary("OpLogicalNot", ClassRelationalLogical),
	OpSelect: {Name: "OpSelect", Class: ClassRelationalLogical, HasResult: true, HasResultType: true,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef))},
	OpIEqual:                 binary("OpIEqual", ClassRelationalLogical),
	OpINotEqual:              binary("OpINotEqual", ClassRelationalLogical),
	OpUGreaterThan:           binary("OpUGreaterThan", ClassRelationalLogical),
	OpSGreaterThan:           binary("OpSGreaterThan", ClassRelationalLogical),
	OpUGreaterThanEqual:      binary("OpUGreaterThanEqual", ClassRelationalLogical),
	OpSGreaterThanEqual:      binary("OpSGreaterThanEqual", ClassRelationalLogical),
	OpULessThan:              binary("OpULessThan", ClassRelationalLogical),
	OpSLessThan:              binary("OpSLessThan", ClassRelationalLogical),
	OpULessThanEqual:         binary("OpULessThanEqual", ClassRelationalLogical),
	OpSLessThanEqual:         binary("OpSLessThanEqual", ClassRelationalLogical),
	OpFOrdEqual:              binary("OpFOrdEqual", ClassRelationalLogical),
	OpFUnordEqual:            binary("OpFUnordEqual", ClassRelationalLogical),
	OpFOrdNotEqual:           binary("OpFOrdNotEqual", ClassRelationalLogical),
	OpFUnordNotEqual:         binary("OpFUnordNotEqual", ClassRelationalLogical),
	OpFOrdLessThan:           binary("OpFOrdLessThan", ClassRelationalLogical),
	OpFUnordLessThan:         binary("OpFUnordLessThan", ClassRelationalLogical),
	OpFOrdGreaterThan:        binary("OpFOrdGreaterThan", ClassRelationalLogical),
	OpFUnordGreaterThan:      binary("OpFUnordGreaterThan", ClassRelationalLogical),
	OpFOrdLessThanEqual:      binary("OpFOrdLessThanEqual", ClassRelationalLogical),
	OpFUnordLessThanEqual:    binary("OpFUnordLessThanEqual", ClassRelationalLogical),
	OpFOrdGreaterThanEqual:   binary("OpFOrdGreaterThanEqual", ClassRelationalLogical),
	OpFUnordGreaterThanEqual: binary("OpFUnordGreaterThanEqual", ClassRelationalLogical),

	// Bit
	OpShiftRightLogical:    binary("OpShiftRightLogical", ClassBit),
	OpShiftRightArithmetic: binary("OpShiftRightArithmetic", ClassBit),
	OpShiftLeftLogical:     binary("OpShiftLeftLogical", ClassBit),
	OpBitwiseOr:            binary("OpBitwiseOr", ClassBit),
	OpBitwiseXor:           binary("OpBitwiseXor", ClassBit),
	OpBitwiseAnd:           binary("OpBitwiseAnd", ClassBit),
	OpNot:                  unary("OpNot", ClassBit),

	// Control flow
	OpPhi: {Name: "OpPhi", Class: ClassControlFlow, HasResult: true, HasResultType: true,
		Operands: ops(star(KindPairIDRefIDRef))},
	OpLoopMerge: {Name: "OpLoopMerge", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindLoopControl))},
	OpSelectionMerge: {Name: "OpSelectionMerge", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef), req(KindSelectionControl))},
	OpLabel: {Name: "OpLabel", Class: ClassControlFlow, HasResult: true},
	OpBranch: {Name: "OpBranch", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef))},
	OpBranchConditional: {Name: "OpBranchConditional", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef), req(KindIDRef), req(KindIDRef), star(KindLiteralInteger))},
	OpSwitch: {Name: "OpSwitch", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef), req(KindIDRef), star(KindPairLiteralIntegerIDRef))},
	OpKill:   {Name: "OpKill", Class: ClassControlFlow},
	OpReturn: {Name: "OpReturn", Class: ClassControlFlow},
	OpReturnValue: {Name: "OpReturnValue", Class: ClassControlFlow,
		Operands: ops(req(KindIDRef))},
	OpUnreachable: {Name: "OpUnreachable", Class: ClassControlFlow},
}
