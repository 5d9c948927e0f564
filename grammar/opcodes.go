package grammar

// SPIR-V opcode numbers. This is the core subset covering shader and
// kernel modules: debug, annotation, extension, mode-setting, type,
// constant, memory, function, image, conversion, composite, arithmetic,
// bit, relational and control-flow instructions.
const (
	OpNop             Op = 0
	OpUndef           Op = 1
	OpSourceContinued Op = 2
	OpSource          Op = 3
	OpSourceExtension Op = 4
	OpName            Op = 5
	OpMemberName      Op = 6
	OpString          Op = 7
	OpLine            Op = 8

	OpExtension     Op = 10
	OpExtInstImport Op = 11
	OpExtInst       Op = 12

	OpMemoryModel   Op = 14
	OpEntryPoint    Op = 15
	OpExecutionMode Op = 16
	OpCapability    Op = 17

	OpTypeVoid         Op = 19
	OpTypeBool         Op = 20
	OpTypeInt          Op = 21
	OpTypeFloat        Op = 22
	OpTypeVector       Op = 23
	OpTypeMatrix       Op = 24
	OpTypeImage        Op = 25
	OpTypeSampler      Op = 26
	OpTypeSampledImage Op = 27
	OpTypeArray        Op = 28
	OpTypeRuntimeArray Op = 29
	OpTypeStruct       Op = 30
	OpTypeOpaque       Op = 31
	OpTypePointer      Op = 32
	OpTypeFunction     Op = 33

	OpConstantTrue          Op = 41
	OpConstantFalse         Op = 42
	OpConstant              Op = 43
	OpConstantComposite     Op = 44
	OpConstantSampler       Op = 45
	OpConstantNull          Op = 46
	OpSpecConstantTrue      Op = 48
	OpSpecConstantFalse     Op = 49
	OpSpecConstant          Op = 50
	OpSpecConstantComposite Op = 51
	OpSpecConstantOp        Op = 52

	OpFunction          Op = 54
	OpFunctionParameter Op = 55
	OpFunctionEnd       Op = 56
	OpFunctionCall      Op = 57

	OpVariable            Op = 59
	OpImageTexelPointer   Op = 60
	OpLoad                Op = 61
	OpStore               Op = 62
	OpCopyMemory          Op = 63
	OpCopyMemorySized     Op = 64
	OpAccessChain         Op = 65
	OpInBoundsAccessChain Op = 66
	OpArrayLength         Op = 68

	OpDecorate            Op = 71
	OpMemberDecorate      Op = 72
	OpDecorationGroup     Op = 73
	OpGroupDecorate       Op = 74
	OpGroupMemberDecorate Op = 75

	OpVectorExtractDynamic Op = 77
	OpVectorInsertDynamic  Op = 78
	OpVectorShuffle        Op = 79
	OpCompositeConstruct   Op = 80
	OpCompositeExtract     Op = 81
	OpCompositeInsert      Op = 82
	OpCopyObject           Op = 83
	OpTranspose            Op = 84

	OpSampledImage           Op = 86
	OpImageSampleImplicitLod Op = 87
	OpImageSampleExplicitLod Op = 88
	OpImageRead              Op = 98
	OpImageWrite             Op = 99

	OpConvertFToU Op = 109
	OpConvertFToS Op = 110
	OpConvertSToF Op = 111
	OpConvertUToF Op = 112
	OpUConvert    Op = 113
	OpSConvert    Op = 114
	OpFConvert    Op = 115
	OpBitcast     Op = 124

	OpSNegate           Op = 126
	OpFNegate           Op = 127
	OpIAdd              Op = 128
	OpFAdd              Op = 129
	OpISub              Op = 130
	OpFSub              Op = 131
	OpIMul              Op = 132
	OpFMul              Op = 133
	OpUDiv              Op = 134
	OpSDiv              Op = 135
	OpFDiv              Op = 136
	OpUMod              Op = 137
	OpSRem              Op = 138
	OpSMod              Op = 139
	OpFRem              Op = 140
	OpFMod              Op = 141
	OpVectorTimesScalar Op = 142
	OpMatrixTimesScalar Op = 143
	OpVectorTimesMatrix Op = 144
	OpMatrixTimesVector Op = 145
	OpMatrixTimesMatrix Op = 146
	OpDot               Op = 148

	OpIsNan Op = 156
	OpIsInf Op = 157

	OpLogicalEqual           Op = 164
	OpLogicalNotEqual        Op = 165
	OpLogicalOr              Op = 166
	OpLogicalAnd             Op = 167
	OpLogicalNot             Op = 168
	OpSelect                 Op = 169
	OpIEqual                 Op = 170
	OpINotEqual              Op = 171
	OpUGreaterThan           Op = 172
	OpSGreaterThan           Op = 173
	OpUGreaterThanEqual      Op = 174
	OpSGreaterThanEqual      Op = 175
	OpULessThan              Op = 176
	OpSLessThan              Op = 177
	OpULessThanEqual         Op = 178
	OpSLessThanEqual         Op = 179
	OpFOrdEqual              Op = 180
	OpFUnordEqual            Op = 181
	OpFOrdNotEqual           Op = 182
	OpFUnordNotEqual         Op = 183
	OpFOrdLessThan           Op = 184
	OpFUnordLessThan         Op = 185
	OpFOrdGreaterThan        Op = 186
	OpFUnordGreaterThan      Op = 187
	OpFOrdLessThanEqual      Op = 188
	OpFUnordLessThanEqual    Op = 189
	OpFOrdGreaterThanEqual   Op = 190
	OpFUnordGreaterThanEqual Op = 191

	OpShiftRightLogical    Op = 194
	OpShiftRightArithmetic Op = 195
	OpShiftLeftLogical     Op = 196
	OpBitwiseOr            Op = 197
	OpBitwiseXor           Op = 198
	OpBitwiseAnd           Op = 199
	OpNot                  Op = 200

	OpPhi               Op = 245
	OpLoopMerge         Op = 246
	OpSelectionMerge    Op = 247
	OpLabel             Op = 248
	OpBranch            Op = 249
	OpBranchConditional Op = 250
	OpSwitch            Op = 251
	OpKill              Op = 252
	OpReturn            Op = 253
	OpReturnValue       Op = 254
	OpUnreachable       Op = 255

	OpNoLine Op = 317
)
