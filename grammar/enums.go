package grammar

// Enum value constants callers commonly need when assembling modules.
// The full symbolic tables live in the enumerants map below.
const (
	// AddressingModel
	AddressingLogical    uint32 = 0
	AddressingPhysical32 uint32 = 1
	AddressingPhysical64 uint32 = 2

	// MemoryModel
	MemoryModelSimple  uint32 = 0
	MemoryModelGLSL450 uint32 = 1
	MemoryModelOpenCL  uint32 = 2

	// ExecutionModel
	ExecutionModelVertex    uint32 = 0
	ExecutionModelFragment  uint32 = 4
	ExecutionModelGLCompute uint32 = 5
	ExecutionModelKernel    uint32 = 6

	// StorageClass
	StorageUniformConstant uint32 = 0
	StorageInput           uint32 = 1
	StorageUniform         uint32 = 2
	StorageOutput          uint32 = 3
	StorageWorkgroup       uint32 = 4
	StorageCrossWorkgroup  uint32 = 5
	StoragePrivate         uint32 = 6
	StorageFunction        uint32 = 7
	StoragePushConstant    uint32 = 9
	StorageStorageBuffer   uint32 = 12

	// Capability
	CapabilityMatrix uint32 = 0
	CapabilityShader uint32 = 1
	CapabilityKernel uint32 = 6

	// FunctionControl bits
	FunctionControlNone       uint32 = 0
	FunctionControlInline     uint32 = 1
	FunctionControlDontInline uint32 = 2
	FunctionControlPure       uint32 = 4
	FunctionControlConst      uint32 = 8

	// Decoration
	DecorationSpecID        uint32 = 1
	DecorationBlock         uint32 = 2
	DecorationBufferBlock   uint32 = 3
	DecorationRowMajor      uint32 = 4
	DecorationColMajor      uint32 = 5
	DecorationArrayStride   uint32 = 6
	DecorationMatrixStride  uint32 = 7
	DecorationBuiltIn       uint32 = 11
	DecorationFlat          uint32 = 14
	DecorationRestrict      uint32 = 19
	DecorationNonWritable   uint32 = 24
	DecorationNonReadable   uint32 = 25
	DecorationLocation      uint32 = 30
	DecorationComponent     uint32 = 31
	DecorationBinding       uint32 = 33
	DecorationDescriptorSet uint32 = 34
	DecorationOffset        uint32 = 35

	// BuiltIn
	BuiltInPosition             uint32 = 0
	BuiltInPointSize            uint32 = 1
	BuiltInFragCoord            uint32 = 15
	BuiltInFrontFacing          uint32 = 17
	BuiltInWorkgroupID          uint32 = 26
	BuiltInLocalInvocationID    uint32 = 27
	BuiltInGlobalInvocationID   uint32 = 28
	BuiltInLocalInvocationIndex uint32 = 29

	// Dim
	Dim1D          uint32 = 0
	Dim2D          uint32 = 1
	Dim3D          uint32 = 2
	DimCube        uint32 = 3
	DimRect        uint32 = 4
	DimBuffer      uint32 = 5
	DimSubpassData uint32 = 6

	// ImageFormat
	ImageFormatUnknown uint32 = 0
	ImageFormatRgba32f uint32 = 1
	ImageFormatRgba16f uint32 = 2
	ImageFormatR32f    uint32 = 3
	ImageFormatRgba8   uint32 = 4
	ImageFormatR32i    uint32 = 24
	ImageFormatR32ui   uint32 = 33

	// ExecutionMode
	ExecutionModeInvocations     uint32 = 0
	ExecutionModeOriginUpperLeft uint32 = 7
	ExecutionModeOriginLowerLeft uint32 = 8
	ExecutionModeDepthReplacing  uint32 = 12
	ExecutionModeLocalSize       uint32 = 17
	ExecutionModeOutputVertices  uint32 = 26

	// MemoryAccess bits
	MemoryAccessNone        uint32 = 0
	MemoryAccessVolatile    uint32 = 1
	MemoryAccessAligned     uint32 = 2
	MemoryAccessNontemporal uint32 = 4

	// ImageOperands bits
	ImageOperandsBias         uint32 = 0x01
	ImageOperandsLod          uint32 = 0x02
	ImageOperandsGrad         uint32 = 0x04
	ImageOperandsConstOffset  uint32 = 0x08
	ImageOperandsOffset       uint32 = 0x10
	ImageOperandsConstOffsets uint32 = 0x20
	ImageOperandsSample       uint32 = 0x40
	ImageOperandsMinLod       uint32 = 0x80

	// SelectionControl bits
	SelectionControlFlatten     uint32 = 1
	SelectionControlDontFlatten uint32 = 2

	// LoopControl bits
	LoopControlUnroll           uint32 = 1
	LoopControlDontUnroll       uint32 = 2
	LoopControlDependencyLength uint32 = 8
)

func e(value uint32, name string, params ...OperandSpec) *Enumerant {
	return &Enumerant{Value: value, Name: name, Params: params}
}

func enumTable(entries ...*Enumerant) map[uint32]*Enumerant {
	m := make(map[uint32]*Enumerant, len(entries))
	for _, entry := range entries {
		m[entry.Value] = entry
	}
	return m
}

var enumerants = map[OperandKind]map[uint32]*Enumerant{
	KindSourceLanguage: enumTable(
		e(0, "Unknown"),
		e(1, "ESSL"),
		e(2, "GLSL"),
		e(3, "OpenCL_C"),
		e(4, "OpenCL_CPP"),
		e(5, "HLSL"),
	),
	KindExecutionModel: enumTable(
		e(0, "Vertex"),
		e(1, "TessellationControl"),
		e(2, "TessellationEvaluation"),
		e(3, "Geometry"),
		e(4, "Fragment"),
		e(5, "GLCompute"),
		e(6, "Kernel"),
	),
	KindAddressingModel: enumTable(
		e(0, "Logical"),
		e(1, "Physical32"),
		e(2, "Physical64"),
	),
	KindMemoryModel: enumTable(
		e(0, "Simple"),
		e(1, "GLSL450"),
		e(2, "OpenCL"),
		e(3, "Vulkan"),
	),
	KindExecutionMode: enumTable(
		e(0, "Invocations", req(KindLiteralInteger)),
		e(1, "SpacingEqual"),
		e(2, "SpacingFractionalEven"),
		e(3, "SpacingFractionalOdd"),
		e(4, "VertexOrderCw"),
		e(5, "VertexOrderCcw"),
		e(6, "PixelCenterInteger"),
		e(7, "OriginUpperLeft"),
		e(8, "OriginLowerLeft"),
		e(9, "EarlyFragmentTests"),
		e(10, "PointMode"),
		e(11, "Xfb"),
		e(12, "DepthReplacing"),
		e(14, "DepthGreater"),
		e(15, "DepthLess"),
		e(16, "DepthUnchanged"),
		e(17, "LocalSize", req(KindLiteralInteger), req(KindLiteralInteger), req(KindLiteralInteger)),
		e(18, "LocalSizeHint", req(KindLiteralInteger), req(KindLiteralInteger), req(KindLiteralInteger)),
		e(19, "InputPoints"),
		e(20, "InputLines"),
		e(21, "InputLinesAdjacency"),
		e(22, "Triangles"),
		e(23, "InputTrianglesAdjacency"),
		e(24, "Quads"),
		e(25, "Isolines"),
		e(26, "OutputVertices", req(KindLiteralInteger)),
		e(27, "OutputPoints"),
		e(28, "OutputLineStrip"),
		e(29, "OutputTriangleStrip"),
		e(30, "VecTypeHint", req(KindLiteralInteger)),
		e(31, "ContractionOff"),
	),
	KindStorageClass: enumTable(
		e(0, "UniformConstant"),
		e(1, "Input"),
		e(2, "Uniform"),
		e(3, "Output"),
		e(4, "Workgroup"),
		e(5, "CrossWorkgroup"),
		e(6, "Private"),
		e(7, "Function"),
		e(8, "Generic"),
		e(9, "PushConstant"),
		e(10, "AtomicCounter"),
		e(11, "Image"),
		e(12, "StorageBuffer"),
	),
	KindDim: enumTable(
		e(0, "1D"),
		e(1, "2D"),
		e(2, "3D"),
		e(3, "Cube"),
		e(4, "Rect"),
		e(5, "Buffer"),
		e(6, "SubpassData"),
	),
	KindSamplerAddressingMode: enumTable(
		e(0, "None"),
		e(1, "ClampToEdge"),
		e(2, "Clamp"),
		e(3, "Repeat"),
		e(4, "RepeatMirrored"),
	),
	KindSamplerFilterMode: enumTable(
		e(0, "Nearest"),
		e(1, "Linear"),
	),
	KindImageFormat: enumTable(
		e(0, "Unknown"),
		e(1, "Rgba32f"),
		e(2, "Rgba16f"),
		e(3, "R32f"),
		e(4, "Rgba8"),
		e(5, "Rgba8Snorm"),
		e(6, "Rg32f"),
		e(7, "Rg16f"),
		e(8, "R11fG11fB10f"),
		e(9, "R16f"),
		e(10, "Rgba16"),
		e(11, "Rgb10A2"),
		e(12, "Rg16"),
		e(13, "Rg8"),
		e(14, "R16"),
		e(15, "R8"),
		e(16, "Rgba16Snorm"),
		e(17, "Rg16Snorm"),
		e(18, "Rg8Snorm"),
		e(19, "R16Snorm"),
		e(20, "R8Snorm"),
		e(21, "Rgba32i"),
		e(22, "Rgba16i"),
		e(23, "Rgba8i"),
		e(24, "R32i"),
		e(25, "Rg32i"),
		e(26, "Rg16i"),
		e(27, "Rg8i"),
		e(28, "R16i"),
		e(29, "R8i"),
		e(30, "Rgba32ui"),
		e(31, "Rgba16ui"),
		e(32, "Rgba8ui"),
		e(33, "R32ui"),
		e(34, "Rgb10a2ui"),
		e(35, "Rg32ui"),
		e(36, "Rg16ui"),
		e(37, "Rg8ui"),
		e(38, "R16ui"),
		e(39, "R8ui"),
	),
	KindAccessQualifier: enumTable(
		e(0, "ReadOnly"),
		e(1, "WriteOnly"),
		e(2, "ReadWrite"),
	),
	KindDecoration: enumTable(
		e(0, "RelaxedPrecision"),
		e(1, "SpecId", req(KindLiteralInteger)),
		e(2, "Block"),
		e(3, "BufferBlock"),
		e(4, "RowMajor"),
		e(5, "ColMajor"),
		e(6, "ArrayStride", req(KindLiteralInteger)),
		e(7, "MatrixStride", req(KindLiteralInteger)),
		e(8, "GLSLShared"),
		e(9, "GLSLPacked"),
		e(10, "CPacked"),
		e(11, "BuiltIn", req(KindBuiltIn)),
		e(13, "NoPerspective"),
		e(14, "Flat"),
		e(15, "Patch"),
		e(16, "Centroid"),
		e(17, "Sample"),
		e(18, "Invariant"),
		e(19, "Restrict"),
		e(20, "Aliased"),
		e(21, "Volatile"),
		e(22, "Constant"),
		e(23, "Coherent"),
		e(24, "NonWritable"),
		e(25, "NonReadable"),
		e(26, "Uniform"),
		e(30, "Location", req(KindLiteralInteger)),
		e(31, "Component", req(KindLiteralInteger)),
		e(32, "Index", req(KindLiteralInteger)),
		e(33, "Binding", req(KindLiteralInteger)),
		e(34, "DescriptorSet", req(KindLiteralInteger)),
		e(35, "Offset", req(KindLiteralInteger)),
		e(36, "XfbBuffer", req(KindLiteralInteger)),
		e(37, "XfbStride", req(KindLiteralInteger)),
		e(42, "NoContraction"),
		e(43, "InputAttachmentIndex", req(KindLiteralInteger)),
		e(44, "Alignment", req(KindLiteralInteger)),
	),
	KindBuiltIn: enumTable(
		e(0, "Position"),
		e(1, "PointSize"),
		e(3, "ClipDistance"),
		e(4, "CullDistance"),
		e(5, "VertexId"),
		e(6, "InstanceId"),
		e(7, "PrimitiveId"),
		e(8, "InvocationId"),
		e(9, "Layer"),
		e(10, "ViewportIndex"),
		e(11, "TessLevelOuter"),
		e(12, "TessLevelInner"),
		e(13, "TessCoord"),
		e(14, "PatchVertices"),
		e(15, "FragCoord"),
		e(16, "PointCoord"),
		e(17, "FrontFacing"),
		e(18, "SampleId"),
		e(19, "SamplePosition"),
		e(20, "SampleMask"),
		e(22, "FragDepth"),
		e(23, "HelperInvocation"),
		e(24, "NumWorkgroups"),
		e(25, "WorkgroupSize"),
		e(26, "WorkgroupId"),
		e(27, "LocalInvocationId"),
		e(28, "GlobalInvocationId"),
		e(29, "LocalInvocationIndex"),
		e(42, "VertexIndex"),
		e(43, "InstanceIndex"),
	),
	KindCapability: enumTable(
		e(0, "Matrix"),
		e(1, "Shader"),
		e(2, "Geometry"),
		e(3, "Tessellation"),
		e(4, "Addresses"),
		e(5, "Linkage"),
		e(6, "Kernel"),
		e(7, "Vector16"),
		e(8, "Float16Buffer"),
		e(9, "Float16"),
		e(10, "Float64"),
		e(11, "Int64"),
		e(12, "Int64Atomics"),
		e(13, "ImageBasic"),
		e(14, "ImageReadWrite"),
		e(15, "ImageMipmap"),
		e(17, "Pipes"),
		e(18, "Groups"),
		e(19, "DeviceEnqueue"),
		e(20, "LiteralSampler"),
		e(21, "AtomicStorage"),
		e(22, "Int16"),
		e(23, "TessellationPointSize"),
		e(24, "GeometryPointSize"),
		e(25, "ImageGatherExtended"),
		e(27, "StorageImageMultisample"),
		e(28, "UniformBufferArrayDynamicIndexing"),
		e(29, "SampledImageArrayDynamicIndexing"),
		e(30, "StorageBufferArrayDynamicIndexing"),
		e(31, "StorageImageArrayDynamicIndexing"),
		e(32, "ClipDistance"),
		e(33, "CullDistance"),
		e(34, "ImageCubeArray"),
		e(35, "SampleRateShading"),
		e(36, "ImageRect"),
		e(37, "SampledRect"),
		e(38, "GenericPointer"),
		e(39, "Int8"),
		e(40, "InputAttachment"),
		e(41, "SparseResidency"),
		e(42, "MinLod"),
		e(43, "Sampled1D"),
		e(44, "Image1D"),
		e(45, "SampledCubeArray"),
		e(46, "SampledBuffer"),
		e(47, "ImageBuffer"),
		e(48, "ImageMSArray"),
		e(49, "StorageImageExtendedFormats"),
		e(50, "ImageQuery"),
		e(51, "DerivativeControl"),
		e(52, "InterpolationFunction"),
		e(53, "TransformFeedback"),
		e(54, "GeometryStreams"),
		e(55, "StorageImageReadWithoutFormat"),
		e(56, "StorageImageWriteWithoutFormat"),
		e(57, "MultiViewport"),
	),
	KindImageOperands: enumTable(
		e(0, "None"),
		e(0x01, "Bias", req(KindIDRef)),
		e(0x02, "Lod", req(KindIDRef)),
		e(0x04, "Grad", req(KindIDRef), req(KindIDRef)),
		e(0x08, "ConstOffset", req(KindIDRef)),
		e(0x10, "Offset", req(KindIDRef)),
		e(0x20, "ConstOffsets", req(KindIDRef)),
		e(0x40, "Sample", req(KindIDRef)),
		e(0x80, "MinLod", req(KindIDRef)),
	),
	KindFunctionControl: enumTable(
		e(0, "None"),
		e(1, "Inline"),
		e(2, "DontInline"),
		e(4, "Pure"),
		e(8, "Const"),
	),
	KindMemoryAccess: enumTable(
		e(0, "None"),
		e(1, "Volatile"),
		e(2, "Aligned", req(KindLiteralInteger)),
		e(4, "Nontemporal"),
	),
	KindSelectionControl: enumTable(
		e(0, "None"),
		e(1, "Flatten"),
		e(2, "DontFlatten"),
	),
	KindLoopControl: enumTable(
		e(0, "None"),
		e(1, "Unroll"),
		e(2, "DontUnroll"),
		e(4, "DependencyInfinite"),
		e(8, "DependencyLength", req(KindLiteralInteger)),
	),
}
