package grammar

// Op is a SPIR-V opcode number, the low 16 bits of an instruction's
// first word.
type Op uint16

// OperandKind classifies one operand slot of an instruction.
type OperandKind uint8

// Operand kinds. ID kinds consume exactly one word; literal kinds consume
// one or more words; pair kinds consume the words of both halves; enum
// kinds consume one word plus the parameters of the selected enumerant.
const (
	KindIDRef OperandKind = iota
	KindIDResult
	KindIDResultType
	KindIDMemorySemantics
	KindIDScope
	KindLiteralInteger
	KindLiteralString
	KindLiteralContextDependentNumber
	KindLiteralExtInstInteger
	KindLiteralSpecConstantOpInteger
	KindPairLiteralIntegerIDRef
	KindPairIDRefLiteralInteger
	KindPairIDRefIDRef

	// Value enums: the word selects exactly one enumerant.
	KindSourceLanguage
	KindExecutionModel
	KindAddressingModel
	KindMemoryModel
	KindExecutionMode
	KindStorageClass
	KindDim
	KindSamplerAddressingMode
	KindSamplerFilterMode
	KindImageFormat
	KindAccessQualifier
	KindDecoration
	KindBuiltIn
	KindCapability

	// Bit enums: the word is a mask and every set bit contributes its
	// enumerant's parameters.
	KindImageOperands
	KindFunctionControl
	KindMemoryAccess
	KindSelectionControl
	KindLoopControl
)

var kindNames = map[OperandKind]string{
	KindIDRef:                         "IdRef",
	KindIDResult:                      "IdResult",
	KindIDResultType:                  "IdResultType",
	KindIDMemorySemantics:             "IdMemorySemantics",
	KindIDScope:                       "IdScope",
	KindLiteralInteger:                "LiteralInteger",
	KindLiteralString:                 "LiteralString",
	KindLiteralContextDependentNumber: "LiteralContextDependentNumber",
	KindLiteralExtInstInteger:         "LiteralExtInstInteger",
	KindLiteralSpecConstantOpInteger:  "LiteralSpecConstantOpInteger",
	KindPairLiteralIntegerIDRef:       "PairLiteralIntegerIdRef",
	KindPairIDRefLiteralInteger:       "PairIdRefLiteralInteger",
	KindPairIDRefIDRef:                "PairIdRefIdRef",
	KindSourceLanguage:                "SourceLanguage",
	KindExecutionModel:                "ExecutionModel",
	KindAddressingModel:               "AddressingModel",
	KindMemoryModel:                   "MemoryModel",
	KindExecutionMode:                 "ExecutionMode",
	KindStorageClass:                  "StorageClass",
	KindDim:                           "Dim",
	KindSamplerAddressingMode:         "SamplerAddressingMode",
	KindSamplerFilterMode:             "SamplerFilterMode",
	KindImageFormat:                   "ImageFormat",
	KindAccessQualifier:               "AccessQualifier",
	KindDecoration:                    "Decoration",
	KindBuiltIn:                       "BuiltIn",
	KindCapability:                    "Capability",
	KindImageOperands:                 "ImageOperands",
	KindFunctionControl:               "FunctionControl",
	KindMemoryAccess:                  "MemoryAccess",
	KindSelectionControl:              "SelectionControl",
	KindLoopControl:                   "LoopControl",
}

func (k OperandKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "UnknownKind"
}

// IsID reports whether the kind is an ID reference consuming one word.
func (k OperandKind) IsID() bool {
	switch k {
	case KindIDRef, KindIDResult, KindIDResultType, KindIDMemorySemantics, KindIDScope:
		return true
	}
	return false
}

// IsValueEnum reports whether the kind is a single-value enum.
func (k OperandKind) IsValueEnum() bool {
	return k >= KindSourceLanguage && k <= KindCapability
}

// IsBitEnum reports whether the kind is a bitmask enum.
func (k OperandKind) IsBitEnum() bool {
	return k >= KindImageOperands && k <= KindLoopControl
}

// IsEnum reports whether the kind is any enum kind.
func (k OperandKind) IsEnum() bool {
	return k.IsValueEnum() || k.IsBitEnum()
}

// Quantifier describes how many times an operand slot occurs.
type Quantifier uint8

const (
	One      Quantifier = iota // exactly once
	Optional                   // zero or one, must be last or followed only by optionals
	Variadic                   // zero or more, must be the final slot
)

// OperandSpec is one declared operand slot of an instruction or enumerant.
type OperandSpec struct {
	Kind       OperandKind
	Quantifier Quantifier
}

// Class groups opcodes the way the SPIR-V grammar does; the module layout
// rules are defined in terms of these groups.
type Class uint8

const (
	ClassMiscellaneous Class = iota
	ClassDebug
	ClassAnnotation
	ClassExtension
	ClassModeSetting
	ClassTypeDeclaration
	ClassConstantCreation
	ClassMemory
	ClassFunction
	ClassImage
	ClassConversion
	ClassComposite
	ClassArithmetic
	ClassBit
	ClassRelationalLogical
	ClassControlFlow
)

// InstructionSpec describes the full operand grammar of one opcode.
// Operands excludes the result-type and result slots, which are covered
// by HasResultType and HasResult.
type InstructionSpec struct {
	Name          string
	Operands      []OperandSpec
	Class         Class
	HasResult     bool
	HasResultType bool
}

// IsVariadic reports whether the final operand slot repeats.
func (s *InstructionSpec) IsVariadic() bool {
	n := len(s.Operands)
	return n > 0 && s.Operands[n-1].Quantifier == Variadic
}

// Enumerant is one named value of an enum operand kind, together with the
// operand slots its selection introduces.
type Enumerant struct {
	Name   string
	Params []OperandSpec
	Value  uint32
}

var opsByName map[string]Op

func init() {
	opsByName = make(map[string]Op, len(instructions))
	for op, spec := range instructions {
		opsByName[spec.Name] = op
	}
}

// Lookup returns the instruction spec for an opcode.
func Lookup(op Op) (*InstructionSpec, bool) {
	spec, ok := instructions[op]
	return spec, ok
}

// LookupName returns the opcode with the given symbolic name (e.g. "OpIAdd").
func LookupName(name string) (Op, bool) {
	op, ok := opsByName[name]
	return op, ok
}

// OpcodeName returns the symbolic name of an opcode, or a placeholder for
// opcodes outside the grammar.
func OpcodeName(op Op) string {
	if spec, ok := instructions[op]; ok {
		return spec.Name
	}
	return "OpUnknown"
}

// HasResult reports whether the opcode produces a result ID.
func HasResult(op Op) bool {
	spec, ok := instructions[op]
	return ok && spec.HasResult
}

// HasResultType reports whether the opcode carries a result type ID.
func HasResultType(op Op) bool {
	spec, ok := instructions[op]
	return ok && spec.HasResultType
}

// LookupEnumerant returns the enumerant of a value enum kind, or of a single
// bit for bit enum kinds.
func LookupEnumerant(kind OperandKind, value uint32) (*Enumerant, bool) {
	byValue, ok := enumerants[kind]
	if !ok {
		return nil, false
	}
	e, ok := byValue[value]
	return e, ok
}

// EnumerantParams returns the extra operand slots introduced by an enum
// operand's value. For bit enums the parameters of every set bit are
// concatenated in ascending bit order, matching the binary encoding.
func EnumerantParams(kind OperandKind, value uint32) ([]OperandSpec, bool) {
	if kind.IsBitEnum() {
		var params []OperandSpec
		for bit := uint32(1); bit != 0; bit <<= 1 {
			if value&bit == 0 {
				continue
			}
			e, ok := LookupEnumerant(kind, bit)
			if !ok {
				return nil, false
			}
			params = append(params, e.Params...)
		}
		return params, true
	}
	e, ok := LookupEnumerant(kind, value)
	if !ok {
		return nil, false
	}
	return e.Params, true
}

// EnumName returns the symbolic name of a value enum's value.
func EnumName(kind OperandKind, value uint32) string {
	if e, ok := LookupEnumerant(kind, value); ok {
		return e.Name
	}
	return "Unknown"
}

// BitEnumNames returns the symbolic names of every set bit in a bit enum
// mask, in ascending bit order. A zero mask yields the kind's None name
// when one is defined.
func BitEnumNames(kind OperandKind, mask uint32) []string {
	if mask == 0 {
		if e, ok := LookupEnumerant(kind, 0); ok {
			return []string{e.Name}
		}
		return nil
	}
	var names []string
	for bit := uint32(1); bit != 0; bit <<= 1 {
		if mask&bit == 0 {
			continue
		}
		if e, ok := LookupEnumerant(kind, bit); ok {
			names = append(names, e.Name)
		} else {
			names = append(names, "Unknown")
		}
	}
	return names
}

// IsTerminator reports whether the opcode ends a basic block.
func IsTerminator(op Op) bool {
	switch op {
	case OpBranch, OpBranchConditional, OpSwitch, OpKill, OpReturn, OpReturnValue, OpUnreachable:
		return true
	}
	return false
}

// IsTypeDecl reports whether the opcode declares a type.
func IsTypeDecl(op Op) bool {
	spec, ok := instructions[op]
	return ok && spec.Class == ClassTypeDeclaration
}

// IsConstDecl reports whether the opcode creates a constant.
func IsConstDecl(op Op) bool {
	spec, ok := instructions[op]
	return ok && spec.Class == ClassConstantCreation
}
