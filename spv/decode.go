package spv

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv/internal/words"
)

// typeInfo records the width of a numeric type so context-dependent
// literals that follow it can be sized.
type typeInfo struct {
	width uint32
	float bool
}

// decodeState carries the type knowledge accumulated while walking the
// instruction stream: numeric type widths, and the result type of every
// value seen so far, so literals sized by an earlier value's type (case
// literals in OpSwitch) decode at the right width.
type decodeState struct {
	widths     map[uint32]typeInfo
	valueTypes map[uint32]uint32
}

// widthOfValue resolves the numeric width of the type of a previously
// decoded value id. Defaults to one word when unknown.
func (st *decodeState) widthOfValue(id uint32) uint32 {
	if t, ok := st.valueTypes[id]; ok {
		if info, ok := st.widths[t]; ok {
			return info.width
		}
	}
	return 32
}

// Decode parses a SPIR-V binary. Endianness is detected from the byte
// order of the magic number in the first word.
func Decode(data []byte) (*Module, error) {
	if len(data) < 4 {
		return nil, errors.TruncatedStream(0, HeaderWords, len(data)/4)
	}
	var order binary.ByteOrder
	switch binary.LittleEndian.Uint32(data[:4]) {
	case Magic:
		order = binary.LittleEndian
	default:
		if binary.BigEndian.Uint32(data[:4]) != Magic {
			return nil, errors.MalformedBinary(0, "magic 0x%08x does not match 0x%08x in either byte order",
				binary.LittleEndian.Uint32(data[:4]), Magic)
		}
		order = binary.BigEndian
	}
	ws, err := words.FromBytes(data, order)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindMalformedBinary, err,
			"binary is not a whole number of words")
	}
	return DecodeWords(ws)
}

// DecodeWords parses a SPIR-V module from an already word-aligned
// stream in host operand order.
func DecodeWords(ws []uint32) (*Module, error) {
	hdr, err := decodeHeader(ws)
	if err != nil {
		return nil, err
	}

	r := words.NewReader(ws[HeaderWords:])
	st := decodeState{
		widths:     make(map[uint32]typeInfo),
		valueTypes: make(map[uint32]uint32),
	}
	var flat []Instruction
	var offsets []int
	for r.Remaining() > 0 {
		pos := r.Position() + HeaderWords
		inst, err := decodeInstruction(r, &st)
		if err != nil {
			return nil, err
		}
		flat = append(flat, inst)
		offsets = append(offsets, pos)
	}

	var w layoutWalker
	for i := range flat {
		if err := w.step(&flat[i], offsets[i]); err != nil {
			return nil, err
		}
	}
	if err := w.finish(len(ws)); err != nil {
		return nil, err
	}

	m := liftModule(hdr, flat)
	Logger().Debug("decoded module",
		zap.Uint32("bound", hdr.Bound),
		zap.String("version", hdr.Version.String()),
		zap.Int("instructions", len(flat)))
	return m, nil
}

func decodeHeader(ws []uint32) (Header, error) {
	if len(ws) < HeaderWords {
		return Header{}, errors.TruncatedStream(0, HeaderWords, len(ws))
	}
	if ws[0] != Magic {
		return Header{}, errors.MalformedBinary(0, "magic 0x%08x does not match 0x%08x", ws[0], Magic)
	}
	version := VersionFromWord(ws[1])
	if !version.supported() {
		return Header{}, errors.MalformedBinary(1, "unsupported version %s", version)
	}
	bound := ws[3]
	if bound == 0 {
		return Header{}, errors.MalformedBinary(3, "id bound must be at least 1")
	}
	return Header{
		Magic:     ws[0],
		Version:   version,
		Generator: ws[2],
		Bound:     bound,
		Schema:    ws[4],
	}, nil
}

// decodeInstruction parses one instruction starting at the reader's
// current position. pos in errors is relative to the start of the
// module, header included.
func decodeInstruction(r *words.Reader, st *decodeState) (Instruction, error) {
	pos := r.Position() + HeaderWords
	header, err := r.Word()
	if err != nil {
		return Instruction{}, errors.TruncatedStream(pos, 1, 0)
	}
	wc := int(header >> 16)
	op := grammar.Op(header & 0xFFFF)
	if wc == 0 {
		return Instruction{}, errors.MalformedBinary(pos, "instruction word count is zero")
	}
	if r.Remaining() < wc-1 {
		return Instruction{}, errors.TruncatedStream(pos, wc-1, r.Remaining())
	}
	body, err := r.Words(wc - 1)
	if err != nil {
		return Instruction{}, errors.TruncatedStream(pos, wc-1, r.Remaining())
	}

	spec, ok := grammar.Lookup(op)
	if !ok {
		return Instruction{}, errors.UnknownOpcode(errors.PhaseDecode, pos, uint16(op))
	}

	inst := Instruction{Opcode: op}
	sub := words.NewReader(body)
	if spec.HasResultType {
		if inst.ResultType, err = sub.Word(); err != nil {
			return Instruction{}, overrun(pos, spec)
		}
	}
	if spec.HasResult {
		if inst.ResultID, err = sub.Word(); err != nil {
			return Instruction{}, overrun(pos, spec)
		}
	}

	d := operandDecoder{r: sub, pos: pos, st: st, inst: &inst}
	for _, os := range spec.Operands {
		switch os.Quantifier {
		case grammar.One:
			if err := d.decode(os.Kind); err != nil {
				return Instruction{}, err
			}
		case grammar.Optional:
			if sub.Remaining() > 0 {
				if err := d.decode(os.Kind); err != nil {
					return Instruction{}, err
				}
			}
		case grammar.Variadic:
			for sub.Remaining() > 0 {
				if err := d.decode(os.Kind); err != nil {
					return Instruction{}, err
				}
			}
		}
	}
	if sub.Remaining() > 0 {
		return Instruction{}, errors.OperandMismatch(errors.PhaseDecode, uint16(op),
			"trailing operand words beyond the grammar").WithOffset(pos)
	}

	st.remember(&inst)
	return inst, nil
}

func overrun(pos int, spec *grammar.InstructionSpec) *errors.Error {
	return errors.MalformedBinary(pos, "%s operands overrun the declared word count", spec.Name)
}

func (st *decodeState) remember(inst *Instruction) {
	switch inst.Opcode {
	case grammar.OpTypeInt:
		if len(inst.Operands) >= 1 {
			st.widths[inst.ResultID] = typeInfo{width: inst.Operands[0].Uint32()}
		}
	case grammar.OpTypeFloat:
		if len(inst.Operands) >= 1 {
			st.widths[inst.ResultID] = typeInfo{width: inst.Operands[0].Uint32(), float: true}
		}
	}
	if inst.ResultID != 0 && inst.ResultType != 0 {
		st.valueTypes[inst.ResultID] = inst.ResultType
	}
}

// operandDecoder parses operands for a single instruction.
type operandDecoder struct {
	r    *words.Reader
	st   *decodeState
	inst *Instruction
	pos  int
}

func (d *operandDecoder) decode(kind grammar.OperandKind) error {
	o, err := d.decodeKind(kind)
	if err != nil {
		return err
	}
	d.inst.Operands = append(d.inst.Operands, o...)
	return nil
}

// decodeKind parses one grammar operand. Pair kinds flatten into two
// consecutive operands so variadic pair lists stay uniform.
func (d *operandDecoder) decodeKind(kind grammar.OperandKind) ([]Operand, error) {
	switch kind {
	case grammar.KindPairLiteralIntegerIDRef:
		lit, err := d.caseLiteral()
		if err != nil {
			return nil, err
		}
		id, err := d.one(grammar.KindIDRef)
		if err != nil {
			return nil, err
		}
		return []Operand{lit, id}, nil
	case grammar.KindPairIDRefLiteralInteger:
		id, err := d.one(grammar.KindIDRef)
		if err != nil {
			return nil, err
		}
		lit, err := d.one(grammar.KindLiteralInteger)
		if err != nil {
			return nil, err
		}
		return []Operand{id, lit}, nil
	case grammar.KindPairIDRefIDRef:
		a, err := d.one(grammar.KindIDRef)
		if err != nil {
			return nil, err
		}
		b, err := d.one(grammar.KindIDRef)
		if err != nil {
			return nil, err
		}
		return []Operand{a, b}, nil
	}
	o, err := d.one(kind)
	if err != nil {
		return nil, err
	}
	return []Operand{o}, nil
}

func (d *operandDecoder) one(kind grammar.OperandKind) (Operand, error) {
	switch {
	case kind.IsID():
		w, err := d.word(kind)
		if err != nil {
			return Operand{}, err
		}
		return ID(w), nil

	case kind == grammar.KindLiteralString:
		s, err := d.r.String()
		if err != nil {
			return Operand{}, errors.MalformedBinary(d.pos, "bad string literal in %s: %v",
				grammar.OpcodeName(d.inst.Opcode), err)
		}
		return Str(s), nil

	case kind == grammar.KindLiteralContextDependentNumber:
		return d.contextNumber()

	case kind.IsValueEnum():
		w, err := d.word(kind)
		if err != nil {
			return Operand{}, err
		}
		params, ok := grammar.EnumerantParams(kind, w)
		if !ok {
			return Operand{}, errors.UnknownEnumerant(errors.PhaseDecode, d.pos, kind.String(), w)
		}
		return d.enumWithParams(kind, w, params)

	case kind.IsBitEnum():
		w, err := d.word(kind)
		if err != nil {
			return Operand{}, err
		}
		params, ok := grammar.EnumerantParams(kind, w)
		if !ok {
			return Operand{}, errors.UnknownEnumerant(errors.PhaseDecode, d.pos, kind.String(), w)
		}
		return d.enumWithParams(kind, w, params)

	default:
		// Plain one-word literals: LiteralInteger, LiteralExtInstInteger,
		// LiteralSpecConstantOpInteger.
		w, err := d.word(kind)
		if err != nil {
			return Operand{}, err
		}
		return Int32(w), nil
	}
}

func (d *operandDecoder) word(kind grammar.OperandKind) (uint32, error) {
	w, err := d.r.Word()
	if err != nil {
		return 0, errors.MalformedBinary(d.pos, "%s operand missing in %s",
			kind, grammar.OpcodeName(d.inst.Opcode))
	}
	return w, nil
}

func (d *operandDecoder) enumWithParams(kind grammar.OperandKind, value uint32, params []grammar.OperandSpec) (Operand, error) {
	o := Enum(kind, value)
	for _, ps := range params {
		sub, err := d.decodeKind(ps.Kind)
		if err != nil {
			return Operand{}, err
		}
		o.Params = append(o.Params, sub...)
	}
	return o, nil
}

// caseLiteral parses the literal half of an OpSwitch case pair. Its
// width is the width of the selector's type, the instruction's first
// operand.
func (d *operandDecoder) caseLiteral() (Operand, error) {
	width := uint32(32)
	if len(d.inst.Operands) > 0 && d.inst.Operands[0].IsID() {
		width = d.st.widthOfValue(d.inst.Operands[0].Uint32())
	}
	low, err := d.word(grammar.KindLiteralInteger)
	if err != nil {
		return Operand{}, err
	}
	if width > 32 {
		high, err := d.word(grammar.KindLiteralInteger)
		if err != nil {
			return Operand{}, err
		}
		return Int64(uint64(high)<<32 | uint64(low)), nil
	}
	return Int32(low), nil
}

// contextNumber sizes a context-dependent literal from the width of the
// instruction's result type, previously seen as OpTypeInt or
// OpTypeFloat. Literals wider than one word are stored low word first.
func (d *operandDecoder) contextNumber() (Operand, error) {
	info, ok := d.st.widths[d.inst.ResultType]
	if !ok {
		info = typeInfo{width: 32}
	}
	low, err := d.word(grammar.KindLiteralContextDependentNumber)
	if err != nil {
		return Operand{}, err
	}
	if info.width > 32 {
		high, err := d.word(grammar.KindLiteralContextDependentNumber)
		if err != nil {
			return Operand{}, err
		}
		v := uint64(high)<<32 | uint64(low)
		if info.float {
			return Operand{Kind: OperandFloat64, Val: v}, nil
		}
		return Int64(v), nil
	}
	if info.float {
		return Operand{Kind: OperandFloat32, Val: uint64(low)}, nil
	}
	return Int32(low), nil
}

// liftModule distributes a layout-checked flat stream into module
// sections. Line markers outside functions attach to whichever section
// list was appended to last so re-encoding preserves their position.
func liftModule(hdr Header, flat []Instruction) *Module {
	m := &Module{Header: hdr}
	current := &m.DebugStringSource

	var fn *Function
	for i := range flat {
		inst := flat[i]
		op := inst.Opcode

		if fn != nil {
			switch op {
			case grammar.OpFunctionParameter:
				fn.Parameters = append(fn.Parameters, inst)
			case grammar.OpLabel:
				fn.Blocks = append(fn.Blocks, Block{Label: inst})
			case grammar.OpFunctionEnd:
				m.Functions = append(m.Functions, *fn)
				fn = nil
			default:
				// Line markers before the first block keep their place
				// among the parameters.
				if len(fn.Blocks) == 0 {
					fn.Parameters = append(fn.Parameters, inst)
					continue
				}
				b := &fn.Blocks[len(fn.Blocks)-1]
				b.Instructions = append(b.Instructions, inst)
			}
			continue
		}

		if op == grammar.OpFunction {
			fn = &Function{Def: inst}
			continue
		}
		if op == grammar.OpLine || op == grammar.OpNoLine {
			*current = append(*current, inst)
			continue
		}
		switch sectionFor(op) {
		case sectionCapabilities:
			current = &m.Capabilities
		case sectionExtensions:
			current = &m.Extensions
		case sectionExtInstImports:
			current = &m.ExtInstImports
		case sectionMemoryModel:
			mm := inst
			m.MemoryModel = &mm
			continue
		case sectionEntryPoints:
			current = &m.EntryPoints
		case sectionExecutionModes:
			current = &m.ExecutionModes
		case sectionDebugStringSource:
			current = &m.DebugStringSource
		case sectionDebugNames:
			current = &m.DebugNames
		case sectionAnnotations:
			current = &m.Annotations
		default:
			current = &m.TypesGlobalValues
		}
		*current = append(*current, inst)
	}
	return m
}
