package spv

import (
	"encoding/binary"

	"go.uber.org/zap"

	"github.com/wippyai/spirv-tools/errors"
	"github.com/wippyai/spirv-tools/grammar"
	"github.com/wippyai/spirv-tools/spv/internal/words"
)

// EncodeWords serializes the module to a word stream: the five-word
// header followed by every instruction in section order. It is the
// exact inverse of DecodeWords for any module DecodeWords accepts.
func (m *Module) EncodeWords() ([]uint32, error) {
	flat := m.Instructions()

	w := words.NewWriter()
	w.Word(m.Header.Magic)
	w.Word(m.Header.Version.Word())
	w.Word(m.Header.Generator)
	w.Word(m.Header.Bound)
	w.Word(m.Header.Schema)

	for i := range flat {
		if err := encodeInstruction(w, &flat[i]); err != nil {
			return nil, err
		}
	}
	out := w.Words()
	Logger().Debug("encoded module",
		zap.Uint32("bound", m.Header.Bound),
		zap.Int("words", len(out)))
	return out, nil
}

// Encode serializes the module to little-endian bytes.
func (m *Module) Encode() ([]byte, error) {
	ws, err := m.EncodeWords()
	if err != nil {
		return nil, err
	}
	return words.ToBytes(ws, binary.LittleEndian), nil
}

func encodeInstruction(w *words.Writer, inst *Instruction) error {
	wc := inst.WordCount()
	if wc > MaxWordCount {
		return errors.WordCountOverflow(uint16(inst.Opcode), wc)
	}
	if spec, ok := grammar.Lookup(inst.Opcode); ok {
		if spec.HasResult != (inst.ResultID != 0) || spec.HasResultType != (inst.ResultType != 0) {
			return errors.OperandMismatch(errors.PhaseEncode, uint16(inst.Opcode),
				"result id or result type does not match the instruction grammar")
		}
	}
	w.Word(uint32(wc)<<16 | uint32(inst.Opcode))
	if inst.ResultType != 0 {
		w.Word(inst.ResultType)
	}
	if inst.ResultID != 0 {
		w.Word(inst.ResultID)
	}
	for _, o := range inst.Operands {
		o.encode(w)
	}
	return nil
}
