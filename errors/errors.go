package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // binary to module
	PhaseEncode   Phase = "encode"   // module to binary
	PhaseValidate Phase = "validate" // structural validation
	PhaseBuild    Phase = "build"    // builder operations
	PhaseGrammar  Phase = "grammar"  // grammar table lookups
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedBinary   Kind = "malformed_binary"
	KindTruncatedStream   Kind = "truncated_stream"
	KindWordCountOverflow Kind = "word_count_overflow"
	KindInvalidLayout     Kind = "invalid_layout"
	KindUnknownOpcode     Kind = "unknown_opcode"
	KindUnknownEnumerant  Kind = "unknown_enumerant"
	KindDanglingID        Kind = "dangling_id"
	KindDuplicateID       Kind = "duplicate_id"
	KindNoOpenFunction    Kind = "no_open_function"
	KindNoOpenBlock       Kind = "no_open_block"
	KindUnterminatedBlock Kind = "unterminated_block"
	KindBlockTerminated   Kind = "block_terminated"
	KindNestedFunction    Kind = "nested_function"
	KindOpenConstruct     Kind = "open_construct"
	KindOperandMismatch   Kind = "operand_mismatch"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// Offset is the word offset into the binary at which a codec error
	// was detected. Negative when not applicable.
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at word %d", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithOffset attaches a word offset to the error. Negative offsets are
// ignored so call sites without a position can pass -1.
func (e *Error) WithOffset(words int) *Error {
	if words >= 0 {
		e.Offset = words
	}
	return e
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the word offset at which the error was detected
func (b *Builder) Offset(words int) *Builder {
	b.err.Offset = words
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedBinary creates a header or framing error at the given word offset
func MalformedBinary(offset int, detail string, args ...any) *Error {
	return New(PhaseDecode, KindMalformedBinary).Offset(offset).Detail(detail, args...).Build()
}

// TruncatedStream creates an error for an instruction overrunning the buffer
func TruncatedStream(offset int, need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedStream,
		Offset: offset,
		Detail: fmt.Sprintf("instruction declares %d words but only %d remain", need, have),
	}
}

// WordCountOverflow creates an error for an instruction exceeding the
// 16-bit word count field
func WordCountOverflow(opcode uint16, words int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindWordCountOverflow,
		Offset: -1,
		Detail: fmt.Sprintf("opcode %d encodes to %d words, exceeding the 65535 word limit", opcode, words),
	}
}

// UnknownOpcode creates a grammar lookup miss error for an opcode
func UnknownOpcode(phase Phase, offset int, opcode uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownOpcode,
		Offset: offset,
		Detail: fmt.Sprintf("opcode %d is not in the grammar table", opcode),
	}
}

// UnknownEnumerant creates a grammar lookup miss error for an enum value
func UnknownEnumerant(phase Phase, offset int, kind string, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownEnumerant,
		Offset: offset,
		Detail: fmt.Sprintf("value %d is not a known %s enumerant", value, kind),
	}
}

// InvalidLayout creates a section-order or placement violation error
func InvalidLayout(phase Phase, detail string, args ...any) *Error {
	return New(phase, KindInvalidLayout).Detail(detail, args...).Build()
}

// DanglingID creates an error for an ID referenced but never defined
func DanglingID(id uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDanglingID,
		Offset: -1,
		Detail: fmt.Sprintf("%%%d is referenced but never defined", id),
	}
}

// DuplicateID creates an error for a result ID defined more than once
func DuplicateID(id uint32) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindDuplicateID,
		Offset: -1,
		Detail: fmt.Sprintf("%%%d is defined more than once", id),
	}
}

// OperandMismatch creates an error for operands not matching the grammar
func OperandMismatch(phase Phase, opcode uint16, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOperandMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("opcode %d: %s", opcode, detail),
	}
}

// Builder-state errors. Each reports a misuse of the module builder; the
// module under construction is never corrupted by these.

// NoOpenFunction reports a block or body operation outside a function
func NoOpenFunction(op string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindNoOpenFunction,
		Offset: -1,
		Detail: fmt.Sprintf("%s requires an open function", op),
	}
}

// NoOpenBlock reports an instruction emitted outside a basic block
func NoOpenBlock(op string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindNoOpenBlock,
		Offset: -1,
		Detail: fmt.Sprintf("%s requires an open block", op),
	}
}

// UnterminatedBlock reports a block left without a terminator
func UnterminatedBlock(label uint32) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindUnterminatedBlock,
		Offset: -1,
		Detail: fmt.Sprintf("block %%%d has no terminator", label),
	}
}

// BlockTerminated reports an instruction emitted after the block terminator
func BlockTerminated(label uint32) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindBlockTerminated,
		Offset: -1,
		Detail: fmt.Sprintf("block %%%d is already terminated", label),
	}
}

// NestedFunction reports a function begun while another is open
func NestedFunction(open uint32) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindNestedFunction,
		Offset: -1,
		Detail: fmt.Sprintf("function %%%d is still open", open),
	}
}

// OpenConstruct reports module finalization with an open function or block
func OpenConstruct(what string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindOpenConstruct,
		Offset: -1,
		Detail: fmt.Sprintf("cannot finalize module with an open %s", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
