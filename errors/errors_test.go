package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := TruncatedStream(17, 4, 2)
	msg := err.Error()

	if !strings.Contains(msg, "[decode]") {
		t.Errorf("message missing phase: %q", msg)
	}
	if !strings.Contains(msg, "truncated_stream") {
		t.Errorf("message missing kind: %q", msg)
	}
	if !strings.Contains(msg, "at word 17") {
		t.Errorf("message missing offset: %q", msg)
	}
}

func TestErrorOmitsNegativeOffset(t *testing.T) {
	err := BlockTerminated(5)
	if strings.Contains(err.Error(), "at word") {
		t.Errorf("builder errors should not report an offset: %q", err.Error())
	}
}

func TestErrorIs(t *testing.T) {
	err := MalformedBinary(0, "bad magic 0x%08x", 0xdeadbeef)

	if !stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindMalformedBinary}) {
		t.Error("expected Is to match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseEncode, Kind: KindMalformedBinary}) {
		t.Error("expected Is to reject different phase")
	}
	if stderrors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncatedStream}) {
		t.Error("expected Is to reject different kind")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(PhaseDecode, KindMalformedBinary, cause, "header")

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped cause to be found by errors.Is")
	}
	if !strings.Contains(err.Error(), "caused by: underlying") {
		t.Errorf("message missing cause: %q", err.Error())
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseValidate, KindInvalidLayout).
		Detail("type %d before memory model", 42).
		Build()

	if err.Phase != PhaseValidate || err.Kind != KindInvalidLayout {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if err.Detail != "type 42 before memory model" {
		t.Errorf("unexpected detail: %q", err.Detail)
	}
	if err.Offset != -1 {
		t.Errorf("expected offset -1, got %d", err.Offset)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	cases := []struct {
		err  *Error
		kind Kind
	}{
		{WordCountOverflow(61, 70000), KindWordCountOverflow},
		{UnknownOpcode(PhaseDecode, 5, 9999), KindUnknownOpcode},
		{UnknownEnumerant(PhaseDecode, 5, "StorageClass", 999), KindUnknownEnumerant},
		{DanglingID(12), KindDanglingID},
		{DuplicateID(12), KindDuplicateID},
		{NoOpenFunction("BeginBlock"), KindNoOpenFunction},
		{NoOpenBlock("Emit"), KindNoOpenBlock},
		{UnterminatedBlock(3), KindUnterminatedBlock},
		{NestedFunction(2), KindNestedFunction},
		{OpenConstruct("block"), KindOpenConstruct},
	}
	for _, tc := range cases {
		if tc.err.Kind != tc.kind {
			t.Errorf("expected kind %s, got %s", tc.kind, tc.err.Kind)
		}
		if tc.err.Error() == "" {
			t.Errorf("kind %s produced empty message", tc.kind)
		}
	}
}
