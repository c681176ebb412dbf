package formz

import "testing"

func TestStatus_String_Idle(t *testing.T) {
	if s := StatusIdle.String(); s != "idle" {
		t.Errorf("expected 'idle', got %q", s)
	}
}

func TestStatus_String_Validating(t *testing.T) {
	if s := StatusValidating.String(); s != "validating" {
		t.Errorf("expected 'validating', got %q", s)
	}
}

func TestStatus_String_Valid(t *testing.T) {
	if s := StatusValid.String(); s != "valid" {
		t.Errorf("expected 'valid', got %q", s)
	}
}

func TestStatus_String_Invalid(t *testing.T) {
	if s := StatusInvalid.String(); s != "invalid" {
		t.Errorf("expected 'invalid', got %q", s)
	}
}

func TestStatus_String_Unknown(t *testing.T) {
	unknown := Status(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestStatus_Values(t *testing.T) {
	// Verify iota ordering
	if StatusIdle != 0 {
		t.Errorf("expected StatusIdle=0, got %d", StatusIdle)
	}
	if StatusValidating != 1 {
		t.Errorf("expected StatusValidating=1, got %d", StatusValidating)
	}
	if StatusValid != 2 {
		t.Errorf("expected StatusValid=2, got %d", StatusValid)
	}
	if StatusInvalid != 3 {
		t.Errorf("expected StatusInvalid=3, got %d", StatusInvalid)
	}
}
