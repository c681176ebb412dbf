package rules

import (
	"context"
	"regexp"
	"testing"
)

func TestRequired_Empty(t *testing.T) {
	msg, err := Required()(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "field is required" {
		t.Errorf("expected required message, got %q", msg)
	}
}

func TestRequired_WhitespaceOnly(t *testing.T) {
	msg, _ := Required()(context.Background(), "   \t")
	if msg == "" {
		t.Error("expected whitespace-only value to fail")
	}
}

func TestRequired_Present(t *testing.T) {
	msg, _ := Required()(context.Background(), "value")
	if msg != "" {
		t.Errorf("expected pass, got %q", msg)
	}
}

func TestMinLength(t *testing.T) {
	rule := MinLength(3)

	if msg, _ := rule(context.Background(), "ab"); msg == "" {
		t.Error("expected short value to fail")
	}
	if msg, _ := rule(context.Background(), "abc"); msg != "" {
		t.Errorf("expected exact length to pass, got %q", msg)
	}
}

func TestMaxLength(t *testing.T) {
	rule := MaxLength(3)

	if msg, _ := rule(context.Background(), "abcd"); msg == "" {
		t.Error("expected long value to fail")
	}
	if msg, _ := rule(context.Background(), "abc"); msg != "" {
		t.Errorf("expected exact length to pass, got %q", msg)
	}
}

func TestLength(t *testing.T) {
	rule := Length(2)

	if msg, _ := rule(context.Background(), "a"); msg == "" {
		t.Error("expected short value to fail")
	}
	if msg, _ := rule(context.Background(), "abc"); msg == "" {
		t.Error("expected long value to fail")
	}
	if msg, _ := rule(context.Background(), "ab"); msg != "" {
		t.Errorf("expected exact length to pass, got %q", msg)
	}
}

func TestPattern(t *testing.T) {
	rule := Pattern(regexp.MustCompile(`^[a-z]+$`), "must be lowercase letters")

	if msg, _ := rule(context.Background(), "ABC"); msg != "must be lowercase letters" {
		t.Errorf("expected pattern message, got %q", msg)
	}
	if msg, _ := rule(context.Background(), "abc"); msg != "" {
		t.Errorf("expected match to pass, got %q", msg)
	}
}
