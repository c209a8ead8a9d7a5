package services_test

import (
	"errors"
	"strings"
	"testing"

	"recipeflow/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrValidation, "decode", "meal-master", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"decode", "meal-master", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected default detail, got %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"digest", services.Wrap(services.ErrDigestUnavailable, "normalize", "digest", "md4", nil), true},
		{"config", services.Wrap(services.ErrConfiguration, "config", "load", "bad", nil), true},
		{"unsupported", services.Wrap(services.ErrUnsupportedDialect, "decode", "mxp", "", nil), false},
		{"plain", errors.New("io"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.IsFatal(tt.err); got != tt.want {
				t.Fatalf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutcome(t *testing.T) {
	if got := services.Outcome(nil); got != "ok" {
		t.Fatalf("unexpected outcome for nil: %q", got)
	}
	if got := services.Outcome(services.Wrap(services.ErrUnsupportedDialect, "decode", "", "", nil)); got != "unsupported" {
		t.Fatalf("unexpected outcome: %q", got)
	}
	if got := services.Outcome(errors.New("io")); got != "failed" {
		t.Fatalf("unexpected outcome: %q", got)
	}
}
