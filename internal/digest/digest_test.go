package digest_test

import (
	"errors"
	"testing"

	"recipeflow/internal/digest"
	"recipeflow/internal/services"
)

func TestNewSupportsAllNames(t *testing.T) {
	for _, name := range digest.Names() {
		h, err := digest.New(name)
		if err != nil {
			t.Fatalf("New(%q) error: %v", name, err)
		}
		if h.Size() < digest.MinSize {
			t.Fatalf("%s produces %d bytes, want at least %d", name, h.Size(), digest.MinSize)
		}
	}
}

func TestNewDefaultsWhenEmpty(t *testing.T) {
	h, err := digest.New("  ")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if h.Size() != 32 {
		t.Fatalf("expected sha256 size, got %d", h.Size())
	}
}

func TestNewIsCaseInsensitive(t *testing.T) {
	if _, err := digest.New("SHA3-256"); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestUnknownDigestIsFatal(t *testing.T) {
	_, err := digest.New("md5")
	if !errors.Is(err, services.ErrDigestUnavailable) {
		t.Fatalf("expected ErrDigestUnavailable, got %v", err)
	}
	if !services.IsFatal(err) {
		t.Fatal("expected digest error to be fatal")
	}
	if _, err := digest.Factory("crc32"); err == nil {
		t.Fatal("expected Factory error")
	}
}

func TestFactoryProducesIndependentHashes(t *testing.T) {
	ctor, err := digest.Factory("blake2b-256")
	if err != nil {
		t.Fatalf("Factory: %v", err)
	}
	a, b := ctor(), ctor()
	a.Write([]byte("x"))
	if string(a.Sum(nil)) == string(b.Sum(nil)) {
		t.Fatal("hashes share state")
	}
}
