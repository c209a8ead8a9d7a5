package main

import (
	"testing"

	"github.com/gofrs/flock"
)

func newLockForTest(t *testing.T, path string) func() {
	t.Helper()
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil || !ok {
		t.Fatalf("lock %s: ok=%v err=%v", path, ok, err)
	}
	return func() { _ = lock.Unlock() }
}
