// Package digest resolves hash algorithms by configuration name.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"recipeflow/internal/services"
)

// Default is the algorithm used when configuration leaves it empty.
const Default = "sha256"

// MinSize is the smallest digest, in bytes, a provider must produce.
const MinSize = 20

var providers = map[string]func() hash.Hash{
	"sha256":      sha256.New,
	"sha512":      sha512.New,
	"sha3-256":    func() hash.Hash { return sha3.New256() },
	"sha3-512":    func() hash.Hash { return sha3.New512() },
	"blake2b-256": mustBlake(blake2b.New256),
	"blake2b-512": mustBlake(blake2b.New512),
}

func mustBlake(ctor func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := ctor(nil)
		if err != nil {
			// Unkeyed construction cannot fail.
			panic(err)
		}
		return h
	}
}

// New returns a fresh hash for the named algorithm. Unknown names yield an
// error marked services.ErrDigestUnavailable.
func New(name string) (hash.Hash, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	ctor, ok := providers[key]
	if !ok {
		return nil, services.Wrap(
			services.ErrDigestUnavailable,
			"digest",
			"resolve",
			fmt.Sprintf("unknown digest %q (supported: %s)", name, strings.Join(Names(), ", ")),
			nil,
		)
	}
	return ctor(), nil
}

// Factory validates name once and returns a constructor for repeated use.
func Factory(name string) (func() hash.Hash, error) {
	if _, err := New(name); err != nil {
		return nil, err
	}
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = Default
	}
	return providers[key], nil
}

// Names lists supported algorithms in sorted order.
func Names() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
