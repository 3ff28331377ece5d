// Package digest maps hash names to the functions that produce the message
// digests fed to the signer. The signer itself treats digests as opaque
// big-endian integers.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"
	"strings"

	"go.cypherpunks.su/gogost/v6/gost34112012256"
	"go.cypherpunks.su/gogost/v6/gost34112012512"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Default is the hash used when none is configured: GOST R 34.11-2012
// (Streebog) with a 256-bit output.
const Default = "streebog256"

var registry = map[string]func() hash.Hash{
	"sha256":      sha256.New,
	"sha512":      sha512.New,
	"sha3-256":    func() hash.Hash { return sha3.New256() },
	"sha3-512":    func() hash.Hash { return sha3.New512() },
	"blake2b-256": newBlake2b256,
	"blake2b-512": newBlake2b512,
	"streebog256": func() hash.Hash { return gost34112012256.New() },
	"streebog512": func() hash.Hash { return gost34112012512.New() },
}

func newBlake2b256() hash.Hash {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	return h
}

func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// New returns a fresh hash.Hash for name. Names are case-insensitive.
func New(name string) (hash.Hash, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown hash %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Sum hashes data with the named hash.
func Sum(name string, data ...[]byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil), nil
}

// Names lists the supported hash names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
