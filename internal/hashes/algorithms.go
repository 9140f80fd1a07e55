// Package hashes implements the digest engine: the closed set of supported
// algorithms, their dispatch table, and candidate-set resolution for targets.
package hashes

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	sha256simd "github.com/minio/sha256-simd"
)

// Algorithm identifies one supported hash algorithm. The set is closed; an
// out-of-range value is a programming error and panics on use.
type Algorithm int

const (
	MD5 Algorithm = iota
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2b
	BLAKE2s
	SHAKE128
	SHAKE256
)

// ShakeLen fixes the output length in bytes for the extendable-output
// constructions so their digests are comparable.
const ShakeLen = 16

var table = [...]struct {
	name string
	size int
	sum  func([]byte) []byte
}{
	MD5:      {"md5", md5.Size, func(b []byte) []byte { v := md5.Sum(b); return v[:] }},
	SHA1:     {"sha1", sha1.Size, func(b []byte) []byte { v := sha1.Sum(b); return v[:] }},
	SHA224:   {"sha224", sha256.Size224, func(b []byte) []byte { v := sha256.Sum224(b); return v[:] }},
	SHA256:   {"sha256", sha256.Size, func(b []byte) []byte { v := sha256simd.Sum256(b); return v[:] }},
	SHA384:   {"sha384", sha512.Size384, func(b []byte) []byte { v := sha512.Sum384(b); return v[:] }},
	SHA512:   {"sha512", sha512.Size, func(b []byte) []byte { v := sha512.Sum512(b); return v[:] }},
	SHA3_224: {"sha3_224", 28, func(b []byte) []byte { v := sha3.Sum224(b); return v[:] }},
	SHA3_256: {"sha3_256", 32, func(b []byte) []byte { v := sha3.Sum256(b); return v[:] }},
	SHA3_384: {"sha3_384", 48, func(b []byte) []byte { v := sha3.Sum384(b); return v[:] }},
	SHA3_512: {"sha3_512", 64, func(b []byte) []byte { v := sha3.Sum512(b); return v[:] }},
	BLAKE2b:  {"blake2b", blake2b.Size, func(b []byte) []byte { v := blake2b.Sum512(b); return v[:] }},
	BLAKE2s:  {"blake2s", blake2s.Size, func(b []byte) []byte { v := blake2s.Sum256(b); return v[:] }},
	SHAKE128: {"shake_128", ShakeLen, sumShake128},
	SHAKE256: {"shake_256", ShakeLen, sumShake256},
}

func sumShake128(b []byte) []byte {
	h := sha3.NewShake128()
	h.Write(b)
	out := make([]byte, ShakeLen)
	h.Read(out)
	return out
}

func sumShake256(b []byte) []byte {
	h := sha3.NewShake256()
	h.Write(b)
	out := make([]byte, ShakeLen)
	h.Read(out)
	return out
}

func (a Algorithm) String() string { return table[a].name }

// Size returns the digest length in bytes.
func (a Algorithm) Size() int { return table[a].size }

// HexLen returns the digest length in hexadecimal characters.
func (a Algorithm) HexLen() int { return table[a].size * 2 }

// Sum computes the raw digest of data.
func (a Algorithm) Sum(data []byte) []byte { return table[a].sum(data) }

// Digest computes the lowercase hex digest of s.
func (a Algorithm) Digest(s string) string {
	return hex.EncodeToString(a.Sum([]byte(s)))
}

// Supported returns every algorithm in declaration order.
func Supported() []Algorithm {
	out := make([]Algorithm, len(table))
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Names returns the canonical names of every supported algorithm.
func Names() []string {
	out := make([]string, len(table))
	for i := range table {
		out[i] = table[i].name
	}
	return out
}

// Parse maps a canonical algorithm name to its Algorithm.
func Parse(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := range table {
		if table[i].name == n {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm: %s", name)
}
