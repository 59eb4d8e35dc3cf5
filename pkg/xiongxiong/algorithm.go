package xiongxiong

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a hash function used for the token HMAC.
// Names follow the OpenSSL digest names understood by other issuers.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_224 Algorithm = "sha512-224"
	SHA512_256 Algorithm = "sha512-256"
	SHA3_224   Algorithm = "sha3-224"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_384   Algorithm = "sha3-384"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b512 Algorithm = "blake2b512"
	BLAKE2s256 Algorithm = "blake2s256"
	RIPEMD160  Algorithm = "ripemd160"

	// DefaultAlgorithm is used when no algorithm option is given.
	DefaultAlgorithm = SHA1
)

var algorithmOrder = []Algorithm{
	MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256,
	SHA3_224, SHA3_256, SHA3_384, SHA3_512, BLAKE2b512, BLAKE2s256, RIPEMD160,
}

var algorithms = map[Algorithm]func() hash.Hash{
	MD5:        md5.New,
	SHA1:       sha1.New,
	SHA224:     sha256.New224,
	SHA256:     sha256.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA512_224: sha512.New512_224,
	SHA512_256: sha512.New512_256,
	SHA3_224:   sha3.New224,
	SHA3_256:   sha3.New256,
	SHA3_384:   sha3.New384,
	SHA3_512:   sha3.New512,
	BLAKE2b512: unkeyed(blake2b.New512),
	BLAKE2s256: unkeyed(blake2s.New256),
	RIPEMD160:  ripemd160.New,
}

// unkeyed adapts a BLAKE2 constructor for use under HMAC.
// A nil key never fails.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, _ := fn(nil)
		return h
	}
}

// ParseAlgorithm resolves a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := algorithms[alg]; !ok {
		return "", ErrUnsupportedAlgorithm
	}
	return alg, nil
}

// SupportedAlgorithms returns every supported algorithm in a stable order.
func SupportedAlgorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmOrder))
	copy(out, algorithmOrder)
	return out
}

// Supported reports whether a is in the supported set.
func (a Algorithm) Supported() bool {
	_, ok := algorithms[a]
	return ok
}

func (a Algorithm) String() string { return string(a) }
