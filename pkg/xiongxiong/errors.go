package xiongxiong

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("xiongxiong: unsupported hash algorithm")
	ErrInvalidArguments     = errors.New("xiongxiong: invalid arguments")
	ErrInvalidPayload       = errors.New("xiongxiong: payload must be one or more strings without ':'")
	ErrInvalidLifetime      = errors.New("xiongxiong: lifetime must be at least one second")
	ErrMissingCredentials   = errors.New("xiongxiong: missing credentials")
	ErrInvalidExpiration    = errors.New("xiongxiong: expiration must not precede the Unix epoch")
)

// errMalformed marks untrusted input that could not be split into fields.
// It never leaves the package.
var errMalformed = errors.New("xiongxiong: malformed credential")
