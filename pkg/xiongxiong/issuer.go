package xiongxiong

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Credentials is an issued token in both wire shapes.
type Credentials struct {
	Expiration    int64  `json:"expiration" yaml:"expiration"` // Unix seconds
	AccessToken   string `json:"accessToken" yaml:"accessToken"`
	BasicLogin    string `json:"basicLogin" yaml:"basicLogin"`
	BasicPassword string `json:"basicPassword" yaml:"basicPassword"`
}

// Issuer signs application data into tokens.
type Issuer struct {
	signer   signer
	lifetime time.Duration
	clock    func() time.Time
}

// NewIssuer creates an Issuer for the raw private key.
func NewIssuer(privateKey []byte, opts ...Option) (*Issuer, error) {
	o := applyOptions(opts)
	if o.lifetime < time.Second {
		return nil, ErrInvalidLifetime
	}

	s, err := newSigner(privateKey, o.algorithm)
	if err != nil {
		return nil, err
	}

	return &Issuer{signer: s, lifetime: o.lifetime, clock: o.clock}, nil
}

// NewIssuerFromString creates an Issuer for a text key encoded as UTF-8.
func NewIssuerFromString(privateKey string, opts ...Option) (*Issuer, error) {
	return NewIssuer([]byte(privateKey), opts...)
}

// Algorithm returns the configured hash algorithm.
func (i *Issuer) Algorithm() Algorithm { return i.signer.algorithm }

// Lifetime returns the configured token lifetime.
func (i *Issuer) Lifetime() time.Duration { return i.lifetime }

// Issue signs data with an expiration of now plus the lifetime.
func (i *Issuer) Issue(data ...string) (Credentials, error) {
	return i.IssueUntil(i.clock().Add(i.lifetime), data...)
}

// IssueUntil signs data with an explicit expiration, truncated to seconds.
// Expirations before the Unix epoch are rejected.
func (i *Issuer) IssueUntil(expiration time.Time, data ...string) (Credentials, error) {
	if err := validatePayload(data); err != nil {
		return Credentials{}, err
	}

	exp := expiration.Unix()
	if exp < 0 {
		return Credentials{}, ErrInvalidExpiration
	}
	blob := joinLogin(data, exp)
	login := encodeText(blob)
	password := i.signer.sign([]byte(login))

	return Credentials{
		Expiration:    exp,
		AccessToken:   encodeText(blob + delimiter + password),
		BasicLogin:    login,
		BasicPassword: password,
	}, nil
}

func validatePayload(data []string) error {
	if len(data) == 0 || (len(data) == 1 && data[0] == "") {
		return ErrInvalidPayload
	}
	for _, field := range data {
		if strings.Contains(field, delimiter) || !utf8.ValidString(field) {
			return ErrInvalidPayload
		}
	}
	return nil
}
