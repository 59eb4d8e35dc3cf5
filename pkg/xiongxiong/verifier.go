package xiongxiong

import "time"

// Verifier decodes credentials and checks their signature.
type Verifier struct {
	signer signer
	clock  func() time.Time
}

// New creates a Verifier for the raw private key. The key is copied and is
// never exposed again.
func New(privateKey []byte, opts ...Option) (*Verifier, error) {
	o := applyOptions(opts)

	s, err := newSigner(privateKey, o.algorithm)
	if err != nil {
		return nil, err
	}

	return &Verifier{signer: s, clock: o.clock}, nil
}

// NewFromString creates a Verifier for a text key encoded as UTF-8.
func NewFromString(privateKey string, opts ...Option) (*Verifier, error) {
	return New([]byte(privateKey), opts...)
}

// Algorithm returns the configured hash algorithm.
func (v *Verifier) Algorithm() Algorithm { return v.signer.algorithm }

// Decode accepts either a bearer token or a (login, password) pair.
// Any other number of arguments returns ErrInvalidArguments. Problems with
// the credential itself never produce an error, only an invalid Token.
func (v *Verifier) Decode(credential ...string) (Token, error) {
	switch len(credential) {
	case 1:
		return v.DecodeBearer(credential[0]), nil
	case 2:
		return v.DecodeBasic(credential[0], credential[1]), nil
	default:
		return failedToken(), ErrInvalidArguments
	}
}

// DecodeBearer decodes a combined credential.
func (v *Verifier) DecodeBearer(token string) Token {
	login, signature, err := splitBearer(token)
	if err != nil {
		return failedToken()
	}
	return v.DecodeBasic(encodeText(login), signature)
}

// DecodeBasic decodes a Basic-auth style pair: the base64 encoded login
// blob and its signature. The signature covers the encoded login text.
func (v *Verifier) DecodeBasic(login, password string) Token {
	if !v.signer.verify([]byte(login), password) {
		return failedToken()
	}

	fields, expiration, err := parseLogin(login)
	if err != nil {
		return failedToken()
	}

	return Token{
		authenticated: true,
		payload:       Payload{fields: fields},
		expiration:    time.Unix(expiration, 0),
		clock:         v.clock,
	}
}
