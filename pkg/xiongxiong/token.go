package xiongxiong

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// Payload is the application data carried by a token.
// A single field is a scalar; more fields form an ordered sequence.
type Payload struct {
	fields []string
}

// NewPayload builds a payload from fields. The slice is copied.
func NewPayload(fields ...string) Payload {
	return Payload{fields: slices.Clone(fields)}
}

// Len returns the number of fields.
func (p Payload) Len() int { return len(p.fields) }

// IsScalar reports whether the payload holds exactly one field.
func (p Payload) IsScalar() bool { return len(p.fields) == 1 }

// Scalar returns the single field of a scalar payload.
func (p Payload) Scalar() (string, bool) {
	if !p.IsScalar() {
		return "", false
	}
	return p.fields[0], true
}

// Fields returns a copy of the fields in order.
func (p Payload) Fields() []string { return slices.Clone(p.fields) }

// Value returns a string for a scalar payload and a []string otherwise.
func (p Payload) Value() any {
	switch len(p.fields) {
	case 0:
		return nil
	case 1:
		return p.fields[0]
	default:
		return p.Fields()
	}
}

// String returns the fields joined with ':'.
func (p Payload) String() string { return strings.Join(p.fields, delimiter) }

// MarshalJSON renders a scalar as a JSON string and a sequence as an array.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Value())
}

// Token is the result of decoding a credential. It is never mutated.
// Only Valid is meaningful on a token that failed authentication.
type Token struct {
	authenticated bool
	payload       Payload
	expiration    time.Time
	clock         func() time.Time
}

func failedToken() Token { return Token{} }

// Valid reports whether the signature matched and the token has not yet
// expired. It is evaluated against the clock on every call.
func (t Token) Valid() bool {
	if !t.authenticated {
		return false
	}
	return !t.now().After(t.expiration)
}

// ExpiresIn returns the time left before expiry, measured with the same
// clock as Valid. It is zero for failed or expired tokens.
func (t Token) ExpiresIn() time.Duration {
	if !t.authenticated {
		return 0
	}
	return max(t.expiration.Sub(t.now()), 0)
}

func (t Token) now() time.Time {
	if t.clock != nil {
		return t.clock()
	}
	return time.Now()
}

// Authenticated reports whether the signature matched, ignoring expiry.
func (t Token) Authenticated() bool { return t.authenticated }

// Data returns the payload. ok is false if the token failed authentication.
func (t Token) Data() (Payload, bool) {
	if !t.authenticated {
		return Payload{}, false
	}
	return t.payload, true
}

// Expiration returns the expiration time. ok is false if the token failed
// authentication.
func (t Token) Expiration() (time.Time, bool) {
	if !t.authenticated {
		return time.Time{}, false
	}
	return t.expiration, true
}
