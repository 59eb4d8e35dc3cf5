// Package xiongxiong issues and verifies self-contained bearer tokens.
//
// A token carries application data and an expiration time, signed with an
// HMAC over a shared private key. No server-side session store is needed:
// anyone holding the key can verify a token on its own.
//
// # Wire format
//
// The login blob is the colon-joined payload fields followed by the
// expiration as Unix seconds:
//
//	field_1:field_2:...:field_n:expiration
//
// Tokens travel in two shapes:
//
//   - a Basic-auth style pair: base64(login blob) as the login and
//     base64(HMAC(base64(login blob))) as the password;
//   - a single bearer string: base64(login blob ":" password).
//
// Both use the standard padded base64 alphabet. Payload fields must not
// contain ':'.
//
// # Usage
//
//	import "github.com/dmitrymomot/xiongxiong/pkg/xiongxiong"
//
//	issuer, err := xiongxiong.NewIssuerFromString("secret", xiongxiong.WithLifetime(time.Hour))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	creds, err := issuer.Issue("user-42", "admin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	verifier, err := xiongxiong.NewFromString("secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tok := verifier.DecodeBearer(creds.AccessToken)
//	if !tok.Valid() {
//	    // reject
//	}
//	data, _ := tok.Data()
//	fmt.Println(data.Fields()) // [user-42 admin]
//
// # Error Handling
//
// Only caller mistakes are reported as errors: ErrUnsupportedAlgorithm at
// construction and ErrInvalidArguments for a wrong number of arguments to
// Decode. Anything wrong with the credential itself (bad base64, missing
// fields, a non-numeric expiration, a signature mismatch) yields a Token
// whose Valid method reports false. Callers only need to branch on Valid.
//
// # Concurrency
//
// Verifier and Issuer are immutable after construction and safe for
// concurrent use without locking.
//
// # Middleware
//
// Middleware and MiddlewareWithConfig protect HTTP handlers. The decoded
// Token is stored in the request context and can be read with GetToken or
// GetData.
package xiongxiong
