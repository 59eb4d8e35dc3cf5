package xiongxiong

import "context"

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var tokenContextKey = &contextKey{name: "xiongxiong_token"}

// SetToken stores a decoded token in the context.
func SetToken(ctx context.Context, tok Token) context.Context {
	return context.WithValue(ctx, tokenContextKey, tok)
}

// GetToken returns the token stored by SetToken.
func GetToken(ctx context.Context) (Token, bool) {
	tok, ok := ctx.Value(tokenContextKey).(Token)
	return tok, ok
}

// GetData returns the payload of a valid token stored in the context.
func GetData(ctx context.Context) (Payload, bool) {
	tok, ok := GetToken(ctx)
	if !ok || !tok.Valid() {
		return Payload{}, false
	}
	return tok.Data()
}
