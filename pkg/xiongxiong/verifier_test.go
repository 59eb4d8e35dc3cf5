package xiongxiong_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xiongxiong/pkg/xiongxiong"
)

func newPair(t *testing.T, opts ...xiongxiong.Option) (*xiongxiong.Issuer, *xiongxiong.Verifier) {
	t.Helper()
	issuer, err := xiongxiong.NewIssuerFromString(testKey, opts...)
	require.NoError(t, err)
	verifier, err := xiongxiong.NewFromString(testKey, opts...)
	require.NoError(t, err)
	return issuer, verifier
}

func TestDecode_StringSeed(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	issued := time.Now()
	creds, err := issuer.Issue("foo bar")
	require.NoError(t, err)

	t.Run("bearer", func(t *testing.T) {
		t.Parallel()
		tok, err := verifier.Decode(creds.AccessToken)
		require.NoError(t, err)
		assert.True(t, tok.Valid())

		data, ok := tok.Data()
		require.True(t, ok)
		s, ok := data.Scalar()
		require.True(t, ok)
		assert.Equal(t, "foo bar", s)

		exp, ok := tok.Expiration()
		require.True(t, ok)
		assert.WithinDuration(t, issued.Add(time.Hour), exp, time.Second)
	})

	t.Run("basic pair", func(t *testing.T) {
		t.Parallel()
		tok, err := verifier.Decode(creds.BasicLogin, creds.BasicPassword)
		require.NoError(t, err)
		assert.True(t, tok.Valid())

		data, ok := tok.Data()
		require.True(t, ok)
		assert.Equal(t, "foo bar", data.Value())
	})
}

func TestDecode_ArraySeed(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue("foo", "bar")
	require.NoError(t, err)

	for name, tok := range map[string]xiongxiong.Token{
		"bearer":     verifier.DecodeBearer(creds.AccessToken),
		"basic pair": verifier.DecodeBasic(creds.BasicLogin, creds.BasicPassword),
	} {
		assert.True(t, tok.Valid(), name)
		data, ok := tok.Data()
		require.True(t, ok, name)
		assert.False(t, data.IsScalar(), name)
		assert.Equal(t, []string{"foo", "bar"}, data.Fields(), name)
		assert.Equal(t, []string{"foo", "bar"}, data.Value(), name)
	}
}

func TestDecode_SingleElementSequenceIsScalar(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue([]string{"foo"}...)
	require.NoError(t, err)

	data, ok := verifier.DecodeBearer(creds.AccessToken).Data()
	require.True(t, ok)
	assert.True(t, data.IsScalar())
	assert.Equal(t, "foo", data.Value())
}

func TestDecode_RoundTripPreservesOrderAndEmptyFields(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	fields := []string{"c", "", "a", "a", "ünïcødé", "b"}
	creds, err := issuer.Issue(fields...)
	require.NoError(t, err)

	data, ok := verifier.DecodeBearer(creds.AccessToken).Data()
	require.True(t, ok)
	assert.Equal(t, fields, data.Fields())
}

func TestDecode_Arity(t *testing.T) {
	t.Parallel()
	_, verifier := newPair(t)

	_, err := verifier.Decode()
	assert.ErrorIs(t, err, xiongxiong.ErrInvalidArguments)

	_, err = verifier.Decode("a", "b", "c")
	assert.ErrorIs(t, err, xiongxiong.ErrInvalidArguments)

	tok, err := verifier.Decode("garbage")
	require.NoError(t, err)
	assert.False(t, tok.Valid())

	tok, err = verifier.Decode("garbage", "more garbage")
	require.NoError(t, err)
	assert.False(t, tok.Valid())
}

func TestDecode_ExpiryBoundary(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t, xiongxiong.WithClock(fixedClock))

	tests := []struct {
		name       string
		expiration time.Time
		wantValid  bool
	}{
		{name: "expired one second ago", expiration: fixedNow.Add(-time.Second), wantValid: false},
		{name: "expires now", expiration: fixedNow, wantValid: true},
		{name: "expires in an hour", expiration: fixedNow.Add(time.Hour), wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			creds, err := issuer.IssueUntil(tt.expiration, "foo")
			require.NoError(t, err)

			tok := verifier.DecodeBearer(creds.AccessToken)
			assert.Equal(t, tt.wantValid, tok.Valid())
			assert.True(t, tok.Authenticated())

			exp, ok := tok.Expiration()
			require.True(t, ok)
			assert.Equal(t, tt.expiration.Unix(), exp.Unix())
		})
	}
}

func TestToken_ValidityFollowsClock(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := fixedNow
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	issuer, verifier := newPair(t, xiongxiong.WithClock(clock), xiongxiong.WithLifetime(5*time.Second))
	creds, err := issuer.Issue("foo")
	require.NoError(t, err)

	tok := verifier.DecodeBearer(creds.AccessToken)
	assert.True(t, tok.Valid())
	assert.Equal(t, 5*time.Second, tok.ExpiresIn())

	mu.Lock()
	now = fixedNow.Add(2 * time.Second)
	mu.Unlock()
	assert.Equal(t, 3*time.Second, tok.ExpiresIn())

	mu.Lock()
	now = fixedNow.Add(6 * time.Second)
	mu.Unlock()

	assert.False(t, tok.Valid())
	assert.Zero(t, tok.ExpiresIn())
	assert.True(t, tok.Authenticated())
	_, ok := tok.Data()
	assert.True(t, ok)
}

func TestDecode_TamperedSignature(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue("foo", "bar")
	require.NoError(t, err)

	plain := unb64(creds.AccessToken)
	sigStart := strings.LastIndex(plain, ":") + 1
	require.Positive(t, sigStart)

	for i := sigStart; i < len(plain); i++ {
		flipped := []byte(plain)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}

		tok := verifier.DecodeBearer(b64(string(flipped)))
		assert.False(t, tok.Valid(), "flipped signature byte %d", i-sigStart)
		assert.False(t, tok.Authenticated())
	}
}

func TestDecode_TamperedLogin(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue("user", "reader")
	require.NoError(t, err)

	forged := b64(strings.Replace(unb64(creds.BasicLogin), "reader", "admin", 1))
	assert.False(t, verifier.DecodeBasic(forged, creds.BasicPassword).Valid())

	forgedBearer := b64(unb64(forged) + ":" + creds.BasicPassword)
	assert.False(t, verifier.DecodeBearer(forgedBearer).Valid())
}

func TestDecode_WrongKey(t *testing.T) {
	t.Parallel()
	issuer, _ := newPair(t)

	creds, err := issuer.Issue("foo")
	require.NoError(t, err)

	other, err := xiongxiong.NewFromString("not-foo")
	require.NoError(t, err)
	assert.False(t, other.DecodeBearer(creds.AccessToken).Valid())
}

func TestDecodeBasic_MalformedLogin(t *testing.T) {
	t.Parallel()
	_, verifier := newPair(t)

	// Every login below carries a correct signature, so only parsing can fail.
	tests := []struct {
		name  string
		login string
	}{
		{name: "non numeric expiration", login: b64("foo:tomorrow")},
		{name: "fractional expiration", login: b64("foo:1.5")},
		{name: "empty expiration", login: b64("foo:")},
		{name: "no payload", login: b64(":9999999999")},
		{name: "no delimiter", login: b64("9999999999")},
		{name: "empty login", login: ""},
		{name: "not base64", login: "***"},
		{name: "invalid utf8", login: b64("\xff\xfe:9999999999")},
		{name: "plus signed expiration", login: b64("foo:+9999999999")},
		{name: "negative expiration", login: b64("foo:-1")},
		{name: "line break in login", login: b64("foo:9999999999")[:4] + "\n" + b64("foo:9999999999")[4:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tok := verifier.DecodeBasic(tt.login, signSHA1(testKey, tt.login))
			assert.False(t, tok.Valid())
			assert.False(t, tok.Authenticated())

			_, ok := tok.Data()
			assert.False(t, ok)
			_, ok = tok.Expiration()
			assert.False(t, ok)
		})
	}

	t.Run("well formed control", func(t *testing.T) {
		t.Parallel()
		login := b64("foo:9999999999")
		tok := verifier.DecodeBasic(login, signSHA1(testKey, login))
		assert.True(t, tok.Valid())
	})
}

func TestDecodeBearer_Malformed(t *testing.T) {
	t.Parallel()
	_, verifier := newPair(t)

	for _, token := range []string{
		"",
		"not base64!",
		b64("no-delimiter"),
		b64(":"),
		b64("foo:9999999999"),
		b64("foo:9999999999:"),
		"Zm9v",
	} {
		tok, err := verifier.Decode(token)
		require.NoError(t, err)
		assert.False(t, tok.Valid(), "token %q", token)
	}
}

func TestDecodeBearer_RejectsLineBreaks(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue("foo", "bar")
	require.NoError(t, err)
	token := creds.AccessToken
	require.True(t, verifier.DecodeBearer(token).Valid())

	for name, wrapped := range map[string]string{
		"lf":       token[:4] + "\n" + token[4:],
		"crlf":     token[:8] + "\r\n" + token[8:],
		"trailing": token + "\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, verifier.DecodeBearer(wrapped).Valid())
			assert.False(t, verifier.DecodeBasic(creds.BasicLogin+"\n", creds.BasicPassword).Valid())
		})
	}
}

func TestNew_KeyIsCopied(t *testing.T) {
	t.Parallel()

	key := []byte(testKey)
	verifier, err := xiongxiong.New(key)
	require.NoError(t, err)
	key[0] = 'x'

	issuer, err := xiongxiong.NewIssuerFromString(testKey)
	require.NoError(t, err)
	creds, err := issuer.Issue("foo")
	require.NoError(t, err)

	assert.True(t, verifier.DecodeBearer(creds.AccessToken).Valid())
}

func TestVerifier_ConcurrentDecode(t *testing.T) {
	t.Parallel()
	issuer, verifier := newPair(t)

	creds, err := issuer.Issue("foo", "bar")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]bool, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = verifier.DecodeBearer(creds.AccessToken).Valid()
			} else {
				results[i] = verifier.DecodeBasic(creds.BasicLogin, creds.BasicPassword).Valid()
			}
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "goroutine %d", i)
	}
}

func TestToken_ZeroValue(t *testing.T) {
	t.Parallel()

	var tok xiongxiong.Token
	assert.False(t, tok.Valid())
	assert.False(t, tok.Authenticated())
	assert.Zero(t, tok.ExpiresIn())
	_, ok := tok.Data()
	assert.False(t, ok)
}
