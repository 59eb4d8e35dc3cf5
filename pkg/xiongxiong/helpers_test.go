package xiongxiong_test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"time"
)

const testKey = "foo"

var fixedNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return fixedNow }

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func unb64(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// signSHA1 signs an encoded login the way an issuer does, for building
// hand-crafted credentials.
func signSHA1(key, encodedLogin string) string {
	h := hmac.New(sha1.New, []byte(key))
	h.Write([]byte(encodedLogin))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
