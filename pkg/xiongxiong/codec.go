package xiongxiong

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"
)

const delimiter = ":"

// encoding rejects non-zero padding bits. Line breaks are refused in
// decodeText since the decoder would otherwise skip them.
var encoding = base64.StdEncoding.Strict()

func encodeText(s string) string {
	return encoding.EncodeToString([]byte(s))
}

func decodeText(s string) (string, error) {
	if strings.ContainsAny(s, "\r\n") {
		return "", errMalformed
	}
	b, err := encoding.DecodeString(s)
	if err != nil || !utf8.Valid(b) {
		return "", errMalformed
	}
	return string(b), nil
}

// joinLogin builds the login blob plaintext.
func joinLogin(fields []string, expiration int64) string {
	return strings.Join(fields, delimiter) + delimiter + strconv.FormatInt(expiration, 10)
}

// splitBearer decodes a combined credential into the login blob plaintext
// and the claimed signature.
func splitBearer(token string) (login, signature string, err error) {
	plain, err := decodeText(token)
	if err != nil {
		return "", "", err
	}

	i := strings.LastIndex(plain, delimiter)
	if i < 0 {
		return "", "", errMalformed
	}
	return plain[:i], plain[i+1:], nil
}

// parseLogin decodes an encoded login into payload fields and expiration.
// The last field is the expiration; at least one non-empty payload must
// precede it.
func parseLogin(encodedLogin string) (fields []string, expiration int64, err error) {
	plain, err := decodeText(encodedLogin)
	if err != nil {
		return nil, 0, err
	}

	i := strings.LastIndex(plain, delimiter)
	if i <= 0 {
		return nil, 0, errMalformed
	}

	// Digits only: ParseInt would also take a leading sign.
	exp := plain[i+1:]
	if exp == "" || exp[0] < '0' || exp[0] > '9' {
		return nil, 0, errMalformed
	}
	expiration, err = strconv.ParseInt(exp, 10, 64)
	if err != nil {
		return nil, 0, errMalformed
	}

	return strings.Split(plain[:i], delimiter), expiration, nil
}
