package xiongxiong

import (
	"crypto/hmac"
	"crypto/subtle"
	"hash"
)

// signer holds the only copy of the private key.
type signer struct {
	key       []byte
	algorithm Algorithm
	newHash   func() hash.Hash
}

func newSigner(key []byte, alg Algorithm) (signer, error) {
	newHash, ok := algorithms[alg]
	if !ok {
		return signer{}, ErrUnsupportedAlgorithm
	}

	k := make([]byte, len(key))
	copy(k, key)

	return signer{key: k, algorithm: alg, newHash: newHash}, nil
}

// sign returns the base64 encoded HMAC of message.
func (s signer) sign(message []byte) string {
	h := hmac.New(s.newHash, s.key)
	h.Write(message)
	return encoding.EncodeToString(h.Sum(nil))
}

// verify compares in constant time. Only the length of claimed can leak.
func (s signer) verify(message []byte, claimed string) bool {
	expected := s.sign(message)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(claimed)) == 1
}
