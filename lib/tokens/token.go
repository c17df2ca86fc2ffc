package tokens

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Derive computes the redirect token for a payment: a keyed digest over the
// invoice's merchant data. The same secret and merchant data always yield
// the same token, so whoever receives the redirect can re-verify it without
// a lookup. The result is URL safe.
func Derive(secret, merchantData []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(merchantData)
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify reports whether token was derived from merchantData under secret.
func Verify(secret, merchantData []byte, token string) bool {
	sum, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(merchantData)
	return hmac.Equal(sum, mac.Sum(nil))
}
