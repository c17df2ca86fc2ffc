package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDeterministic(t *testing.T) {
	secret := []byte("secret")
	data := []byte("https://merchant.example/order/1")

	token := Derive(secret, data)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, Derive(secret, data))
	assert.NotEqual(t, token, Derive(secret, []byte("https://merchant.example/order/2")))
	assert.NotEqual(t, token, Derive([]byte("other"), data))
}

func TestDeriveURLSafe(t *testing.T) {
	// tokens go straight into a query parameter, no escaping allowed
	for i := 0; i < 64; i++ {
		token := Derive([]byte{byte(i)}, []byte(strings.Repeat("x", i)))
		assert.NotContains(t, token, "+")
		assert.NotContains(t, token, "/")
		assert.NotContains(t, token, "=")
	}
}

func TestVerify(t *testing.T) {
	secret := []byte("secret")
	data := []byte("order-77")
	token := Derive(secret, data)

	assert.True(t, Verify(secret, data, token))
	assert.False(t, Verify([]byte("wrong"), data, token))
	assert.False(t, Verify(secret, []byte("order-78"), token))
	assert.False(t, Verify(secret, data, token+"x"))
	assert.False(t, Verify(secret, data, "!!not-base64!!"))
	assert.False(t, Verify(secret, data, ""))
}

func TestDeriveEmptyMerchantData(t *testing.T) {
	token := Derive([]byte("secret"), nil)
	assert.True(t, Verify([]byte("secret"), nil, token))
	assert.True(t, Verify([]byte("secret"), []byte{}, token))
}
