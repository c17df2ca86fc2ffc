package bitcoin

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
)

func TestParseNetwork(t *testing.T) {
	for _, name := range []string{"mainnet", "testnet", "regnet"} {
		network, err := ParseNetwork(name)
		assert.NoError(t, err)
		assert.Equal(t, name, network.String())

		params, err := network.Params()
		assert.NoError(t, err)
		assert.NotNil(t, params)
	}

	_, err := ParseNetwork("simnet")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
	_, err = ParseNetwork("")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
}

func TestDecodeKeyHashAddress(t *testing.T) {
	hash := bytes.Repeat([]byte{0x3c}, HashLen)
	addr, err := btcutil.NewAddressPubKeyHash(hash, &chaincfg.RegressionNetParams)
	assert.NoError(t, err)

	decoded, err := DecodeKeyHashAddress(addr.EncodeAddress(), NetworkRegnet)
	assert.NoError(t, err)
	assert.Equal(t, hash, decoded)
}

func TestDecodeKeyHashAddressWrongNetwork(t *testing.T) {
	hash := bytes.Repeat([]byte{0x3c}, HashLen)
	addr, err := btcutil.NewAddressPubKeyHash(hash, &chaincfg.MainNetParams)
	assert.NoError(t, err)

	_, err = DecodeKeyHashAddress(addr.EncodeAddress(), NetworkRegnet)
	assert.Error(t, err)
}

func TestDecodeKeyHashAddressScriptHash(t *testing.T) {
	hash := bytes.Repeat([]byte{0x3c}, HashLen)
	addr, err := btcutil.NewAddressScriptHashFromHash(hash, &chaincfg.RegressionNetParams)
	assert.NoError(t, err)

	_, err = DecodeKeyHashAddress(addr.EncodeAddress(), NetworkRegnet)
	assert.ErrorIs(t, err, ErrNotKeyHash)
}

func TestDecodeKeyHashAddressGarbage(t *testing.T) {
	_, err := DecodeKeyHashAddress("not an address", NetworkRegnet)
	assert.Error(t, err)

	_, err = DecodeKeyHashAddress("", NetworkRegnet)
	assert.Error(t, err)
}
