package bitcoin

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Network identifies which chain the gateway issues invoices for. It is
// injected from configuration and never taken from a request.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkRegnet  Network = "regnet"
)

var (
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrMismatchedNetwork = errors.New("address mismatched with configured network")
	ErrNotKeyHash        = errors.New("address is not a key hash")
)

func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkMainnet, NetworkTestnet, NetworkRegnet:
		return Network(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
}

func (n Network) String() string {
	return string(n)
}

// Params returns the chain parameters for the network.
func (n Network) Params() (*chaincfg.Params, error) {
	switch n {
	case NetworkMainnet:
		return &chaincfg.MainNetParams, nil
	case NetworkTestnet:
		return &chaincfg.TestNet3Params, nil
	case NetworkRegnet:
		return &chaincfg.RegressionNetParams, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, n)
}

// DecodeKeyHashAddress decodes addr and returns its raw 20-byte public key
// hash. The address must belong to the given network and must be a plain
// pay-to-public-key-hash address; script hash and other kinds are refused
// since the gateway only ever pays to key-hash addresses it allocated
// itself.
func DecodeKeyHashAddress(addr string, network Network) ([]byte, error) {
	params, err := network.Params()
	if err != nil {
		return nil, err
	}
	decoded, err := btcutil.DecodeAddress(addr, params)
	if err != nil {
		return nil, err
	}
	if !decoded.IsForNet(params) {
		return nil, ErrMismatchedNetwork
	}
	pkh, ok := decoded.(*btcutil.AddressPubKeyHash)
	if !ok {
		return nil, ErrNotKeyHash
	}
	return pkh.Hash160()[:], nil
}
