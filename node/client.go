package node

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
	"github.com/cenkalti/backoff/v4"
	"github.com/ziflex/lecho/v3"
)

// Client is the node capability the payment engine depends on: broadcast a
// raw transaction, allocate a fresh destination address. RPC transport,
// auth and retries stay behind this interface.
type Client interface {
	BroadcastTransaction(ctx context.Context, tx *wire.MsgTx) (txid string, err error)
	NewAddress(ctx context.Context) (string, error)
}

// RPCClient talks to a bitcoind-family full node over JSON-RPC.
type RPCClient struct {
	client  *rpcclient.Client
	account string
}

func NewRPCClient(cfg *Config, logger *lecho.Logger, ctx context.Context) (*RPCClient, error) {
	connCfg := &rpcclient.ConnConfig{
		Host:         cfg.RPCHost,
		User:         cfg.RPCUser,
		Pass:         cfg.RPCPassword,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	client, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, err
	}

	// The node may still be warming up when we start; retry the initial
	// liveness probe with exponential backoff before giving up.
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(cfg.ConnectRetries)), ctx)
	err = backoff.RetryNotify(func() error {
		return client.Ping()
	}, policy, func(err error, d time.Duration) {
		logger.Errorf("Node not reachable, retrying in %s: %v", d, err)
	})
	if err != nil {
		client.Shutdown()
		return nil, err
	}

	return &RPCClient{client: client, account: cfg.AddressAccount}, nil
}

func (c *RPCClient) Close() {
	c.client.Shutdown()
}

// BroadcastTransaction submits tx to the node's mempool and returns its
// txid. The underlying rpcclient call does not take a context, so it runs
// on its own goroutine and the result is abandoned on ctx expiry; the
// caller treats that the same as any other broadcast failure.
func (c *RPCClient) BroadcastTransaction(ctx context.Context, tx *wire.MsgTx) (string, error) {
	type result struct {
		hash *chainhash.Hash
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		hash, err := c.client.SendRawTransaction(tx, false)
		ch <- result{hash: hash, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", r.err
		}
		return r.hash.String(), nil
	}
}

// NewAddress allocates a fresh receive address from the node wallet. Every
// invoice gets its own destination, so addresses are never shared across
// payment records.
func (c *RPCClient) NewAddress(ctx context.Context) (string, error) {
	type result struct {
		addr string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		addr, err := c.client.GetNewAddress(c.account)
		if err != nil {
			ch <- result{err: err}
			return
		}
		ch <- result{addr: addr.EncodeAddress()}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.addr, r.err
	}
}
