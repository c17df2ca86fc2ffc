package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/ziflex/lecho/v3"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/bitcoin"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
)

// memoryStore implements PaymentStore with the same per-id atomicity the
// Postgres store provides: transitions check-and-set under one lock.
type memoryStore struct {
	mu       sync.Mutex
	payments map[uuid.UUID]*models.Payment
}

func newMemoryStore() *memoryStore {
	return &memoryStore{payments: make(map[uuid.UUID]*models.Payment)}
}

func (s *memoryStore) CreatePending(ctx context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[payment.ID]; ok {
		return ErrDuplicatePayment
	}
	payment.State = common.PaymentStatePending
	clone := *payment
	s.payments[payment.ID] = &clone
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	clone := *payment
	return &clone, nil
}

func (s *memoryStore) MarkRejected(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return ErrPaymentNotFound
	}
	if payment.State != common.PaymentStatePending {
		return ErrAlreadyTransitioned
	}
	payment.State = common.PaymentStateRejected
	return nil
}

func (s *memoryStore) MarkReceived(ctx context.Context, id uuid.UUID, txid, refundTo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[id]
	if !ok {
		return ErrPaymentNotFound
	}
	if payment.State != common.PaymentStatePending {
		return ErrAlreadyTransitioned
	}
	payment.State = common.PaymentStateReceived
	payment.TxID = txid
	payment.RefundTo = refundTo
	payment.PaymentTime.Time = time.Now()
	return nil
}

func (s *memoryStore) MarkExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired int64
	for _, payment := range s.payments {
		if payment.State == common.PaymentStatePending && payment.Expired(cutoff) {
			payment.State = common.PaymentStateExpired
			expired++
		}
	}
	return expired, nil
}

// fakeNode hands out a fixed key-hash address and counts broadcasts.
type fakeNode struct {
	mu         sync.Mutex
	params     *chaincfg.Params
	hash       []byte
	address    string
	addressErr error
	broadcasts int
	fail       bool
}

func newFakeNode(params *chaincfg.Params) *fakeNode {
	return &fakeNode{params: params, hash: bytes.Repeat([]byte{0x11}, 20)}
}

func (n *fakeNode) BroadcastTransaction(ctx context.Context, tx *wire.MsgTx) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return "", errors.New("connection refused")
	}
	n.broadcasts++
	return tx.TxHash().String(), nil
}

func (n *fakeNode) NewAddress(ctx context.Context) (string, error) {
	if n.addressErr != nil {
		return "", n.addressErr
	}
	if n.address != "" {
		return n.address, nil
	}
	addr, err := btcutil.NewAddressPubKeyHash(n.hash, n.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

func (n *fakeNode) broadcastCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.broadcasts
}

func newTestService(t *testing.T) (*GatewayService, *memoryStore, *fakeNode) {
	t.Helper()
	store := newMemoryStore()
	nodeClient := newFakeNode(&chaincfg.RegressionNetParams)
	svc := &GatewayService{
		Config: &Config{
			SecretKey:        []byte("test-secret"),
			AckMemo:          "Thanks for your custom!",
			PaymentURL:       "http://127.0.0.1:8081/payment/",
			BroadcastTimeout: 5,
		},
		Store:   store,
		Node:    nodeClient,
		Network: bitcoin.NetworkRegnet,
		Logger:  lecho.New(io.Discard),
	}
	return svc, store, nodeClient
}

// paymentTx builds a transaction containing the given outputs plus one
// dummy input so it survives a serialize/deserialize round trip.
func paymentTx(t *testing.T, outputs ...*bip70.Output) *wire.MsgTx {
	t.Helper()
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{}, nil, nil))
	for _, out := range outputs {
		tx.AddTxOut(wire.NewTxOut(int64(out.Amount), out.Script))
	}
	return tx
}

func paymentEnvelope(t *testing.T, payment *bip70.Payment, txs ...*wire.MsgTx) []byte {
	t.Helper()
	for _, tx := range txs {
		var buf bytes.Buffer
		err := tx.Serialize(&buf)
		assert.NoError(t, err)
		payment.Transactions = append(payment.Transactions, buf.Bytes())
	}
	raw, err := proto.Marshal(payment)
	assert.NoError(t, err)
	return raw
}

// issueInvoice issues an invoice through the service and returns its id and
// the outputs a valid payment must contain.
func issueInvoice(t *testing.T, svc *GatewayService, req *bip70.InvoiceRequest) (string, []*bip70.Output) {
	t.Helper()
	response, _, err := svc.GenerateInvoice(context.Background(), req)
	assert.NoError(t, err)

	details := &bip70.PaymentDetails{}
	err = proto.Unmarshal(response.PaymentRequest.SerializedPaymentDetails, details)
	assert.NoError(t, err)
	return response.PaymentId, details.Outputs
}
