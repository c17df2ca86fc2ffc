package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/lib/tokens"
)

func TestAcceptPaymentHappyPath(t *testing.T) {
	svc, store, node := newTestService(t)
	merchantData := []byte("https://merchant.example/landing")
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{
		Amount:       50000,
		AckMemo:      "paid in full",
		MerchantData: merchantData,
		Tokenize:     true,
	})

	envelope := paymentEnvelope(t, &bip70.Payment{MerchantData: merchantData}, paymentTx(t, outputs...))
	result, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.NoError(t, err)
	assert.Equal(t, "paid in full", result.Ack.Memo)
	assert.NotNil(t, result.Ack.Payment)
	assert.Equal(t, 1, node.broadcastCount())

	// the token re-verifies without any lookup
	assert.NotEmpty(t, result.Token)
	assert.True(t, tokens.Verify(svc.Config.SecretKey, merchantData, result.Token))
	assert.Contains(t, result.RedirectURL, "https://merchant.example/landing?code=")
	assert.Contains(t, result.RedirectURL, result.Token)

	stored, err := store.Get(context.Background(), uuid.MustParse(id))
	assert.NoError(t, err)
	assert.Equal(t, common.PaymentStateReceived, stored.State)
	assert.NotEmpty(t, stored.TxID)
}

func TestAcceptPaymentWithoutTokenize(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 1000})

	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs...))
	result, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.NoError(t, err)
	assert.Empty(t, result.Token)
	assert.Empty(t, result.RedirectURL)
	// no per-invoice memo was set, the configured default applies
	assert.Equal(t, svc.Config.AckMemo, result.Ack.Memo)
}

func TestAcceptPaymentOrderIndependence(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 50000})

	decoy := &bip70.Output{Amount: 1, Script: []byte{0x51}} // OP_TRUE, unrelated
	tx := paymentTx(t, decoy, outputs[0], outputs[1])
	envelope := paymentEnvelope(t, &bip70.Payment{}, tx)
	_, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.NoError(t, err)
}

func TestAcceptPaymentInvalidOutputsPersistsRejection(t *testing.T) {
	svc, store, node := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 50000})

	// pay the right script the wrong amount
	bad := &bip70.Output{Amount: outputs[0].Amount - 1, Script: outputs[0].Script}
	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, bad))
	_, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.ErrorIs(t, err, ErrInvalidOutputs)
	assert.Equal(t, 0, node.broadcastCount())

	stored, err := store.Get(context.Background(), uuid.MustParse(id))
	assert.NoError(t, err)
	assert.Equal(t, common.PaymentStateRejected, stored.State)

	// a valid resubmission is refused without re-validating outputs
	good := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs...))
	_, err = svc.AcceptPayment(context.Background(), id, good)
	assert.ErrorIs(t, err, ErrPaymentNotPending)
	assert.Equal(t, 0, node.broadcastCount())
}

func TestAcceptPaymentEmbeddedDataRequired(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{
		Amount: 700,
		TxData: []byte("order-4711"),
	})

	// only the value output, no data carrier: must be rejected
	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs[0]))
	_, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.ErrorIs(t, err, ErrInvalidOutputs)

	// both outputs satisfy the invoice
	id2, outputs2 := issueInvoice(t, svc, &bip70.InvoiceRequest{
		Amount: 700,
		TxData: []byte("order-4711"),
	})
	envelope = paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs2...))
	_, err = svc.AcceptPayment(context.Background(), id2, envelope)
	assert.NoError(t, err)
}

func TestAcceptPaymentBroadcastFailureIsRetriable(t *testing.T) {
	svc, store, node := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 123})
	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs...))

	node.fail = true
	_, err := svc.AcceptPayment(context.Background(), id, envelope)
	assert.ErrorIs(t, err, ErrBroadcastFailed)

	stored, err := store.Get(context.Background(), uuid.MustParse(id))
	assert.NoError(t, err)
	assert.Equal(t, common.PaymentStatePending, stored.State)

	// the node came back, the same submission goes through
	node.fail = false
	_, err = svc.AcceptPayment(context.Background(), id, envelope)
	assert.NoError(t, err)
}

func TestAcceptPaymentConcurrentSubmissions(t *testing.T) {
	svc, store, _ := newTestService(t)
	id, outputs := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 999})
	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, outputs...))

	const submissions = 8
	var wg sync.WaitGroup
	errs := make([]error, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AcceptPayment(context.Background(), id, envelope)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, ErrPaymentNotPending)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, submissions-1, lost)

	stored, err := store.Get(context.Background(), uuid.MustParse(id))
	assert.NoError(t, err)
	assert.Equal(t, common.PaymentStateReceived, stored.State)
}

func TestAcceptPaymentUnknownID(t *testing.T) {
	svc, _, _ := newTestService(t)
	envelope := paymentEnvelope(t, &bip70.Payment{}, paymentTx(t, &bip70.Output{Amount: 1, Script: []byte{0x51}}))

	_, err := svc.AcceptPayment(context.Background(), uuid.NewString(), envelope)
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, err = svc.AcceptPayment(context.Background(), "not-a-uuid", envelope)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestAcceptPaymentMalformedEnvelope(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, _ := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 1})

	_, err := svc.AcceptPayment(context.Background(), id, []byte{0x05})
	assert.ErrorIs(t, err, ErrPaymentDecode)
}

func TestAcceptPaymentNoTransactions(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, _ := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 1})

	raw, err := proto.Marshal(&bip70.Payment{Memo: "empty"})
	assert.NoError(t, err)
	_, err = svc.AcceptPayment(context.Background(), id, raw)
	assert.ErrorIs(t, err, ErrNoTransaction)
}

func TestAcceptPaymentMalformedTransaction(t *testing.T) {
	svc, _, _ := newTestService(t)
	id, _ := issueInvoice(t, svc, &bip70.InvoiceRequest{Amount: 1})

	raw, err := proto.Marshal(&bip70.Payment{Transactions: [][]byte{{0xde, 0xad}}})
	assert.NoError(t, err)
	_, err = svc.AcceptPayment(context.Background(), id, raw)
	assert.ErrorIs(t, err, ErrTxMalformed)
}

func TestRedirectURLInvalidMerchantData(t *testing.T) {
	assert.Equal(t, "", redirectURL(nil, "token"))
	assert.Equal(t, "", redirectURL([]byte("not a url"), "token"))

	u := redirectURL([]byte("https://merchant.example/r?keep=1"), "tok")
	assert.True(t, strings.HasPrefix(u, "https://merchant.example/r?"))
	assert.Contains(t, u, "code=tok")
	assert.Contains(t, u, "keep=1")
}
