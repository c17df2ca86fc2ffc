package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/bitcoin"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
	"github.com/cashweb/paygate/lib/tokens"
)

// AcceptResult carries everything the transport needs to answer an accepted
// payment: the acknowledgement, and, when the invoice was tokenized, the
// redirect target and bearer token.
type AcceptResult struct {
	Ack         *bip70.PaymentACK
	Payment     *models.Payment
	Token       string
	RedirectURL string
}

// AcceptPayment runs the acceptance pipeline for one inbound submission:
// decode, match against the pending record, persist the transition,
// broadcast, acknowledge. An output mismatch persists a rejection and is
// final; a broadcast failure leaves the record pending so the submission
// can be retried. Once broadcasting has been attempted the pipeline runs to
// completion even if the caller disconnects, since the funds are already in
// flight.
func (svc *GatewayService) AcceptPayment(ctx context.Context, paymentID string, rawPayment []byte) (*AcceptResult, error) {
	payment := &bip70.Payment{}
	if err := proto.Unmarshal(rawPayment, payment); err != nil {
		return nil, ErrPaymentDecode
	}
	if len(payment.Transactions) == 0 {
		return nil, ErrNoTransaction
	}
	// Only the first transaction is honored; multi-transaction payments
	// are not supported.
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(payment.Transactions[0])); err != nil {
		return nil, ErrTxMalformed
	}

	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, ErrPaymentNotFound
	}
	record, err := svc.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.State != common.PaymentStatePending {
		return nil, ErrPaymentNotPending
	}

	// From here on transitions and the broadcast must not be abandoned
	// because the caller went away.
	detached := context.WithoutCancel(ctx)

	if !svc.matchesRecord(&tx, record) {
		if err := svc.Store.MarkRejected(detached, id); err != nil {
			if errors.Is(err, ErrAlreadyTransitioned) {
				return nil, ErrPaymentNotPending
			}
			return nil, err
		}
		svc.Logger.Infof("Rejected payment %s: outputs do not satisfy invoice", id)
		svc.publishState(record, common.PaymentStateRejected)
		return nil, ErrInvalidOutputs
	}

	broadcastCtx, cancel := context.WithTimeout(detached, time.Duration(svc.Config.BroadcastTimeout)*time.Second)
	txid, err := svc.Node.BroadcastTransaction(broadcastCtx, &tx)
	cancel()
	if err != nil {
		// The record stays pending; the same or another submission
		// may retry.
		svc.Logger.Errorf("Broadcast failed for payment %s: %v", id, err)
		return nil, ErrBroadcastFailed
	}

	refundTo := svc.refundAddress(payment)
	if err := svc.Store.MarkReceived(detached, id, txid, refundTo); err != nil {
		if errors.Is(err, ErrAlreadyTransitioned) {
			// Lost the race against a concurrent submission. The
			// transaction is already broadcast; do not broadcast
			// again or double-acknowledge.
			return nil, ErrPaymentNotPending
		}
		return nil, err
	}
	svc.Logger.Infof("Received payment %s: tx %s", id, txid)

	ackMemo := record.AckMemo
	if ackMemo == "" {
		ackMemo = svc.Config.AckMemo
	}
	result := &AcceptResult{
		Ack:     &bip70.PaymentACK{Payment: payment, Memo: ackMemo},
		Payment: record,
	}
	if record.Tokenize {
		result.Token = tokens.Derive(svc.Config.SecretKey, record.MerchantData)
		result.RedirectURL = redirectURL(record.MerchantData, result.Token)
		if result.RedirectURL == "" {
			svc.Logger.Warnf("Payment %s: merchant data is not a redirect URL, token issued without redirect", id)
		}
	}

	record.State = common.PaymentStateReceived
	record.TxID = txid
	svc.publishAck(record, result.Ack)
	return result, nil
}

// matchesRecord checks the transaction outputs against everything the
// invoice demands: the exact amount to the record's destination hash and,
// when the invoice embeds data, a matching data-carrier output.
func (svc *GatewayService) matchesRecord(tx *wire.MsgTx, record *models.Payment) bool {
	pkHash, err := bitcoin.DecodeKeyHashAddress(record.Address, svc.Network)
	if err != nil {
		// A stored address that no longer decodes is a configuration
		// fault; never accept against it.
		svc.Logger.Errorf("Stored address %q does not decode: %v", record.Address, err)
		return false
	}
	if !bitcoin.CheckOutputs(tx, record.Amount, pkHash) {
		return false
	}
	if record.TxData != nil {
		return bitcoin.CheckDataOutputs(tx, bitcoin.DataPayload(pkHash, record.TxData))
	}
	return true
}

// refundAddress renders the first standard refund output as an address, or
// empty when the payer supplied none. Refunds are recorded, never issued.
func (svc *GatewayService) refundAddress(payment *bip70.Payment) string {
	params, err := svc.Network.Params()
	if err != nil {
		return ""
	}
	for _, out := range payment.RefundTo {
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(out.Script, params)
		if err != nil || len(addrs) == 0 {
			continue
		}
		return addrs[0].EncodeAddress()
	}
	return ""
}

// redirectURL appends the bearer token to the merchant-supplied redirect
// target. Returns empty when the merchant data is not a parseable URL; the
// acceptance is already committed at that point, so the token is still
// handed out through the Authorization header.
func redirectURL(merchantData []byte, token string) string {
	if len(merchantData) == 0 {
		return ""
	}
	u, err := url.Parse(string(merchantData))
	if err != nil || u.Scheme == "" {
		return ""
	}
	q := u.Query()
	q.Set("code", token)
	u.RawQuery = q.Encode()
	return u.String()
}
