package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/cashweb/paygate/bip70"
	"github.com/cashweb/paygate/bitcoin"
	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
)

// GenerateInvoice allocates a fresh destination address, builds the
// payment details a valid payment must satisfy, persists the pending record
// and returns the serialized invoice response. The network comes from
// configuration, never from the request.
func (svc *GatewayService) GenerateInvoice(ctx context.Context, req *bip70.InvoiceRequest) (*bip70.InvoiceResponse, *models.Payment, error) {
	if req.Amount > math.MaxInt64 {
		return nil, nil, fmt.Errorf("%w: amount %d not representable", ErrInvalidRequest, req.Amount)
	}
	amount := int64(req.Amount)

	addr, err := svc.Node.NewAddress(ctx)
	if err != nil {
		svc.Logger.Errorf("Failed to allocate address: %v", err)
		return nil, nil, ErrAddressAllocation
	}
	// The node might be configured for a different chain than we are;
	// paying an invoice across networks must be impossible.
	pkHash, err := bitcoin.DecodeKeyHashAddress(addr, svc.Network)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	outputs, err := bitcoin.GenerateOutputs(pkHash, amount, req.TxData)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	id := uuid.New()
	issueTime := time.Now()
	if req.Time != 0 {
		issueTime = time.Unix(int64(req.Time), 0)
	}
	var expiryTime time.Time
	var expiresUnix uint64
	if req.Expires != 0 {
		expiryTime = issueTime.Add(time.Duration(req.Expires) * time.Second)
		expiresUnix = uint64(expiryTime.Unix())
	}

	details := &bip70.PaymentDetails{
		Network:      svc.Network.String(),
		Outputs:      outputs,
		Time:         uint64(issueTime.Unix()),
		Expires:      expiresUnix,
		Memo:         req.ReqMemo,
		PaymentUrl:   svc.Config.PaymentURL + id.String(),
		MerchantData: req.MerchantData,
	}
	serializedDetails, err := proto.Marshal(details)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	// Empty wire values mean not-provided; nullzero tags keep them NULL
	// in storage rather than empty strings.
	payment := &models.Payment{
		ID:           id,
		IssueTime:    issueTime,
		Amount:       amount,
		Address:      addr,
		ExpiryTime:   bun.NullTime{Time: expiryTime},
		ReqMemo:      req.ReqMemo,
		MerchantData: req.MerchantData,
		AckMemo:      req.AckMemo,
		Tokenize:     req.Tokenize,
		TxData:       req.TxData,
		State:        common.PaymentStatePending,
		CallbackURL:  req.CallbackUrl,
	}
	if err := svc.Store.CreatePending(ctx, payment); err != nil {
		svc.Logger.Errorf("Failed to persist payment %s: %v", id, err)
		return nil, nil, err
	}
	svc.Logger.Infof("Issued invoice %s: amount %d to %s", id, amount, addr)

	response := &bip70.InvoiceResponse{
		PaymentId: id.String(),
		PaymentRequest: &bip70.PaymentRequest{
			PaymentDetailsVersion:    common.PaymentDetailsVersion,
			PkiType:                  common.PkiTypeNone,
			SerializedPaymentDetails: serializedDetails,
		},
	}
	return response, payment, nil
}
