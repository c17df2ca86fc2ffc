package models

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Payment is the durable record of a single issued invoice. One row exists
// per invoice id; the id is the sole lookup and transition key. The row is
// created in state pending and mutated at most once by the acceptance
// engine; records are never deleted.
type Payment struct {
	ID           uuid.UUID    `json:"id" bun:"id,pk,type:uuid"`
	IssueTime    time.Time    `json:"issue_time" bun:",notnull"`
	Amount       int64        `json:"amount" validate:"gte=0"`
	Address      string       `json:"address" bun:",notnull"`
	ExpiryTime   bun.NullTime `json:"expiry_time" bun:",nullzero"`
	ReqMemo      string       `json:"req_memo,omitempty" bun:",nullzero"`
	MerchantData []byte       `json:"-" bun:",nullzero"`
	AckMemo      string       `json:"ack_memo,omitempty" bun:",nullzero"`
	Tokenize     bool         `json:"tokenize"`
	TxData       []byte       `json:"-" bun:",nullzero"`
	State        string       `json:"state" bun:"payment_state,notnull,default:'pending'"`
	PaymentTime  bun.NullTime `json:"payment_time" bun:",nullzero"`
	TxID         string       `json:"tx_id,omitempty" bun:"tx_id,nullzero"`
	RefundTo     string       `json:"refund_to,omitempty" bun:",nullzero"`
	CallbackURL  string       `json:"callback_url,omitempty" bun:",nullzero"`
	CreatedAt    time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt    bun.NullTime `json:"updated_at"`
}

func (p *Payment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		p.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

// Expired reports whether the invoice's expiry, if any, has passed at t.
func (p *Payment) Expired(t time.Time) bool {
	if p.ExpiryTime.IsZero() {
		return false
	}
	return p.ExpiryTime.Time.Before(t)
}

var _ bun.BeforeAppendModelHook = (*Payment)(nil)
