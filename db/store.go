package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/cashweb/paygate/common"
	"github.com/cashweb/paygate/db/models"
	"github.com/cashweb/paygate/lib/service"
)

// PaymentStore implements service.PaymentStore on Postgres. State
// transitions are conditional UPDATEs guarded on the current state, so the
// database decides which of two racing transitions wins; the loser sees
// zero affected rows and reports service.ErrAlreadyTransitioned.
type PaymentStore struct {
	DB *bun.DB
}

var _ service.PaymentStore = (*PaymentStore)(nil)

func NewPaymentStore(db *bun.DB) *PaymentStore {
	return &PaymentStore{DB: db}
}

func (s *PaymentStore) CreatePending(ctx context.Context, payment *models.Payment) error {
	payment.State = common.PaymentStatePending
	_, err := s.DB.NewInsert().Model(payment).Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrDuplicatePayment
		}
		return fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	return nil
}

func (s *PaymentStore) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment := new(models.Payment)
	err := s.DB.NewSelect().Model(payment).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, service.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	if !common.ValidPaymentState(payment.State) {
		return nil, fmt.Errorf("%w: unknown payment state %q", service.ErrStore, payment.State)
	}
	return payment, nil
}

func (s *PaymentStore) MarkRejected(ctx context.Context, id uuid.UUID) error {
	res, err := s.DB.NewUpdate().
		Model((*models.Payment)(nil)).
		Set("payment_state = ?", common.PaymentStateRejected).
		Set("updated_at = ?", time.Now()).
		Where("id = ? AND payment_state = ?", id, common.PaymentStatePending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	return s.transitionOutcome(ctx, res, id)
}

func (s *PaymentStore) MarkReceived(ctx context.Context, id uuid.UUID, txid, refundTo string) error {
	now := time.Now()
	q := s.DB.NewUpdate().
		Model((*models.Payment)(nil)).
		Set("payment_state = ?", common.PaymentStateReceived).
		Set("payment_time = ?", now).
		Set("tx_id = ?", txid).
		Set("updated_at = ?", now).
		Where("id = ? AND payment_state = ?", id, common.PaymentStatePending)
	if refundTo != "" {
		q = q.Set("refund_to = ?", refundTo)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	return s.transitionOutcome(ctx, res, id)
}

func (s *PaymentStore) MarkExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.DB.NewUpdate().
		Model((*models.Payment)(nil)).
		Set("payment_state = ?", common.PaymentStateExpired).
		Set("updated_at = ?", time.Now()).
		Where("payment_state = ? AND expiry_time IS NOT NULL AND expiry_time < ?", common.PaymentStatePending, cutoff).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	return res.RowsAffected()
}

// transitionOutcome distinguishes a missing record from a lost race after a
// conditional update touched no rows.
func (s *PaymentStore) transitionOutcome(ctx context.Context, res sql.Result, id uuid.UUID) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	if rows > 0 {
		return nil
	}
	exists, err := s.DB.NewSelect().Model((*models.Payment)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrStore, err)
	}
	if !exists {
		return service.ErrPaymentNotFound
	}
	return service.ErrAlreadyTransitioned
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}
