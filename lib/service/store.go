package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashweb/paygate/db/models"
)

// PaymentStore is the persistence contract the acceptance engine relies on.
// Every operation is a single atomic statement, linearizable per id: of two
// concurrent transitions for the same id exactly one succeeds and the other
// observes ErrAlreadyTransitioned. The engine never takes an in-process
// lock on a record; these operations are the sole serialization point.
type PaymentStore interface {
	// CreatePending inserts a new record in state pending.
	CreatePending(ctx context.Context, payment *models.Payment) error

	// Get fetches a record by id.
	Get(ctx context.Context, id uuid.UUID) (*models.Payment, error)

	// MarkRejected moves a record from pending to rejected.
	MarkRejected(ctx context.Context, id uuid.UUID) error

	// MarkReceived moves a record from pending to received, stamping the
	// acceptance time, the broadcast txid and the refund address.
	MarkReceived(ctx context.Context, id uuid.UUID, txid, refundTo string) error

	// MarkExpired moves every pending record whose expiry passed before
	// the cutoff to expired, returning how many rows changed.
	MarkExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
