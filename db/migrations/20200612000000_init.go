package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/cashweb/paygate/db/models"
)

/* This init reflects the latest model fields when run on a fresh db.
When adding/removing columns in subsequent migrations use
IfNotExists/IfExists, otherwise re-running against an existing db errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*models.Payment)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		// The expiry reaper sweeps on (payment_state, expiry_time).
		if _, err := db.NewCreateIndex().
			Model((*models.Payment)(nil)).
			Index("payments_state_expiry_idx").
			Column("payment_state", "expiry_time").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		return nil
	}, nil)
}
