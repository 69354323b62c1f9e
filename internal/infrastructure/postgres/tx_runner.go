package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/kosten"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ kosten.TxRunner = (*TxRunner)(nil)

// TxRunner voert callbacks uit binnen één PostgreSQL-transactie.
// Een kostmutatie inclusief voorraadaanpassing slaagt of rolt als geheel terug.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner bouwt de runner met de pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run start een transactie, voert fn uit met tx-gebonden repos en doet Commit of Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	urenRepo repository.UrenregistratieRepository,
	inzetRepo repository.MachineInzetRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	itemRepo repository.VoorraadItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transactie: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	urenRepo := NewUrenregistratieRepository(tx)
	inzetRepo := NewMachineInzetRepository(tx)
	mutatieRepo := NewVoorraadMutatieRepository(tx)
	itemRepo := NewVoorraadItemRepository(tx)

	if err := fn(urenRepo, inzetRepo, mutatieRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transactie: %w", err)
	}
	return nil
}
