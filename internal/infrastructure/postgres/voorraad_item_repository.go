package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.VoorraadItemRepository = (*VoorraadItemRepo)(nil)

// VoorraadItemRepo implementatie van VoorraadItemRepository op PostgreSQL (pool of tx).
type VoorraadItemRepo struct {
	q Querier
}

// NewVoorraadItemRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewVoorraadItemRepository(q Querier) *VoorraadItemRepo {
	return &VoorraadItemRepo{q: q}
}

// GetByProduct haalt de voorraadstand op; nil als er nog geen rij bestaat.
func (r *VoorraadItemRepo) GetByProduct(userID, productID string) (*entity.VoorraadItem, error) {
	query := `
		SELECT id, user_id, product_id, aantal, updated_at
		FROM voorraad_items WHERE user_id = $1 AND product_id = $2`
	return r.scanOne(query, userID, productID, "get voorraaditem")
}

// GetForUpdate haalt de voorraadstand op en blokkeert de rij (SELECT FOR UPDATE).
// Nil als er nog geen rij bestaat; de aanroeper maakt die dan lazy aan.
func (r *VoorraadItemRepo) GetForUpdate(userID, productID string) (*entity.VoorraadItem, error) {
	query := `
		SELECT id, user_id, product_id, aantal, updated_at
		FROM voorraad_items WHERE user_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(query, userID, productID, "get voorraaditem for update")
}

// Upsert voegt de voorraadstand toe of werkt die bij (per gebruiker en product).
func (r *VoorraadItemRepo) Upsert(item *entity.VoorraadItem) error {
	query := `
		INSERT INTO voorraad_items (id, user_id, product_id, aantal, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET aantal = EXCLUDED.aantal, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, item.ID, item.UserID, item.ProductID, item.Aantal)
	if err != nil {
		return fmt.Errorf("upsert voorraaditem: %w", err)
	}
	return nil
}

func (r *VoorraadItemRepo) scanOne(query, userID, productID, op string) (*entity.VoorraadItem, error) {
	var item entity.VoorraadItem
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Aantal, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}
