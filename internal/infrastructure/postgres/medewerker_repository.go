package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.MedewerkerRepository = (*MedewerkerRepo)(nil)

// MedewerkerRepo leesimplementatie van MedewerkerRepository op PostgreSQL.
type MedewerkerRepo struct {
	q Querier
}

// NewMedewerkerRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewMedewerkerRepository(q Querier) *MedewerkerRepo {
	return &MedewerkerRepo{q: q}
}

// GetByNaam haalt een medewerker op naam op; nil als die niet bestaat.
// Uurtarief blijft nil wanneer er geen eigen tarief geconfigureerd is.
func (r *MedewerkerRepo) GetByNaam(userID, naam string) (*entity.Medewerker, error) {
	query := `
		SELECT id, user_id, naam, uurtarief, created_at
		FROM medewerkers WHERE user_id = $1 AND naam = $2`
	var m entity.Medewerker
	var uurtarief *decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, userID, naam).Scan(
		&m.ID, &m.UserID, &m.Naam, &uurtarief, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medewerker: %w", err)
	}
	m.Uurtarief = uurtarief
	return &m, nil
}
