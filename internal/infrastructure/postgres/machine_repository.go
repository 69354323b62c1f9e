package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

// MachineRepo leesimplementatie van MachineRepository op PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// GetByID haalt een machine op; nil als die niet bestaat.
func (r *MachineRepo) GetByID(id string) (*entity.Machine, error) {
	query := `
		SELECT id, user_id, naam, tarief, tarief_type, created_at
		FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.UserID, &m.Naam, &m.Tarief, &m.TariefType, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}
