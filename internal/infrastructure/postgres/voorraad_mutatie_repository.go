package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.VoorraadMutatieRepository = (*VoorraadMutatieRepo)(nil)

// VoorraadMutatieRepo implementatie van VoorraadMutatieRepository op PostgreSQL (pool of tx).
type VoorraadMutatieRepo struct {
	q Querier
}

// NewVoorraadMutatieRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewVoorraadMutatieRepository(q Querier) *VoorraadMutatieRepo {
	return &VoorraadMutatieRepo{q: q}
}

// Create slaat een nieuwe voorraadmutatie op.
func (r *VoorraadMutatieRepo) Create(mutatie *entity.VoorraadMutatie) error {
	query := `
		INSERT INTO voorraad_mutaties (id, user_id, project_id, product_id, voorraad_item_id, type, aantal, notities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		mutatie.ID, mutatie.UserID, mutatie.ProjectID, mutatie.ProductID, mutatie.VoorraadItemID,
		mutatie.Type, mutatie.Aantal, mutatie.Notities, mutatie.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert voorraadmutatie: %w", err)
	}
	return nil
}

// GetByID haalt een voorraadmutatie op; nil als die niet bestaat.
func (r *VoorraadMutatieRepo) GetByID(id string) (*entity.VoorraadMutatie, error) {
	query := `
		SELECT id, user_id, project_id, product_id, voorraad_item_id, type, aantal, notities, created_at
		FROM voorraad_mutaties WHERE id = $1`
	var mutatie entity.VoorraadMutatie
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&mutatie.ID, &mutatie.UserID, &mutatie.ProjectID, &mutatie.ProductID, &mutatie.VoorraadItemID,
		&mutatie.Type, &mutatie.Aantal, &mutatie.Notities, &mutatie.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voorraadmutatie: %w", err)
	}
	return &mutatie, nil
}

// Update werkt het aantal en de notities van een voorraadmutatie bij.
func (r *VoorraadMutatieRepo) Update(mutatie *entity.VoorraadMutatie) error {
	query := `
		UPDATE voorraad_mutaties SET aantal = $2, notities = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, mutatie.ID, mutatie.Aantal, mutatie.Notities)
	if err != nil {
		return fmt.Errorf("update voorraadmutatie: %w", err)
	}
	return nil
}

// Delete verwijdert een voorraadmutatie.
func (r *VoorraadMutatieRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM voorraad_mutaties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voorraadmutatie: %w", err)
	}
	return nil
}

// ListByProject levert alle voorraadmutaties van een project.
func (r *VoorraadMutatieRepo) ListByProject(projectID string) ([]*entity.VoorraadMutatie, error) {
	query := `
		SELECT id, user_id, project_id, product_id, voorraad_item_id, type, aantal, notities, created_at
		FROM voorraad_mutaties WHERE project_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list voorraadmutaties: %w", err)
	}
	defer rows.Close()
	var list []*entity.VoorraadMutatie
	for rows.Next() {
		var mutatie entity.VoorraadMutatie
		if err := rows.Scan(
			&mutatie.ID, &mutatie.UserID, &mutatie.ProjectID, &mutatie.ProductID, &mutatie.VoorraadItemID,
			&mutatie.Type, &mutatie.Aantal, &mutatie.Notities, &mutatie.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan voorraadmutatie: %w", err)
		}
		list = append(list, &mutatie)
	}
	return list, rows.Err()
}
