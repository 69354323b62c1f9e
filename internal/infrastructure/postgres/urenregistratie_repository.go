package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.UrenregistratieRepository = (*UrenregistratieRepo)(nil)

// UrenregistratieRepo implementatie van UrenregistratieRepository op PostgreSQL (pool of tx).
type UrenregistratieRepo struct {
	q Querier
}

// NewUrenregistratieRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewUrenregistratieRepository(q Querier) *UrenregistratieRepo {
	return &UrenregistratieRepo{q: q}
}

// Create slaat een nieuwe urenregistratie op.
func (r *UrenregistratieRepo) Create(reg *entity.Urenregistratie) error {
	query := `
		INSERT INTO urenregistraties (id, user_id, project_id, medewerker, uren, scope, datum, omschrijving, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		reg.ID, reg.UserID, reg.ProjectID, reg.Medewerker, reg.Uren, reg.Scope, reg.Datum, reg.Omschrijving, reg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert urenregistratie: %w", err)
	}
	return nil
}

// GetByID haalt een urenregistratie op; nil als die niet bestaat.
func (r *UrenregistratieRepo) GetByID(id string) (*entity.Urenregistratie, error) {
	query := `
		SELECT id, user_id, project_id, medewerker, uren, scope, datum, omschrijving, created_at
		FROM urenregistraties WHERE id = $1`
	var reg entity.Urenregistratie
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&reg.ID, &reg.UserID, &reg.ProjectID, &reg.Medewerker, &reg.Uren, &reg.Scope, &reg.Datum, &reg.Omschrijving, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get urenregistratie: %w", err)
	}
	return &reg, nil
}

// Update werkt een urenregistratie bij.
func (r *UrenregistratieRepo) Update(reg *entity.Urenregistratie) error {
	query := `
		UPDATE urenregistraties
		SET medewerker = $2, uren = $3, scope = $4, datum = $5, omschrijving = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		reg.ID, reg.Medewerker, reg.Uren, reg.Scope, reg.Datum, reg.Omschrijving,
	)
	if err != nil {
		return fmt.Errorf("update urenregistratie: %w", err)
	}
	return nil
}

// Delete verwijdert een urenregistratie.
func (r *UrenregistratieRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM urenregistraties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete urenregistratie: %w", err)
	}
	return nil
}

// ListByProject levert alle urenregistraties van een project.
func (r *UrenregistratieRepo) ListByProject(projectID string) ([]*entity.Urenregistratie, error) {
	query := `
		SELECT id, user_id, project_id, medewerker, uren, scope, datum, omschrijving, created_at
		FROM urenregistraties WHERE project_id = $1 ORDER BY datum DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list urenregistraties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Urenregistratie
	for rows.Next() {
		var reg entity.Urenregistratie
		if err := rows.Scan(
			&reg.ID, &reg.UserID, &reg.ProjectID, &reg.Medewerker, &reg.Uren, &reg.Scope, &reg.Datum, &reg.Omschrijving, &reg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan urenregistratie: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}
