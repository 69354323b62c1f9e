package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.MachineInzetRepository = (*MachineInzetRepo)(nil)

// MachineInzetRepo implementatie van MachineInzetRepository op PostgreSQL (pool of tx).
type MachineInzetRepo struct {
	q Querier
}

// NewMachineInzetRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewMachineInzetRepository(q Querier) *MachineInzetRepo {
	return &MachineInzetRepo{q: q}
}

// Create slaat een nieuwe machine-inzet op, inclusief de vastgelegde kosten.
func (r *MachineInzetRepo) Create(inzet *entity.MachineInzet) error {
	query := `
		INSERT INTO machine_inzet (id, user_id, project_id, machine_id, uren, datum, kosten, notities, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		inzet.ID, inzet.UserID, inzet.ProjectID, inzet.MachineID, inzet.Uren, inzet.Datum, inzet.Kosten, inzet.Notities, inzet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert machine-inzet: %w", err)
	}
	return nil
}

// GetByID haalt een machine-inzet op; nil als die niet bestaat.
func (r *MachineInzetRepo) GetByID(id string) (*entity.MachineInzet, error) {
	query := `
		SELECT id, user_id, project_id, machine_id, uren, datum, kosten, notities, created_at
		FROM machine_inzet WHERE id = $1`
	var inzet entity.MachineInzet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inzet.ID, &inzet.UserID, &inzet.ProjectID, &inzet.MachineID, &inzet.Uren, &inzet.Datum, &inzet.Kosten, &inzet.Notities, &inzet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine-inzet: %w", err)
	}
	return &inzet, nil
}

// Update werkt een machine-inzet bij, inclusief de opnieuw vastgelegde kosten.
func (r *MachineInzetRepo) Update(inzet *entity.MachineInzet) error {
	query := `
		UPDATE machine_inzet
		SET uren = $2, datum = $3, kosten = $4, notities = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inzet.ID, inzet.Uren, inzet.Datum, inzet.Kosten, inzet.Notities,
	)
	if err != nil {
		return fmt.Errorf("update machine-inzet: %w", err)
	}
	return nil
}

// Delete verwijdert een machine-inzet.
func (r *MachineInzetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM machine_inzet WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine-inzet: %w", err)
	}
	return nil
}

// ListByProject levert alle machine-inzetten van een project.
func (r *MachineInzetRepo) ListByProject(projectID string) ([]*entity.MachineInzet, error) {
	query := `
		SELECT id, user_id, project_id, machine_id, uren, datum, kosten, notities, created_at
		FROM machine_inzet WHERE project_id = $1 ORDER BY datum DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list machine-inzet: %w", err)
	}
	defer rows.Close()
	var list []*entity.MachineInzet
	for rows.Next() {
		var inzet entity.MachineInzet
		if err := rows.Scan(
			&inzet.ID, &inzet.UserID, &inzet.ProjectID, &inzet.MachineID, &inzet.Uren, &inzet.Datum, &inzet.Kosten, &inzet.Notities, &inzet.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan machine-inzet: %w", err)
		}
		list = append(list, &inzet)
	}
	return list, rows.Err()
}
