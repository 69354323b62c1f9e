package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ repository.VoorcalculatieRepository = (*VoorcalculatieRepo)(nil)

// VoorcalculatieRepo leesimplementatie van VoorcalculatieRepository op PostgreSQL.
// De urenverdeling per scope staat als JSONB in de rij.
type VoorcalculatieRepo struct {
	q Querier
}

// NewVoorcalculatieRepository bouwt de adapter. Geef pool of tx mee (Querier).
func NewVoorcalculatieRepository(q Querier) *VoorcalculatieRepo {
	return &VoorcalculatieRepo{q: q}
}

// GetByOfferte haalt de voorcalculatie op offerte-id op; nil als die niet bestaat.
func (r *VoorcalculatieRepo) GetByOfferte(offerteID string) (*entity.Voorcalculatie, error) {
	query := selectVoorcalculatie + ` WHERE offerte_id = $1`
	return r.scanOne(query, offerteID, "get voorcalculatie by offerte")
}

// GetByProject is de legacy lookup voor voorcalculaties die direct aan een project hangen.
func (r *VoorcalculatieRepo) GetByProject(projectID string) (*entity.Voorcalculatie, error) {
	query := selectVoorcalculatie + ` WHERE project_id = $1`
	return r.scanOne(query, projectID, "get voorcalculatie by project")
}

const selectVoorcalculatie = `
	SELECT id, COALESCE(offerte_id, ''), COALESCE(project_id, ''),
	       arbeidskosten_totaal, materiaalkosten_totaal, uren_totaal,
	       uren_per_scope, geschatte_dagen, created_at
	FROM voorcalculaties`

func (r *VoorcalculatieRepo) scanOne(query, arg, op string) (*entity.Voorcalculatie, error) {
	var vc entity.Voorcalculatie
	var urenPerScope []byte
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&vc.ID, &vc.OfferteID, &vc.ProjectID,
		&vc.ArbeidskostenTotaal, &vc.MateriaalkostenTotaal, &vc.UrenTotaal,
		&urenPerScope, &vc.GeschatteDagen, &vc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	vc.UrenPerScope = map[string]decimal.Decimal{}
	if len(urenPerScope) > 0 {
		if err := json.Unmarshal(urenPerScope, &vc.UrenPerScope); err != nil {
			return nil, fmt.Errorf("%s: uren_per_scope: %w", op, err)
		}
	}
	return &vc, nil
}
