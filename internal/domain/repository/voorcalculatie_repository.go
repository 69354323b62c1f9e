package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// VoorcalculatieRepository definieert de leespoort voor de budgetbaseline
// (eigendom van de calculatie-engine).
type VoorcalculatieRepository interface {
	GetByOfferte(offerteID string) (*entity.Voorcalculatie, error)
	// GetByProject is de legacy lookup voor baselines die direct aan een project hangen.
	GetByProject(projectID string) (*entity.Voorcalculatie, error)
}
