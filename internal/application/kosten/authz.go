package kosten

import (
	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// ProjectGate is de centrale autorisatiepoort: elke operatie verifieert hier dat de
// aanroeper eigenaar is van het project en krijgt het geautoriseerde project terug.
type ProjectGate struct {
	projectRepo repository.ProjectRepository
}

// NewProjectGate bouwt de poort.
func NewProjectGate(projectRepo repository.ProjectRepository) *ProjectGate {
	return &ProjectGate{projectRepo: projectRepo}
}

// Authorize haalt het project op en controleert eigenaarschap (fail-closed).
// Onbekend project -> ErrNotFound; andermans project -> ErrForbidden.
func (g *ProjectGate) Authorize(userID, projectID string) (*entity.Project, error) {
	project, err := g.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if project.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}
