package kosten

import (
	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
)

// ProjectOverzichtUseCase stelt het samengestelde dashboardoverzicht van een project
// samen: totalen, uitsplitsing per scope en per dag, de budgetvergelijking en de
// urenverdeling per medewerker.
type ProjectOverzichtUseCase struct {
	gate      *ProjectGate
	overzicht *OverzichtUseCase
	budget    *BudgetUseCase
}

// NewProjectOverzichtUseCase bouwt het composietusecase.
func NewProjectOverzichtUseCase(
	gate *ProjectGate,
	overzicht *OverzichtUseCase,
	budget *BudgetUseCase,
) *ProjectOverzichtUseCase {
	return &ProjectOverzichtUseCase{gate: gate, overzicht: overzicht, budget: budget}
}

// GetProjectOverzicht levert het volledige overzicht over de hele projectlooptijd.
func (uc *ProjectOverzichtUseCase) GetProjectOverzicht(userID, projectID string) (*dto.ProjectOverzichtDTO, error) {
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		return nil, err
	}

	regels, err := uc.overzicht.verzamel(projectID, nil)
	if err != nil {
		return nil, err
	}
	perScope, err := uc.overzicht.GetByScope(userID, projectID, nil)
	if err != nil {
		return nil, err
	}
	dagelijks, err := uc.overzicht.GetDagelijksOverzicht(userID, projectID, nil)
	if err != nil {
		return nil, err
	}
	budget, err := uc.budget.GetBudgetVergelijking(userID, projectID)
	if err != nil {
		return nil, err
	}

	return &dto.ProjectOverzichtDTO{
		ProjectID:         projectID,
		Totalen:           *uc.overzicht.totalen(regels),
		PerScope:          perScope,
		Dagelijks:         dagelijks,
		Budget:            *budget,
		UrenPerMedewerker: uc.overzicht.UrenPerMedewerker(regels),
	}, nil
}
