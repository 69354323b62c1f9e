package kosten

import (
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	domeinkosten "github.com/RIBO420/offerte-builder-sub001/internal/domain/kosten"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// VoorcalculatieResolver lost de budgetbaseline op via een geordende fallback-keten:
// eerst op de gekoppelde offerte, daarna de legacy lookup direct op het project.
// De volgorde is hier expliciet zodat het beleid op één plek zichtbaar en testbaar is.
type VoorcalculatieResolver struct {
	repo repository.VoorcalculatieRepository
}

// NewVoorcalculatieResolver bouwt de resolver.
func NewVoorcalculatieResolver(repo repository.VoorcalculatieRepository) *VoorcalculatieResolver {
	return &VoorcalculatieResolver{repo: repo}
}

// Resolve geeft de voorcalculatie van een project, of nil als er geen bestaat.
func (r *VoorcalculatieResolver) Resolve(project *entity.Project) (*entity.Voorcalculatie, error) {
	if project.OfferteID != "" {
		vc, err := r.repo.GetByOfferte(project.OfferteID)
		if err != nil {
			return nil, err
		}
		if vc != nil {
			return vc, nil
		}
	}
	return r.repo.GetByProject(project.ID)
}

// BudgetUseCase vergelijkt de werkelijke projectkosten en -uren met de voorcalculatie
// en classificeert de afwijking.
type BudgetUseCase struct {
	gate      *ProjectGate
	resolver  *VoorcalculatieResolver
	overzicht *OverzichtUseCase
}

// NewBudgetUseCase bouwt het vergelijkingsusecase.
func NewBudgetUseCase(gate *ProjectGate, resolver *VoorcalculatieResolver, overzicht *OverzichtUseCase) *BudgetUseCase {
	return &BudgetUseCase{gate: gate, resolver: resolver, overzicht: overzicht}
}

// GetBudgetVergelijking vergelijkt de actuele totalen (hele projectlooptijd, geen
// periodefilter) met de opgeloste baseline. Geen baseline is een verwachte uitkomst:
// Data nil en Error gevuld, geen foutreturn.
func (uc *BudgetUseCase) GetBudgetVergelijking(userID, projectID string) (*dto.BudgetVergelijkingResponse, error) {
	project, err := uc.gate.Authorize(userID, projectID)
	if err != nil {
		return nil, err
	}

	voorcalculatie, err := uc.resolver.Resolve(project)
	if err != nil {
		return nil, err
	}
	if voorcalculatie == nil {
		return &dto.BudgetVergelijkingResponse{Error: "geen voorcalculatie gevonden"}, nil
	}

	regels, err := uc.overzicht.verzamel(projectID, nil)
	if err != nil {
		return nil, err
	}
	totalen := uc.overzicht.totalen(regels)

	geplandTotaal := voorcalculatie.ArbeidskostenTotaal.Add(voorcalculatie.MateriaalkostenTotaal)
	data := &dto.BudgetVergelijkingDTO{
		Arbeid:    afwijking(totalen.Arbeid, voorcalculatie.ArbeidskostenTotaal),
		Machine:   afwijking(totalen.Machine, decimal.Zero),
		Materiaal: afwijking(totalen.Materiaal, voorcalculatie.MateriaalkostenTotaal),
		Totaal:    afwijking(totalen.Totaal, geplandTotaal),
		Uren:      afwijking(totalen.ArbeidsUren, voorcalculatie.UrenTotaal),
	}
	data.KostenStatus = domeinkosten.BudgetStatus(data.Totaal.AfwijkingPercentage)
	data.UrenStatus = domeinkosten.PlanningStatus(data.Uren.AfwijkingPercentage)
	data.UrenPerScope = urenPerScopeAfwijking(voorcalculatie.UrenPerScope, regels)

	return &dto.BudgetVergelijkingResponse{Data: data}, nil
}

// urenPerScopeAfwijking berekent de urenafwijking per scope over de unie van scopes
// die in de planning of in de registraties voorkomen.
func urenPerScopeAfwijking(gepland map[string]decimal.Decimal, regels []entity.Kostenregel) map[string]dto.AfwijkingDTO {
	actueel := map[string]decimal.Decimal{}
	for _, regel := range regels {
		if regel.Type != entity.KostenTypeArbeid {
			continue
		}
		actueel[regel.Scope] = actueel[regel.Scope].Add(regel.Aantal)
	}

	scopes := map[string]struct{}{}
	for scope := range gepland {
		scopes[scope] = struct{}{}
	}
	for scope := range actueel {
		scopes[scope] = struct{}{}
	}

	out := make(map[string]dto.AfwijkingDTO, len(scopes))
	for scope := range scopes {
		out[scope] = afwijking(actueel[scope].Round(2), gepland[scope])
	}
	return out
}

func afwijking(actueel, gepland decimal.Decimal) dto.AfwijkingDTO {
	absoluut, percentage := domeinkosten.Afwijking(actueel, gepland)
	return dto.AfwijkingDTO{
		Gepland:             gepland,
		Actueel:             actueel,
		AfwijkingAbsoluut:   absoluut,
		AfwijkingPercentage: percentage,
	}
}
