package kosten

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
)

// OverzichtUseCase is de aggregator over de drie bronadapters: samenvoegen, filteren,
// sorteren en groeperen. Alle leesoperaties zijn pure functies van de actuele
// broninhoud; er bestaat geen gecachet grootboek.
//
// Autorisatie: lijstachtige reads degraderen naar een leeg resultaat wanneer de
// aanroeper geen eigenaar is, zodat dashboards niet omvallen; GetByID faalt expliciet.
type OverzichtUseCase struct {
	gate      *ProjectGate
	arbeid    *ArbeidAdapter
	machine   *MachineAdapter
	materiaal *MateriaalAdapter
}

// NewOverzichtUseCase bouwt de aggregator.
func NewOverzichtUseCase(
	gate *ProjectGate,
	arbeid *ArbeidAdapter,
	machine *MachineAdapter,
	materiaal *MateriaalAdapter,
) *OverzichtUseCase {
	return &OverzichtUseCase{gate: gate, arbeid: arbeid, machine: machine, materiaal: materiaal}
}

// List levert alle kostenregels van een project, optioneel gefilterd op type en
// periode, gesorteerd op datum aflopend.
func (uc *OverzichtUseCase) List(userID, projectID, kostenType string, periode *Periode) ([]dto.KostenregelDTO, error) {
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return []dto.KostenregelDTO{}, nil
		}
		return nil, err
	}
	regels, err := uc.verzamel(projectID, periode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KostenregelDTO, 0, len(regels))
	for _, regel := range regels {
		if kostenType != "" && regel.Type != kostenType {
			continue
		}
		out = append(out, toKostenregelDTO(regel))
	}
	return out, nil
}

// GetByID levert één kostenregel via de bij het type horende bron. Faalt expliciet
// bij onbekend type, onbekende regel of vreemd eigenaarschap.
func (uc *OverzichtUseCase) GetByID(userID, id, kostenType string) (*dto.KostenregelDTO, error) {
	var (
		regel     *entity.Kostenregel
		projectID string
		err       error
	)
	switch kostenType {
	case entity.KostenTypeArbeid:
		regel, projectID, err = uc.arbeid.GetByID(id)
	case entity.KostenTypeMachine:
		regel, projectID, err = uc.machine.GetByID(id)
	case entity.KostenTypeMateriaal:
		regel, projectID, err = uc.materiaal.GetByID(id)
	default:
		return nil, domain.ErrInvalidKostenType
	}
	if err != nil {
		return nil, err
	}
	if regel == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		return nil, err
	}
	out := toKostenregelDTO(*regel)
	return &out, nil
}

// GetTotalen sommeert per type, plus een eindtotaal en de totale arbeidsuren.
// Alle bedragen afgerond op 2 decimalen.
func (uc *OverzichtUseCase) GetTotalen(userID, projectID string, periode *Periode) (*dto.KostenTotalenDTO, error) {
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return &dto.KostenTotalenDTO{}, nil
		}
		return nil, err
	}
	regels, err := uc.verzamel(projectID, periode)
	if err != nil {
		return nil, err
	}
	return uc.totalen(regels), nil
}

func (uc *OverzichtUseCase) totalen(regels []entity.Kostenregel) *dto.KostenTotalenDTO {
	t := dto.KostenTotalenDTO{}
	for _, regel := range regels {
		switch regel.Type {
		case entity.KostenTypeArbeid:
			t.Arbeid = t.Arbeid.Add(regel.Totaal)
			t.ArbeidsUren = t.ArbeidsUren.Add(regel.Aantal)
		case entity.KostenTypeMachine:
			t.Machine = t.Machine.Add(regel.Totaal)
		case entity.KostenTypeMateriaal:
			t.Materiaal = t.Materiaal.Add(regel.Totaal)
		}
	}
	t.Totaal = t.Arbeid.Add(t.Machine).Add(t.Materiaal).Round(2)
	t.Arbeid = t.Arbeid.Round(2)
	t.Machine = t.Machine.Round(2)
	t.Materiaal = t.Materiaal.Round(2)
	t.ArbeidsUren = t.ArbeidsUren.Round(2)
	return &t
}

// GetByScope groepeert alle kostenregels per werkcategorie, met kosten per type en
// arbeidsuren per scope. Gesorteerd op scope.
func (uc *OverzichtUseCase) GetByScope(userID, projectID string, periode *Periode) ([]dto.ScopeTotalenDTO, error) {
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return []dto.ScopeTotalenDTO{}, nil
		}
		return nil, err
	}
	regels, err := uc.verzamel(projectID, periode)
	if err != nil {
		return nil, err
	}
	groepen := map[string]*dto.ScopeTotalenDTO{}
	for _, regel := range regels {
		g, ok := groepen[regel.Scope]
		if !ok {
			g = &dto.ScopeTotalenDTO{Scope: regel.Scope}
			groepen[regel.Scope] = g
		}
		accumuleer(&g.Arbeid, &g.Machine, &g.Materiaal, &g.Uren, regel)
	}
	out := make([]dto.ScopeTotalenDTO, 0, len(groepen))
	for _, g := range groepen {
		rondAf(g)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Scope < out[j].Scope })
	return out, nil
}

// GetDagelijksOverzicht groepeert per kalenderdag, oplopend gesorteerd.
func (uc *OverzichtUseCase) GetDagelijksOverzicht(userID, projectID string, periode *Periode) ([]dto.DagTotalenDTO, error) {
	if _, err := uc.gate.Authorize(userID, projectID); err != nil {
		if errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrNotFound) {
			return []dto.DagTotalenDTO{}, nil
		}
		return nil, err
	}
	regels, err := uc.verzamel(projectID, periode)
	if err != nil {
		return nil, err
	}
	groepen := map[string]*dto.DagTotalenDTO{}
	for _, regel := range regels {
		g, ok := groepen[regel.Datum]
		if !ok {
			g = &dto.DagTotalenDTO{Datum: regel.Datum}
			groepen[regel.Datum] = g
		}
		accumuleer(&g.Arbeid, &g.Machine, &g.Materiaal, &g.Uren, regel)
	}
	out := make([]dto.DagTotalenDTO, 0, len(groepen))
	for _, g := range groepen {
		g.Arbeid = g.Arbeid.Round(2)
		g.Machine = g.Machine.Round(2)
		g.Materiaal = g.Materiaal.Round(2)
		g.Totaal = g.Arbeid.Add(g.Machine).Add(g.Materiaal).Round(2)
		g.Uren = g.Uren.Round(2)
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datum < out[j].Datum })
	return out, nil
}

// UrenPerMedewerker sommeert arbeidsuren per medewerker (voor het projectoverzicht).
func (uc *OverzichtUseCase) UrenPerMedewerker(regels []entity.Kostenregel) map[string]decimal.Decimal {
	uren := map[string]decimal.Decimal{}
	for _, regel := range regels {
		if regel.Type != entity.KostenTypeArbeid {
			continue
		}
		uren[regel.Medewerker] = uren[regel.Medewerker].Add(regel.Aantal)
	}
	for naam, u := range uren {
		uren[naam] = u.Round(2)
	}
	return uren
}

// verzamel voegt de output van de drie adapters samen en sorteert op datum aflopend.
func (uc *OverzichtUseCase) verzamel(projectID string, periode *Periode) ([]entity.Kostenregel, error) {
	var regels []entity.Kostenregel
	for _, bron := range []KostenBron{uc.arbeid, uc.machine, uc.materiaal} {
		deel, err := bron.MapToLineItems(projectID, periode)
		if err != nil {
			return nil, err
		}
		regels = append(regels, deel...)
	}
	sort.SliceStable(regels, func(i, j int) bool { return regels[i].Datum > regels[j].Datum })
	return regels, nil
}

func accumuleer(arbeid, machine, materiaal, uren *decimal.Decimal, regel entity.Kostenregel) {
	switch regel.Type {
	case entity.KostenTypeArbeid:
		*arbeid = arbeid.Add(regel.Totaal)
		*uren = uren.Add(regel.Aantal)
	case entity.KostenTypeMachine:
		*machine = machine.Add(regel.Totaal)
	case entity.KostenTypeMateriaal:
		*materiaal = materiaal.Add(regel.Totaal)
	}
}

func rondAf(g *dto.ScopeTotalenDTO) {
	g.Arbeid = g.Arbeid.Round(2)
	g.Machine = g.Machine.Round(2)
	g.Materiaal = g.Materiaal.Round(2)
	g.Totaal = g.Arbeid.Add(g.Machine).Add(g.Materiaal).Round(2)
	g.Uren = g.Uren.Round(2)
}

func toKostenregelDTO(regel entity.Kostenregel) dto.KostenregelDTO {
	return dto.KostenregelDTO{
		ID:           regel.ID,
		Type:         regel.Type,
		Datum:        regel.Datum,
		Omschrijving: regel.Omschrijving,
		Scope:        regel.Scope,
		Aantal:       regel.Aantal,
		Eenheid:      regel.Eenheid,
		Prijs:        regel.Prijs,
		Totaal:       regel.Totaal,
		BronSoort:    regel.BronSoort,
		BronID:       regel.BronID,
		Medewerker:   regel.Medewerker,
		Notities:     regel.Notities,
	}
}
