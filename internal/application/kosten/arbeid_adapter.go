package kosten

import (
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// StandaardUurtarief geldt wanneer er geen enkel tarief is geconfigureerd.
var StandaardUurtarief = decimal.NewFromInt(45)

var _ KostenBron = (*ArbeidAdapter)(nil)

// ArbeidAdapter mapt urenregistraties naar kostenregels van het type arbeid.
// Het uurtarief is het medewerkerspecifieke tarief als dat bestaat, anders het
// geïnjecteerde bedrijfstarief; die fallback mag nooit falen, ook zonder configuratie.
type ArbeidAdapter struct {
	urenRepo       repository.UrenregistratieRepository
	medewerkerRepo repository.MedewerkerRepository
	standaard      decimal.Decimal
}

// NewArbeidAdapter bouwt de adapter. Een niet-positief standaardtarief valt terug op 45.
func NewArbeidAdapter(
	urenRepo repository.UrenregistratieRepository,
	medewerkerRepo repository.MedewerkerRepository,
	standaardTarief decimal.Decimal,
) *ArbeidAdapter {
	if standaardTarief.LessThanOrEqual(decimal.Zero) {
		standaardTarief = StandaardUurtarief
	}
	return &ArbeidAdapter{
		urenRepo:       urenRepo,
		medewerkerRepo: medewerkerRepo,
		standaard:      standaardTarief,
	}
}

// MapToLineItems levert de arbeidskostenregels van een project.
// Datumfilter is inclusief op beide grenzen (lexicografisch op YYYY-MM-DD).
func (a *ArbeidAdapter) MapToLineItems(projectID string, periode *Periode) ([]entity.Kostenregel, error) {
	registraties, err := a.urenRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	regels := make([]entity.Kostenregel, 0, len(registraties))
	for _, reg := range registraties {
		if !periode.BevatDag(reg.Datum) {
			continue
		}
		regels = append(regels, a.mapRegel(reg))
	}
	return regels, nil
}

// GetByID levert één arbeidskostenregel; nil als de registratie niet bestaat.
func (a *ArbeidAdapter) GetByID(id string) (*entity.Kostenregel, string, error) {
	reg, err := a.urenRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if reg == nil {
		return nil, "", nil
	}
	regel := a.mapRegel(reg)
	return &regel, reg.ProjectID, nil
}

func (a *ArbeidAdapter) mapRegel(reg *entity.Urenregistratie) entity.Kostenregel {
	tarief := a.tariefVoor(reg.UserID, reg.Medewerker)
	omschrijving := reg.Omschrijving
	if omschrijving == "" {
		omschrijving = "Uren " + reg.Medewerker
	}
	return entity.Kostenregel{
		ID:           reg.ID,
		Type:         entity.KostenTypeArbeid,
		Datum:        reg.Datum,
		Omschrijving: omschrijving,
		Scope:        reg.Scope,
		Aantal:       reg.Uren,
		Eenheid:      "uur",
		Prijs:        tarief,
		Totaal:       reg.Uren.Mul(tarief).Round(2),
		BronSoort:    entity.BronUrenregistratie,
		BronID:       reg.ID,
		Medewerker:   reg.Medewerker,
	}
}

// tariefVoor geeft het uurtarief van de medewerker, of het standaardtarief.
// Een fout bij de lookup degradeert eveneens naar het standaardtarief.
func (a *ArbeidAdapter) tariefVoor(userID, naam string) decimal.Decimal {
	medewerker, err := a.medewerkerRepo.GetByNaam(userID, naam)
	if err != nil || medewerker == nil || medewerker.Uurtarief == nil {
		return a.standaard
	}
	return *medewerker.Uurtarief
}
