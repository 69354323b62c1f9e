package kosten

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ KostenBron = (*MateriaalAdapter)(nil)

// MateriaalAdapter mapt voorraadverbruik naar kostenregels van het type materiaal.
// Alleen mutaties van het type verbruik tellen mee; aanvullingen (inkoop) niet.
type MateriaalAdapter struct {
	mutatieRepo repository.VoorraadMutatieRepository
	productRepo repository.ProductRepository
}

// NewMateriaalAdapter bouwt de adapter.
func NewMateriaalAdapter(
	mutatieRepo repository.VoorraadMutatieRepository,
	productRepo repository.ProductRepository,
) *MateriaalAdapter {
	return &MateriaalAdapter{mutatieRepo: mutatieRepo, productRepo: productRepo}
}

// MapToLineItems levert de materiaalkostenregels van een project. Het periodefilter
// werkt op het aanmaaktijdstip van de mutatie via het tijdvenster
// [start 00:00, dag-na-eind 00:00), zodat de einddag volledig meetelt.
func (a *MateriaalAdapter) MapToLineItems(projectID string, periode *Periode) ([]entity.Kostenregel, error) {
	mutaties, err := a.mutatieRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	var van, tot time.Time
	if periode != nil {
		van, tot, err = periode.Tijdvenster()
		if err != nil {
			return nil, err
		}
	}
	regels := make([]entity.Kostenregel, 0, len(mutaties))
	for _, mutatie := range mutaties {
		if mutatie.Type != entity.MutatieTypeVerbruik {
			continue
		}
		if periode != nil && (mutatie.CreatedAt.Before(van) || !mutatie.CreatedAt.Before(tot)) {
			continue
		}
		regels = append(regels, a.mapRegel(mutatie))
	}
	return regels, nil
}

// GetByID levert één materiaalkostenregel; nil als de mutatie niet bestaat of
// geen verbruik is.
func (a *MateriaalAdapter) GetByID(id string) (*entity.Kostenregel, string, error) {
	mutatie, err := a.mutatieRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if mutatie == nil || mutatie.Type != entity.MutatieTypeVerbruik {
		return nil, "", nil
	}
	regel := a.mapRegel(mutatie)
	return &regel, mutatie.ProjectID, nil
}

func (a *MateriaalAdapter) mapRegel(mutatie *entity.VoorraadMutatie) entity.Kostenregel {
	// Verwijderd product mag de lijst niet laten falen: placeholder-label, prijs nul.
	naam := "Onbekend product"
	eenheid := "stuk"
	prijs := decimal.Zero

	product, err := a.productRepo.GetByID(mutatie.ProductID)
	if err == nil && product != nil {
		naam = product.Naam
		eenheid = product.Eenheid
		prijs = product.Inkoopprijs
	}

	aantal := mutatie.Aantal.Abs()
	return entity.Kostenregel{
		ID:           mutatie.ID,
		Type:         entity.KostenTypeMateriaal,
		Datum:        mutatie.CreatedAt.Format("2006-01-02"),
		Omschrijving: naam,
		Aantal:       aantal,
		Eenheid:      eenheid,
		Prijs:        prijs,
		Totaal:       aantal.Mul(prijs).Round(2),
		BronSoort:    entity.BronVoorraadMutatie,
		BronID:       mutatie.ID,
		Notities:     mutatie.Notities,
	}
}
