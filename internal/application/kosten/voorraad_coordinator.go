package kosten

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// VoorraadCoordinator houdt de voorraadstand consistent met materiaalverbruik.
// Alle methodes draaien binnen de transactie van de aanroeper (repos zijn tx-gebonden)
// en vergrendelen eerst de voorraadrij, zodat concurrerende delta's serialiseren.
//
// Rondreis-invariant: create -> update(s) -> delete op dezelfde logische mutatie
// laat de voorraadstand netto ongewijzigd.
type VoorraadCoordinator struct{}

// NewVoorraadCoordinator bouwt de coördinator.
func NewVoorraadCoordinator() *VoorraadCoordinator {
	return &VoorraadCoordinator{}
}

// RegistreerVerbruik boekt verbruik af: voorraadstand lazy aanmaken op nul als die
// nog niet bestaat, verlagen met het verbruikte aantal en de mutatie negatief
// vastleggen. Geeft het ID van de nieuwe mutatie terug.
func (c *VoorraadCoordinator) RegistreerVerbruik(
	itemRepo repository.VoorraadItemRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	userID, projectID, productID string,
	aantal decimal.Decimal,
	notities string,
	now time.Time,
) (string, error) {
	item, err := c.vergrendelOfMaak(itemRepo, userID, productID, now)
	if err != nil {
		return "", err
	}
	item.Aantal = item.Aantal.Sub(aantal)
	item.UpdatedAt = now
	if err := itemRepo.Upsert(item); err != nil {
		return "", err
	}
	mutatie := &entity.VoorraadMutatie{
		ID:             uuid.New().String(),
		UserID:         userID,
		ProjectID:      projectID,
		ProductID:      productID,
		VoorraadItemID: item.ID,
		Type:           entity.MutatieTypeVerbruik,
		Aantal:         aantal.Neg(),
		Notities:       notities,
		CreatedAt:      now,
	}
	if err := mutatieRepo.Create(mutatie); err != nil {
		return "", err
	}
	return mutatie.ID, nil
}

// WijzigVerbruik past een bestaand verbruik aan. Alleen het verschil tussen oud en
// nieuw aantal wordt op de voorraad toegepast; het al afgeboekte deel nooit opnieuw.
// De mutatie wordt ná het rijslot opnieuw gelezen zodat de delta klopt, ook als een
// andere schrijver net voor was.
func (c *VoorraadCoordinator) WijzigVerbruik(
	itemRepo repository.VoorraadItemRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	mutatieID string,
	nieuwAantal decimal.Decimal,
	notities string,
	now time.Time,
) error {
	mutatie, item, err := c.vergrendelMutatie(itemRepo, mutatieRepo, mutatieID, now)
	if err != nil {
		return err
	}
	oudAantal := mutatie.Aantal.Abs()
	delta := nieuwAantal.Sub(oudAantal)
	item.Aantal = item.Aantal.Sub(delta)
	item.UpdatedAt = now
	if err := itemRepo.Upsert(item); err != nil {
		return err
	}
	mutatie.Aantal = nieuwAantal.Neg()
	mutatie.Notities = notities
	return mutatieRepo.Update(mutatie)
}

// VerwijderVerbruik draait een verbruik terug: de voorraadstand krijgt het
// afgeboekte aantal weer bij en de mutatie verdwijnt.
func (c *VoorraadCoordinator) VerwijderVerbruik(
	itemRepo repository.VoorraadItemRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	mutatieID string,
	now time.Time,
) error {
	mutatie, item, err := c.vergrendelMutatie(itemRepo, mutatieRepo, mutatieID, now)
	if err != nil {
		return err
	}
	item.Aantal = item.Aantal.Add(mutatie.Aantal.Abs())
	item.UpdatedAt = now
	if err := itemRepo.Upsert(item); err != nil {
		return err
	}
	return mutatieRepo.Delete(mutatie.ID)
}

// vergrendelOfMaak vergrendelt de voorraadrij of maakt die lazy aan op nul.
func (c *VoorraadCoordinator) vergrendelOfMaak(
	itemRepo repository.VoorraadItemRepository,
	userID, productID string,
	now time.Time,
) (*entity.VoorraadItem, error) {
	item, err := itemRepo.GetForUpdate(userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		item = &entity.VoorraadItem{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProductID: productID,
			Aantal:    decimal.Zero,
			UpdatedAt: now,
		}
		if err := itemRepo.Upsert(item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// vergrendelMutatie vergrendelt eerst de voorraadrij en leest daarna de mutatie,
// binnen dezelfde transactie.
func (c *VoorraadCoordinator) vergrendelMutatie(
	itemRepo repository.VoorraadItemRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	mutatieID string,
	now time.Time,
) (*entity.VoorraadMutatie, *entity.VoorraadItem, error) {
	mutatie, err := mutatieRepo.GetByID(mutatieID)
	if err != nil {
		return nil, nil, err
	}
	if mutatie == nil {
		return nil, nil, domain.ErrNotFound
	}
	item, err := c.vergrendelOfMaak(itemRepo, mutatie.UserID, mutatie.ProductID, now)
	if err != nil {
		return nil, nil, err
	}
	// Verse lezing na het rijslot: een concurrerende update die eerder het slot
	// had, is nu zichtbaar en de delta wordt tegen de actuele stand berekend.
	mutatie, err = mutatieRepo.GetByID(mutatieID)
	if err != nil {
		return nil, nil, err
	}
	if mutatie == nil {
		return nil, nil, domain.ErrNotFound
	}
	return mutatie, item, nil
}
