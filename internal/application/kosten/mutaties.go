package kosten

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// MutatieUseCase is de mutatierouter: create/update/delete van een logische
// kostenregel wordt op basis van het type naar de juiste backing store gestuurd.
// Elke mutatie draait als één transactie (TxRunner) en verifieert eerst het
// projecteigenaarschap (fail-closed).
type MutatieUseCase struct {
	gate        *ProjectGate
	txRunner    TxRunner
	coordinator *VoorraadCoordinator
	urenRepo    repository.UrenregistratieRepository
	inzetRepo   repository.MachineInzetRepository
	mutatieRepo repository.VoorraadMutatieRepository
	machineRepo repository.MachineRepository
	productRepo repository.ProductRepository
}

// NewMutatieUseCase bouwt de router. De losse repositories dienen voor lookups
// vóór de transactie; de schrijfacties lopen via de tx-gebonden varianten.
func NewMutatieUseCase(
	gate *ProjectGate,
	txRunner TxRunner,
	coordinator *VoorraadCoordinator,
	urenRepo repository.UrenregistratieRepository,
	inzetRepo repository.MachineInzetRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	machineRepo repository.MachineRepository,
	productRepo repository.ProductRepository,
) *MutatieUseCase {
	return &MutatieUseCase{
		gate:        gate,
		txRunner:    txRunner,
		coordinator: coordinator,
		urenRepo:    urenRepo,
		inzetRepo:   inzetRepo,
		mutatieRepo: mutatieRepo,
		machineRepo: machineRepo,
		productRepo: productRepo,
	}
}

// Create maakt een kostenregel aan in de bij het type horende store.
// Validatie gebeurt volledig vóór enige schrijfactie.
func (uc *MutatieUseCase) Create(ctx context.Context, userID string, in dto.CreateKostenRequest) (string, error) {
	if _, err := uc.gate.Authorize(userID, in.ProjectID); err != nil {
		return "", err
	}

	now := time.Now()
	datum := in.Datum
	if datum == "" {
		datum = now.Format("2006-01-02")
	}

	switch in.Type {
	case entity.KostenTypeArbeid:
		if in.Medewerker == "" {
			return "", domain.ErrMedewerkerRequired
		}
		if !in.Uren.GreaterThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
		reg := &entity.Urenregistratie{
			ID:           uuid.New().String(),
			UserID:       userID,
			ProjectID:    in.ProjectID,
			Medewerker:   in.Medewerker,
			Uren:         in.Uren,
			Scope:        in.Scope,
			Datum:        datum,
			Omschrijving: in.Omschrijving,
			CreatedAt:    now,
		}
		return reg.ID, uc.txRunner.Run(ctx, func(
			urenRepo repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return urenRepo.Create(reg)
		})

	case entity.KostenTypeMachine:
		if in.MachineID == "" {
			return "", domain.ErrMachineRequired
		}
		if !in.Uren.GreaterThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
		machine, err := uc.machineRepo.GetByID(in.MachineID)
		if err != nil {
			return "", err
		}
		if machine == nil {
			return "", domain.ErrNotFound
		}
		if machine.UserID != userID {
			return "", domain.ErrForbidden
		}
		inzet := &entity.MachineInzet{
			ID:        uuid.New().String(),
			UserID:    userID,
			ProjectID: in.ProjectID,
			MachineID: machine.ID,
			Uren:      in.Uren,
			Datum:     datum,
			// Kosten worden nu vastgelegd tegen het huidige tarief en daarna
			// nooit herberekend, ook niet als het tarief wijzigt.
			Kosten:    entity.BerekenInzetKosten(in.Uren, machine.Tarief, machine.TariefType),
			Notities:  in.Notities,
			CreatedAt: now,
		}
		return inzet.ID, uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			inzetRepo repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return inzetRepo.Create(inzet)
		})

	case entity.KostenTypeMateriaal:
		if in.ProductID == "" {
			return "", domain.ErrProductRequired
		}
		if !in.Aantal.GreaterThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return "", err
		}
		if product == nil {
			return "", domain.ErrNotFound
		}
		if product.UserID != userID {
			return "", domain.ErrForbidden
		}
		var mutatieID string
		err = uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			mutatieRepo repository.VoorraadMutatieRepository,
			itemRepo repository.VoorraadItemRepository,
		) error {
			mutatieID, err = uc.coordinator.RegistreerVerbruik(
				itemRepo, mutatieRepo, userID, in.ProjectID, product.ID, in.Aantal, in.Notities, now,
			)
			return err
		})
		return mutatieID, err

	default:
		return "", domain.ErrInvalidKostenType
	}
}

// Update werkt een bestaande kostenregel bij in de bij het type horende store.
// Lege tekstvelden (scope, datum, omschrijving, notities) laten de bestaande waarde staan.
func (uc *MutatieUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateKostenRequest) error {
	now := time.Now()

	switch in.Type {
	case entity.KostenTypeArbeid:
		reg, err := uc.urenRepo.GetByID(id)
		if err != nil {
			return err
		}
		if reg == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, reg.ProjectID); err != nil {
			return err
		}
		if in.Medewerker == "" {
			return domain.ErrMedewerkerRequired
		}
		if !in.Uren.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		reg.Medewerker = in.Medewerker
		reg.Uren = in.Uren
		if in.Scope != "" {
			reg.Scope = in.Scope
		}
		if in.Datum != "" {
			reg.Datum = in.Datum
		}
		if in.Omschrijving != "" {
			reg.Omschrijving = in.Omschrijving
		}
		return uc.txRunner.Run(ctx, func(
			urenRepo repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return urenRepo.Update(reg)
		})

	case entity.KostenTypeMachine:
		inzet, err := uc.inzetRepo.GetByID(id)
		if err != nil {
			return err
		}
		if inzet == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, inzet.ProjectID); err != nil {
			return err
		}
		if !in.Uren.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		machine, err := uc.machineRepo.GetByID(inzet.MachineID)
		if err != nil {
			return err
		}
		if machine == nil {
			return domain.ErrNotFound
		}
		inzet.Uren = in.Uren
		if in.Datum != "" {
			inzet.Datum = in.Datum
		}
		if in.Notities != "" {
			inzet.Notities = in.Notities
		}
		// Herberekening bij een bewuste wijziging van de uren; losse leesacties
		// herberekenen nooit.
		inzet.Kosten = entity.BerekenInzetKosten(in.Uren, machine.Tarief, machine.TariefType)
		return uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			inzetRepo repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return inzetRepo.Update(inzet)
		})

	case entity.KostenTypeMateriaal:
		mutatie, err := uc.mutatieRepo.GetByID(id)
		if err != nil {
			return err
		}
		// Alleen verbruik is hier muteerbaar; aanvullingen (inkoop) zijn eigendom
		// van het voorraadbeheer en blijven onzichtbaar, net als aan de leeskant.
		if mutatie == nil || mutatie.Type != entity.MutatieTypeVerbruik {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, mutatie.ProjectID); err != nil {
			return err
		}
		if !in.Aantal.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		notities := in.Notities
		if notities == "" {
			notities = mutatie.Notities
		}
		return uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			mutatieRepo repository.VoorraadMutatieRepository,
			itemRepo repository.VoorraadItemRepository,
		) error {
			return uc.coordinator.WijzigVerbruik(itemRepo, mutatieRepo, id, in.Aantal, notities, now)
		})

	default:
		return domain.ErrInvalidKostenType
	}
}

// Remove verwijdert een kostenregel uit de bij het type horende store. Voor
// materiaal wordt de voorraadstand hersteld met het afgeboekte aantal.
func (uc *MutatieUseCase) Remove(ctx context.Context, userID, id, kostenType string) error {
	now := time.Now()

	switch kostenType {
	case entity.KostenTypeArbeid:
		reg, err := uc.urenRepo.GetByID(id)
		if err != nil {
			return err
		}
		if reg == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, reg.ProjectID); err != nil {
			return err
		}
		return uc.txRunner.Run(ctx, func(
			urenRepo repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return urenRepo.Delete(id)
		})

	case entity.KostenTypeMachine:
		inzet, err := uc.inzetRepo.GetByID(id)
		if err != nil {
			return err
		}
		if inzet == nil {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, inzet.ProjectID); err != nil {
			return err
		}
		return uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			inzetRepo repository.MachineInzetRepository,
			_ repository.VoorraadMutatieRepository,
			_ repository.VoorraadItemRepository,
		) error {
			return inzetRepo.Delete(id)
		})

	case entity.KostenTypeMateriaal:
		mutatie, err := uc.mutatieRepo.GetByID(id)
		if err != nil {
			return err
		}
		// Zelfde asymmetrie als de leeskant: een inkoopmutatie is hier geen kostenregel.
		if mutatie == nil || mutatie.Type != entity.MutatieTypeVerbruik {
			return domain.ErrNotFound
		}
		if _, err := uc.gate.Authorize(userID, mutatie.ProjectID); err != nil {
			return err
		}
		return uc.txRunner.Run(ctx, func(
			_ repository.UrenregistratieRepository,
			_ repository.MachineInzetRepository,
			mutatieRepo repository.VoorraadMutatieRepository,
			itemRepo repository.VoorraadItemRepository,
		) error {
			return uc.coordinator.VerwijderVerbruik(itemRepo, mutatieRepo, id, now)
		})

	default:
		return domain.ErrInvalidKostenType
	}
}
