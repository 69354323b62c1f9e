package kosten

import (
	"github.com/shopspring/decimal"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

var _ KostenBron = (*MachineAdapter)(nil)

// MachineAdapter mapt machine-inzetten naar kostenregels van het type machine.
// Totaal komt rechtstreeks uit het bij aanmaak vastgelegde kostenveld; aantal en
// prijs zijn alleen weergave, gereconstrueerd uit het actuele tarief van de machine,
// en worden nooit gebruikt om het totaal te herberekenen.
type MachineAdapter struct {
	inzetRepo   repository.MachineInzetRepository
	machineRepo repository.MachineRepository
}

// NewMachineAdapter bouwt de adapter.
func NewMachineAdapter(
	inzetRepo repository.MachineInzetRepository,
	machineRepo repository.MachineRepository,
) *MachineAdapter {
	return &MachineAdapter{inzetRepo: inzetRepo, machineRepo: machineRepo}
}

// MapToLineItems levert de machinekostenregels van een project.
func (a *MachineAdapter) MapToLineItems(projectID string, periode *Periode) ([]entity.Kostenregel, error) {
	inzetten, err := a.inzetRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	regels := make([]entity.Kostenregel, 0, len(inzetten))
	for _, inzet := range inzetten {
		if !periode.BevatDag(inzet.Datum) {
			continue
		}
		regels = append(regels, a.mapRegel(inzet))
	}
	return regels, nil
}

// GetByID levert één machinekostenregel; nil als de inzet niet bestaat.
func (a *MachineAdapter) GetByID(id string) (*entity.Kostenregel, string, error) {
	inzet, err := a.inzetRepo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if inzet == nil {
		return nil, "", nil
	}
	regel := a.mapRegel(inzet)
	return &regel, inzet.ProjectID, nil
}

func (a *MachineAdapter) mapRegel(inzet *entity.MachineInzet) entity.Kostenregel {
	// Verwijderde machine mag de lijst niet laten falen: placeholder-label,
	// het vastgelegde kostenbedrag blijft gewoon staan.
	naam := "Onbekende machine"
	eenheid := "uur"
	prijs := decimal.Zero
	aantal := inzet.Uren

	machine, err := a.machineRepo.GetByID(inzet.MachineID)
	if err == nil && machine != nil {
		naam = machine.Naam
		prijs = machine.Tarief
		if machine.TariefType == entity.TariefTypeDag {
			eenheid = "dag"
			aantal = inzet.Uren.Div(decimal.NewFromInt(8))
		}
	}

	return entity.Kostenregel{
		ID:           inzet.ID,
		Type:         entity.KostenTypeMachine,
		Datum:        inzet.Datum,
		Omschrijving: naam,
		Aantal:       aantal,
		Eenheid:      eenheid,
		Prijs:        prijs,
		Totaal:       inzet.Kosten,
		BronSoort:    entity.BronMachineInzet,
		BronID:       inzet.ID,
		Notities:     inzet.Notities,
	}
}
