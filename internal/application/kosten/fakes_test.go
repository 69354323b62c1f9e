package kosten_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/kosten"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes van de repositorypoorten
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

type fakeProjectRepo struct {
	projecten map[string]*entity.Project
}

func (f *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return f.projecten[id], nil
}

type fakeUrenRepo struct {
	registraties map[string]*entity.Urenregistratie
}

func (f *fakeUrenRepo) Create(reg *entity.Urenregistratie) error {
	kopie := *reg
	f.registraties[reg.ID] = &kopie
	return nil
}

func (f *fakeUrenRepo) GetByID(id string) (*entity.Urenregistratie, error) {
	if reg, ok := f.registraties[id]; ok {
		kopie := *reg
		return &kopie, nil
	}
	return nil, nil
}

func (f *fakeUrenRepo) Update(reg *entity.Urenregistratie) error {
	kopie := *reg
	f.registraties[reg.ID] = &kopie
	return nil
}

func (f *fakeUrenRepo) Delete(id string) error {
	delete(f.registraties, id)
	return nil
}

func (f *fakeUrenRepo) ListByProject(projectID string) ([]*entity.Urenregistratie, error) {
	var list []*entity.Urenregistratie
	for _, reg := range f.registraties {
		if reg.ProjectID == projectID {
			kopie := *reg
			list = append(list, &kopie)
		}
	}
	return list, nil
}

type fakeMachineRepo struct {
	machines map[string]*entity.Machine
}

func (f *fakeMachineRepo) GetByID(id string) (*entity.Machine, error) {
	return f.machines[id], nil
}

type fakeInzetRepo struct {
	inzetten map[string]*entity.MachineInzet
}

func (f *fakeInzetRepo) Create(inzet *entity.MachineInzet) error {
	kopie := *inzet
	f.inzetten[inzet.ID] = &kopie
	return nil
}

func (f *fakeInzetRepo) GetByID(id string) (*entity.MachineInzet, error) {
	if inzet, ok := f.inzetten[id]; ok {
		kopie := *inzet
		return &kopie, nil
	}
	return nil, nil
}

func (f *fakeInzetRepo) Update(inzet *entity.MachineInzet) error {
	kopie := *inzet
	f.inzetten[inzet.ID] = &kopie
	return nil
}

func (f *fakeInzetRepo) Delete(id string) error {
	delete(f.inzetten, id)
	return nil
}

func (f *fakeInzetRepo) ListByProject(projectID string) ([]*entity.MachineInzet, error) {
	var list []*entity.MachineInzet
	for _, inzet := range f.inzetten {
		if inzet.ProjectID == projectID {
			kopie := *inzet
			list = append(list, &kopie)
		}
	}
	return list, nil
}

type fakeProductRepo struct {
	producten map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.producten[id], nil
}

type fakeMedewerkerRepo struct {
	medewerkers map[string]*entity.Medewerker // key: naam
}

func (f *fakeMedewerkerRepo) GetByNaam(userID, naam string) (*entity.Medewerker, error) {
	m, ok := f.medewerkers[naam]
	if !ok || m.UserID != userID {
		return nil, nil
	}
	return m, nil
}

type fakeItemRepo struct {
	items map[string]*entity.VoorraadItem // key: userID+"/"+productID
}

func (f *fakeItemRepo) sleutel(userID, productID string) string {
	return userID + "/" + productID
}

func (f *fakeItemRepo) GetByProduct(userID, productID string) (*entity.VoorraadItem, error) {
	if item, ok := f.items[f.sleutel(userID, productID)]; ok {
		kopie := *item
		return &kopie, nil
	}
	return nil, nil
}

func (f *fakeItemRepo) GetForUpdate(userID, productID string) (*entity.VoorraadItem, error) {
	return f.GetByProduct(userID, productID)
}

func (f *fakeItemRepo) Upsert(item *entity.VoorraadItem) error {
	kopie := *item
	f.items[f.sleutel(item.UserID, item.ProductID)] = &kopie
	return nil
}

type fakeMutatieRepo struct {
	mutaties map[string]*entity.VoorraadMutatie
}

func (f *fakeMutatieRepo) Create(mutatie *entity.VoorraadMutatie) error {
	kopie := *mutatie
	f.mutaties[mutatie.ID] = &kopie
	return nil
}

func (f *fakeMutatieRepo) GetByID(id string) (*entity.VoorraadMutatie, error) {
	if mutatie, ok := f.mutaties[id]; ok {
		kopie := *mutatie
		return &kopie, nil
	}
	return nil, nil
}

func (f *fakeMutatieRepo) Update(mutatie *entity.VoorraadMutatie) error {
	bestaand, ok := f.mutaties[mutatie.ID]
	if !ok {
		return nil
	}
	bestaand.Aantal = mutatie.Aantal
	bestaand.Notities = mutatie.Notities
	return nil
}

func (f *fakeMutatieRepo) Delete(id string) error {
	delete(f.mutaties, id)
	return nil
}

func (f *fakeMutatieRepo) ListByProject(projectID string) ([]*entity.VoorraadMutatie, error) {
	var list []*entity.VoorraadMutatie
	for _, mutatie := range f.mutaties {
		if mutatie.ProjectID == projectID {
			kopie := *mutatie
			list = append(list, &kopie)
		}
	}
	return list, nil
}

type fakeVoorcalculatieRepo struct {
	perOfferte map[string]*entity.Voorcalculatie
	perProject map[string]*entity.Voorcalculatie
}

func (f *fakeVoorcalculatieRepo) GetByOfferte(offerteID string) (*entity.Voorcalculatie, error) {
	return f.perOfferte[offerteID], nil
}

func (f *fakeVoorcalculatieRepo) GetByProject(projectID string) (*entity.Voorcalculatie, error) {
	return f.perProject[projectID], nil
}

// fakeTxRunner voert de callback direct uit met de gedeelde fakes; in de tests is
// elke mutatie daarmee per definitie "atomair".
type fakeTxRunner struct {
	uren    *fakeUrenRepo
	inzet   *fakeInzetRepo
	mutatie *fakeMutatieRepo
	item    *fakeItemRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	urenRepo repository.UrenregistratieRepository,
	inzetRepo repository.MachineInzetRepository,
	mutatieRepo repository.VoorraadMutatieRepository,
	itemRepo repository.VoorraadItemRepository,
) error) error {
	return fn(f.uren, f.inzet, f.mutatie, f.item)
}

// ──────────────────────────────────────────────────────────────────────────────
// Testomgeving
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID    = "user-1"
	testProjectID = "project-1"
	andereUserID  = "user-2"
)

// periodeMei is het vaste periodefilter voor de filtertests.
var periodeMei = kosten.Periode{Start: "2024-05-01", Eind: "2024-05-31"}

// omgeving bundelt alle fakes en usecases voor een test.
type omgeving struct {
	projecten      *fakeProjectRepo
	uren           *fakeUrenRepo
	machines       *fakeMachineRepo
	inzetten       *fakeInzetRepo
	producten      *fakeProductRepo
	medewerkers    *fakeMedewerkerRepo
	items          *fakeItemRepo
	mutaties       *fakeMutatieRepo
	voorcalculatie *fakeVoorcalculatieRepo

	overzicht        *kosten.OverzichtUseCase
	budget           *kosten.BudgetUseCase
	projectOverzicht *kosten.ProjectOverzichtUseCase
	mutatieUC        *kosten.MutatieUseCase
}

// nieuweOmgeving bouwt de hele kostenkern op in-memory fakes, met één project
// van testUserID en het standaardtarief van 45.
func nieuweOmgeving(t *testing.T) *omgeving {
	t.Helper()
	o := &omgeving{
		projecten:      &fakeProjectRepo{projecten: map[string]*entity.Project{}},
		uren:           &fakeUrenRepo{registraties: map[string]*entity.Urenregistratie{}},
		machines:       &fakeMachineRepo{machines: map[string]*entity.Machine{}},
		inzetten:       &fakeInzetRepo{inzetten: map[string]*entity.MachineInzet{}},
		producten:      &fakeProductRepo{producten: map[string]*entity.Product{}},
		medewerkers:    &fakeMedewerkerRepo{medewerkers: map[string]*entity.Medewerker{}},
		items:          &fakeItemRepo{items: map[string]*entity.VoorraadItem{}},
		mutaties:       &fakeMutatieRepo{mutaties: map[string]*entity.VoorraadMutatie{}},
		voorcalculatie: &fakeVoorcalculatieRepo{perOfferte: map[string]*entity.Voorcalculatie{}, perProject: map[string]*entity.Voorcalculatie{}},
	}
	o.projecten.projecten[testProjectID] = &entity.Project{
		ID:     testProjectID,
		UserID: testUserID,
		Naam:   "Tuinaanleg Vondelpark",
	}

	gate := kosten.NewProjectGate(o.projecten)
	arbeid := kosten.NewArbeidAdapter(o.uren, o.medewerkers, decimal.Zero)
	machine := kosten.NewMachineAdapter(o.inzetten, o.machines)
	materiaal := kosten.NewMateriaalAdapter(o.mutaties, o.producten)
	o.overzicht = kosten.NewOverzichtUseCase(gate, arbeid, machine, materiaal)
	o.budget = kosten.NewBudgetUseCase(gate, kosten.NewVoorcalculatieResolver(o.voorcalculatie), o.overzicht)
	o.projectOverzicht = kosten.NewProjectOverzichtUseCase(gate, o.overzicht, o.budget)

	txRunner := &fakeTxRunner{uren: o.uren, inzet: o.inzetten, mutatie: o.mutaties, item: o.items}
	o.mutatieUC = kosten.NewMutatieUseCase(
		gate, txRunner, kosten.NewVoorraadCoordinator(),
		o.uren, o.inzetten, o.mutaties, o.machines, o.producten,
	)
	return o
}

func (o *omgeving) voegUrenToe(t *testing.T, medewerker, datum, scope, urenStr string) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, o.uren.Create(&entity.Urenregistratie{
		ID:         id,
		UserID:     testUserID,
		ProjectID:  testProjectID,
		Medewerker: medewerker,
		Uren:       d(urenStr),
		Scope:      scope,
		Datum:      datum,
		CreatedAt:  time.Now(),
	}))
	return id
}

func (o *omgeving) voegMachineToe(t *testing.T, naam, tarief, tariefType string) string {
	t.Helper()
	id := uuid.New().String()
	o.machines.machines[id] = &entity.Machine{
		ID:         id,
		UserID:     testUserID,
		Naam:       naam,
		Tarief:     d(tarief),
		TariefType: tariefType,
	}
	return id
}

func (o *omgeving) voegProductToe(t *testing.T, naam, eenheid, inkoopprijs string) string {
	t.Helper()
	id := uuid.New().String()
	o.producten.producten[id] = &entity.Product{
		ID:          id,
		UserID:      testUserID,
		Naam:        naam,
		Eenheid:     eenheid,
		Inkoopprijs: d(inkoopprijs),
	}
	return id
}

func (o *omgeving) voorraadVan(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	item, err := o.items.GetByProduct(testUserID, productID)
	require.NoError(t, err)
	if item == nil {
		return decimal.Zero
	}
	return item.Aantal
}
