package kosten_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
)

// vulGemengdProject zet één regel van elk type klaar:
// arbeid 4u x 45 = 180 (13 mei), machine 150 (15 mei), materiaal 10 x 2.5 = 25 (14 mei).
func vulGemengdProject(t *testing.T, o *omgeving) {
	t.Helper()
	o.voegUrenToe(t, "Jan", "2024-05-13", "bestrating", "4")

	machineID := o.voegMachineToe(t, "Trilplaat", "50", entity.TariefTypeUur)
	require.NoError(t, o.inzetten.Create(&entity.MachineInzet{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		ProjectID: testProjectID,
		MachineID: machineID,
		Uren:      d("3"),
		Datum:     "2024-05-15",
		Kosten:    d("150"),
		CreatedAt: time.Now(),
	}))

	productID := o.voegProductToe(t, "Betonklinker", "stuk", "2.5")
	require.NoError(t, o.mutaties.Create(&entity.VoorraadMutatie{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		ProjectID: testProjectID,
		ProductID: productID,
		Type:      entity.MutatieTypeVerbruik,
		Aantal:    d("-10"),
		CreatedAt: time.Date(2024, 5, 14, 10, 0, 0, 0, time.Local),
	}))
}

func TestOverzicht_ListSorteertAflopend(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	regels, err := o.overzicht.List(testUserID, testProjectID, "", nil)
	require.NoError(t, err)
	require.Len(t, regels, 3)

	assert.Equal(t, "2024-05-15", regels[0].Datum)
	assert.Equal(t, "2024-05-14", regels[1].Datum)
	assert.Equal(t, "2024-05-13", regels[2].Datum)
}

func TestOverzicht_ListFiltertOpType(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	regels, err := o.overzicht.List(testUserID, testProjectID, entity.KostenTypeMachine, nil)
	require.NoError(t, err)
	require.Len(t, regels, 1)
	assert.Equal(t, entity.KostenTypeMachine, regels[0].Type)
}

// Lezen is een pure afgeleide van de bronnen: twee keer lijsten zonder tussentijdse
// mutatie geeft hetzelfde resultaat.
func TestOverzicht_ListIsIdempotent(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	eerste, err := o.overzicht.List(testUserID, testProjectID, "", nil)
	require.NoError(t, err)
	tweede, err := o.overzicht.List(testUserID, testProjectID, "", nil)
	require.NoError(t, err)

	assert.Equal(t, eerste, tweede)
}

func TestOverzicht_TotalenSommerenPerType(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	totalen, err := o.overzicht.GetTotalen(testUserID, testProjectID, nil)
	require.NoError(t, err)

	assert.True(t, d("180").Equal(totalen.Arbeid), "arbeid: kreeg %s", totalen.Arbeid)
	assert.True(t, d("150").Equal(totalen.Machine), "machine: kreeg %s", totalen.Machine)
	assert.True(t, d("25").Equal(totalen.Materiaal), "materiaal: kreeg %s", totalen.Materiaal)
	assert.True(t, d("355").Equal(totalen.Totaal), "totaal: kreeg %s", totalen.Totaal)
	assert.True(t, d("4").Equal(totalen.ArbeidsUren))

	// Het eindtotaal is altijd de som van de drie typen.
	som := totalen.Arbeid.Add(totalen.Machine).Add(totalen.Materiaal)
	assert.True(t, som.Equal(totalen.Totaal))
}

func TestOverzicht_GroeperingPerScope(t *testing.T) {
	o := nieuweOmgeving(t)
	o.voegUrenToe(t, "Jan", "2024-05-13", "bestrating", "4")
	o.voegUrenToe(t, "Piet", "2024-05-13", "grondwerk", "2")
	o.voegUrenToe(t, "Jan", "2024-05-14", "bestrating", "3")

	perScope, err := o.overzicht.GetByScope(testUserID, testProjectID, nil)
	require.NoError(t, err)
	require.Len(t, perScope, 2)

	// Alfabetisch op scope.
	assert.Equal(t, "bestrating", perScope[0].Scope)
	assert.True(t, d("7").Equal(perScope[0].Uren))
	assert.True(t, d("315").Equal(perScope[0].Arbeid), "7u x 45: kreeg %s", perScope[0].Arbeid)
	assert.Equal(t, "grondwerk", perScope[1].Scope)
	assert.True(t, d("90").Equal(perScope[1].Arbeid))
}

func TestOverzicht_DagelijksOplopendGesorteerd(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	dagen, err := o.overzicht.GetDagelijksOverzicht(testUserID, testProjectID, nil)
	require.NoError(t, err)
	require.Len(t, dagen, 3)

	assert.Equal(t, "2024-05-13", dagen[0].Datum)
	assert.Equal(t, "2024-05-14", dagen[1].Datum)
	assert.Equal(t, "2024-05-15", dagen[2].Datum)
	assert.True(t, d("180").Equal(dagen[0].Arbeid))
	assert.True(t, d("25").Equal(dagen[1].Materiaal))
	assert.True(t, d("150").Equal(dagen[2].Machine))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorisatie
// ──────────────────────────────────────────────────────────────────────────────

// Lijstreads van andermans project degraderen naar leeg, zodat een dashboard met
// gemengde projectlijsten niet omvalt.
func TestOverzicht_AndermansProjectGeeftLegeLijst(t *testing.T) {
	o := nieuweOmgeving(t)
	vulGemengdProject(t, o)

	regels, err := o.overzicht.List(andereUserID, testProjectID, "", nil)
	require.NoError(t, err)
	assert.Empty(t, regels)

	totalen, err := o.overzicht.GetTotalen(andereUserID, testProjectID, nil)
	require.NoError(t, err)
	assert.True(t, totalen.Totaal.IsZero())

	perScope, err := o.overzicht.GetByScope(andereUserID, testProjectID, nil)
	require.NoError(t, err)
	assert.Empty(t, perScope)
}

func TestOverzicht_OnbekendProjectGeeftLegeLijst(t *testing.T) {
	o := nieuweOmgeving(t)

	regels, err := o.overzicht.List(testUserID, "bestaat-niet", "", nil)
	require.NoError(t, err)
	assert.Empty(t, regels)
}

// GetByID is geen lijstread en faalt dus expliciet.
func TestOverzicht_GetByIDFaaltGesloten(t *testing.T) {
	o := nieuweOmgeving(t)
	urenID := o.voegUrenToe(t, "Jan", "2024-05-13", "", "4")

	_, err := o.overzicht.GetByID(andereUserID, urenID, entity.KostenTypeArbeid)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = o.overzicht.GetByID(testUserID, "bestaat-niet", entity.KostenTypeArbeid)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = o.overzicht.GetByID(testUserID, urenID, "pauze")
	assert.ErrorIs(t, err, domain.ErrInvalidKostenType)
}

func TestOverzicht_GetByIDLevertRegel(t *testing.T) {
	o := nieuweOmgeving(t)
	urenID := o.voegUrenToe(t, "Jan", "2024-05-13", "bestrating", "4")

	regel, err := o.overzicht.GetByID(testUserID, urenID, entity.KostenTypeArbeid)
	require.NoError(t, err)
	require.NotNil(t, regel)
	assert.Equal(t, urenID, regel.ID)
	assert.True(t, d("180").Equal(regel.Totaal))
}

func TestOverzicht_UrenPerMedewerker(t *testing.T) {
	o := nieuweOmgeving(t)
	o.voegUrenToe(t, "Jan", "2024-05-13", "", "4")
	o.voegUrenToe(t, "Jan", "2024-05-14", "", "3.5")
	o.voegUrenToe(t, "Piet", "2024-05-13", "", "2")

	overzicht, err := o.projectOverzicht.GetProjectOverzicht(testUserID, testProjectID)
	require.NoError(t, err)

	require.Len(t, overzicht.UrenPerMedewerker, 2)
	assert.True(t, d("7.5").Equal(overzicht.UrenPerMedewerker["Jan"]))
	assert.True(t, d("2").Equal(overzicht.UrenPerMedewerker["Piet"]))
}
