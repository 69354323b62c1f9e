package kosten_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain"
	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
	domeinkosten "github.com/RIBO420/offerte-builder-sub001/internal/domain/kosten"
)

func (o *omgeving) zetVoorcalculatie(vc *entity.Voorcalculatie) {
	if vc.OfferteID != "" {
		o.voorcalculatie.perOfferte[vc.OfferteID] = vc
	}
	if vc.ProjectID != "" {
		o.voorcalculatie.perProject[vc.ProjectID] = vc
	}
}

// Zonder voorcalculatie is het antwoord een verwachte uitkomst: Error gevuld,
// Data nil, geen foutreturn.
func TestBudget_GeenVoorcalculatie(t *testing.T) {
	o := nieuweOmgeving(t)

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Nil(t, resp.Data)
	assert.NotEmpty(t, resp.Error)
}

// De offertekoppeling gaat vóór de legacy projectkoppeling.
func TestBudget_OfferteGaatVoorProject(t *testing.T) {
	o := nieuweOmgeving(t)
	o.projecten.projecten[testProjectID].OfferteID = "offerte-1"
	o.voorcalculatie.perOfferte["offerte-1"] = &entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		OfferteID:           "offerte-1",
		ArbeidskostenTotaal: d("200"),
	}
	o.voorcalculatie.perProject[testProjectID] = &entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		ProjectID:           testProjectID,
		ArbeidskostenTotaal: d("999"),
	}

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.True(t, d("200").Equal(resp.Data.Arbeid.Gepland))
}

// Zonder offertetreffer valt de resolver terug op de projectkoppeling.
func TestBudget_LegacyProjectFallback(t *testing.T) {
	o := nieuweOmgeving(t)
	o.projecten.projecten[testProjectID].OfferteID = "offerte-zonder-calculatie"
	o.voorcalculatie.perProject[testProjectID] = &entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		ProjectID:           testProjectID,
		ArbeidskostenTotaal: d("300"),
	}

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.True(t, d("300").Equal(resp.Data.Arbeid.Gepland))
}

func TestBudget_AfwijkingEnStatussen(t *testing.T) {
	o := nieuweOmgeving(t)
	// Gepland: 100 arbeid + 0 materiaal; uren 4.
	o.zetVoorcalculatie(&entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		ProjectID:           testProjectID,
		ArbeidskostenTotaal: d("100"),
		UrenTotaal:          d("4"),
	})
	// Actueel: 2 uur x medewerkertarief 55 = 110 -> precies +10%.
	o.medewerkers.medewerkers["Jan"] = &entity.Medewerker{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		Naam:      "Jan",
		Uurtarief: dp("55"),
	}
	o.voegUrenToe(t, "Jan", "2024-05-13", "bestrating", "2")

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.True(t, d("10").Equal(resp.Data.Totaal.AfwijkingAbsoluut))
	assert.True(t, d("10").Equal(resp.Data.Totaal.AfwijkingPercentage))
	assert.Equal(t, domeinkosten.StatusBinnenMarge, resp.Data.KostenStatus, "een afwijking van precies de marge zit nog binnen budget")

	// 2 van 4 geplande uren -> -50% onder planning.
	assert.True(t, d("-50").Equal(resp.Data.Uren.AfwijkingPercentage))
	assert.Equal(t, domeinkosten.StatusOnderPlanning, resp.Data.UrenStatus)
}

func TestBudget_NetBovenDeMargeIsOverBudget(t *testing.T) {
	o := nieuweOmgeving(t)
	o.zetVoorcalculatie(&entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		ProjectID:           testProjectID,
		ArbeidskostenTotaal: d("100"),
	})
	o.medewerkers.medewerkers["Jan"] = &entity.Medewerker{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		Naam:      "Jan",
		Uurtarief: dp("110.1"),
	}
	o.voegUrenToe(t, "Jan", "2024-05-13", "", "1")

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.True(t, d("10.1").Equal(resp.Data.Totaal.AfwijkingPercentage))
	assert.Equal(t, domeinkosten.StatusOverBudget, resp.Data.KostenStatus)
}

// Machinekosten hebben geen geplande tegenhanger: gepland 0 en dus percentage 0,
// maar ze tellen niet mee in het geplande totaal.
func TestBudget_MachineZonderBaseline(t *testing.T) {
	o := nieuweOmgeving(t)
	o.zetVoorcalculatie(&entity.Voorcalculatie{
		ID:                  uuid.New().String(),
		ProjectID:           testProjectID,
		ArbeidskostenTotaal: d("100"),
	})
	machineID := o.voegMachineToe(t, "Kraan", "80", entity.TariefTypeUur)
	require.NoError(t, o.inzetten.Create(&entity.MachineInzet{
		ID:        uuid.New().String(),
		UserID:    testUserID,
		ProjectID: testProjectID,
		MachineID: machineID,
		Uren:      d("2"),
		Datum:     "2024-05-13",
		Kosten:    d("160"),
	}))

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	assert.True(t, resp.Data.Machine.Gepland.IsZero())
	assert.True(t, d("160").Equal(resp.Data.Machine.Actueel))
	assert.True(t, resp.Data.Machine.AfwijkingPercentage.IsZero())
	assert.True(t, d("100").Equal(resp.Data.Totaal.Gepland), "machines horen niet bij het geplande totaal")
}

// De scopevergelijking beslaat de unie van geplande en geregistreerde scopes.
func TestBudget_UrenPerScopeUnie(t *testing.T) {
	o := nieuweOmgeving(t)
	o.zetVoorcalculatie(&entity.Voorcalculatie{
		ID:         uuid.New().String(),
		ProjectID:  testProjectID,
		UrenTotaal: d("15"),
		UrenPerScope: map[string]decimal.Decimal{
			"bestrating": d("10"),
			"grondwerk":  d("5"),
		},
	})
	o.voegUrenToe(t, "Jan", "2024-05-13", "bestrating", "4")
	o.voegUrenToe(t, "Jan", "2024-05-14", "beplanting", "2")

	resp, err := o.budget.GetBudgetVergelijking(testUserID, testProjectID)
	require.NoError(t, err)
	require.NotNil(t, resp.Data)

	require.Len(t, resp.Data.UrenPerScope, 3)
	assert.True(t, d("4").Equal(resp.Data.UrenPerScope["bestrating"].Actueel))
	assert.True(t, d("10").Equal(resp.Data.UrenPerScope["bestrating"].Gepland))
	assert.True(t, resp.Data.UrenPerScope["grondwerk"].Actueel.IsZero())
	assert.True(t, resp.Data.UrenPerScope["beplanting"].Gepland.IsZero())
}

// De budgetvergelijking is geen lijstread en faalt gesloten.
func TestBudget_AndermansProjectFaalt(t *testing.T) {
	o := nieuweOmgeving(t)

	_, err := o.budget.GetBudgetVergelijking(andereUserID, testProjectID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
