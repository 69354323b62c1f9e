package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voorcalculatie is de budgetbaseline uit de offertecalculatie: geplande kosten en
// uren waartegen de werkelijke projectkosten worden afgezet. Wordt hier alleen
// gelezen; de calculatie-engine is eigenaar.
//
// Resolutie: primair op OfferteID; oudere records hangen direct aan een project
// (ProjectID gevuld, OfferteID leeg) en dienen als legacy fallback.
type Voorcalculatie struct {
	ID                    string
	OfferteID             string
	ProjectID             string
	ArbeidskostenTotaal   decimal.Decimal
	MateriaalkostenTotaal decimal.Decimal
	UrenTotaal            decimal.Decimal
	UrenPerScope          map[string]decimal.Decimal
	GeschatteDagen        decimal.Decimal
	CreatedAt             time.Time
}
