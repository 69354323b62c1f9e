package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Urenregistratie representeert gewerkte uren van een medewerker op een project.
// Aangemaakt door de urenklok; hier gelezen voor de kostenweergave en eventueel
// handmatig aangemaakt via de mutatierouter.
type Urenregistratie struct {
	ID           string
	UserID       string
	ProjectID    string
	Medewerker   string
	Uren         decimal.Decimal
	Scope        string // werkcategorie, bv. "bestrating", "grondwerk"
	Datum        string // YYYY-MM-DD
	Omschrijving string
	CreatedAt    time.Time
}
