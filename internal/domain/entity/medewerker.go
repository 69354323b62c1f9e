package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medewerker representeert een medewerker met een optioneel eigen uurtarief.
// Uurtarief nil betekent: het bedrijfsbrede standaardtarief geldt.
type Medewerker struct {
	ID        string
	UserID    string
	Naam      string
	Uurtarief *decimal.Decimal
	CreatedAt time.Time
}
