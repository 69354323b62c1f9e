package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mutatietypes van voorraad.
const (
	MutatieTypeVerbruik = "verbruik" // afboeking op een project; telt mee in de kosten
	MutatieTypeInkoop   = "inkoop"   // aanvulling; telt niet mee in de kosten
)

// Product representeert een artikel uit de productcatalogus (beheerd elders).
type Product struct {
	ID          string
	UserID      string
	Naam        string
	Eenheid     string // bv. "stuk", "m2", "zak"
	Inkoopprijs decimal.Decimal
	CreatedAt   time.Time
}

// VoorraadItem is de actuele voorraadstand per product per gebruiker.
// Wordt uitsluitend via de voorraadcoördinator gemuteerd voor projectverbruik;
// lazy aangemaakt op nul als er nog geen stand bestaat.
type VoorraadItem struct {
	ID        string
	UserID    string
	ProductID string
	Aantal    decimal.Decimal
	UpdatedAt time.Time
}

// VoorraadMutatie representeert één voorraadbeweging gekoppeld aan precies één
// VoorraadItem. Aantal is signed: negatief = verbruik, positief = aanvulling.
type VoorraadMutatie struct {
	ID             string
	UserID         string
	ProjectID      string
	ProductID      string
	VoorraadItemID string
	Type           string // verbruik of inkoop
	Aantal         decimal.Decimal
	Notities       string
	CreatedAt      time.Time
}
