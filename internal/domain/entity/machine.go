package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tariefsoorten van een machine.
const (
	TariefTypeUur = "uur"
	TariefTypeDag = "dag" // een dag telt als 8 uur
)

// Machine representeert een machine uit het wagenpark met het actuele tarief.
type Machine struct {
	ID         string
	UserID     string
	Naam       string
	Tarief     decimal.Decimal
	TariefType string // uur of dag
	CreatedAt  time.Time
}

// MachineInzet representeert het gebruik van een machine op een project.
// Kosten wordt bij aanmaak berekend uit het dan geldende tarief en daarna nooit
// herberekend; tariefwijzigingen raken bestaande inzetten niet.
type MachineInzet struct {
	ID        string
	UserID    string
	ProjectID string
	MachineID string
	Uren      decimal.Decimal
	Datum     string // YYYY-MM-DD
	Kosten    decimal.Decimal
	Notities  string
	CreatedAt time.Time
}

// BerekenInzetKosten berekent de kosten van een inzet volgens het tarieftype:
// uur -> uren * tarief; dag -> (uren / 8) * tarief.
func BerekenInzetKosten(uren, tarief decimal.Decimal, tariefType string) decimal.Decimal {
	if tariefType == TariefTypeDag {
		return uren.Div(decimal.NewFromInt(8)).Mul(tarief).Round(2)
	}
	return uren.Mul(tarief).Round(2)
}
