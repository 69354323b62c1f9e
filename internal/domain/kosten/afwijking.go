// Package kosten bevat de domeinlogica voor budgetafwijkingen (domain service).
package kosten

import "github.com/shopspring/decimal"

// Statussen van de kostenvergelijking.
const (
	StatusOnderBudget = "onder_budget"
	StatusBinnenMarge = "binnen_marge"
	StatusOverBudget  = "over_budget"
)

// Statussen van de urenvergelijking (zelfde driedeling, eigen labels).
const (
	StatusOnderPlanning = "onder_planning"
	StatusOverPlanning  = "over_planning"
)

// marge is de tolerantie in procenten waarbinnen een overschrijding nog acceptabel is.
var marge = decimal.NewFromInt(10)

// honderd voor de percentageberekening.
var honderd = decimal.NewFromInt(100)

// Afwijking berekent de absolute en procentuele afwijking van actueel t.o.v. gepland.
// Percentage = (actueel - gepland) / gepland * 100, afgerond op 1 decimaal;
// bij gepland <= 0 is het percentage 0 (geen zinvolle referentie).
func Afwijking(actueel, gepland decimal.Decimal) (absoluut, percentage decimal.Decimal) {
	absoluut = actueel.Sub(gepland)
	if gepland.GreaterThan(decimal.Zero) {
		percentage = absoluut.Div(gepland).Mul(honderd).Round(1)
	} else {
		percentage = decimal.Zero
	}
	return absoluut, percentage
}

// BudgetStatus classificeert een procentuele kostenafwijking:
// <= 0 onder budget, 0 < x <= 10 binnen marge, > 10 over budget.
func BudgetStatus(percentage decimal.Decimal) string {
	switch {
	case percentage.LessThanOrEqual(decimal.Zero):
		return StatusOnderBudget
	case percentage.LessThanOrEqual(marge):
		return StatusBinnenMarge
	default:
		return StatusOverBudget
	}
}

// PlanningStatus classificeert een procentuele urenafwijking met dezelfde grenzen.
func PlanningStatus(percentage decimal.Decimal) string {
	switch {
	case percentage.LessThanOrEqual(decimal.Zero):
		return StatusOnderPlanning
	case percentage.LessThanOrEqual(marge):
		return StatusBinnenMarge
	default:
		return StatusOverPlanning
	}
}
