package entity

import "github.com/shopspring/decimal"

// Kostentypes van een kostenregel (value object).
const (
	KostenTypeArbeid    = "arbeid"    // urenregistraties
	KostenTypeMachine   = "machine"   // machine-inzet
	KostenTypeMateriaal = "materiaal" // voorraadverbruik
	KostenTypeOverig    = "overig"
)

// Bronsoorten: de backing store waar een kostenregel uit voortkomt.
const (
	BronUrenregistratie = "urenregistratie"
	BronMachineInzet    = "machine_inzet"
	BronVoorraadMutatie = "voorraad_mutatie"
)

// Kostenregel is de genormaliseerde weergave van één kostencomponent van een project.
// Wordt bij elke leesactie opnieuw berekend uit de drie bronstores; wordt nooit gepersisteerd.
// Invariant: voor arbeid en materiaal geldt Totaal == (Aantal * Prijs).Round(2);
// voor machine is Totaal het bij aanmaak vastgelegde kostenbedrag.
type Kostenregel struct {
	ID           string
	Type         string // arbeid, machine, materiaal, overig
	Datum        string // YYYY-MM-DD
	Omschrijving string
	Scope        string
	Aantal       decimal.Decimal
	Eenheid      string // "uur", "dag", of de producteenheid
	Prijs        decimal.Decimal
	Totaal       decimal.Decimal
	BronSoort    string
	BronID       string
	Medewerker   string // alleen bij arbeid
	Notities     string
}
