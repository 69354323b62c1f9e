package dto

import "github.com/shopspring/decimal"

// KostenregelDTO één genormaliseerde kostenregel van een project.
type KostenregelDTO struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Datum        string          `json:"datum"`
	Omschrijving string          `json:"omschrijving"`
	Scope        string          `json:"scope,omitempty"`
	Aantal       decimal.Decimal `json:"aantal"`
	Eenheid      string          `json:"eenheid"`
	Prijs        decimal.Decimal `json:"prijs"`
	Totaal       decimal.Decimal `json:"totaal"`
	BronSoort    string          `json:"bron_soort"`
	BronID       string          `json:"bron_id"`
	Medewerker   string          `json:"medewerker,omitempty"`
	Notities     string          `json:"notities,omitempty"`
}

// KostenTotalenDTO totalen per kostentype plus totale arbeidsuren.
type KostenTotalenDTO struct {
	Arbeid      decimal.Decimal `json:"arbeid"`
	Machine     decimal.Decimal `json:"machine"`
	Materiaal   decimal.Decimal `json:"materiaal"`
	Totaal      decimal.Decimal `json:"totaal"`
	ArbeidsUren decimal.Decimal `json:"arbeids_uren"`
}

// ScopeTotalenDTO totalen van één werkcategorie (scope).
type ScopeTotalenDTO struct {
	Scope     string          `json:"scope"`
	Arbeid    decimal.Decimal `json:"arbeid"`
	Machine   decimal.Decimal `json:"machine"`
	Materiaal decimal.Decimal `json:"materiaal"`
	Totaal    decimal.Decimal `json:"totaal"`
	Uren      decimal.Decimal `json:"uren"`
}

// DagTotalenDTO totalen van één kalenderdag.
type DagTotalenDTO struct {
	Datum     string          `json:"datum"`
	Arbeid    decimal.Decimal `json:"arbeid"`
	Machine   decimal.Decimal `json:"machine"`
	Materiaal decimal.Decimal `json:"materiaal"`
	Totaal    decimal.Decimal `json:"totaal"`
	Uren      decimal.Decimal `json:"uren"`
}

// AfwijkingDTO gepland vs. actueel met absolute en procentuele afwijking.
type AfwijkingDTO struct {
	Gepland             decimal.Decimal `json:"gepland"`
	Actueel             decimal.Decimal `json:"actueel"`
	AfwijkingAbsoluut   decimal.Decimal `json:"afwijking_absoluut"`
	AfwijkingPercentage decimal.Decimal `json:"afwijking_percentage"`
}

// BudgetVergelijkingDTO de volledige vergelijking van actuele kosten/uren met de voorcalculatie.
type BudgetVergelijkingDTO struct {
	Arbeid       AfwijkingDTO            `json:"arbeid"`
	Machine      AfwijkingDTO            `json:"machine"`
	Materiaal    AfwijkingDTO            `json:"materiaal"`
	Totaal       AfwijkingDTO            `json:"totaal"`
	Uren         AfwijkingDTO            `json:"uren"`
	KostenStatus string                  `json:"kosten_status"`
	UrenStatus   string                  `json:"uren_status"`
	UrenPerScope map[string]AfwijkingDTO `json:"uren_per_scope"`
}

// BudgetVergelijkingResponse omhult de vergelijking; zonder voorcalculatie is Data nil
// en bevat Error de reden. Dat is een verwachte uitkomst, geen fout.
type BudgetVergelijkingResponse struct {
	Error string                 `json:"error,omitempty"`
	Data  *BudgetVergelijkingDTO `json:"data"`
}

// ProjectOverzichtDTO samengesteld projectoverzicht voor het dashboard.
type ProjectOverzichtDTO struct {
	ProjectID         string                     `json:"project_id"`
	Totalen           KostenTotalenDTO           `json:"totalen"`
	PerScope          []ScopeTotalenDTO          `json:"per_scope"`
	Dagelijks         []DagTotalenDTO            `json:"dagelijks"`
	Budget            BudgetVergelijkingResponse `json:"budget"`
	UrenPerMedewerker map[string]decimal.Decimal `json:"uren_per_medewerker"`
}

// CreateKostenRequest invoer voor de mutatierouter bij aanmaken.
// Welke velden verplicht zijn hangt af van Type: arbeid vereist medewerker en uren;
// machine vereist machine_id en uren; materiaal vereist product_id en aantal.
type CreateKostenRequest struct {
	Type         string          `json:"type"`
	ProjectID    string          `json:"project_id"`
	Datum        string          `json:"datum"`
	Scope        string          `json:"scope"`
	Omschrijving string          `json:"omschrijving"`
	Medewerker   string          `json:"medewerker"`
	Uren         decimal.Decimal `json:"uren"`
	MachineID    string          `json:"machine_id"`
	ProductID    string          `json:"product_id"`
	Aantal       decimal.Decimal `json:"aantal"`
	Notities     string          `json:"notities"`
}

// UpdateKostenRequest invoer voor de mutatierouter bij bijwerken.
type UpdateKostenRequest struct {
	Type         string          `json:"type"`
	Datum        string          `json:"datum"`
	Scope        string          `json:"scope"`
	Omschrijving string          `json:"omschrijving"`
	Medewerker   string          `json:"medewerker"`
	Uren         decimal.Decimal `json:"uren"`
	Aantal       decimal.Decimal `json:"aantal"`
	Notities     string          `json:"notities"`
}
