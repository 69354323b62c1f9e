// Package kosten bevat de kostenkern: bronadapters, de aggregator, de
// budgetvergelijking en de mutatierouter met voorraadcoördinatie.
package kosten

import (
	"time"

	"github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"
)

// Periode is een datumbereik van hele kalenderdagen, beide grenzen inclusief.
type Periode struct {
	Start string // YYYY-MM-DD
	Eind  string // YYYY-MM-DD
}

// BevatDag of de dag binnen de periode valt. Lexicografische vergelijking volstaat
// omdat YYYY-MM-DD-strings chronologisch sorteren.
func (p *Periode) BevatDag(datum string) bool {
	if p == nil {
		return true
	}
	return datum >= p.Start && datum <= p.Eind
}

// Tijdvenster vertaalt de periode naar [start 00:00, dag-na-eind 00:00) voor filtering
// op tijdstempels: de einddag telt daarmee volledig mee.
func (p *Periode) Tijdvenster() (van, tot time.Time, err error) {
	van, err = time.ParseInLocation("2006-01-02", p.Start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	tot, err = time.ParseInLocation("2006-01-02", p.Eind, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return van, tot.AddDate(0, 0, 1), nil
}

// KostenBron is de poort die elke bronadapter implementeert: één bron van ruwe
// registraties levert genormaliseerde kostenregels voor een project.
type KostenBron interface {
	MapToLineItems(projectID string, periode *Periode) ([]entity.Kostenregel, error)
}
