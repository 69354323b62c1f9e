package entity

import "time"

// Project representeert een project van een gebruiker. OfferteID koppelt het project
// aan de offerte waaruit de voorcalculatie komt; leeg bij handmatig aangemaakte projecten.
type Project struct {
	ID        string
	UserID    string
	Naam      string
	OfferteID string
	CreatedAt time.Time
}
