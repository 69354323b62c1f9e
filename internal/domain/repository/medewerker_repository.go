package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// MedewerkerRepository definieert de leespoort voor medewerkers en hun tariefoverride.
type MedewerkerRepository interface {
	GetByNaam(userID, naam string) (*entity.Medewerker, error)
}
