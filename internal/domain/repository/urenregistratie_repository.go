package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// UrenregistratieRepository definieert de persistentiepoort voor urenregistraties.
type UrenregistratieRepository interface {
	Create(reg *entity.Urenregistratie) error
	GetByID(id string) (*entity.Urenregistratie, error)
	Update(reg *entity.Urenregistratie) error
	Delete(id string) error
	ListByProject(projectID string) ([]*entity.Urenregistratie, error)
}
