package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// MachineRepository definieert de leespoort voor machines (wagenparkbeheer is elders).
type MachineRepository interface {
	GetByID(id string) (*entity.Machine, error)
}

// MachineInzetRepository definieert de persistentiepoort voor machine-inzetten.
type MachineInzetRepository interface {
	Create(inzet *entity.MachineInzet) error
	GetByID(id string) (*entity.MachineInzet, error)
	Update(inzet *entity.MachineInzet) error
	Delete(id string) error
	ListByProject(projectID string) ([]*entity.MachineInzet, error)
}
