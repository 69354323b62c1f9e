package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// ProjectRepository definieert de persistentiepoort voor Project (alleen lezen hier;
// projectbeheer is eigendom van een ander deelsysteem).
type ProjectRepository interface {
	GetByID(id string) (*entity.Project, error)
}
