package repository

import "github.com/RIBO420/offerte-builder-sub001/internal/domain/entity"

// ProductRepository definieert de leespoort voor de productcatalogus (beheerd elders).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
}

// VoorraadItemRepository definieert de poort voor de voorraadstand per gebruiker+product.
// Binnen mutatietransacties gebruikt om consistentie te garanderen.
type VoorraadItemRepository interface {
	GetByProduct(userID, productID string) (*entity.VoorraadItem, error)
	// GetForUpdate blokkeert de rij voor update (SELECT FOR UPDATE).
	GetForUpdate(userID, productID string) (*entity.VoorraadItem, error)
	Upsert(item *entity.VoorraadItem) error
}

// VoorraadMutatieRepository definieert de persistentiepoort voor voorraadmutaties.
type VoorraadMutatieRepository interface {
	Create(mutatie *entity.VoorraadMutatie) error
	GetByID(id string) (*entity.VoorraadMutatie, error)
	Update(mutatie *entity.VoorraadMutatie) error
	Delete(id string) error
	ListByProject(projectID string) ([]*entity.VoorraadMutatie, error)
}
