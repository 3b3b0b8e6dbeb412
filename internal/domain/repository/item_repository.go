package repository

import "github.com/jhoicas/TallerStock-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	List(limit, offset int) ([]*entity.Item, error)
}

// VariationRepository define el puerto de persistencia para Variation.
type VariationRepository interface {
	Create(variation *entity.Variation) error
	GetByID(id string) (*entity.Variation, error)
	ListByItem(itemID string) ([]*entity.Variation, error)
}
