package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/TallerStock-api/internal/application/dto"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
	"github.com/jhoicas/TallerStock-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items del catálogo y sus variaciones.
type ItemUseCase struct {
	itemRepo      repository.ItemRepository
	variationRepo repository.VariationRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository, variationRepo repository.VariationRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo, variationRepo: variationRepo}
}

// Create crea un nuevo item.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza un item.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista items con paginación.
func (uc *ItemUseCase) List(limit, offset int) (*dto.ItemListResponse, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.ItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateVariation crea una variación de un item existente.
func (uc *ItemUseCase) CreateVariation(itemID string, in dto.CreateVariationRequest) (*dto.VariationResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	variation := &entity.Variation{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Name:      in.Name,
		SKU:       in.SKU,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.variationRepo.Create(variation); err != nil {
		return nil, err
	}
	return toVariationResponse(variation), nil
}

// ListVariations lista las variaciones de un item.
func (uc *ItemUseCase) ListVariations(itemID string) ([]dto.VariationResponse, error) {
	list, err := uc.variationRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariationResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVariationResponse(v))
	}
	return items, nil
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toVariationResponse(v *entity.Variation) *dto.VariationResponse {
	if v == nil {
		return nil
	}
	return &dto.VariationResponse{
		ID:        v.ID,
		ItemID:    v.ItemID,
		Name:      v.Name,
		SKU:       v.SKU,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
