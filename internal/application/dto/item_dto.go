package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest cuerpo para crear un item del catálogo.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateItemRequest campos opcionales a actualizar.
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// ItemResponse representación de un item.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemListResponse listado paginado de items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateVariationRequest cuerpo para crear una variación de un item.
type CreateVariationRequest struct {
	Name string `json:"name" validate:"required"`
	SKU  string `json:"sku"`
}

// VariationResponse representación de una variación.
type VariationResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
