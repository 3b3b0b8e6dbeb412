package dto

import "time"

// StockLevelResponse existencia actual de una variación en una sucursal.
type StockLevelResponse struct {
	VariationID string    `json:"variation_id"`
	LocationID  string    `json:"location_id"`
	Stock       int       `json:"stock"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StockLevelListResponse listado de existencias por sucursal.
type StockLevelListResponse struct {
	Items []StockLevelResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// AdjustmentResponse entrada de la bitácora de ajustes (solo lectura).
type AdjustmentResponse struct {
	ID            string    `json:"id"`
	TransferID    string    `json:"transfer_id"`
	ItemID        string    `json:"item_id"`
	ItemName      string    `json:"item_name"`
	VariationID   string    `json:"variation_id"`
	VariationName string    `json:"variation_name"`
	LocationID    string    `json:"location_id"`
	LocationName  string    `json:"location_name"`
	ChangeAmount  int       `json:"change_amount"`
	StockBefore   int       `json:"stock_before"`
	StockAfter    int       `json:"stock_after"`
	Reason        string    `json:"reason"`
	CreatedByID   string    `json:"created_by_id"`
	ApprovedByID  string    `json:"approved_by_id"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdjustmentListResponse listado paginado de ajustes.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
