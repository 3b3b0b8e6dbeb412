package dto

import "time"

// CreateTransferRequest cuerpo para crear un traslado. El estado inicial es
// siempre pending y no se acepta del cliente.
type CreateTransferRequest struct {
	ItemID         string `json:"item_id" validate:"required,uuid"`
	VariationID    string `json:"variation_id" validate:"required,uuid"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	FromLocationID string `json:"from_location_id" validate:"required,uuid"`
	ToLocationID   string `json:"to_location_id" validate:"required,uuid"`
}

// UpdateTransferRequest campos de ruteo editables mientras el traslado está en pending.
type UpdateTransferRequest struct {
	VariationID    string `json:"variation_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
}

// TransitionStatusRequest cuerpo para transicionar el estado de un traslado.
type TransitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

// TransferResponse representación de un traslado.
type TransferResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	VariationID    string    `json:"variation_id"`
	Quantity       int       `json:"quantity"`
	FromLocationID string    `json:"from_location_id"`
	ToLocationID   string    `json:"to_location_id"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TransferViewResponse traslado con nombres resueltos para el dashboard.
type TransferViewResponse struct {
	TransferResponse
	ItemName         string `json:"item_name"`
	VariationName    string `json:"variation_name"`
	FromLocationName string `json:"from_location_name"`
	ToLocationName   string `json:"to_location_name"`
}

// TransferListResponse listado paginado de traslados.
type TransferListResponse struct {
	Items []TransferViewResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// TransitionResultResponse resultado estructurado de una transición de estado:
// qué rama se ejecutó y los deltas aplicados en origen y destino.
type TransitionResultResponse struct {
	TransferID       string `json:"transfer_id"`
	Outcome          string `json:"outcome"` // no_change | activated | reversed | status_only
	PreviousStatus   string `json:"previous_status"`
	NewStatus        string `json:"new_status"`
	SourceDelta      int    `json:"source_delta"`
	DestinationDelta int    `json:"destination_delta"`
}
