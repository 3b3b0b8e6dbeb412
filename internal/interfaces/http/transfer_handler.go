package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TallerStock-api/internal/application/dto"
	apptransfer "github.com/jhoicas/TallerStock-api/internal/application/transfer"
	"github.com/jhoicas/TallerStock-api/internal/domain"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

// TransferHandler maneja las peticiones HTTP de traslados (protegido).
type TransferHandler struct {
	crud       *apptransfer.TransferUseCase
	transition *apptransfer.TransitionStatusUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(crud *apptransfer.TransferUseCase, transition *apptransfer.TransitionStatusUseCase) *TransferHandler {
	return &TransferHandler{crud: crud, transition: transition}
}

// Create godoc
// @Summary      Crear traslado entre sucursales
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "item_id, variation_id, quantity, from_location_id, to_location_id"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.crud.Create(apptransfer.CreateTransferInput{
		ItemID:         in.ItemID,
		VariationID:    in.VariationID,
		Quantity:       in.Quantity,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransferResponse(t))
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (pending, in_progress, completed, cancelled)"
// @Success      200  {object}  dto.TransferListResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.crud.List(c.Query("status"), page.Limit, page.Offset)
	if err != nil {
		return transferError(c, err)
	}
	items := make([]dto.TransferViewResponse, 0, len(list))
	for _, tv := range list {
		items = append(items, dto.TransferViewResponse{
			TransferResponse: *toTransferResponse(&tv.Transfer),
			ItemName:         tv.ItemName,
			VariationName:    tv.VariationName,
			FromLocationName: tv.FromLocationName,
			ToLocationName:   tv.ToLocationName,
		})
	}
	return c.JSON(dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetByID godoc
// @Summary      Obtener traslado por ID
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	t, err := h.crud.GetByID(c.Params("id"))
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(toTransferResponse(t))
}

// Update godoc
// @Summary      Re-rutear traslado pendiente
// @Description  Permite cambiar variación y sucursales mientras el traslado sigue en pending.
//
//	La cantidad es inmutable y el estado solo cambia vía el endpoint de transición.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.UpdateTransferRequest  true  "variation_id, from_location_id, to_location_id"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [put]
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	t, err := h.crud.Update(c.Params("id"), apptransfer.UpdateTransferInput{
		VariationID:    in.VariationID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
	})
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(toTransferResponse(t))
}

// Delete godoc
// @Summary      Eliminar traslado
// @Description  Solo se permite si ningún ajuste de stock referencia al traslado.
// @Tags         transfers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del traslado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	if err := h.crud.Delete(c.Context(), c.Params("id")); err != nil {
		return transferError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// TransitionStatus godoc
// @Summary      Transicionar estado de un traslado
// @Description  Completar un traslado mueve el stock de origen a destino; sacarlo de
//
//	completed lo devuelve. Cualquier otra transición solo cambia el campo
//	estado. Todo ocurre en una única transacción.
//
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.TransitionStatusRequest  true  "status destino"
// @Success      200  {object}  dto.TransitionResultResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/status [put]
func (h *TransferHandler) TransitionStatus(c *fiber.Ctx) error {
	actorID := GetUserID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransitionStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.transition.TransitionStatus(c.Context(), c.Params("id"), in.Status, actorID)
	if err != nil {
		return transferError(c, err)
	}
	return c.JSON(dto.TransitionResultResponse{
		TransferID:       res.TransferID,
		Outcome:          string(res.Outcome),
		PreviousStatus:   string(res.PreviousStatus),
		NewStatus:        string(res.NewStatus),
		SourceDelta:      res.SourceDelta,
		DestinationDelta: res.DestinationDelta,
	})
}

// transferError mapea errores de dominio a códigos HTTP.
func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de traslado no reconocido"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "actor no resoluble o inactivo"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en sucursal origen"})
	case errors.Is(err, domain.ErrInsufficientStockForReversal):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK_FOR_REVERSAL", Message: "stock insuficiente en destino para revertir"})
	case errors.Is(err, domain.ErrHasAdjustments):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_ADJUSTMENTS", Message: "el traslado tiene ajustes de stock asociados"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toTransferResponse(t *entity.Transfer) *dto.TransferResponse {
	if t == nil {
		return nil
	}
	return &dto.TransferResponse{
		ID:             t.ID,
		ItemID:         t.ItemID,
		VariationID:    t.VariationID,
		Quantity:       t.Quantity,
		FromLocationID: t.FromLocationID,
		ToLocationID:   t.ToLocationID,
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
