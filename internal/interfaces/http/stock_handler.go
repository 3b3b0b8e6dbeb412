package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/TallerStock-api/internal/application/dto"
	appstock "github.com/jhoicas/TallerStock-api/internal/application/stock"
	"github.com/jhoicas/TallerStock-api/internal/domain"
)

// StockHandler maneja las consultas de existencias y bitácora de ajustes (protegido).
// El stock nunca se escribe por aquí: toda mutación pasa por el motor de traslados.
type StockHandler struct {
	query *appstock.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *appstock.QueryUseCase) *StockHandler {
	return &StockHandler{query: query}
}

// ListLevels godoc
// @Summary      Existencias de una sucursal
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id   query  string  true   "Sucursal (UUID)"
// @Param        variation_id  query  string  false  "Si se indica, devuelve solo esa variación"
// @Success      200  {object}  dto.StockLevelListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) ListLevels(c *fiber.Ctx) error {
	locationID := c.Query("location_id")
	variationID := c.Query("variation_id")

	if variationID != "" {
		level, err := h.query.GetLevel(variationID, locationID)
		if err != nil {
			return stockError(c, err)
		}
		return c.JSON(dto.StockLevelResponse{
			VariationID: level.VariationID,
			LocationID:  level.LocationID,
			Stock:       level.Stock,
			UpdatedAt:   level.UpdatedAt,
		})
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.query.ListByLocation(locationID, page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	items := make([]dto.StockLevelResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.StockLevelResponse{
			VariationID: s.VariationID,
			LocationID:  s.LocationID,
			Stock:       s.Stock,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return c.JSON(dto.StockLevelListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// ListAdjustments godoc
// @Summary      Bitácora de ajustes de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        location_id  query  string  false  "Filtrar por sucursal"
// @Param        transfer_id  query  string  false  "Filtrar por traslado"
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/stock/adjustments [get]
func (h *StockHandler) ListAdjustments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	page.DefaultPage()
	list, err := h.query.ListAdjustments(c.Query("location_id"), c.Query("transfer_id"), page.Limit, page.Offset)
	if err != nil {
		return stockError(c, err)
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AdjustmentResponse{
			ID:            a.ID,
			TransferID:    a.TransferID,
			ItemID:        a.ItemID,
			ItemName:      a.ItemName,
			VariationID:   a.VariationID,
			VariationName: a.VariationName,
			LocationID:    a.LocationID,
			LocationName:  a.LocationName,
			ChangeAmount:  a.ChangeAmount,
			StockBefore:   a.StockBefore,
			StockAfter:    a.StockAfter,
			Reason:        a.Reason,
			CreatedByID:   a.CreatedByID,
			ApprovedByID:  a.ApprovedByID,
			Approved:      a.Approved,
			CreatedAt:     a.CreatedAt,
		})
	}
	return c.JSON(dto.AdjustmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// AdjustmentReport godoc
// @Summary      Exportar bitácora de una sucursal como PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        location_id  query  string  true  "Sucursal (UUID)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/adjustments/report [get]
func (h *StockHandler) AdjustmentReport(c *fiber.Ctx) error {
	pdfBytes, err := h.query.AdjustmentReportPDF(c.Context(), c.Query("location_id"))
	if err != nil {
		return stockError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ajustes.pdf"`)
	return c.Send(pdfBytes)
}

func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
