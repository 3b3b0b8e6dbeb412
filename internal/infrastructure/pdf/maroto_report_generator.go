// Package pdf implementa la exportación del historial de ajustes de stock de
// una sucursal como reporte PDF para el dashboard de staff.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + dirección  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Item / Variación | Cambio | Antes | Después │
//	│         | Motivo                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de ajustes y cambio neto                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appstock "github.com/jhoicas/TallerStock-api/internal/application/stock"
	"github.com/jhoicas/TallerStock-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 110, Blue: 50}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appstock.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa stock.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAdjustmentReport genera el PDF del historial de ajustes y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAdjustmentReport(
	_ context.Context,
	location *entity.Location,
	adjustments []*entity.StockAdjustmentView,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de Ajustes de Stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(location))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(adjustments) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(adjustments))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: sucursal (izq) y fecha de generación (der).
func headerRow(location *entity.Location) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("AJUSTES DE STOCK — "+location.Name, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(location.Address, "—"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ajustes.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Item / Variación", 3, align.Left),
		h("Cambio", 1, align.Right),
		h("Antes", 1, align.Right),
		h("Después", 1, align.Right),
		h("Motivo", 4, align.Left),
	)
}

// tableRows: una fila por ajuste, cambio en rojo (salida) o verde (entrada).
func tableRows(adjustments []*entity.StockAdjustmentView) []core.Row {
	result := make([]core.Row, 0, len(adjustments))
	for _, a := range adjustments {
		changeColor := colorGreen
		changeText := fmt.Sprintf("+%d", a.ChangeAmount)
		if a.ChangeAmount < 0 {
			changeColor = colorRed
			changeText = fmt.Sprintf("%d", a.ChangeAmount)
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				a.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				a.ItemName+" / "+a.VariationName,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				changeText,
				props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right, Top: 1, Right: 1, Color: changeColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.StockBefore),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", a.StockAfter),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				a.Reason,
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	return result
}

// summaryRow: total de ajustes listados y cambio neto de la sucursal.
func summaryRow(adjustments []*entity.StockAdjustmentView) core.Row {
	net := 0
	for _, a := range adjustments {
		net += a.ChangeAmount
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Ajustes listados: %d   |   Cambio neto: %+d unidades", len(adjustments), net), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
