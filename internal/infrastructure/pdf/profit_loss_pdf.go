// Package pdf genera el estado de resultados bruto en PDF para descarga.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │ Rango del reporte + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Unid. | Ingresos | Costo | Utilidad       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos / Costo de ventas / UTILIDAD BRUTA        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/jhoicas/kirana-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ProfitLossPDFGenerator genera el estado de resultados usando Maroto v2.
type ProfitLossPDFGenerator struct {
	storeName string
}

// NewProfitLossPDFGenerator construye el generador con el nombre de la tienda.
func NewProfitLossPDFGenerator(storeName string) *ProfitLossPDFGenerator {
	return &ProfitLossPDFGenerator{storeName: storeName}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *ProfitLossPDFGenerator) Generate(report *dto.ProfitLossReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de Resultados", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(report.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y rango + fecha de generación (der).
func (g *ProfitLossPDFGenerator) headerRow(report *dto.ProfitLossReport) core.Row {
	rango := "Todo el historial"
	if report.From != nil || report.To != nil {
		from, to := "inicio", "hoy"
		if report.From != nil {
			from = report.From.Format("02/01/2006")
		}
		if report.To != nil {
			to = report.To.Format("02/01/2006")
		}
		rango = from + " - " + to
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estado de Resultados Bruto", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERIODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla por producto.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Unid.", 2, align.Center),
		h("Ingresos", 2, align.Right),
		h("Costo", 2, align.Right),
		h("Utilidad", 2, align.Right),
	)
}

// tableLineRows: una fila por producto con ventas en el periodo.
func tableLineRows(lines []dto.ProfitLossLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.UnitsSold),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f", l.Revenue),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f", l.COGS),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%.2f", l.GrossProfit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(report *dto.ProfitLossReport) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Ingresos:", 2),
			label("Costo de ventas:", 9),
			grandLabel("UTILIDAD BRUTA:", 17),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%.2f", report.TotalRevenue), 2),
			value(fmt.Sprintf("%.2f", report.TotalCOGS), 9),
			grandValue(fmt.Sprintf("%.2f", report.TotalGrossProfit), 17),
		),
		col.New(2),
	)
}
