// Package pdf renders the printable sold-records report with Maroto v2.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Warehouse name + location  │  Report date          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Date | Product | Qty | Unit price | SIV | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: units sold / total sales value                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/reports"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

var _ reports.SoldRecordsPDFGenerator = (*MarotoSoldRecordsGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoSoldRecordsGenerator renders reports.SoldRecordRow slices as a PDF.
type MarotoSoldRecordsGenerator struct{}

func NewMarotoSoldRecordsGenerator() *MarotoSoldRecordsGenerator {
	return &MarotoSoldRecordsGenerator{}
}

// GenerateSoldRecordsPDF renders the report and returns its bytes.
func (g *MarotoSoldRecordsGenerator) GenerateSoldRecordsPDF(
	_ context.Context,
	warehouse *entity.Warehouse,
	rows []reports.SoldRecordRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sold Records", true).
		WithAuthor(warehouse.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(warehouse, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: warehouse identity on the left, report metadata on the right.
func headerRow(warehouse *entity.Warehouse, count int) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(warehouse.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(warehouse.Location, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SOLD RECORDS", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d sales listed", count), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: column labels for the sales table.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date", 2, align.Left),
		h("Product", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Unit price", 2, align.Right),
		h("SIV N°", 1, align.Center),
		h("Total", 2, align.Right),
	)
}

// tableRows: one row per sale movement.
func tableRows(records []reports.SoldRecordRow) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		name, unitPrice := "(deleted product)", decimal.Zero
		if r.Product != nil {
			name, unitPrice = r.Product.Name, r.Product.UnitPrice
		}
		total := unitPrice.Mul(r.Movement.Quantity)

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				r.Movement.CreatedAt.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Movement.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				unitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				r.Movement.Reference,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: units sold and total sales value, right aligned.
func totalsRow(records []reports.SoldRecordRow) core.Row {
	units, value := decimal.Zero, decimal.Zero
	for _, r := range records {
		units = units.Add(r.Movement.Quantity)
		if r.Product != nil {
			value = value.Add(r.Product.UnitPrice.Mul(r.Movement.Quantity))
		}
	}

	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(1).Add(text.New(units.StringFixed(0), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 2,
		})),
		col.New(3).Add(text.New(value.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
