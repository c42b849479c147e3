// Package pdf implementa la generación del packing list de una caja.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: PACKING LIST + part number  │  Shipdoc + Fecha     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CAJA: uid / estado / bandejas (actual/max)                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Bandeja | Part Number | Lote | Cantidad             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: bandejas / drives totales                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: código de barras del uid de la caja                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	apppacking "github.com/tu-usuario/packtrack-api/internal/application/packing"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPackingList implementa packing.PackingListGenerator usando Maroto v2.
type MarotoPackingList struct{}

var _ apppacking.PackingListGenerator = (*MarotoPackingList)(nil)

// NewMarotoPackingList construye el generador.
func NewMarotoPackingList() *MarotoPackingList { return &MarotoPackingList{} }

// GeneratePackingList genera el PDF y devuelve sus bytes.
func (g *MarotoPackingList) GeneratePackingList(data *apppacking.BoxExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Packing List "+data.Box.PartNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(boxRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(barcodeRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + part number (izq) y shipdoc + fecha (der).
func headerRow(data *apppacking.BoxExport) core.Row {
	fecha := data.Box.UpdatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("PACKING LIST", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Caja: "+data.Box.PartNumber, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("SHIPDOC "+data.Shipdoc.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Contacto: "+data.Shipdoc.Contact, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// boxRow: identificación y estado de la caja.
func boxRow(data *apppacking.BoxExport) core.Row {
	bandejas := fmt.Sprintf("Bandejas: %d / %d", data.Box.CurrentTray, data.Box.MaxTray)
	return row.New(10).Add(
		col.New(6).Add(
			text.New("UID: "+data.Box.UID, props.Text{Size: 8, Top: 1}),
			text.New("Estado: "+data.Box.Status, props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
		col.New(6).Add(
			text.New(bandejas, props.Text{Size: 9, Align: align.Right, Top: 2}),
		),
	)
}

// tableHeaderRow: encabezado de la tabla de contenido.
func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1, Left: 1,
		}))
	}
	return row.New(6).Add(
		header("Bandeja", 4),
		header("Part Number", 3),
		header("Lote", 3),
		header("Cant.", 2),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por lote; las bandejas vacías salen con una fila "(sin lotes)".
func tableRows(data *apppacking.BoxExport) []core.Row {
	var rows []core.Row
	cell := func(v string, size int, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Top: 1, Left: 1, Align: alignment,
		}))
	}
	for _, tray := range data.Trays {
		if len(tray.Lots) == 0 {
			rows = append(rows, row.New(5).Add(
				cell(tray.Tray.UID, 4, align.Left),
				cell(tray.Tray.PartNumber, 3, align.Left),
				cell("(sin lotes)", 3, align.Left),
				cell("0", 2, align.Right),
			))
			continue
		}
		for _, lot := range tray.Lots {
			rows = append(rows, row.New(5).Add(
				cell(tray.Tray.UID, 4, align.Left),
				cell(tray.Tray.PartNumber, 3, align.Left),
				cell(lot.LotID, 3, align.Left),
				cell(fmt.Sprintf("%d", lot.Qty), 2, align.Right),
			))
		}
	}
	return rows
}

// totalsRow: bandejas y drives totales de la caja.
func totalsRow(data *apppacking.BoxExport) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("Bandejas: %d", len(data.Trays)), props.Text{
				Size: 9, Align: align.Right, Top: 0,
			}),
			text.New(fmt.Sprintf("Drives totales: %d", data.DriveTotal()), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 4,
			}),
		),
	)
}

// barcodeRow: código de barras del uid para el escáner de la bodega.
func barcodeRow(data *apppacking.BoxExport) core.Row {
	return row.New(16).Add(
		col.New(3),
		col.New(6).Add(
			code.NewBar(data.Box.UID, props.Barcode{
				Percent: 80, Center: true,
			}),
		),
		col.New(3),
	)
}
