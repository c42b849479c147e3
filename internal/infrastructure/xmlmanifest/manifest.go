// Package xmlmanifest genera el manifiesto XML de despacho de una caja:
// el documento que acompaña al shipdoc con el árbol completo de bandejas y
// lotes. Solo una caja despachada tiene manifiesto.
package xmlmanifest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	apppacking "github.com/tu-usuario/packtrack-api/internal/application/packing"
)

// Builder implementa packing.ManifestBuilder con etree.
type Builder struct{}

var _ apppacking.ManifestBuilder = (*Builder)(nil)

// NewBuilder construye el generador de manifiestos.
func NewBuilder() *Builder { return &Builder{} }

// BuildManifest serializa el snapshot de la caja a XML indentado.
//
// Estructura del documento:
//
//	<ShipmentManifest generated="...">
//	  <Shipdoc number="..."><Contact>...</Contact></Shipdoc>
//	  <Box uid="..." partNumber="..." status="shipped">
//	    <TrayCount current="N" max="M"/>
//	    <Trays>
//	      <Tray uid="..." partNumber="..." maxDrive="M">
//	        <Lot uid="..." id="..." qty="N"/>
//	      </Tray>
//	    </Trays>
//	    <DriveTotal>N</DriveTotal>
//	  </Box>
//	</ShipmentManifest>
func (b *Builder) BuildManifest(data *apppacking.BoxExport) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ShipmentManifest")
	root.CreateAttr("generated", time.Now().UTC().Format(time.RFC3339))

	shipdoc := root.CreateElement("Shipdoc")
	shipdoc.CreateAttr("number", data.Shipdoc.Number)
	shipdoc.CreateElement("Contact").SetText(data.Shipdoc.Contact)

	box := root.CreateElement("Box")
	box.CreateAttr("uid", data.Box.UID)
	box.CreateAttr("partNumber", data.Box.PartNumber)
	box.CreateAttr("status", data.Box.Status)

	trayCount := box.CreateElement("TrayCount")
	trayCount.CreateAttr("current", strconv.Itoa(data.Box.CurrentTray))
	trayCount.CreateAttr("max", strconv.Itoa(data.Box.MaxTray))

	trays := box.CreateElement("Trays")
	for _, t := range data.Trays {
		tray := trays.CreateElement("Tray")
		tray.CreateAttr("uid", t.Tray.UID)
		tray.CreateAttr("partNumber", t.Tray.PartNumber)
		tray.CreateAttr("maxDrive", strconv.Itoa(t.Tray.MaxDrive))
		for _, l := range t.Lots {
			lot := tray.CreateElement("Lot")
			lot.CreateAttr("uid", l.UID)
			lot.CreateAttr("id", l.LotID)
			lot.CreateAttr("qty", strconv.Itoa(l.Qty))
		}
	}

	box.CreateElement("DriveTotal").SetText(strconv.Itoa(data.DriveTotal()))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlmanifest: serializar manifiesto: %w", err)
	}
	return out, nil
}
