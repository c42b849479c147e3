package xmlmanifest_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apppacking "github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/infrastructure/xmlmanifest"
)

func TestBuildManifest(t *testing.T) {
	data := &apppacking.BoxExport{
		Box: entity.BoxSummary{
			UID: "box-1", PartNumber: "BOX-2T", ShipdocNumber: "SD-1001",
			Status: entity.BoxStatusShipped, CurrentTray: 1, MaxTray: 2,
		},
		Shipdoc: entity.Shipdoc{UID: "sd-1", Number: "SD-1001", Contact: "J. Pérez"},
		Trays: []apppacking.TrayExport{
			{
				Tray: entity.TraySummary{UID: "tray-1", PartNumber: "TRAY-5D", CurrentDrive: 5, MaxDrive: 5},
				Lots: []entity.Lot{
					{UID: "lot-1", LotID: "ABC-1", Qty: 3},
					{UID: "lot-2", LotID: "ABC-2", Qty: 2},
				},
			},
		},
	}

	out, err := xmlmanifest.NewBuilder().BuildManifest(data)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "ShipmentManifest", root.Tag)
	assert.NotEmpty(t, root.SelectAttrValue("generated", ""))

	shipdoc := root.SelectElement("Shipdoc")
	require.NotNil(t, shipdoc)
	assert.Equal(t, "SD-1001", shipdoc.SelectAttrValue("number", ""))
	assert.Equal(t, "J. Pérez", shipdoc.SelectElement("Contact").Text())

	box := root.SelectElement("Box")
	require.NotNil(t, box)
	assert.Equal(t, "shipped", box.SelectAttrValue("status", ""))
	assert.Equal(t, "2", box.SelectElement("TrayCount").SelectAttrValue("max", ""))

	trays := box.SelectElement("Trays").SelectElements("Tray")
	require.Len(t, trays, 1)
	lots := trays[0].SelectElements("Lot")
	require.Len(t, lots, 2)
	assert.Equal(t, "ABC-1", lots[0].SelectAttrValue("id", ""))
	assert.Equal(t, "3", lots[0].SelectAttrValue("qty", ""))

	assert.Equal(t, "5", box.SelectElement("DriveTotal").Text())
}
