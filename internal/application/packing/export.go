package packing

import (
	"context"

	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
)

// BoxExport es el snapshot completo de una caja para los generadores de
// documentos: la caja con sus referencias resueltas, el shipdoc y el árbol de
// bandejas con sus lotes. Los agregados se derivan al momento del armado.
type BoxExport struct {
	Box     entity.BoxSummary
	Shipdoc entity.Shipdoc
	Trays   []TrayExport
}

// TrayExport una bandeja del snapshot con sus lotes.
type TrayExport struct {
	Tray entity.TraySummary
	Lots []entity.Lot
}

// DriveTotal suma los drives de todas las bandejas del snapshot.
func (e *BoxExport) DriveTotal() int {
	total := 0
	for _, t := range e.Trays {
		total += t.Tray.CurrentDrive
	}
	return total
}

// PackingListGenerator genera el packing list PDF de una caja.
type PackingListGenerator interface {
	GeneratePackingList(data *BoxExport) ([]byte, error)
}

// ManifestBuilder genera el manifiesto XML de despacho de una caja.
type ManifestBuilder interface {
	BuildManifest(data *BoxExport) ([]byte, error)
}

// ExportUseCase arma el snapshot de una caja y delega en los generadores.
type ExportUseCase struct {
	core     *ContainmentUseCase
	pdf      PackingListGenerator
	manifest ManifestBuilder
}

// NewExportUseCase construye el caso de uso de exportación.
func NewExportUseCase(core *ContainmentUseCase, pdf PackingListGenerator, manifest ManifestBuilder) *ExportUseCase {
	return &ExportUseCase{core: core, pdf: pdf, manifest: manifest}
}

// ExportPackingList genera el packing list PDF; disponible en cualquier estado.
func (uc *ExportUseCase) ExportPackingList(ctx context.Context, boxUID string) ([]byte, error) {
	data, err := uc.snapshot(boxUID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePackingList(data)
}

// ExportManifest genera el manifiesto XML de despacho. Solo una caja
// despachada tiene manifiesto: una activa devuelve ErrBoxNotShipped.
func (uc *ExportUseCase) ExportManifest(ctx context.Context, boxUID string) ([]byte, error) {
	data, err := uc.snapshot(boxUID)
	if err != nil {
		return nil, err
	}
	if data.Box.Status != entity.BoxStatusShipped {
		return nil, domain.ErrBoxNotShipped
	}
	return uc.manifest.BuildManifest(data)
}

// snapshot arma el BoxExport recorriendo el árbol completo de la caja.
func (uc *ExportUseCase) snapshot(boxUID string) (*BoxExport, error) {
	summary, err := uc.core.boxSummary(boxUID)
	if err != nil {
		return nil, err
	}
	box, err := uc.core.boxes.GetByID(boxUID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.ErrNotFound
	}
	shipdoc, err := uc.core.shipdocs.GetByID(box.ShipdocUID)
	if err != nil {
		return nil, err
	}
	if shipdoc == nil {
		return nil, domain.ErrNotFound
	}

	export := &BoxExport{Box: *summary, Shipdoc: *shipdoc}
	trayCount, err := uc.core.trays.CountPageRows(boxUID, "")
	if err != nil {
		return nil, err
	}
	if trayCount == 0 {
		return export, nil
	}
	trays, err := uc.core.trays.ListByBoxPage(boxUID, trayCount, 0, "")
	if err != nil {
		return nil, err
	}
	for _, t := range trays {
		lotCount, err := uc.core.lots.CountPageRows(t.UID, "")
		if err != nil {
			return nil, err
		}
		var lots []entity.Lot
		if lotCount > 0 {
			rows, err := uc.core.lots.ListByTrayPage(t.UID, lotCount, 0, "")
			if err != nil {
				return nil, err
			}
			lots = make([]entity.Lot, 0, len(rows))
			for _, l := range rows {
				lots = append(lots, *l)
			}
		}
		export.Trays = append(export.Trays, TrayExport{Tray: *t, Lots: lots})
	}
	return export, nil
}
