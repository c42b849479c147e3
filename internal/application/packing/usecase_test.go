package packing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/pkg/uid"
)

// fixture arma el núcleo sobre fakes en memoria con los registros de
// referencia del escenario de planta: caja de 2 bandejas, bandeja de 5 drives.
type fixture struct {
	uc    *packing.ContainmentUseCase
	store *memStore
	inv   *recordingInvalidator
}

func newFixture(t *testing.T, rules packing.Rules) *fixture {
	t.Helper()
	if rules.ItemsPerPage == 0 {
		rules.ItemsPerPage = 10
	}
	store := newMemStore()
	inv := &recordingInvalidator{}
	uc := packing.NewContainmentUseCase(
		&memTxRunner{store},
		&memBoxRepo{store},
		&memTrayRepo{store},
		&memLotRepo{store},
		&memBoxTypeRepo{store},
		&memTrayTypeRepo{store},
		&memShipdocRepo{store},
		uid.New("test-namespace"),
		inv,
		rules,
	)

	now := time.Now()
	store.boxTypes["bt-1"] = &entity.BoxType{
		UID: "bt-1", PartNumber: "BOX-2T", MaxTray: 2, CreatedAt: now, UpdatedAt: now,
	}
	store.trayTypes["tt-1"] = &entity.TrayType{
		UID: "tt-1", PartNumber: "TRAY-5D", MaxDrive: 5, CreatedAt: now, UpdatedAt: now,
	}
	store.shipdocs["sd-1"] = &entity.Shipdoc{
		UID: "sd-1", Number: "SD-1001", Contact: "J. Pérez", CreatedAt: now, UpdatedAt: now,
	}
	return &fixture{uc: uc, store: store, inv: inv}
}

func (f *fixture) mustCreateBox(t *testing.T) string {
	t.Helper()
	box, err := f.uc.CreateBox(context.Background(), dto.CreateBoxRequest{
		BoxPartNumber: "BOX-2T", ShipdocNumber: "SD-1001",
	})
	require.NoError(t, err)
	return box.UID
}

func (f *fixture) mustCreateTray(t *testing.T, boxUID string) string {
	t.Helper()
	tray, err := f.uc.CreateTray(context.Background(), boxUID, dto.CreateTrayRequest{
		TrayPartNumber: "TRAY-5D",
	})
	require.NoError(t, err)
	return tray.UID
}

func (f *fixture) mustCreateLot(t *testing.T, trayUID, lotID string, qty int) string {
	t.Helper()
	lot, err := f.uc.CreateLot(context.Background(), trayUID, dto.CreateLotRequest{
		LotID: lotID, Qty: qty,
	})
	require.NoError(t, err)
	return lot.UID
}

// ──────────────────────────────────────────────────────────────────────────────
// Box
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateBox(t *testing.T) {
	f := newFixture(t, packing.Rules{})

	box, err := f.uc.CreateBox(context.Background(), dto.CreateBoxRequest{
		BoxPartNumber: "BOX-2T", ShipdocNumber: "SD-1001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, box.UID)
	assert.Equal(t, entity.BoxStatusActive, box.Status, "una caja nace activa")
	assert.Equal(t, 0, box.CurrentTray, "una caja nace vacía")
	assert.Equal(t, 2, box.MaxTray)
	assert.Equal(t, "SD-1001", box.ShipdocNumber)
	assert.True(t, f.inv.has("box:"), "la mutación debe publicar la señal de invalidación")
}

func TestCreateBox_ReferenciaInexistente(t *testing.T) {
	f := newFixture(t, packing.Rules{})

	_, err := f.uc.CreateBox(context.Background(), dto.CreateBoxRequest{
		BoxPartNumber: "NO-EXISTE", ShipdocNumber: "SD-1001",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.CreateBox(context.Background(), dto.CreateBoxRequest{
		BoxPartNumber: "BOX-2T", ShipdocNumber: "NO-EXISTE",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBox_CamposRequeridos(t *testing.T) {
	f := newFixture(t, packing.Rules{})

	_, err := f.uc.CreateBox(context.Background(), dto.CreateBoxRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "box_part_number")
	assert.Contains(t, verr.Fields, "shipdoc_number")
}

func TestDeleteBox_IncondicionalConCascada(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	f.mustCreateLot(t, trayUID, "LOT-A", 3)

	// despachada y con contenido: el borrado igual procede
	_, err := f.uc.ShipBox(context.Background(), boxUID)
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteBox(context.Background(), boxUID))
	assert.Empty(t, f.store.boxes)
	assert.Empty(t, f.store.trays, "la cascada se lleva las bandejas")
	assert.Empty(t, f.store.lots, "la cascada se lleva los lotes")
}

// ──────────────────────────────────────────────────────────────────────────────
// Capacidad de caja (bandejas)
// ──────────────────────────────────────────────────────────────────────────────

// Por defecto la capacidad de bandejas es solo una guía: el servidor acepta la
// tercera bandeja en una caja de 2, como hacía el sistema anterior.
func TestCreateTray_CapacidadNoForzadaPorDefecto(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)

	f.mustCreateTray(t, boxUID)
	f.mustCreateTray(t, boxUID)
	f.mustCreateTray(t, boxUID) // 3ra bandeja en caja de 2: pasa

	count := 0
	for _, tr := range f.store.trays {
		if tr.BoxUID == boxUID {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestCreateTray_CapacidadForzada(t *testing.T) {
	f := newFixture(t, packing.Rules{EnforceBoxCapacity: true})
	boxUID := f.mustCreateBox(t)

	f.mustCreateTray(t, boxUID)
	f.mustCreateTray(t, boxUID)

	_, err := f.uc.CreateTray(context.Background(), boxUID, dto.CreateTrayRequest{
		TrayPartNumber: "TRAY-5D",
	})
	assert.ErrorIs(t, err, domain.ErrBoxCapacity, "con el flag, la 3ra bandeja en caja de 2 se rechaza")
}

func TestCreateTray_CajaInexistente(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	_, err := f.uc.CreateTray(context.Background(), "no-existe", dto.CreateTrayRequest{
		TrayPartNumber: "TRAY-5D",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Capacidad de bandeja (drives)
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de planta: bandeja de 5. Lote de 3 entra, segundo lote de 3 se
// rechaza (6 > 5), lote de 2 llena exacto.
func TestCreateLot_CapacidadDeBandeja(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)

	f.mustCreateLot(t, trayUID, "LOT-A", 3)

	_, err := f.uc.CreateLot(context.Background(), trayUID, dto.CreateLotRequest{
		LotID: "LOT-B", Qty: 3,
	})
	assert.ErrorIs(t, err, domain.ErrTrayCapacity, "3+3 supera la bandeja de 5")

	f.mustCreateLot(t, trayUID, "LOT-B", 2) // 3+2 = 5 exacto

	tray, err := f.uc.GetTray(context.Background(), trayUID)
	require.NoError(t, err)
	assert.Equal(t, 5, tray.CurrentDrive, "el total se deriva de los lotes")
}

func TestCreateLot_CantidadInvalida(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)

	for _, qty := range []int{0, -1} {
		_, err := f.uc.CreateLot(context.Background(), trayUID, dto.CreateLotRequest{
			LotID: "LOT-X", Qty: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// La edición no re-valida capacidad por defecto: asimetría heredada del
// sistema anterior, preservada detrás del flag.
func TestUpdateLot_SinRevalidacionPorDefecto(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	lotUID := f.mustCreateLot(t, trayUID, "LOT-A", 3)

	lot, err := f.uc.UpdateLot(context.Background(), lotUID, dto.UpdateLotRequest{Qty: 9})
	require.NoError(t, err, "sin el flag, sobrepasar la capacidad editando es legal")
	assert.Equal(t, 9, lot.Qty)
}

func TestUpdateLot_ConRevalidacion(t *testing.T) {
	f := newFixture(t, packing.Rules{EnforceUpdateCapacity: true})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	lotUID := f.mustCreateLot(t, trayUID, "LOT-A", 3)
	f.mustCreateLot(t, trayUID, "LOT-B", 2)

	// total 5; editar el de 3 a 4 daría 6 > 5
	_, err := f.uc.UpdateLot(context.Background(), lotUID, dto.UpdateLotRequest{Qty: 4})
	assert.ErrorIs(t, err, domain.ErrTrayCapacity)

	// editar el de 3 a 2 da 4: el total reemplaza, no suma
	lot, err := f.uc.UpdateLot(context.Background(), lotUID, dto.UpdateLotRequest{Qty: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, lot.Qty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Despacho
// ──────────────────────────────────────────────────────────────────────────────

// Los mensajes de la guarda son contractuales y se reportan en orden:
// primero bandejas, después drives.
func TestShipBox_Guarda(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)

	_, err := f.uc.ShipBox(context.Background(), boxUID)
	assert.EqualError(t, err, "Box current tray count is zero.")

	trayUID := f.mustCreateTray(t, boxUID)
	_, err = f.uc.ShipBox(context.Background(), boxUID)
	assert.EqualError(t, err, "Box current drive count is zero.")

	f.mustCreateLot(t, trayUID, "LOT-A", 1)
	res, err := f.uc.ShipBox(context.Background(), boxUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoxStatusShipped, res.Status)
}

func TestShipBox_BloqueaMutacionesDeLotes(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	lotUID := f.mustCreateLot(t, trayUID, "LOT-A", 2)

	_, err := f.uc.ShipBox(context.Background(), boxUID)
	require.NoError(t, err)

	_, err = f.uc.CreateLot(context.Background(), trayUID, dto.CreateLotRequest{LotID: "LOT-B", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrBoxShipped, "alta de lote bajo caja despachada")

	_, err = f.uc.UpdateLot(context.Background(), lotUID, dto.UpdateLotRequest{Qty: 3})
	assert.ErrorIs(t, err, domain.ErrBoxShipped, "edición de lote bajo caja despachada")

	err = f.uc.DeleteLot(context.Background(), lotUID)
	assert.ErrorIs(t, err, domain.ErrBoxShipped, "borrado de lote bajo caja despachada")
}

func TestUndoShipBox_ReabreLaCaja(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	f.mustCreateLot(t, trayUID, "LOT-A", 2)

	_, err := f.uc.ShipBox(context.Background(), boxUID)
	require.NoError(t, err)

	res, err := f.uc.UndoShipBox(context.Background(), boxUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BoxStatusActive, res.Status)

	// la caja vuelve a ser mutable
	f.mustCreateLot(t, trayUID, "LOT-B", 1)
}

func TestShipBox_CajaInexistente(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	_, err := f.uc.ShipBox(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.UndoShipBox(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestListBoxes_Paginacion(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	for i := 0; i < 5; i++ {
		f.mustCreateBox(t)
	}

	page, err := f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 2, CurrentPage: 1}, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Page.TotalPages, "5 filas / 2 por página = 3 páginas")

	// última página parcial
	page, err = f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 2, CurrentPage: 3}, "")
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	// página fuera de rango devuelve vacío, no error
	page, err = f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 2, CurrentPage: 9}, "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	// página 0 o negativa se normaliza a 1
	page, err = f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 2, CurrentPage: -3}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page.CurrentPage)
	assert.Len(t, page.Items, 2)
}

// setBoxUpdatedAt fija el timestamp de actualización directamente en el store
// para controlar el orden de los listados.
func (f *fixture) setBoxUpdatedAt(boxUID string, at time.Time) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.boxes[boxUID].UpdatedAt = at
}

func TestListBoxes_OrdenPorActualizacion(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	uids := make([]string, 4)
	for i := range uids {
		uids[i] = f.mustCreateBox(t)
	}

	// La más recientemente tocada sale primero; timestamps iguales desempatan
	// por uid ascendente.
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.setBoxUpdatedAt(uids[0], base.Add(1*time.Minute))
	f.setBoxUpdatedAt(uids[1], base.Add(3*time.Minute))
	f.setBoxUpdatedAt(uids[2], base.Add(2*time.Minute))
	f.setBoxUpdatedAt(uids[3], base.Add(2*time.Minute))

	empatePrimero, empateSegundo := uids[2], uids[3]
	if empateSegundo < empatePrimero {
		empatePrimero, empateSegundo = empateSegundo, empatePrimero
	}
	want := []string{uids[1], empatePrimero, empateSegundo, uids[0]}

	page, err := f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 4, CurrentPage: 1}, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 4)
	for i, it := range page.Items {
		assert.Equal(t, want[i], it.UID, "posición %d", i)
	}

	// La página 2 de tamaño 2 corresponde a las filas 3-4 del mismo orden.
	page, err = f.uc.ListBoxes(context.Background(), dto.PageRequest{ItemsPerPage: 2, CurrentPage: 2}, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, want[2], page.Items[0].UID)
	assert.Equal(t, want[3], page.Items[1].UID)
}

func TestListBoxes_ScopeDeEstado(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	shippedUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, shippedUID)
	f.mustCreateLot(t, trayUID, "LOT-A", 1)
	_, err := f.uc.ShipBox(context.Background(), shippedUID)
	require.NoError(t, err)
	f.mustCreateBox(t) // queda activa

	active, err := f.uc.ListBoxes(context.Background(), dto.PageRequest{}, entity.BoxStatusActive)
	require.NoError(t, err)
	require.Len(t, active.Items, 1)
	assert.Equal(t, entity.BoxStatusActive, active.Items[0].Status)

	shipped, err := f.uc.ListBoxes(context.Background(), dto.PageRequest{}, entity.BoxStatusShipped)
	require.NoError(t, err)
	require.Len(t, shipped.Items, 1)
	assert.Equal(t, shippedUID, shipped.Items[0].UID)

	all, err := f.uc.ListBoxes(context.Background(), dto.PageRequest{}, "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	_, err = f.uc.ListBoxes(context.Background(), dto.PageRequest{}, "basura")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListTrays_AgregadosDerivados(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	f.mustCreateLot(t, trayUID, "LOT-A", 3)
	f.mustCreateLot(t, trayUID, "LOT-B", 2)

	page, err := f.uc.ListTrays(context.Background(), boxUID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 5, page.Items[0].CurrentDrive, "sum(lot_qty) derivado en la consulta")
	assert.Equal(t, 5, page.Items[0].MaxDrive)

	// al borrar un lote el agregado refleja las filas fuente
	lots, err := f.uc.ListLots(context.Background(), trayUID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, lots.Items, 2)
	require.NoError(t, f.uc.DeleteLot(context.Background(), lots.Items[0].UID))

	page, err = f.uc.ListTrays(context.Background(), boxUID, dto.PageRequest{})
	require.NoError(t, err)
	assert.Less(t, page.Items[0].CurrentDrive, 5)
}

func TestListLots_FiltroPorLotID(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	f.mustCreateLot(t, trayUID, "ABC-1", 1)
	f.mustCreateLot(t, trayUID, "XYZ-9", 1)

	page, err := f.uc.ListLots(context.Background(), trayUID, dto.PageRequest{Query: "abc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "ABC-1", page.Items[0].LotID)
}

func TestDeleteTray_Incondicional(t *testing.T) {
	f := newFixture(t, packing.Rules{})
	boxUID := f.mustCreateBox(t)
	trayUID := f.mustCreateTray(t, boxUID)
	f.mustCreateLot(t, trayUID, "LOT-A", 2)

	require.NoError(t, f.uc.DeleteTray(context.Background(), trayUID))
	assert.Empty(t, f.store.lots, "la cascada se lleva los lotes de la bandeja")
}
