package packing

import (
	"context"
	"time"

	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	domainpacking "github.com/tu-usuario/packtrack-api/internal/domain/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
	"github.com/tu-usuario/packtrack-api/pkg/uid"
)

// Rules parametriza el enforcement del núcleo. Los defaults (todo false)
// replican el comportamiento del sistema de planta anterior: la capacidad de
// bandejas por caja era solo una guía de UI y la edición de lotes no
// re-validaba capacidad.
type Rules struct {
	EnforceBoxCapacity    bool
	EnforceUpdateCapacity bool
	ItemsPerPage          int
}

// ContainmentUseCase es el núcleo de contención: alta y baja de cajas,
// bandejas y lotes con las reglas de capacidad y el gate de estado de la caja.
// Toda mutación que depende de totales derivados corre dentro de una
// transacción con la fila de la caja bloqueada; los totales se recalculan de
// las filas fuente en ese momento.
type ContainmentUseCase struct {
	txRunner    TxRunner
	boxes       repository.BoxRepository
	trays       repository.TrayRepository
	lots        repository.LotRepository
	boxTypes    repository.BoxTypeRepository
	trayTypes   repository.TrayTypeRepository
	shipdocs    repository.ShipdocRepository
	uids        *uid.Generator
	invalidator Invalidator
	rules       Rules
}

// NewContainmentUseCase construye el núcleo.
func NewContainmentUseCase(
	txRunner TxRunner,
	boxes repository.BoxRepository,
	trays repository.TrayRepository,
	lots repository.LotRepository,
	boxTypes repository.BoxTypeRepository,
	trayTypes repository.TrayTypeRepository,
	shipdocs repository.ShipdocRepository,
	uids *uid.Generator,
	invalidator Invalidator,
	rules Rules,
) *ContainmentUseCase {
	return &ContainmentUseCase{
		txRunner:    txRunner,
		boxes:       boxes,
		trays:       trays,
		lots:        lots,
		boxTypes:    boxTypes,
		trayTypes:   trayTypes,
		shipdocs:    shipdocs,
		uids:        uids,
		invalidator: invalidator,
		rules:       rules,
	}
}

// ── Box ───────────────────────────────────────────────────────────────────────

// CreateBox crea una caja activa resolviendo el tipo y el shipdoc por sus
// claves de negocio. Una caja nace vacía: no hay precondición de capacidad.
func (uc *ContainmentUseCase) CreateBox(ctx context.Context, in dto.CreateBoxRequest) (*dto.BoxResponse, error) {
	fields := domain.FieldErrors{}
	if in.BoxPartNumber == "" {
		fields.Add("box_part_number", "part number de caja es requerido")
	}
	if in.ShipdocNumber == "" {
		fields.Add("shipdoc_number", "número de shipdoc es requerido")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	boxType, err := uc.boxTypes.GetByPartNumber(in.BoxPartNumber)
	if err != nil {
		return nil, err
	}
	if boxType == nil {
		return nil, domain.ErrNotFound
	}
	shipdoc, err := uc.shipdocs.GetByNumber(in.ShipdocNumber)
	if err != nil {
		return nil, err
	}
	if shipdoc == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	box := &entity.Box{
		UID:        uc.uids.ForKey("box:"+boxType.PartNumber+":"+shipdoc.Number, now),
		BoxTypeUID: boxType.UID,
		ShipdocUID: shipdoc.UID,
		Status:     entity.BoxStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.boxes.Create(box); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(InvBox, "")
	return &dto.BoxResponse{
		UID:           box.UID,
		PartNumber:    boxType.PartNumber,
		ShipdocNumber: shipdoc.Number,
		Status:        box.Status,
		CurrentTray:   0,
		MaxTray:       boxType.MaxTray,
		CreatedAt:     box.CreatedAt,
		UpdatedAt:     box.UpdatedAt,
	}, nil
}

// DeleteBox elimina la caja sin condiciones; la cascada de FK se lleva
// bandejas y lotes. Se conserva el contrato del sistema anterior: ni el estado
// ni el contenido bloquean el borrado.
func (uc *ContainmentUseCase) DeleteBox(ctx context.Context, boxUID string) error {
	box, err := uc.boxes.GetByID(boxUID)
	if err != nil {
		return err
	}
	if box == nil {
		return domain.ErrNotFound
	}
	if err := uc.boxes.Delete(boxUID); err != nil {
		return err
	}
	uc.invalidator.Invalidate(InvBox, "")
	return nil
}

// ── Tray ──────────────────────────────────────────────────────────────────────

// CreateTray crea una bandeja bajo la caja resolviendo el tipo por part number.
// La capacidad de la caja solo se verifica en el servidor con
// Rules.EnforceBoxCapacity; sin el flag la UI sigue siendo la única barrera,
// como en el sistema anterior.
func (uc *ContainmentUseCase) CreateTray(ctx context.Context, boxUID string, in dto.CreateTrayRequest) (*dto.TrayResponse, error) {
	fields := domain.FieldErrors{}
	if boxUID == "" {
		fields.Add("box_uid", "uid de caja es requerido")
	}
	if in.TrayPartNumber == "" {
		fields.Add("tray_part_number", "part number de bandeja es requerido")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	trayType, err := uc.trayTypes.GetByPartNumber(in.TrayPartNumber)
	if err != nil {
		return nil, err
	}
	if trayType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	tray := &entity.Tray{
		UID:         uc.uids.ForKey("tray:"+boxUID+":"+trayType.PartNumber, now),
		TrayTypeUID: trayType.UID,
		BoxUID:      boxUID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		boxRepo repository.BoxRepository,
		trayRepo repository.TrayRepository,
		lotRepo repository.LotRepository,
	) error {
		box, err := boxRepo.GetForUpdate(boxUID)
		if err != nil {
			return err
		}
		if box == nil {
			return domain.ErrNotFound
		}
		if uc.rules.EnforceBoxCapacity {
			boxType, err := uc.boxTypes.GetByID(box.BoxTypeUID)
			if err != nil {
				return err
			}
			if boxType == nil {
				return domain.ErrNotFound
			}
			current, err := trayRepo.CountByBox(boxUID)
			if err != nil {
				return err
			}
			if err := domainpacking.CheckBoxCapacity(current, boxType.MaxTray); err != nil {
				return err
			}
		}
		return trayRepo.Create(tray)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(InvTray, boxUID)
	uc.invalidator.Invalidate(InvBox, "")
	return &dto.TrayResponse{
		UID:          tray.UID,
		PartNumber:   trayType.PartNumber,
		BoxUID:       boxUID,
		CurrentDrive: 0,
		MaxDrive:     trayType.MaxDrive,
		CreatedAt:    tray.CreatedAt,
		UpdatedAt:    tray.UpdatedAt,
	}, nil
}

// DeleteTray elimina la bandeja sin condiciones; la cascada se lleva sus lotes.
func (uc *ContainmentUseCase) DeleteTray(ctx context.Context, trayUID string) error {
	tray, err := uc.trays.GetByID(trayUID)
	if err != nil {
		return err
	}
	if tray == nil {
		return domain.ErrNotFound
	}
	if err := uc.trays.Delete(trayUID); err != nil {
		return err
	}
	uc.invalidator.Invalidate(InvTray, tray.BoxUID)
	uc.invalidator.Invalidate(InvBox, "")
	return nil
}

// ── Lot ───────────────────────────────────────────────────────────────────────

// CreateLot crea un lote bajo la bandeja. Dentro de la transacción: bloquea la
// fila de la caja, verifica que siga activa y re-deriva el total de drives de
// la bandeja antes de aplicar la regla de capacidad. Un despacho concurrente
// espera el candado y ve el lote ya insertado (o el lote espera y ve la caja
// despachada).
func (uc *ContainmentUseCase) CreateLot(ctx context.Context, trayUID string, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	fields := domain.FieldErrors{}
	if trayUID == "" {
		fields.Add("tray_uid", "uid de bandeja es requerido")
	}
	if in.LotID == "" {
		fields.Add("lot_id", "lot id es requerido")
	}
	if in.Qty <= 0 {
		fields.Add("qty", "la cantidad debe ser un entero positivo")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	tray, err := uc.trays.GetByID(trayUID)
	if err != nil {
		return nil, err
	}
	if tray == nil {
		return nil, domain.ErrNotFound
	}
	// tray_max_drive se lee fuera de la tx: un UpdateMaxDrive concurrente puede
	// dejar la validación con el máximo anterior. La capacidad es una regla de
	// referencia, no un invariante serializado; el lock cubre solo la caja.
	trayType, err := uc.trayTypes.GetByID(tray.TrayTypeUID)
	if err != nil {
		return nil, err
	}
	if trayType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	lot := &entity.Lot{
		UID:       uc.uids.ForKey("lot:"+trayUID+":"+in.LotID, now),
		TrayUID:   trayUID,
		LotID:     in.LotID,
		Qty:       in.Qty,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		boxRepo repository.BoxRepository,
		trayRepo repository.TrayRepository,
		lotRepo repository.LotRepository,
	) error {
		box, err := boxRepo.GetForUpdate(tray.BoxUID)
		if err != nil {
			return err
		}
		if box == nil {
			return domain.ErrNotFound
		}
		if box.Shipped() {
			return domain.ErrBoxShipped
		}
		current, err := lotRepo.SumQtyByTray(trayUID)
		if err != nil {
			return err
		}
		if err := domainpacking.CheckTrayCapacity(current, in.Qty, trayType.MaxDrive); err != nil {
			return err
		}
		return lotRepo.Create(lot)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(InvLot, trayUID)
	uc.invalidator.Invalidate(InvTray, tray.BoxUID)
	return toLotResponse(lot), nil
}

// UpdateLot sobreescribe la cantidad del lote. Con Rules.EnforceUpdateCapacity
// apagado (default) se replica la asimetría del sistema anterior: la edición
// no re-valida contra tray_max_drive, solo el alta lo hace.
func (uc *ContainmentUseCase) UpdateLot(ctx context.Context, lotUID string, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	if in.Qty <= 0 {
		fields := domain.FieldErrors{}
		fields.Add("qty", "la cantidad debe ser un entero positivo")
		return nil, domain.NewValidationError(fields)
	}

	lot, err := uc.lots.GetByID(lotUID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	tray, err := uc.trays.GetByID(lot.TrayUID)
	if err != nil {
		return nil, err
	}
	if tray == nil {
		return nil, domain.ErrNotFound
	}
	trayType, err := uc.trayTypes.GetByID(tray.TrayTypeUID)
	if err != nil {
		return nil, err
	}
	if trayType == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(
		boxRepo repository.BoxRepository,
		trayRepo repository.TrayRepository,
		lotRepo repository.LotRepository,
	) error {
		box, err := boxRepo.GetForUpdate(tray.BoxUID)
		if err != nil {
			return err
		}
		if box == nil {
			return domain.ErrNotFound
		}
		if box.Shipped() {
			return domain.ErrBoxShipped
		}
		if uc.rules.EnforceUpdateCapacity {
			current, err := lotRepo.SumQtyByTray(lot.TrayUID)
			if err != nil {
				return err
			}
			if err := domainpacking.CheckTrayCapacityReplacing(current, lot.Qty, in.Qty, trayType.MaxDrive); err != nil {
				return err
			}
		}
		return lotRepo.UpdateQty(lotUID, in.Qty, now)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidator.Invalidate(InvLot, lot.TrayUID)
	uc.invalidator.Invalidate(InvTray, tray.BoxUID)
	lot.Qty = in.Qty
	lot.UpdatedAt = now
	return toLotResponse(lot), nil
}

// DeleteLot elimina el lote; bloqueado si la caja ancestro está despachada.
func (uc *ContainmentUseCase) DeleteLot(ctx context.Context, lotUID string) error {
	lot, err := uc.lots.GetByID(lotUID)
	if err != nil {
		return err
	}
	if lot == nil {
		return domain.ErrNotFound
	}
	tray, err := uc.trays.GetByID(lot.TrayUID)
	if err != nil {
		return err
	}
	if tray == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		boxRepo repository.BoxRepository,
		trayRepo repository.TrayRepository,
		lotRepo repository.LotRepository,
	) error {
		box, err := boxRepo.GetForUpdate(tray.BoxUID)
		if err != nil {
			return err
		}
		if box == nil {
			return domain.ErrNotFound
		}
		if box.Shipped() {
			return domain.ErrBoxShipped
		}
		return lotRepo.Delete(lotUID)
	})
	if err != nil {
		return err
	}

	uc.invalidator.Invalidate(InvLot, lot.TrayUID)
	uc.invalidator.Invalidate(InvTray, tray.BoxUID)
	return nil
}

func toLotResponse(l *entity.Lot) *dto.LotResponse {
	if l == nil {
		return nil
	}
	return &dto.LotResponse{
		UID:       l.UID,
		TrayUID:   l.TrayUID,
		LotID:     l.LotID,
		Qty:       l.Qty,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
