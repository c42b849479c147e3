package packing

import (
	"context"
	"time"

	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	domainpacking "github.com/tu-usuario/packtrack-api/internal/domain/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

// ShipBox despacha la caja: dentro de la transacción bloquea la fila, cuenta
// bandejas y suma drives de las filas fuente, y aplica la guarda de despacho
// (primero bandejas, después drives). La guarda y el cambio de estado son
// atómicos: un lote insertado en paralelo espera el candado o lo madruga, pero
// nunca pasa después de evaluada la guarda.
func (uc *ContainmentUseCase) ShipBox(ctx context.Context, boxUID string) (*dto.BoxStatusResponse, error) {
	now := time.Now()
	var status string
	err := uc.txRunner.Run(ctx, func(
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
		trayCount, err := trayRepo.CountByBox(boxUID)
		if err != nil {
			return err
		}
		driveTotal, err := lotRepo.SumQtyByBox(boxUID)
		if err != nil {
			return err
		}
		if err := domainpacking.CheckShippable(trayCount, driveTotal); err != nil {
			return err
		}
		status = entity.BoxStatusShipped
		return boxRepo.UpdateStatus(boxUID, status, now)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(InvBox, "")
	return &dto.BoxStatusResponse{UID: boxUID, Status: status, UpdatedAt: now}, nil
}

// UndoShipBox revierte el despacho sin condiciones: la caja vuelve a activa y
// sus lotes quedan mutables de nuevo. No hay guarda simétrica; el contenido no
// se toca.
func (uc *ContainmentUseCase) UndoShipBox(ctx context.Context, boxUID string) (*dto.BoxStatusResponse, error) {
	now := time.Now()
	err := uc.txRunner.Run(ctx, func(
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
		return boxRepo.UpdateStatus(boxUID, entity.BoxStatusActive, now)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(InvBox, "")
	return &dto.BoxStatusResponse{UID: boxUID, Status: entity.BoxStatusActive, UpdatedAt: now}, nil
}
