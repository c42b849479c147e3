package repository

import (
	"time"

	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para Lot (DIP).
// SumQtyByTray deriva tray_current_drive y SumQtyByBox el total de drives de
// una caja; ambos suman lot_qty de las filas fuente en el momento de la llamada.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(uid string) (*entity.Lot, error)
	UpdateQty(uid string, qty int, updatedAt time.Time) error
	Delete(uid string) error
	SumQtyByTray(trayUID string) (int, error)
	SumQtyByBox(boxUID string) (int, error)
	ListByTrayPage(trayUID string, limit, offset int, query string) ([]*entity.Lot, error)
	CountPageRows(trayUID string, query string) (int, error)
}
