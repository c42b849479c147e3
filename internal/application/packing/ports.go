package packing

import (
	"context"

	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la guarda de despacho y las
// mutaciones de lotes vean los totales persistidos del momento, no agregados
// viejos: el despacho de una caja y la edición de sus lotes se serializan
// sobre la fila de la caja.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		boxRepo repository.BoxRepository,
		trayRepo repository.TrayRepository,
		lotRepo repository.LotRepository,
	) error) error
}

// Invalidator publica la señal de invalidación de páginas tras cada mutación
// exitosa: los listados cacheados del tipo de entidad (y scope padre) deben
// re-consultarse. La señal no forma parte del valor de retorno.
type Invalidator interface {
	Invalidate(entity, scopeUID string)
}

// Nombres de entidad para las señales de invalidación.
const (
	InvBoxType  = "box_type"
	InvTrayType = "tray_type"
	InvShipdoc  = "shipdoc"
	InvBox      = "box"
	InvTray     = "tray"
	InvLot      = "lot"
	InvUser     = "user"
)
