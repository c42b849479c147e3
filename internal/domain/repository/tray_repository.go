package repository

import "github.com/tu-usuario/packtrack-api/internal/domain/entity"

// TrayRepository define el puerto de persistencia para Tray (DIP).
// CountByBox es la derivación de box_current_tray: siempre cuenta filas, nunca
// lee un agregado almacenado.
type TrayRepository interface {
	Create(tray *entity.Tray) error
	GetByID(uid string) (*entity.Tray, error)
	Delete(uid string) error
	CountByBox(boxUID string) (int, error)
	ListByBoxPage(boxUID string, limit, offset int, query string) ([]*entity.TraySummary, error)
	CountPageRows(boxUID string, query string) (int, error)
}
