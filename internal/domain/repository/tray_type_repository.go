package repository

import "github.com/tu-usuario/packtrack-api/internal/domain/entity"

// TrayTypeRepository define el puerto de persistencia para TrayType (DIP).
// El registro es inmutable salvo su capacidad (tray_max_drive).
type TrayTypeRepository interface {
	Create(trayType *entity.TrayType) error
	GetByID(uid string) (*entity.TrayType, error)
	GetByPartNumber(partNumber string) (*entity.TrayType, error)
	UpdateMaxDrive(uid string, maxDrive int) error
	ListPage(limit, offset int, query string) ([]*entity.TrayType, error)
	Count(query string) (int, error)
	InUse(uid string) (bool, error)
	Delete(uid string) error
}
