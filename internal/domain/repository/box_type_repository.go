package repository

import "github.com/tu-usuario/packtrack-api/internal/domain/entity"

// BoxTypeRepository define el puerto de persistencia para BoxType (DIP).
// GetByPartNumber es la resolución clave-de-negocio → uid del registro de
// referencia; devuelve nil cuando no existe.
type BoxTypeRepository interface {
	Create(boxType *entity.BoxType) error
	GetByID(uid string) (*entity.BoxType, error)
	GetByPartNumber(partNumber string) (*entity.BoxType, error)
	ListPage(limit, offset int, query string) ([]*entity.BoxType, error)
	Count(query string) (int, error)
	InUse(uid string) (bool, error)
	Delete(uid string) error
}
