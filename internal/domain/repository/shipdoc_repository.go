package repository

import "github.com/tu-usuario/packtrack-api/internal/domain/entity"

// ShipdocRepository define el puerto de persistencia para Shipdoc (DIP).
type ShipdocRepository interface {
	Create(shipdoc *entity.Shipdoc) error
	GetByID(uid string) (*entity.Shipdoc, error)
	GetByNumber(number string) (*entity.Shipdoc, error)
	UpdateContact(uid, contact string) error
	ListPage(limit, offset int, query string) ([]*entity.Shipdoc, error)
	Count(query string) (int, error)
	InUse(uid string) (bool, error)
	Delete(uid string) error
}
