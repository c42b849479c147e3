package repository

import (
	"time"

	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
)

// BoxRepository define el puerto de persistencia para Box (DIP).
//
// GetForUpdate bloquea la fila de la caja (SELECT ... FOR UPDATE) y solo tiene
// sentido sobre un repositorio atado a una transacción: es el candado que
// serializa el despacho contra las mutaciones de lotes.
//
// Los listados devuelven BoxSummary con los agregados derivados en la misma
// consulta; status filtra por estado ("" = todos). El orden es
// box_updated_dt DESC con box_uid como desempate.
type BoxRepository interface {
	Create(box *entity.Box) error
	GetByID(uid string) (*entity.Box, error)
	GetForUpdate(uid string) (*entity.Box, error)
	UpdateStatus(uid, status string, updatedAt time.Time) error
	Delete(uid string) error
	ListPage(limit, offset int, query, status string) ([]*entity.BoxSummary, error)
	Count(query, status string) (int, error)
}
