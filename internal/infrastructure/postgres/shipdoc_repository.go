package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

var _ repository.ShipdocRepository = (*ShipdocRepo)(nil)

// ShipdocRepo implementación del puerto ShipdocRepository sobre PostgreSQL.
type ShipdocRepo struct {
	q Querier
}

// NewShipdocRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipdocRepository(q Querier) *ShipdocRepo {
	return &ShipdocRepo{q: q}
}

// Create persiste un nuevo documento de despacho. Devuelve ErrDuplicate si el número ya existe.
func (r *ShipdocRepo) Create(shipdoc *entity.Shipdoc) error {
	query := `
		INSERT INTO shipdoc (shipdoc_uid, shipdoc_number, shipdoc_contact, created_dt, updated_dt)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		shipdoc.UID, shipdoc.Number, shipdoc.Contact,
		shipdoc.CreatedAt, shipdoc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipdoc: %w", err)
	}
	return nil
}

// GetByID obtiene un documento de despacho por UID.
func (r *ShipdocRepo) GetByID(uid string) (*entity.Shipdoc, error) {
	return r.getBy(`shipdoc_uid = $1`, uid)
}

// GetByNumber resuelve la clave de negocio; nil si no existe.
func (r *ShipdocRepo) GetByNumber(number string) (*entity.Shipdoc, error) {
	return r.getBy(`shipdoc_number = $1`, number)
}

func (r *ShipdocRepo) getBy(cond, arg string) (*entity.Shipdoc, error) {
	query := `
		SELECT shipdoc_uid, shipdoc_number, shipdoc_contact, created_dt, updated_dt
		FROM shipdoc WHERE ` + cond
	var sd entity.Shipdoc
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&sd.UID, &sd.Number, &sd.Contact, &sd.CreatedAt, &sd.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipdoc: %w", err)
	}
	return &sd, nil
}

// UpdateContact actualiza el contacto (único campo mutable del shipdoc).
func (r *ShipdocRepo) UpdateContact(uid, contact string) error {
	query := `UPDATE shipdoc SET shipdoc_contact = $2, updated_dt = $3 WHERE shipdoc_uid = $1`
	cmd, err := r.q.Exec(context.Background(), query, uid, contact, time.Now())
	if err != nil {
		return fmt.Errorf("update shipdoc: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPage lista documentos de despacho con paginación y filtro por número.
func (r *ShipdocRepo) ListPage(limit, offset int, query string) ([]*entity.Shipdoc, error) {
	sql := `
		SELECT shipdoc_uid, shipdoc_number, shipdoc_contact, created_dt, updated_dt
		FROM shipdoc
		WHERE ($1 = '' OR shipdoc_number ILIKE $2)
		ORDER BY updated_dt DESC, shipdoc_uid
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), sql, query, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipdoc: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipdoc
	for rows.Next() {
		var sd entity.Shipdoc
		if err := rows.Scan(&sd.UID, &sd.Number, &sd.Contact, &sd.CreatedAt, &sd.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shipdoc: %w", err)
		}
		list = append(list, &sd)
	}
	return list, rows.Err()
}

// Count cuenta los documentos de despacho que coinciden con el filtro.
func (r *ShipdocRepo) Count(query string) (int, error) {
	sql := `SELECT COUNT(*) FROM shipdoc WHERE ($1 = '' OR shipdoc_number ILIKE $2)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, query, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count shipdoc: %w", err)
	}
	return n, nil
}

// InUse indica si alguna caja referencia este documento.
func (r *ShipdocRepo) InUse(uid string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM box WHERE shipdoc_uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("shipdoc in use: %w", err)
	}
	return exists, nil
}

// Delete elimina un documento de despacho por UID. Devuelve ErrConflict si la FK lo impide.
func (r *ShipdocRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shipdoc WHERE shipdoc_uid = $1`, uid)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete shipdoc: %w", err)
	}
	return nil
}
