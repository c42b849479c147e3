package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

var _ repository.BoxTypeRepository = (*BoxTypeRepo)(nil)

// BoxTypeRepo implementación del puerto BoxTypeRepository sobre PostgreSQL.
type BoxTypeRepo struct {
	q Querier
}

// NewBoxTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBoxTypeRepository(q Querier) *BoxTypeRepo {
	return &BoxTypeRepo{q: q}
}

// Create persiste un nuevo tipo de caja. Devuelve ErrDuplicate si el part number ya existe.
func (r *BoxTypeRepo) Create(boxType *entity.BoxType) error {
	query := `
		INSERT INTO box_type (box_type_uid, box_part_number, box_max_tray, created_dt, updated_dt)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		boxType.UID, boxType.PartNumber, boxType.MaxTray,
		boxType.CreatedAt, boxType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert box_type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de caja por UID.
func (r *BoxTypeRepo) GetByID(uid string) (*entity.BoxType, error) {
	return r.getBy(`box_type_uid = $1`, uid)
}

// GetByPartNumber resuelve la clave de negocio; nil si no existe.
func (r *BoxTypeRepo) GetByPartNumber(partNumber string) (*entity.BoxType, error) {
	return r.getBy(`box_part_number = $1`, partNumber)
}

func (r *BoxTypeRepo) getBy(cond, arg string) (*entity.BoxType, error) {
	query := `
		SELECT box_type_uid, box_part_number, box_max_tray, created_dt, updated_dt
		FROM box_type WHERE ` + cond
	var bt entity.BoxType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&bt.UID, &bt.PartNumber, &bt.MaxTray, &bt.CreatedAt, &bt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box_type: %w", err)
	}
	return &bt, nil
}

// ListPage lista tipos de caja con paginación y filtro por part number.
func (r *BoxTypeRepo) ListPage(limit, offset int, query string) ([]*entity.BoxType, error) {
	sql := `
		SELECT box_type_uid, box_part_number, box_max_tray, created_dt, updated_dt
		FROM box_type
		WHERE ($1 = '' OR box_part_number ILIKE $2)
		ORDER BY updated_dt DESC, box_type_uid
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), sql, query, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list box_type: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoxType
	for rows.Next() {
		var bt entity.BoxType
		if err := rows.Scan(&bt.UID, &bt.PartNumber, &bt.MaxTray, &bt.CreatedAt, &bt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan box_type: %w", err)
		}
		list = append(list, &bt)
	}
	return list, rows.Err()
}

// Count cuenta los tipos de caja que coinciden con el filtro (consulta independiente del listado).
func (r *BoxTypeRepo) Count(query string) (int, error) {
	sql := `SELECT COUNT(*) FROM box_type WHERE ($1 = '' OR box_part_number ILIKE $2)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, query, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count box_type: %w", err)
	}
	return n, nil
}

// InUse indica si alguna caja referencia este tipo.
func (r *BoxTypeRepo) InUse(uid string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM box WHERE box_type_uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("box_type in use: %w", err)
	}
	return exists, nil
}

// Delete elimina un tipo de caja por UID. Devuelve ErrConflict si la FK lo impide.
func (r *BoxTypeRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM box_type WHERE box_type_uid = $1`, uid)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete box_type: %w", err)
	}
	return nil
}
