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

var _ repository.BoxRepository = (*BoxRepo)(nil)

// BoxRepo implementación del puerto BoxRepository sobre PostgreSQL.
type BoxRepo struct {
	q Querier
}

// NewBoxRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBoxRepository(q Querier) *BoxRepo {
	return &BoxRepo{q: q}
}

const boxColumns = `box_uid, box_type_uid, shipdoc_uid, box_status, box_created_dt, box_updated_dt`

// Create persiste una nueva caja.
func (r *BoxRepo) Create(box *entity.Box) error {
	query := `
		INSERT INTO box (` + boxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		box.UID, box.BoxTypeUID, box.ShipdocUID, box.Status,
		box.CreatedAt, box.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert box: %w", err)
	}
	return nil
}

// GetByID obtiene una caja por UID.
func (r *BoxRepo) GetByID(uid string) (*entity.Box, error) {
	return r.get(uid, false)
}

// GetForUpdate obtiene la caja bloqueando su fila (SELECT ... FOR UPDATE).
// Solo tiene efecto con un repositorio atado a una transacción; es el candado
// que serializa despacho contra mutación de lotes.
func (r *BoxRepo) GetForUpdate(uid string) (*entity.Box, error) {
	return r.get(uid, true)
}

func (r *BoxRepo) get(uid string, forUpdate bool) (*entity.Box, error) {
	query := `SELECT ` + boxColumns + ` FROM box WHERE box_uid = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var b entity.Box
	err := r.q.QueryRow(context.Background(), query, uid).Scan(
		&b.UID, &b.BoxTypeUID, &b.ShipdocUID, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get box: %w", err)
	}
	return &b, nil
}

// UpdateStatus cambia el estado de la caja y toca box_updated_dt.
func (r *BoxRepo) UpdateStatus(uid, status string, updatedAt time.Time) error {
	query := `UPDATE box SET box_status = $2, box_updated_dt = $3 WHERE box_uid = $1`
	cmd, err := r.q.Exec(context.Background(), query, uid, status, updatedAt)
	if err != nil {
		return fmt.Errorf("update box status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la caja; la cascada de FK se lleva bandejas y lotes.
func (r *BoxRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM box WHERE box_uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete box: %w", err)
	}
	return nil
}

// ListPage lista cajas con paginación, filtro por part number o número de
// shipdoc, y filtro de estado ("" = todos). Los agregados (bandejas actuales)
// se derivan de las filas hijas en la misma consulta, nunca de un contador
// almacenado.
func (r *BoxRepo) ListPage(limit, offset int, query, status string) ([]*entity.BoxSummary, error) {
	sql := `
		SELECT b.box_uid, bt.box_part_number, sd.shipdoc_number, b.box_status,
		       COALESCE(t.tray_count, 0), bt.box_max_tray,
		       b.box_created_dt, b.box_updated_dt
		FROM box b
		JOIN box_type bt ON bt.box_type_uid = b.box_type_uid
		JOIN shipdoc sd ON sd.shipdoc_uid = b.shipdoc_uid
		LEFT JOIN (
			SELECT box_uid, COUNT(*) AS tray_count FROM tray GROUP BY box_uid
		) t ON t.box_uid = b.box_uid
		WHERE ($1 = '' OR bt.box_part_number ILIKE $2 OR sd.shipdoc_number ILIKE $2)
		  AND ($3 = '' OR b.box_status = $3)
		ORDER BY b.box_updated_dt DESC, b.box_uid
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), sql, query, likePattern(query), status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list box: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoxSummary
	for rows.Next() {
		var s entity.BoxSummary
		if err := rows.Scan(&s.UID, &s.PartNumber, &s.ShipdocNumber, &s.Status,
			&s.CurrentTray, &s.MaxTray, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Count cuenta las cajas que coinciden con filtro y estado (consulta independiente del listado).
func (r *BoxRepo) Count(query, status string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM box b
		JOIN box_type bt ON bt.box_type_uid = b.box_type_uid
		JOIN shipdoc sd ON sd.shipdoc_uid = b.shipdoc_uid
		WHERE ($1 = '' OR bt.box_part_number ILIKE $2 OR sd.shipdoc_number ILIKE $2)
		  AND ($3 = '' OR b.box_status = $3)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, query, likePattern(query), status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count box: %w", err)
	}
	return n, nil
}
