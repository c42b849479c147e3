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

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un nuevo lote bajo su bandeja.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lot (lot_uid, tray_uid, lot_id, lot_qty, lot_created_dt, lot_updated_dt)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		lot.UID, lot.TrayUID, lot.LotID, lot.Qty, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por UID.
func (r *LotRepo) GetByID(uid string) (*entity.Lot, error) {
	query := `
		SELECT lot_uid, tray_uid, lot_id, lot_qty, lot_created_dt, lot_updated_dt
		FROM lot WHERE lot_uid = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, uid).Scan(
		&l.UID, &l.TrayUID, &l.LotID, &l.Qty, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// UpdateQty sobreescribe la cantidad y toca lot_updated_dt.
func (r *LotRepo) UpdateQty(uid string, qty int, updatedAt time.Time) error {
	query := `UPDATE lot SET lot_qty = $2, lot_updated_dt = $3 WHERE lot_uid = $1`
	cmd, err := r.q.Exec(context.Background(), query, uid, qty, updatedAt)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el lote.
func (r *LotRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lot WHERE lot_uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}

// SumQtyByTray deriva tray_current_drive sumando lot_qty de las filas fuente.
func (r *LotRepo) SumQtyByTray(trayUID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(lot_qty), 0) FROM lot WHERE tray_uid = $1`, trayUID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum lot by tray: %w", err)
	}
	return total, nil
}

// SumQtyByBox deriva el total de drives de una caja sumando lot_qty de todos
// los lotes de sus bandejas.
func (r *LotRepo) SumQtyByBox(boxUID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(l.lot_qty), 0)
		FROM lot l
		JOIN tray t ON t.tray_uid = l.tray_uid
		WHERE t.box_uid = $1`
	var total int
	if err := r.q.QueryRow(context.Background(), query, boxUID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum lot by box: %w", err)
	}
	return total, nil
}

// ListByTrayPage lista los lotes de una bandeja, paginados y filtrables por lot_id.
func (r *LotRepo) ListByTrayPage(trayUID string, limit, offset int, query string) ([]*entity.Lot, error) {
	sql := `
		SELECT lot_uid, tray_uid, lot_id, lot_qty, lot_created_dt, lot_updated_dt
		FROM lot
		WHERE tray_uid = $1
		  AND ($2 = '' OR lot_id ILIKE $3)
		ORDER BY lot_updated_dt DESC, lot_uid
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), sql, trayUID, query, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lot: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.UID, &l.TrayUID, &l.LotID, &l.Qty, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountPageRows cuenta los lotes de la bandeja que coinciden con el filtro.
func (r *LotRepo) CountPageRows(trayUID string, query string) (int, error) {
	sql := `SELECT COUNT(*) FROM lot WHERE tray_uid = $1 AND ($2 = '' OR lot_id ILIKE $3)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, trayUID, query, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count lot rows: %w", err)
	}
	return n, nil
}
