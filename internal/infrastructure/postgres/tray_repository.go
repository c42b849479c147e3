package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

var _ repository.TrayRepository = (*TrayRepo)(nil)

// TrayRepo implementación del puerto TrayRepository sobre PostgreSQL.
type TrayRepo struct {
	q Querier
}

// NewTrayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrayRepository(q Querier) *TrayRepo {
	return &TrayRepo{q: q}
}

// Create persiste una nueva bandeja bajo su caja.
func (r *TrayRepo) Create(tray *entity.Tray) error {
	query := `
		INSERT INTO tray (tray_uid, tray_type_uid, box_uid, tray_created_dt, tray_updated_dt)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		tray.UID, tray.TrayTypeUID, tray.BoxUID, tray.CreatedAt, tray.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tray: %w", err)
	}
	return nil
}

// GetByID obtiene una bandeja por UID.
func (r *TrayRepo) GetByID(uid string) (*entity.Tray, error) {
	query := `
		SELECT tray_uid, tray_type_uid, box_uid, tray_created_dt, tray_updated_dt
		FROM tray WHERE tray_uid = $1`
	var t entity.Tray
	err := r.q.QueryRow(context.Background(), query, uid).Scan(
		&t.UID, &t.TrayTypeUID, &t.BoxUID, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tray: %w", err)
	}
	return &t, nil
}

// Delete elimina la bandeja; la cascada de FK se lleva sus lotes.
func (r *TrayRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tray WHERE tray_uid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete tray: %w", err)
	}
	return nil
}

// CountByBox deriva box_current_tray contando filas hijas.
func (r *TrayRepo) CountByBox(boxUID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM tray WHERE box_uid = $1`, boxUID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count tray by box: %w", err)
	}
	return n, nil
}

// ListByBoxPage lista las bandejas de una caja con su total de drives derivado,
// paginadas y filtrables por part number del tipo.
func (r *TrayRepo) ListByBoxPage(boxUID string, limit, offset int, query string) ([]*entity.TraySummary, error) {
	sql := `
		SELECT t.tray_uid, tt.tray_part_number, t.box_uid,
		       COALESCE(l.drive_total, 0), tt.tray_max_drive,
		       t.tray_created_dt, t.tray_updated_dt
		FROM tray t
		JOIN tray_type tt ON tt.tray_type_uid = t.tray_type_uid
		LEFT JOIN (
			SELECT tray_uid, SUM(lot_qty) AS drive_total FROM lot GROUP BY tray_uid
		) l ON l.tray_uid = t.tray_uid
		WHERE t.box_uid = $1
		  AND ($2 = '' OR tt.tray_part_number ILIKE $3)
		ORDER BY t.tray_updated_dt DESC, t.tray_uid
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), sql, boxUID, query, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tray: %w", err)
	}
	defer rows.Close()
	var list []*entity.TraySummary
	for rows.Next() {
		var s entity.TraySummary
		if err := rows.Scan(&s.UID, &s.PartNumber, &s.BoxUID,
			&s.CurrentDrive, &s.MaxDrive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tray: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountPageRows cuenta las bandejas de la caja que coinciden con el filtro.
func (r *TrayRepo) CountPageRows(boxUID string, query string) (int, error) {
	sql := `
		SELECT COUNT(*)
		FROM tray t
		JOIN tray_type tt ON tt.tray_type_uid = t.tray_type_uid
		WHERE t.box_uid = $1
		  AND ($2 = '' OR tt.tray_part_number ILIKE $3)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, boxUID, query, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tray rows: %w", err)
	}
	return n, nil
}
