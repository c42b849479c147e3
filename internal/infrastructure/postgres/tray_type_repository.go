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

var _ repository.TrayTypeRepository = (*TrayTypeRepo)(nil)

// TrayTypeRepo implementación del puerto TrayTypeRepository sobre PostgreSQL.
type TrayTypeRepo struct {
	q Querier
}

// NewTrayTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrayTypeRepository(q Querier) *TrayTypeRepo {
	return &TrayTypeRepo{q: q}
}

// Create persiste un nuevo tipo de bandeja. Devuelve ErrDuplicate si el part number ya existe.
func (r *TrayTypeRepo) Create(trayType *entity.TrayType) error {
	query := `
		INSERT INTO tray_type (tray_type_uid, tray_part_number, tray_max_drive, created_dt, updated_dt)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		trayType.UID, trayType.PartNumber, trayType.MaxDrive,
		trayType.CreatedAt, trayType.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tray_type: %w", err)
	}
	return nil
}

// GetByID obtiene un tipo de bandeja por UID.
func (r *TrayTypeRepo) GetByID(uid string) (*entity.TrayType, error) {
	return r.getBy(`tray_type_uid = $1`, uid)
}

// GetByPartNumber resuelve la clave de negocio; nil si no existe.
func (r *TrayTypeRepo) GetByPartNumber(partNumber string) (*entity.TrayType, error) {
	return r.getBy(`tray_part_number = $1`, partNumber)
}

func (r *TrayTypeRepo) getBy(cond, arg string) (*entity.TrayType, error) {
	query := `
		SELECT tray_type_uid, tray_part_number, tray_max_drive, created_dt, updated_dt
		FROM tray_type WHERE ` + cond
	var tt entity.TrayType
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&tt.UID, &tt.PartNumber, &tt.MaxDrive, &tt.CreatedAt, &tt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tray_type: %w", err)
	}
	return &tt, nil
}

// UpdateMaxDrive actualiza la capacidad del tipo de bandeja (único campo mutable).
func (r *TrayTypeRepo) UpdateMaxDrive(uid string, maxDrive int) error {
	query := `UPDATE tray_type SET tray_max_drive = $2, updated_dt = $3 WHERE tray_type_uid = $1`
	cmd, err := r.q.Exec(context.Background(), query, uid, maxDrive, time.Now())
	if err != nil {
		return fmt.Errorf("update tray_type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPage lista tipos de bandeja con paginación y filtro por part number.
func (r *TrayTypeRepo) ListPage(limit, offset int, query string) ([]*entity.TrayType, error) {
	sql := `
		SELECT tray_type_uid, tray_part_number, tray_max_drive, created_dt, updated_dt
		FROM tray_type
		WHERE ($1 = '' OR tray_part_number ILIKE $2)
		ORDER BY updated_dt DESC, tray_type_uid
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), sql, query, likePattern(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tray_type: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrayType
	for rows.Next() {
		var tt entity.TrayType
		if err := rows.Scan(&tt.UID, &tt.PartNumber, &tt.MaxDrive, &tt.CreatedAt, &tt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tray_type: %w", err)
		}
		list = append(list, &tt)
	}
	return list, rows.Err()
}

// Count cuenta los tipos de bandeja que coinciden con el filtro.
func (r *TrayTypeRepo) Count(query string) (int, error) {
	sql := `SELECT COUNT(*) FROM tray_type WHERE ($1 = '' OR tray_part_number ILIKE $2)`
	var n int
	if err := r.q.QueryRow(context.Background(), sql, query, likePattern(query)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tray_type: %w", err)
	}
	return n, nil
}

// InUse indica si alguna bandeja referencia este tipo.
func (r *TrayTypeRepo) InUse(uid string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM tray WHERE tray_type_uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("tray_type in use: %w", err)
	}
	return exists, nil
}

// Delete elimina un tipo de bandeja por UID. Devuelve ErrConflict si la FK lo impide.
func (r *TrayTypeRepo) Delete(uid string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tray_type WHERE tray_type_uid = $1`, uid)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete tray_type: %w", err)
	}
	return nil
}
