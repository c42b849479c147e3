package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

// Ensure TxRunner implements packing.TxRunner.
var _ packing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la pieza que cierra la ventana de carrera del despacho: la guarda de
// despacho y las mutaciones de lotes corren con repositorios atados a la misma
// tx, con la fila de la caja bloqueada vía BoxRepository.GetForUpdate.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	boxRepo repository.BoxRepository,
	trayRepo repository.TrayRepository,
	lotRepo repository.LotRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	boxRepo := NewBoxRepository(tx)
	trayRepo := NewTrayRepository(tx)
	lotRepo := NewLotRepository(tx)

	if err := fn(boxRepo, trayRepo, lotRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
