package packing

import (
	"context"

	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
)

// ── Lecturas paginadas ────────────────────────────────────────────────────────
//
// Todos los listados derivan los agregados (bandejas por caja, drives por
// bandeja) en la misma consulta; el total de páginas sale de una consulta de
// conteo independiente con los mismos filtros.

// ListBoxes lista cajas con filtro de substring y scope de estado:
// "" = todas, "active" = en armado, "shipped" = historial de despachos.
func (uc *ContainmentUseCase) ListBoxes(ctx context.Context, page dto.PageRequest, status string) (*dto.BoxListResponse, error) {
	switch status {
	case "", entity.BoxStatusActive, entity.BoxStatusShipped:
	default:
		fields := domain.FieldErrors{}
		fields.Add("status", "estado desconocido: "+status)
		return nil, domain.NewValidationError(fields)
	}
	page.Normalize(uc.rules.ItemsPerPage)

	rows, err := uc.boxes.ListPage(page.ItemsPerPage, page.Offset(), page.Query, status)
	if err != nil {
		return nil, err
	}
	total, err := uc.boxes.Count(page.Query, status)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BoxResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toBoxResponse(r))
	}
	return &dto.BoxListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// GetBox devuelve una caja con sus agregados derivados al momento.
func (uc *ContainmentUseCase) GetBox(ctx context.Context, boxUID string) (*dto.BoxResponse, error) {
	summary, err := uc.boxSummary(boxUID)
	if err != nil {
		return nil, err
	}
	resp := toBoxResponse(summary)
	return &resp, nil
}

// ListTrays lista las bandejas de una caja con su total de drives derivado.
func (uc *ContainmentUseCase) ListTrays(ctx context.Context, boxUID string, page dto.PageRequest) (*dto.TrayListResponse, error) {
	box, err := uc.boxes.GetByID(boxUID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.ErrNotFound
	}
	page.Normalize(uc.rules.ItemsPerPage)

	rows, err := uc.trays.ListByBoxPage(boxUID, page.ItemsPerPage, page.Offset(), page.Query)
	if err != nil {
		return nil, err
	}
	total, err := uc.trays.CountPageRows(boxUID, page.Query)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TrayResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toTrayResponse(r))
	}
	return &dto.TrayListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// GetTray devuelve una bandeja con su total de drives derivado.
func (uc *ContainmentUseCase) GetTray(ctx context.Context, trayUID string) (*dto.TrayResponse, error) {
	tray, err := uc.trays.GetByID(trayUID)
	if err != nil {
		return nil, err
	}
	if tray == nil {
		return nil, domain.ErrNotFound
	}
	trayType, err := uc.trayTypes.GetByID(tray.TrayTypeUID)
	if err != nil {
		return nil, err
	}
	if trayType == nil {
		return nil, domain.ErrNotFound
	}
	drives, err := uc.lots.SumQtyByTray(trayUID)
	if err != nil {
		return nil, err
	}
	return &dto.TrayResponse{
		UID:          tray.UID,
		PartNumber:   trayType.PartNumber,
		BoxUID:       tray.BoxUID,
		CurrentDrive: drives,
		MaxDrive:     trayType.MaxDrive,
		CreatedAt:    tray.CreatedAt,
		UpdatedAt:    tray.UpdatedAt,
	}, nil
}

// ListLots lista los lotes de una bandeja con filtro de substring sobre lot_id.
func (uc *ContainmentUseCase) ListLots(ctx context.Context, trayUID string, page dto.PageRequest) (*dto.LotListResponse, error) {
	tray, err := uc.trays.GetByID(trayUID)
	if err != nil {
		return nil, err
	}
	if tray == nil {
		return nil, domain.ErrNotFound
	}
	page.Normalize(uc.rules.ItemsPerPage)

	rows, err := uc.lots.ListByTrayPage(trayUID, page.ItemsPerPage, page.Offset(), page.Query)
	if err != nil {
		return nil, err
	}
	total, err := uc.lots.CountPageRows(trayUID, page.Query)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LotResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, *toLotResponse(r))
	}
	return &dto.LotListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// GetLot devuelve un lote por uid.
func (uc *ContainmentUseCase) GetLot(ctx context.Context, lotUID string) (*dto.LotResponse, error) {
	lot, err := uc.lots.GetByID(lotUID)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, domain.ErrNotFound
	}
	return toLotResponse(lot), nil
}

// boxSummary arma el BoxSummary de una sola caja resolviendo referencias y
// derivando el conteo de bandejas.
func (uc *ContainmentUseCase) boxSummary(boxUID string) (*entity.BoxSummary, error) {
	box, err := uc.boxes.GetByID(boxUID)
	if err != nil {
		return nil, err
	}
	if box == nil {
		return nil, domain.ErrNotFound
	}
	boxType, err := uc.boxTypes.GetByID(box.BoxTypeUID)
	if err != nil {
		return nil, err
	}
	if boxType == nil {
		return nil, domain.ErrNotFound
	}
	shipdoc, err := uc.shipdocs.GetByID(box.ShipdocUID)
	if err != nil {
		return nil, err
	}
	if shipdoc == nil {
		return nil, domain.ErrNotFound
	}
	trayCount, err := uc.trays.CountByBox(boxUID)
	if err != nil {
		return nil, err
	}
	return &entity.BoxSummary{
		UID:           box.UID,
		PartNumber:    boxType.PartNumber,
		ShipdocNumber: shipdoc.Number,
		Status:        box.Status,
		CurrentTray:   trayCount,
		MaxTray:       boxType.MaxTray,
		CreatedAt:     box.CreatedAt,
		UpdatedAt:     box.UpdatedAt,
	}, nil
}

func toBoxResponse(s *entity.BoxSummary) dto.BoxResponse {
	return dto.BoxResponse{
		UID:           s.UID,
		PartNumber:    s.PartNumber,
		ShipdocNumber: s.ShipdocNumber,
		Status:        s.Status,
		CurrentTray:   s.CurrentTray,
		MaxTray:       s.MaxTray,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toTrayResponse(s *entity.TraySummary) dto.TrayResponse {
	return dto.TrayResponse{
		UID:          s.UID,
		PartNumber:   s.PartNumber,
		BoxUID:       s.BoxUID,
		CurrentDrive: s.CurrentDrive,
		MaxDrive:     s.MaxDrive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
