package usecase

import (
	"time"

	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
	"github.com/tu-usuario/packtrack-api/pkg/uid"
)

// TrayTypeUseCase registro de referencia para tipos de bandeja. Igual que el
// de tipos de caja salvo que la capacidad (tray_max_drive) sí es actualizable.
type TrayTypeUseCase struct {
	repo        repository.TrayTypeRepository
	uids        *uid.Generator
	invalidator packing.Invalidator
	pageSize    int
}

// NewTrayTypeUseCase construye el caso de uso.
func NewTrayTypeUseCase(repo repository.TrayTypeRepository, uids *uid.Generator, inv packing.Invalidator, pageSize int) *TrayTypeUseCase {
	return &TrayTypeUseCase{repo: repo, uids: uids, invalidator: inv, pageSize: pageSize}
}

// Create registra un tipo de bandeja.
func (uc *TrayTypeUseCase) Create(in dto.CreateTrayTypeRequest) (*dto.TrayTypeResponse, error) {
	fields := domain.FieldErrors{}
	if in.PartNumber == "" {
		fields.Add("part_number", "part number es requerido")
	}
	if in.MaxDrive <= 0 {
		fields.Add("max_drive", "la capacidad debe ser un entero positivo")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	now := time.Now()
	trayType := &entity.TrayType{
		UID:        uc.uids.ForKey("tray_type:"+in.PartNumber, now),
		PartNumber: in.PartNumber,
		MaxDrive:   in.MaxDrive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(trayType); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(packing.InvTrayType, "")
	return toTrayTypeResponse(trayType), nil
}

// GetByID obtiene un tipo de bandeja por UID; nil si no existe.
func (uc *TrayTypeUseCase) GetByID(uidStr string) (*dto.TrayTypeResponse, error) {
	trayType, err := uc.repo.GetByID(uidStr)
	if err != nil {
		return nil, err
	}
	return toTrayTypeResponse(trayType), nil
}

// Resolve traduce el part number a su registro; ErrNotFound si no existe.
func (uc *TrayTypeUseCase) Resolve(partNumber string) (*dto.TrayTypeResponse, error) {
	trayType, err := uc.repo.GetByPartNumber(partNumber)
	if err != nil {
		return nil, err
	}
	if trayType == nil {
		return nil, domain.ErrNotFound
	}
	return toTrayTypeResponse(trayType), nil
}

// UpdateMaxDrive actualiza la capacidad del tipo. No re-valida las bandejas
// existentes: una bandeja puede quedar sobre el nuevo máximo y solo las
// mutaciones futuras de lotes lo notarán.
func (uc *TrayTypeUseCase) UpdateMaxDrive(uidStr string, in dto.UpdateTrayTypeRequest) error {
	if in.MaxDrive <= 0 {
		fields := domain.FieldErrors{}
		fields.Add("max_drive", "la capacidad debe ser un entero positivo")
		return domain.NewValidationError(fields)
	}
	if err := uc.repo.UpdateMaxDrive(uidStr, in.MaxDrive); err != nil {
		return err
	}
	uc.invalidator.Invalidate(packing.InvTrayType, "")
	return nil
}

// List lista tipos de bandeja paginados con filtro por part number.
func (uc *TrayTypeUseCase) List(page dto.PageRequest) (*dto.TrayTypeListResponse, error) {
	page.Normalize(uc.pageSize)
	list, err := uc.repo.ListPage(page.ItemsPerPage, page.Offset(), page.Query)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(page.Query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrayTypeResponse, 0, len(list))
	for _, tt := range list {
		items = append(items, *toTrayTypeResponse(tt))
	}
	return &dto.TrayTypeListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// Delete elimina el tipo solo si ninguna bandeja lo referencia.
func (uc *TrayTypeUseCase) Delete(uidStr string) error {
	inUse, err := uc.repo.InUse(uidStr)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrConflict
	}
	if err := uc.repo.Delete(uidStr); err != nil {
		return err
	}
	uc.invalidator.Invalidate(packing.InvTrayType, "")
	return nil
}

func toTrayTypeResponse(tt *entity.TrayType) *dto.TrayTypeResponse {
	if tt == nil {
		return nil
	}
	return &dto.TrayTypeResponse{
		UID:        tt.UID,
		PartNumber: tt.PartNumber,
		MaxDrive:   tt.MaxDrive,
		CreatedAt:  tt.CreatedAt,
		UpdatedAt:  tt.UpdatedAt,
	}
}
