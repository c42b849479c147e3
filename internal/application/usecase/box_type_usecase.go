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

// BoxTypeUseCase registro de referencia para tipos de caja: alta, resolución
// por part number, listado paginado y baja (solo si ninguna caja lo referencia).
// El registro es inmutable después del alta.
type BoxTypeUseCase struct {
	repo        repository.BoxTypeRepository
	uids        *uid.Generator
	invalidator packing.Invalidator
	pageSize    int
}

// NewBoxTypeUseCase construye el caso de uso.
func NewBoxTypeUseCase(repo repository.BoxTypeRepository, uids *uid.Generator, inv packing.Invalidator, pageSize int) *BoxTypeUseCase {
	return &BoxTypeUseCase{repo: repo, uids: uids, invalidator: inv, pageSize: pageSize}
}

// Create registra un tipo de caja. Valida la forma de la entrada antes de
// tocar persistencia; el part number duplicado llega como ErrDuplicate del repo.
func (uc *BoxTypeUseCase) Create(in dto.CreateBoxTypeRequest) (*dto.BoxTypeResponse, error) {
	fields := domain.FieldErrors{}
	if in.PartNumber == "" {
		fields.Add("part_number", "part number es requerido")
	}
	if in.MaxTray <= 0 {
		fields.Add("max_tray", "la capacidad debe ser un entero positivo")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	now := time.Now()
	boxType := &entity.BoxType{
		UID:        uc.uids.ForKey("box_type:"+in.PartNumber, now),
		PartNumber: in.PartNumber,
		MaxTray:    in.MaxTray,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(boxType); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(packing.InvBoxType, "")
	return toBoxTypeResponse(boxType), nil
}

// GetByID obtiene un tipo de caja por UID; nil si no existe.
func (uc *BoxTypeUseCase) GetByID(uidStr string) (*dto.BoxTypeResponse, error) {
	boxType, err := uc.repo.GetByID(uidStr)
	if err != nil {
		return nil, err
	}
	return toBoxTypeResponse(boxType), nil
}

// Resolve traduce el part number a su registro; ErrNotFound si no existe.
func (uc *BoxTypeUseCase) Resolve(partNumber string) (*dto.BoxTypeResponse, error) {
	boxType, err := uc.repo.GetByPartNumber(partNumber)
	if err != nil {
		return nil, err
	}
	if boxType == nil {
		return nil, domain.ErrNotFound
	}
	return toBoxTypeResponse(boxType), nil
}

// List lista tipos de caja paginados con filtro por part number. El total de
// páginas sale de una consulta de conteo independiente del listado.
func (uc *BoxTypeUseCase) List(page dto.PageRequest) (*dto.BoxTypeListResponse, error) {
	page.Normalize(uc.pageSize)
	list, err := uc.repo.ListPage(page.ItemsPerPage, page.Offset(), page.Query)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(page.Query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BoxTypeResponse, 0, len(list))
	for _, bt := range list {
		items = append(items, *toBoxTypeResponse(bt))
	}
	return &dto.BoxTypeListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// Delete elimina el tipo solo si ninguna caja lo referencia (ErrConflict si no).
func (uc *BoxTypeUseCase) Delete(uidStr string) error {
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
	uc.invalidator.Invalidate(packing.InvBoxType, "")
	return nil
}

func toBoxTypeResponse(bt *entity.BoxType) *dto.BoxTypeResponse {
	if bt == nil {
		return nil
	}
	return &dto.BoxTypeResponse{
		UID:        bt.UID,
		PartNumber: bt.PartNumber,
		MaxTray:    bt.MaxTray,
		CreatedAt:  bt.CreatedAt,
		UpdatedAt:  bt.UpdatedAt,
	}
}
