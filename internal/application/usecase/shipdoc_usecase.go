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

// ShipdocUseCase registro de referencia para documentos de despacho; solo el
// contacto es mutable.
type ShipdocUseCase struct {
	repo        repository.ShipdocRepository
	uids        *uid.Generator
	invalidator packing.Invalidator
	pageSize    int
}

// NewShipdocUseCase construye el caso de uso.
func NewShipdocUseCase(repo repository.ShipdocRepository, uids *uid.Generator, inv packing.Invalidator, pageSize int) *ShipdocUseCase {
	return &ShipdocUseCase{repo: repo, uids: uids, invalidator: inv, pageSize: pageSize}
}

// Create registra un documento de despacho.
func (uc *ShipdocUseCase) Create(in dto.CreateShipdocRequest) (*dto.ShipdocResponse, error) {
	fields := domain.FieldErrors{}
	if in.Number == "" {
		fields.Add("number", "número de shipdoc es requerido")
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	now := time.Now()
	shipdoc := &entity.Shipdoc{
		UID:       uc.uids.ForKey("shipdoc:"+in.Number, now),
		Number:    in.Number,
		Contact:   in.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(shipdoc); err != nil {
		return nil, err
	}
	uc.invalidator.Invalidate(packing.InvShipdoc, "")
	return toShipdocResponse(shipdoc), nil
}

// GetByID obtiene un documento por UID; nil si no existe.
func (uc *ShipdocUseCase) GetByID(uidStr string) (*dto.ShipdocResponse, error) {
	shipdoc, err := uc.repo.GetByID(uidStr)
	if err != nil {
		return nil, err
	}
	return toShipdocResponse(shipdoc), nil
}

// Resolve traduce el número de documento a su registro; ErrNotFound si no existe.
func (uc *ShipdocUseCase) Resolve(number string) (*dto.ShipdocResponse, error) {
	shipdoc, err := uc.repo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if shipdoc == nil {
		return nil, domain.ErrNotFound
	}
	return toShipdocResponse(shipdoc), nil
}

// UpdateContact actualiza el contacto del documento.
func (uc *ShipdocUseCase) UpdateContact(uidStr string, in dto.UpdateShipdocRequest) error {
	if err := uc.repo.UpdateContact(uidStr, in.Contact); err != nil {
		return err
	}
	uc.invalidator.Invalidate(packing.InvShipdoc, "")
	return nil
}

// List lista documentos paginados con filtro por número.
func (uc *ShipdocUseCase) List(page dto.PageRequest) (*dto.ShipdocListResponse, error) {
	page.Normalize(uc.pageSize)
	list, err := uc.repo.ListPage(page.ItemsPerPage, page.Offset(), page.Query)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(page.Query)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipdocResponse, 0, len(list))
	for _, sd := range list {
		items = append(items, *toShipdocResponse(sd))
	}
	return &dto.ShipdocListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// Delete elimina el documento solo si ninguna caja lo referencia.
func (uc *ShipdocUseCase) Delete(uidStr string) error {
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
	uc.invalidator.Invalidate(packing.InvShipdoc, "")
	return nil
}

func toShipdocResponse(sd *entity.Shipdoc) *dto.ShipdocResponse {
	if sd == nil {
		return nil
	}
	return &dto.ShipdocResponse{
		UID:       sd.UID,
		Number:    sd.Number,
		Contact:   sd.Contact,
		CreatedAt: sd.CreatedAt,
		UpdatedAt: sd.UpdatedAt,
	}
}
