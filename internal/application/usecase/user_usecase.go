package usecase

import (
	"github.com/tu-usuario/packtrack-api/internal/application/dto"
	"github.com/tu-usuario/packtrack-api/internal/application/packing"
	"github.com/tu-usuario/packtrack-api/internal/domain"
	"github.com/tu-usuario/packtrack-api/internal/domain/entity"
	"github.com/tu-usuario/packtrack-api/internal/domain/repository"
)

// UserUseCase administración de usuarios. Todas las operaciones reciben el rol
// del actor explícitamente (viene del token vía handler): la decisión de
// autorización nunca se lee de estado ambiental.
type UserUseCase struct {
	repo        repository.UserRepository
	invalidator packing.Invalidator
	pageSize    int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, inv packing.Invalidator, pageSize int) *UserUseCase {
	return &UserUseCase{repo: repo, invalidator: inv, pageSize: pageSize}
}

// List lista usuarios; solo admin.
func (uc *UserUseCase) List(actorRole string, page dto.PageRequest) (*dto.UserListResponse, error) {
	if actorRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	page.Normalize(uc.pageSize)
	list, err := uc.repo.List(page.ItemsPerPage, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page: dto.PageResponse{
			ItemsPerPage: page.ItemsPerPage,
			CurrentPage:  page.CurrentPage,
			TotalPages:   dto.TotalPages(total, page.ItemsPerPage),
		},
	}, nil
}

// SetStatus habilita o deshabilita un usuario; solo admin, y un admin no puede
// deshabilitarse a sí mismo.
func (uc *UserUseCase) SetStatus(actorRole, actorID, userID, status string) error {
	if actorRole != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if status != "active" && status != "disabled" {
		fields := domain.FieldErrors{}
		fields.Add("status", "status debe ser active o disabled")
		return domain.NewValidationError(fields)
	}
	if actorID == userID && status == "disabled" {
		return domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(userID, status); err != nil {
		return err
	}
	uc.invalidator.Invalidate(packing.InvUser, "")
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
