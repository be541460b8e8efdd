package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/policy"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProfileUseCase gestión de perfiles: listado y actualización role/is_active/name.
// Los perfiles no se crean aquí (eso es del registro) ni se borran jamás.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profiles repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

// GetByID obtiene un perfil; nil si no existe.
func (uc *ProfileUseCase) GetByID(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	p, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := dto.FromProfile(p)
	return &out, nil
}

// List lista perfiles paginados.
func (uc *ProfileUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProfileListResponse, error) {
	page.DefaultPage()
	list, err := uc.profiles.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfileResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProfile(p))
	}
	return &dto.ProfileListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica cambios sobre un perfil: un admin activo toca cualquier campo;
// un usuario activo solo su propio nombre. Cambios de role/is_active por no-admin → ErrForbidden.
func (uc *ProfileUseCase) Update(ctx context.Context, actorID, targetID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	actor, err := uc.profiles.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	touchesRoleOrActive := in.Role != nil || in.IsActive != nil
	if !policy.CanUpdateProfile(actor, targetID, touchesRoleOrActive) {
		return nil, domain.ErrForbidden
	}

	target, err := uc.profiles.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		target.Name = *in.Name
	}
	if in.Role != nil {
		if *in.Role != entity.RoleAdmin && *in.Role != entity.RoleStaff {
			return nil, domain.ErrInvalidInput
		}
		target.Role = *in.Role
	}
	if in.IsActive != nil {
		target.IsActive = *in.IsActive
	}
	target.UpdatedAt = time.Now()
	if err := uc.profiles.Update(ctx, target); err != nil {
		return nil, err
	}
	out := dto.FromProfile(target)
	return &out, nil
}
