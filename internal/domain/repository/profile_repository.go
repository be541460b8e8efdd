package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile (DIP).
// No existe Delete: los perfiles nunca se borran vía API.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, error)
}
