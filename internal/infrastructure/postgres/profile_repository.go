package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL (usable con pool o tx).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de persistencia para perfiles. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// Create persiste un perfil nuevo (solo lo invoca el registro).
func (r *ProfileRepo) Create(ctx context.Context, p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, password_hash, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Email, p.PasswordHash, p.Name, p.Role, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID; nil si no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	return r.scanOne(ctx, `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM profiles WHERE id = $1`, id)
}

// GetByEmail obtiene un perfil por email; nil si no existe.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return r.scanOne(ctx, `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM profiles WHERE email = $1`, email)
}

func (r *ProfileRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza un perfil existente.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.Profile) error {
	query := `
		UPDATE profiles SET name = $2, role = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Role, p.IsActive, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// List lista perfiles con paginación.
func (r *ProfileRepo) List(ctx context.Context, limit, offset int) ([]*entity.Profile, error) {
	query := `
		SELECT id, email, password_hash, name, role, is_active, created_at, updated_at
		FROM profiles ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Name, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
