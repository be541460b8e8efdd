package dto

import "time"

// RegisterRequest entrada para registro. El rol NO es configurable:
// todo registro nace como staff activo; solo un admin lo cambia después.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ProfileResponse salida de un perfil (sin password).
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada para actualizar un perfil.
// Name lo puede cambiar el propio usuario; Role e IsActive solo un admin.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin staff"`
	IsActive *bool   `json:"is_active"`
}

// ProfileListResponse lista paginada de perfiles.
type ProfileListResponse struct {
	Items []ProfileResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
