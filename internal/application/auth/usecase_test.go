package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

type fakeProfileRepo struct {
	byID    map[string]*entity.Profile
	byEmail map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byID:    make(map[string]*entity.Profile),
		byEmail: make(map[string]*entity.Profile),
	}
}

func (r *fakeProfileRepo) Create(_ context.Context, p *entity.Profile) error {
	r.byID[p.ID] = p
	r.byEmail[p.Email] = p
	return nil
}
func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*entity.Profile, error) {
	return r.byID[id], nil
}
func (r *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*entity.Profile, error) {
	return r.byEmail[email], nil
}
func (r *fakeProfileRepo) Update(_ context.Context, p *entity.Profile) error {
	r.byID[p.ID] = p
	r.byEmail[p.Email] = p
	return nil
}
func (r *fakeProfileRepo) List(_ context.Context, _, _ int) ([]*entity.Profile, error) {
	out := make([]*entity.Profile, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "almacen-api-test"}
}

func TestRegister_CreaStaffActivo(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@almacen.local",
		Password: "supersegura",
		Name:     "Nuevo",
	})
	require.NoError(t, err)

	// El rol no es elegible en el registro: siempre staff activo.
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.True(t, out.IsActive)

	stored := repo.byEmail["nuevo@almacen.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersegura", stored.PasswordHash, "el password nunca se guarda plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersegura")))
}

func TestRegister_NombreVacioUsaEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "sin-nombre@almacen.local",
		Password: "supersegura",
	})
	require.NoError(t, err)
	assert.Equal(t, "sin-nombre@almacen.local", out.Name)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@almacen.local", Password: "supersegura"})
	require.NoError(t, err)
	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "x@almacen.local", Password: "otraclave123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConRolYUserID(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@almacen.local", Password: "supersegura"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "x@almacen.local", Password: "supersegura"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@almacen.local", Password: "supersegura"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "x@almacen.local", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@almacen.local", Password: "supersegura"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactivaBloqueada(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "x@almacen.local", Password: "supersegura"})
	require.NoError(t, err)
	repo.byID[reg.ID].IsActive = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "x@almacen.local", Password: "supersegura"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cuenta desactivada no inicia sesión")
}
