package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/infrastructure/jsonstore"
)

func newAuthUC(t *testing.T) *AuthUseCase {
	t.Helper()
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)
	repo, err := jsonstore.NewUserRepository(store)
	require.NoError(t, err)
	return NewAuthUseCase(repo, JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "renova-test"})
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	uc := newAuthUC(t)

	user, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta", UserType: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, entity.RoleAdmin, user.UserType)

	resp, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "s3creta"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maria", resp.User.Username)
}

func TestAuth_RegisterValidation(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAuth_RegisterDuplicate(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta"})
	require.NoError(t, err)

	// Sin distinguir mayúsculas.
	_, err = uc.Register(dto.RegisterRequest{Username: "MARIA", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAuth_LoginFailures(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// El registro nunca guarda la contraseña en claro.
func TestAuth_PasswordIsHashed(t *testing.T) {
	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)
	repo, err := jsonstore.NewUserRepository(store)
	require.NoError(t, err)
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "renova-test"})

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta"})
	require.NoError(t, err)

	stored, err := repo.GetByUsername("maria")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3creta", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "s3creta")
}

func TestAuth_VerifyCredentialsAndHasUsers(t *testing.T) {
	uc := newAuthUC(t)

	has, err := uc.HasUsers()
	require.NoError(t, err)
	assert.False(t, has)

	_, err = uc.Register(dto.RegisterRequest{Username: "maria", Password: "s3creta"})
	require.NoError(t, err)

	has, err = uc.HasUsers()
	require.NoError(t, err)
	assert.True(t, has)

	user, err := uc.VerifyCredentials("maria", "s3creta")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperador, user.UserType, "tipo por defecto")

	_, err = uc.VerifyCredentials("maria", "mal")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
