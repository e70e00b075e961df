package auth

import (
	"strings"

	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/internal/domain"
	"github.com/tu-usuario/renova-gestion/internal/domain/entity"
	"github.com/tu-usuario/renova-gestion/internal/domain/repository"
	"github.com/tu-usuario/renova-gestion/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. El sistema
// original guardaba SHA-256 sin sal; aquí se reemplaza por bcrypt.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Username o contraseña vacíos → domain.ErrInvalidInput; username ya
// registrado → domain.ErrDuplicate.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	userType := in.UserType
	if userType == "" {
		userType = entity.RoleOperador
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		UserType:     userType,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/contraseña, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.UserType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// HasUsers indica si hay algún usuario registrado.
func (uc *AuthUseCase) HasUsers() (bool, error) {
	n, err := uc.userRepo.Count()
	return n > 0, err
}

// VerifyCredentials valida username/contraseña sin emitir token; lo usa el
// shell de consola para la puerta de entrada al menú.
func (uc *AuthUseCase) VerifyCredentials(username, password string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{Username: u.Username, UserType: u.UserType}
}
