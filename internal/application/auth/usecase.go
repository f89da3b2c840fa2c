package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Concesionario-api/internal/application/dto"
	"github.com/jhoicas/Concesionario-api/internal/domain"
	"github.com/jhoicas/Concesionario-api/internal/domain/entity"
	"github.com/jhoicas/Concesionario-api/internal/domain/repository"
	"github.com/jhoicas/Concesionario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string // base64
	ExpMinutes int
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	credRepo repository.UserCredentialRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credRepo repository.UserCredentialRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, jwtCfg: jwtCfg}
}

// Register crea una credencial: normaliza el username a minúsculas, verifica
// unicidad, rechaza el rol ADMIN, hashea el password con bcrypt y persiste.
// En el éxito devuelve la proyección pública (username, role); en cualquier
// fallo no se escribe nada.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.ToLower(in.Username)

	existing, err := uc.credRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	role := strings.ToUpper(in.Role)
	if role == entity.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	cred := &entity.UserCredential{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.credRepo.Create(cred); err != nil {
		return nil, err
	}
	return &dto.UserResponse{Username: cred.Username, Role: cred.Role}, nil
}

// Login verifica username/password contra la credencial almacenada y, en el
// éxito, emite un JWT con subject=username y el rol guardado. No hay lockout
// ni throttling.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, error) {
	username := strings.ToLower(in.Username)

	cred, err := uc.credRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if cred == nil {
		return "", domain.NewUserNotFound(username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrBadCredentials
	}
	return jwt.Generate(uc.jwtCfg.Secret, cred.Username, cred.Role, uc.jwtCfg.ExpMinutes)
}
