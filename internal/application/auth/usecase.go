package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/carnicos-api/internal/domain"
	"github.com/jhoicas/carnicos-api/internal/domain/entity"
	"github.com/jhoicas/carnicos-api/internal/domain/repository"
	"github.com/jhoicas/carnicos-api/pkg/jwt"
)

// UseCase autenticación: login con bcrypt y emisión de JWT.
type UseCase struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		expMinutes: expMinutes,
	}
}

// Login valida credenciales y devuelve el token firmado más el usuario.
// Credencial inválida y usuario inexistente responden el mismo error para
// no filtrar qué usuarios existen.
func (uc *UseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.Status == "inactive" {
		return "", nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.StoreID, user.Role, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Refresh emite un token nuevo para un usuario ya autenticado.
func (uc *UseCase) Refresh(ctx context.Context, userID string) (string, *entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.Status == "inactive" {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.StoreID, user.Role, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// HashPassword genera el hash bcrypt para persistir.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
