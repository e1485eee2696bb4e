package usecases

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/domain/repositories"
	"team-mentorship.backend/pkg/crypto"
	"team-mentorship.backend/pkg/jwt"
)

// AuthUsecase handles registration, login and token refresh
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new account. Admin accounts are never self-registered;
// the binding on RegisterInput restricts roles to student and mentor.
func (uc *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("email is already registered", domainerrors.ErrAlreadyExists)
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         input.Role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueTokens(user)
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error.
func (uc *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("invalid email or password")
	}
	return uc.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The user record
// is re-read so revoked accounts and role changes take effect immediately.
func (uc *AuthUsecase) Refresh(ctx context.Context, input *entities.RefreshInput) (*entities.AuthResponse, error) {
	claims, err := uc.jwtService.ValidateToken(input.RefreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.NewAppError(http.StatusUnauthorized, "refresh token has expired", domainerrors.ErrTokenExpired)
		}
		return nil, domainerrors.Unauthorized("invalid refresh token")
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("account no longer exists")
		}
		return nil, err
	}
	return uc.issueTokens(user)
}

// Me returns the actor's own account.
func (uc *AuthUsecase) Me(ctx context.Context, actor Actor) (*entities.User, error) {
	return uc.userRepo.GetByID(ctx, actor.ID)
}

func (uc *AuthUsecase) issueTokens(user *entities.User) (*entities.AuthResponse, error) {
	pair, err := uc.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
