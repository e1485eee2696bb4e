package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"team-mentorship.backend/internal/domain/entities"
	domainerrors "team-mentorship.backend/internal/domain/errors"
	"team-mentorship.backend/internal/usecases"
	"team-mentorship.backend/pkg/crypto"
	"team-mentorship.backend/pkg/jwt"
)

func testJWTService() *jwt.JWTService {
	return jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthUsecase_Register_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(mockUserRepo, testJWTService())

	mockUserRepo.On("GetByEmail", context.Background(), "ada@uni.edu").
		Return(nil, domainerrors.ErrNotFound).Once()
	mockUserRepo.On("Create", context.Background(), mock.MatchedBy(func(u *entities.User) bool {
		return u.Email == "ada@uni.edu" &&
			u.Role == entities.UserRoleStudent &&
			u.PasswordHash != "" && u.PasswordHash != "hunter2secret"
	})).Return(nil).Once()

	resp, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:    "ada@uni.edu",
		Name:     "Ada",
		Password: "hunter2secret",
		Role:     entities.UserRoleStudent,
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Ada", resp.User.Name)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(mockUserRepo, testJWTService())

	mockUserRepo.On("GetByEmail", context.Background(), "ada@uni.edu").
		Return(&entities.User{ID: uuid.New(), Email: "ada@uni.edu"}, nil).Once()

	_, err := uc.Register(context.Background(), &entities.RegisterInput{
		Email:    "ada@uni.edu",
		Name:     "Ada",
		Password: "hunter2secret",
		Role:     entities.UserRoleStudent,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(mockUserRepo, testJWTService())

	hash, err := crypto.HashPassword("correct-password")
	assert.NoError(t, err)
	mockUserRepo.On("GetByEmail", context.Background(), "ada@uni.edu").
		Return(&entities.User{ID: uuid.New(), Email: "ada@uni.edu", PasswordHash: hash}, nil).Once()

	_, err = uc.Login(context.Background(), &entities.LoginInput{Email: "ada@uni.edu", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Login_UnknownEmailSameError(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(mockUserRepo, testJWTService())

	mockUserRepo.On("GetByEmail", context.Background(), "ghost@uni.edu").
		Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.Login(context.Background(), &entities.LoginInput{Email: "ghost@uni.edu", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	uc := usecases.NewAuthUsecase(mockUserRepo, testJWTService())

	hash, err := crypto.HashPassword("correct-password")
	assert.NoError(t, err)
	user := &entities.User{
		ID:           uuid.New(),
		Email:        "ada@uni.edu",
		PasswordHash: hash,
		Role:         entities.UserRoleStudent,
	}
	mockUserRepo.On("GetByEmail", context.Background(), "ada@uni.edu").Return(user, nil).Once()

	resp, err := uc.Login(context.Background(), &entities.LoginInput{Email: "ada@uni.edu", Password: "correct-password"})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAuthUsecase_Refresh_RoundTrip(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := testJWTService()
	uc := usecases.NewAuthUsecase(mockUserRepo, svc)

	user := &entities.User{ID: uuid.New(), Email: "ada@uni.edu", Role: entities.UserRoleStudent}
	pair, err := svc.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	assert.NoError(t, err)

	mockUserRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()

	resp, err := uc.Refresh(context.Background(), &entities.RefreshInput{RefreshToken: pair.RefreshToken})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAuthUsecase_Refresh_GarbageToken(t *testing.T) {
	uc := usecases.NewAuthUsecase(new(MockUserRepository), testJWTService())

	_, err := uc.Refresh(context.Background(), &entities.RefreshInput{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthUsecase_Refresh_DeletedAccount(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	svc := testJWTService()
	uc := usecases.NewAuthUsecase(mockUserRepo, svc)

	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(userID, "gone@uni.edu", string(entities.UserRoleStudent))
	assert.NoError(t, err)

	mockUserRepo.On("GetByID", context.Background(), userID).
		Return(nil, domainerrors.ErrNotFound).Once()

	_, err = uc.Refresh(context.Background(), &entities.RefreshInput{RefreshToken: pair.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
