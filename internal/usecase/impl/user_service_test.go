package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockUserRepository
	hasher       *mockPasswordHasher
	tokenService *mockTokenService
}

func createTestUserService(_ *testing.T) userServiceFixtures {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenService := new(mockTokenService)

	service := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{userRepo: userRepo},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Username: "amina",
		Email:    "amina@example.com",
		Password: "secret-password",
	}

	fx.hasher.On("Hash", "secret-password").Return("$2a$10$hash", nil)
	fx.userRepo.On("FindByEmail", ctx, "amina@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", ctx, "amina").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.On("GenerateToken", mock.AnythingOfType("*entity.User")).Return("signed.jwt", nil)

	output, err := fx.service.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.Equal(t, "amina", output.User.Username)
	assert.Equal(t, "amina@example.com", output.User.Email)
	assert.False(t, output.User.IsAdmin)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_Register_StoresHashNotPlaintext(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.On("Hash", "plaintext").Return("$2a$10$hash", nil)
	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Password == "$2a$10$hash"
	})).Return(nil)
	fx.tokenService.On("GenerateToken", mock.Anything).Return("signed.jwt", nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "sara",
		Email:    "sara@example.com",
		Password: "plaintext",
	})
	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "amina@example.com"}

	fx.hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)
	fx.userRepo.On("FindByEmail", ctx, "amina@example.com").Return(existing, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "amina2",
		Email:    "amina@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Username: "amina"}

	fx.hasher.On("Hash", mock.Anything).Return("$2a$10$hash", nil)
	fx.userRepo.On("FindByEmail", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByUsername", ctx, "amina").Return(existing, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username: "amina",
		Email:    "other@example.com",
		Password: "secret-password",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Username: "amina",
		Email:    "amina@example.com",
		Password: "$2a$10$hash",
		IsAdmin:  true,
	}

	fx.userRepo.On("FindByEmail", ctx, "amina@example.com").Return(user, nil)
	fx.hasher.On("Check", "secret-password", "$2a$10$hash").Return(true)
	fx.tokenService.On("GenerateToken", user).Return("signed.jwt", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "amina@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", output.Token)
	assert.True(t, output.User.IsAdmin)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "amina@example.com", Password: "$2a$10$hash"}

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("FindByEmail", ctx, "amina@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong-password", "$2a$10$hash").Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: "amina@example.com", Password: "wrong-password"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetProfile_OmitsPasswordHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Username: "amina",
		Email:    "amina@example.com",
		Password: "$2a$10$hash",
	}

	fx.userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	profile, err := fx.service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "amina", profile.Username)
}
