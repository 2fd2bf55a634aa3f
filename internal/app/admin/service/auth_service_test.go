package service

import (
	"context"
	"testing"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/repository/mocks"
	"mebelstore/internal/app/admin/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const superAdminPassword = "super-secret"

func registerRequest() *entity.RegisterRequest {
	return &entity.RegisterRequest{
		Surname:            "Иванов",
		Name:               "Иван",
		Login:              "ivanov",
		Password:           "password123",
		SuperAdminPassword: superAdminPassword,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	var saved *entity.Admin
	adminRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Admin")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.Admin)
			saved.ID = 1
		}).
		Return(nil)

	// Act
	admin, err := svc.Register(context.Background(), registerRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ivanov", admin.Login)
	// пароль хранится только как bcrypt-хэш
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.True(t, util.CheckPassword("password123", saved.PasswordHash))
}

func TestAuthService_Register_WrongSuperAdminPassword(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	req := registerRequest()
	req.SuperAdminPassword = "guess"

	// Act
	admin, err := svc.Register(context.Background(), req)

	// Assert
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, ErrForbidden)
	adminRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_EmptyConfiguredPasswordRejectsAll(t *testing.T) {
	// Arrange - пустой пароль супер-админа блокирует регистрацию целиком
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), "")

	req := registerRequest()
	req.SuperAdminPassword = ""

	// Act
	admin, err := svc.Register(context.Background(), req)

	// Assert
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthService_Register_DuplicateLogin(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	adminRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	// Act
	admin, err := svc.Register(context.Background(), registerRequest())

	// Assert
	assert.Nil(t, admin)
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	tokens := new(mocks.MockTokenManager)
	svc := NewAuthService(adminRepo, tokens, superAdminPassword)

	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	adminRepo.On("GetByLogin", mock.Anything, "ivanov").
		Return(&entity.Admin{ID: 1, Login: "ivanov", PasswordHash: hash}, nil)
	tokens.On("GenerateToken", uint(1), "ivanov").Return("signed-token", nil)
	tokens.On("GetTokenDuration").Return(24 * time.Hour)

	// Act
	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Login: "ivanov", Password: "password123"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(86400), resp.Expires)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	tokens := new(mocks.MockTokenManager)
	svc := NewAuthService(adminRepo, tokens, superAdminPassword)

	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	adminRepo.On("GetByLogin", mock.Anything, "ivanov").
		Return(&entity.Admin{ID: 1, Login: "ivanov", PasswordHash: hash}, nil)

	// Act
	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Login: "ivanov", Password: "wrong"})

	// Assert
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnknownLogin(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	adminRepo.On("GetByLogin", mock.Anything, "ghost").Return(nil, repository.ErrAdminNotFound)

	// Act
	resp, err := svc.Login(context.Background(), &entity.LoginRequest{Login: "ghost", Password: "password123"})

	// Assert
	assert.Nil(t, resp)
	// неизвестный логин и неверный пароль неразличимы для клиента
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_DeleteAdmin_Success(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	adminRepo.On("Delete", mock.Anything, uint(2)).Return(nil)

	// Act
	err := svc.DeleteAdmin(context.Background(), 2, superAdminPassword)

	// Assert
	require.NoError(t, err)
	adminRepo.AssertExpectations(t)
}

func TestAuthService_DeleteAdmin_WrongSuperAdminPassword(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	// Act
	err := svc.DeleteAdmin(context.Background(), 2, "guess")

	// Assert
	assert.ErrorIs(t, err, ErrForbidden)
	adminRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAuthService_DeleteAdmin_NotFound(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	adminRepo.On("Delete", mock.Anything, uint(99)).Return(repository.ErrAdminNotFound)

	// Act
	err := svc.DeleteAdmin(context.Background(), 99, superAdminPassword)

	// Assert
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestAuthService_ListAdmins(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	svc := NewAuthService(adminRepo, new(mocks.MockTokenManager), superAdminPassword)

	admins := []entity.Admin{{ID: 1, Login: "ivanov"}, {ID: 2, Login: "petrov"}}
	adminRepo.On("List", mock.Anything, entity.PageQuery{Page: 1, Limit: 20}).Return(admins, int64(2), nil)

	// Act
	got, total, err := svc.ListAdmins(context.Background(), entity.PageQuery{Page: 1, Limit: 20})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, got, 2)
}
