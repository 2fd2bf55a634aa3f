package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/repository/mocks"
	"mebelstore/internal/app/admin/service"
	"mebelstore/internal/app/admin/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSuperAdminPassword = "super-secret"

// authHandlerRouter собирает хендлер поверх настоящего сервиса с мок-репозиторием
func authHandlerRouter(adminRepo *mocks.MockAdminRepository) *gin.Engine {
	jwtManager := util.NewJWTManager("test-secret", time.Hour)
	authService := service.NewAuthService(adminRepo, jwtManager, testSuperAdminPassword)
	h := NewAuthHandler(authService)

	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/login", h.Login)
	router.GET("/api/auth/admins", h.ListAdmins)
	router.DELETE("/api/auth/delete/:id", h.DeleteAdmin)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Admin")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Admin).ID = 1
		}).
		Return(nil)

	router := authHandlerRouter(adminRepo)

	// Act
	w := postJSON(t, router, "/api/auth/register", gin.H{
		"surname":              "Иванов",
		"name":                 "Иван",
		"login":                "ivanov",
		"password":             "password123",
		"super_admin_password": testSuperAdminPassword,
	})

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"login":"ivanov"`)
	// хэш пароля не должен попадать в ответ
	assert.NotContains(t, w.Body.String(), "hash_password")
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	// Arrange
	router := authHandlerRouter(new(mocks.MockAdminRepository))

	// Act - нет логина и пароля
	w := postJSON(t, router, "/api/auth/register", gin.H{
		"surname": "Иванов",
		"name":    "Иван",
	})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Register_WrongSuperAdminPassword(t *testing.T) {
	// Arrange
	router := authHandlerRouter(new(mocks.MockAdminRepository))

	// Act
	w := postJSON(t, router, "/api/auth/register", gin.H{
		"surname":              "Иванов",
		"name":                 "Иван",
		"login":                "ivanov",
		"password":             "password123",
		"super_admin_password": "guess",
	})

	// Assert
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Register_DuplicateLogin(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	router := authHandlerRouter(adminRepo)

	// Act
	w := postJSON(t, router, "/api/auth/register", gin.H{
		"surname":              "Иванов",
		"name":                 "Иван",
		"login":                "ivanov",
		"password":             "password123",
		"super_admin_password": testSuperAdminPassword,
	})

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	// Arrange
	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("GetByLogin", mock.Anything, "ivanov").
		Return(&entity.Admin{ID: 1, Login: "ivanov", PasswordHash: hash}, nil)

	router := authHandlerRouter(adminRepo)

	// Act
	w := postJSON(t, router, "/api/auth/login", gin.H{
		"login":    "ivanov",
		"password": "password123",
	})

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data entity.LoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, int64(3600), resp.Data.Expires)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	// Arrange
	hash, err := util.HashPassword("password123")
	require.NoError(t, err)

	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("GetByLogin", mock.Anything, "ivanov").
		Return(&entity.Admin{ID: 1, Login: "ivanov", PasswordHash: hash}, nil)

	router := authHandlerRouter(adminRepo)

	// Act
	w := postJSON(t, router, "/api/auth/login", gin.H{
		"login":    "ivanov",
		"password": "wrong",
	})

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid login or password", decodeMessage(t, w))
}

func TestAuthHandler_DeleteAdmin_Success(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("Delete", mock.Anything, uint(2)).Return(nil)

	router := authHandlerRouter(adminRepo)

	data, _ := json.Marshal(gin.H{"super_admin_password": testSuperAdminPassword})
	req := httptest.NewRequest(http.MethodDelete, "/api/auth/delete/2", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	adminRepo.AssertExpectations(t)
}

func TestAuthHandler_DeleteAdmin_InvalidID(t *testing.T) {
	// Arrange
	router := authHandlerRouter(new(mocks.MockAdminRepository))

	data, _ := json.Marshal(gin.H{"super_admin_password": testSuperAdminPassword})
	req := httptest.NewRequest(http.MethodDelete, "/api/auth/delete/abc", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", decodeMessage(t, w))
}

func TestAuthHandler_ListAdmins_Pagination(t *testing.T) {
	// Arrange
	adminRepo := new(mocks.MockAdminRepository)
	adminRepo.On("List", mock.Anything, entity.PageQuery{Page: 2, Limit: 10}).
		Return([]entity.Admin{{ID: 11, Login: "a11"}}, int64(25), nil)

	router := authHandlerRouter(adminRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/admins?page=2&limit=10", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)

	var resp entity.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(25), resp.Count)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 3, resp.TotalPages)
}
