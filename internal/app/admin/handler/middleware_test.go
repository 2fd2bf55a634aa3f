package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository/mocks"
	"mebelstore/internal/app/admin/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(tokens util.TokenManager) *gin.Engine {
	router := gin.New()
	middleware := NewAuthMiddleware(tokens)
	router.GET("/protected", middleware.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetUint(adminIDKey)})
	})
	return router
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp entity.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	// Arrange
	router := authTestRouter(new(mocks.MockTokenManager))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "authorization header required", decodeMessage(t, w))
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	// Arrange
	router := authTestRouter(new(mocks.MockTokenManager))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid authorization header format", decodeMessage(t, w))
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	// Arrange
	router := authTestRouter(new(mocks.MockTokenManager))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer   ")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token required", decodeMessage(t, w))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	// Arrange
	tokens := new(mocks.MockTokenManager)
	tokens.On("ValidateToken", "stale").Return(nil, util.ErrExpiredToken)
	router := authTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token has expired", decodeMessage(t, w))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	// Arrange
	tokens := new(mocks.MockTokenManager)
	tokens.On("ValidateToken", "garbage").Return(nil, util.ErrInvalidToken)
	router := authTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid token", decodeMessage(t, w))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	tokens := new(mocks.MockTokenManager)
	tokens.On("ValidateToken", "good-token").Return(&util.JWTClaims{AdminID: 42, Login: "ivanov"}, nil)
	router := authTestRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":42`)
}

func TestAuthMiddleware_RealTokenRoundTrip(t *testing.T) {
	// Arrange - настоящий JWTManager вместо мока
	manager := util.NewJWTManager("test-secret", time.Hour)
	token, err := manager.GenerateToken(7, "petrov")
	require.NoError(t, err)

	router := authTestRouter(manager)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":7`)
}

// === AUDIT MIDDLEWARE ===

func TestAuditMiddleware_RecordsAuthorizedRequest(t *testing.T) {
	// Arrange
	auditRepo := new(mocks.MockAuditRepository)

	var recorded *entity.AuditRecord
	auditRepo.On("Record", mock.Anything, mock.AnythingOfType("*entity.AuditRecord")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*entity.AuditRecord)
		}).
		Return(nil)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(adminIDKey, uint(42)) })
	router.Use(AuditMiddleware(auditRepo))
	router.DELETE("/api/product/5", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{})
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/product/5", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	auditRepo.AssertExpectations(t)
	require.NotNil(t, recorded)
	assert.Equal(t, uint(42), recorded.AdminID)
	assert.Equal(t, http.MethodDelete, recorded.Method)
	assert.Equal(t, "/api/product/5", recorded.Path)
	assert.Equal(t, http.StatusOK, recorded.Status)
}

func TestAuditMiddleware_SkipsAnonymousRequest(t *testing.T) {
	// Arrange
	auditRepo := new(mocks.MockAuditRepository)

	router := gin.New()
	router.Use(AuditMiddleware(auditRepo))
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	auditRepo.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestAuditMiddleware_NilRepositoryIsNoop(t *testing.T) {
	// Arrange - MongoDB может быть не сконфигурирована
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set(adminIDKey, uint(42)) })
	router.Use(AuditMiddleware(nil))
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
}
