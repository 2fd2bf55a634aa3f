package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"

	"github.com/gin-gonic/gin"
)

// adminIDKey - ключ gin-контекста с id авторизованного администратора
const adminIDKey = "admin_id"

type AuthMiddleware struct {
	tokens util.TokenManager
}

func NewAuthMiddleware(tokens util.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate проверяет Bearer токен. Каждая причина отказа
// возвращает свой текст, чтобы фронту было проще показывать ошибки.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondMessage(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondMessage(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		token := strings.TrimSpace(parts[1])
		if token == "" {
			respondMessage(c, http.StatusUnauthorized, "token required")
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			if errors.Is(err, util.ErrExpiredToken) {
				respondMessage(c, http.StatusUnauthorized, "token has expired")
			} else {
				respondMessage(c, http.StatusUnauthorized, "invalid token")
			}
			c.Abort()
			return
		}

		c.Set(adminIDKey, claims.AdminID)
		c.Next()
	}
}

// AuditMiddleware пишет действия авторизованных администраторов в журнал.
// Запись идет после ответа и не влияет на результат запроса.
func AuditMiddleware(auditRepo repository.AuditRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if auditRepo == nil {
			return
		}

		adminID := c.GetUint(adminIDKey)
		if adminID == 0 {
			return
		}

		record := &entity.AuditRecord{
			AdminID:   adminID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			CreatedAt: time.Now(),
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := auditRepo.Record(ctx, record); err != nil {
			logger.Warn().Err(err).Msg("failed to write audit record")
		}
	}
}
