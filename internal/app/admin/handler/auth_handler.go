package handler

import (
	"net/http"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthServiceInterface
}

func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register создает администратора, требует пароль супер-админа
func (h *AuthHandler) Register(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, admin)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *AuthHandler) ListAdmins(c *gin.Context) {
	q, err := parsePageQuery(c)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	admins, total, err := h.authService.ListAdmins(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, admins, total, q.Page, listLimit(q))
}

// DeleteAdmin удаляет администратора, требует пароль супер-админа в теле
func (h *AuthHandler) DeleteAdmin(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req entity.DeleteAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.authService.DeleteAdmin(c.Request.Context(), id, req.SuperAdminPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "admin deleted")
}
