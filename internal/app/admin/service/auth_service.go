package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/metrics"
)

// AuthService обрабатывает регистрацию и вход администраторов.
// Регистрация и удаление защищены паролем супер-админа.
type AuthService struct {
	adminRepo          repository.AdminRepository
	tokens             util.TokenManager
	superAdminPassword string
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(adminRepo repository.AdminRepository, tokens util.TokenManager, superAdminPassword string) *AuthService {
	return &AuthService{
		adminRepo:          adminRepo,
		tokens:             tokens,
		superAdminPassword: superAdminPassword,
	}
}

// Register создает администратора. Неверный пароль супер-админа - 403.
func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) (*entity.Admin, error) {
	if !s.checkSuperAdmin(req.SuperAdminPassword) {
		return nil, ErrForbidden
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &entity.Admin{
		Surname:      req.Surname,
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: hash,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// Login проверяет пароль и выдает JWT с id администратора
func (s *AuthService) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	admin, err := s.adminRepo.GetByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			metrics.AuthLogins.WithLabelValues("failed").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if !util.CheckPassword(req.Password, admin.PasswordHash) {
		metrics.AuthLogins.WithLabelValues("failed").Inc()
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(admin.ID, admin.Login)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	metrics.AuthLogins.WithLabelValues("success").Inc()
	return &entity.LoginResponse{
		Token:   token,
		Expires: int64(s.tokens.GetTokenDuration().Seconds()),
	}, nil
}

// ListAdmins возвращает администраторов; хэш пароля не сериализуется
func (s *AuthService) ListAdmins(ctx context.Context, q entity.PageQuery) ([]entity.Admin, int64, error) {
	admins, total, err := s.adminRepo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, total, nil
}

// DeleteAdmin удаляет администратора. Неверный пароль супер-админа - 403.
func (s *AuthService) DeleteAdmin(ctx context.Context, id uint, superAdminPassword string) error {
	if !s.checkSuperAdmin(superAdminPassword) {
		return ErrForbidden
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return ErrAdminNotFound
		}
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}

func (s *AuthService) checkSuperAdmin(password string) bool {
	if s.superAdminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.superAdminPassword)) == 1
}
