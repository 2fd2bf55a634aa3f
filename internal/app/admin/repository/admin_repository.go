package repository

import (
	"context"

	"mebelstore/internal/app/admin/entity"

	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository создает новый репозиторий администраторов
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	return translateError(r.db.WithContext(ctx).Create(admin).Error, ErrAdminNotFound)
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, ErrAdminNotFound)
	}
	return &admin, nil
}

func (r *adminRepository) GetByLogin(ctx context.Context, login string) (*entity.Admin, error) {
	var admin entity.Admin
	err := r.db.WithContext(ctx).First(&admin, "login = ?", login).Error
	if err != nil {
		return nil, translateError(err, ErrAdminNotFound)
	}
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.Admin, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []entity.Admin
	err := paginate(r.db.WithContext(ctx), q).
		Order("created_at ASC").
		Find(&admins).Error
	if err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

func (r *adminRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Admin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
