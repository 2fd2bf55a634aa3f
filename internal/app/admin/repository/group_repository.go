package repository

import (
	"context"

	"mebelstore/internal/app/admin/entity"

	"gorm.io/gorm"
)

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository создает новый репозиторий телеграм-чатов
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *entity.TelegramGroup) error {
	return translateError(r.db.WithContext(ctx).Create(group).Error, ErrGroupNotFound)
}

// GetFirst возвращает первый зарегистрированный чат. Анонсы товаров
// уходят именно в него.
func (r *groupRepository) GetFirst(ctx context.Context) (*entity.TelegramGroup, error) {
	var group entity.TelegramGroup
	err := r.db.WithContext(ctx).Order("id ASC").First(&group).Error
	if err != nil {
		return nil, translateError(err, ErrGroupNotFound)
	}
	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]entity.TelegramGroup, error) {
	var groups []entity.TelegramGroup
	err := r.db.WithContext(ctx).Order("id ASC").Find(&groups).Error
	return groups, err
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.TelegramGroup{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}
	return nil
}
