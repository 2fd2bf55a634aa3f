package service

import (
	"context"
	"errors"
	"fmt"

	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/repository"
)

// GroupService обрабатывает список телеграм-чатов для анонсов
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService создает новый сервис телеграм-чатов
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) Create(ctx context.Context, req *entity.CreateGroupRequest) (*entity.TelegramGroup, error) {
	group := &entity.TelegramGroup{
		ChatID: req.ChatID,
		Title:  req.Title,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create telegram group: %w", err)
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context) ([]entity.TelegramGroup, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list telegram groups: %w", err)
	}
	return groups, nil
}

func (s *GroupService) Delete(ctx context.Context, id uint) error {
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to delete telegram group: %w", err)
	}
	return nil
}
