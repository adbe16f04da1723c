package repository

import (
	"context"
	"errors"

	"yatube/internal/model"

	"gorm.io/gorm"
)

type GroupRepo interface {
	GetGroupById(ctx context.Context, id uint64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context) ([]*model.Group, error)
	CreateGroup(ctx context.Context, group *model.Group) error
}

type GroupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &GroupRepoImpl{db: db}
}

func (s *GroupRepoImpl) GetGroupById(ctx context.Context, id uint64) (*model.Group, error) {
	group := &model.Group{}
	result := s.db.WithContext(ctx).First(group, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return group, nil
}

func (s *GroupRepoImpl) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	group := &model.Group{}
	result := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(group)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return group, nil
}

func (s *GroupRepoImpl) ListGroups(ctx context.Context) ([]*model.Group, error) {
	groups := make([]*model.Group, 0)
	result := s.db.WithContext(ctx).
		Order("id asc").
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

func (s *GroupRepoImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}
