package repository

import (
	"context"
	"errors"

	"yatube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	GetFollowingIds(ctx context.Context, followerID uint64) ([]uint64, error)
	IsFollowing(ctx context.Context, followerID uint64, followingID uint64) (bool, error)
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, follow *model.Follow) error
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// GetFollowingIds 获取用户关注的所有作者ID
func (s *FollowRepoImpl) GetFollowingIds(ctx context.Context, followerID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids)

	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// IsFollowing 判断关注关系是否存在
func (s *FollowRepoImpl) IsFollowing(ctx context.Context, followerID uint64, followingID uint64) (bool, error) {
	var follow model.Follow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// CreateFollow 创建关注关系，重复关注静默忽略
func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

// DeleteFollow 删除关注关系，未关注时不报错
func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", follow.FollowerID, follow.FollowingID).
		Delete(&model.Follow{}).Error
}
