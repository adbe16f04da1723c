package service

import (
	"context"

	"yatube/internal/model"
	"yatube/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, userID uint64, username string) error
	Unfollow(ctx context.Context, userID uint64, username string) error
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow 关注作者，重复关注幂等，不能关注自己
func (s *FollowServiceImpl) Follow(ctx context.Context, userID uint64, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}
	if author.ID == userID {
		return ErrUserFollowSelf
	}

	return s.followRepo.CreateFollow(ctx, &model.Follow{
		FollowerID:  userID,
		FollowingID: author.ID,
	})
}

// Unfollow 取消关注，未关注时同样成功
func (s *FollowServiceImpl) Unfollow(ctx context.Context, userID uint64, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}

	return s.followRepo.DeleteFollow(ctx, &model.Follow{
		FollowerID:  userID,
		FollowingID: author.ID,
	})
}
