package service

import (
	"context"
	"testing"

	"yatube/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestFollowSelf 不能关注自己
func TestFollowSelf(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	svc := NewFollowService(followRepo, userRepo)
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "leo").Return(&model.User{ID: 1, Username: "leo"}, nil)

	err := svc.Follow(ctx, 1, "leo")
	assert.ErrorIs(t, err, ErrUserFollowSelf)
	followRepo.AssertNotCalled(t, "CreateFollow", mock.Anything, mock.Anything)
}

// TestFollowUnknownAuthor 关注不存在的作者
func TestFollowUnknownAuthor(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	svc := NewFollowService(followRepo, userRepo)
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, nil)

	err := svc.Follow(ctx, 1, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestFollowIdempotent 重复关注同样成功
func TestFollowIdempotent(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	svc := NewFollowService(followRepo, userRepo)
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "leo").Return(&model.User{ID: 2, Username: "leo"}, nil)
	followRepo.On("CreateFollow", ctx, &model.Follow{FollowerID: 1, FollowingID: 2}).Return(nil)

	assert.NoError(t, svc.Follow(ctx, 1, "leo"))
	assert.NoError(t, svc.Follow(ctx, 1, "leo"))
	followRepo.AssertNumberOfCalls(t, "CreateFollow", 2)
}

// TestUnfollowWithoutFollow 未关注时取消关注也不报错
func TestUnfollowWithoutFollow(t *testing.T) {
	followRepo := new(MockFollowRepo)
	userRepo := new(MockUserRepo)
	svc := NewFollowService(followRepo, userRepo)
	ctx := context.Background()

	userRepo.On("GetUserByUsername", ctx, "leo").Return(&model.User{ID: 2, Username: "leo"}, nil)
	followRepo.On("DeleteFollow", ctx, &model.Follow{FollowerID: 1, FollowingID: 2}).Return(nil)

	assert.NoError(t, svc.Unfollow(ctx, 1, "leo"))
}
