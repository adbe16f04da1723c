package service

import (
	"context"
	"sync"
	"time"

	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo 是 UserRepo 接口的模拟实现
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockGroupRepo 是 GroupRepo 接口的模拟实现
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) GetGroupById(ctx context.Context, id uint64) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepo) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepo) ListGroups(ctx context.Context) ([]*model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

func (m *MockGroupRepo) CreateGroup(ctx context.Context, group *model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// MockPostRepo 是 PostRepo 接口的模拟实现
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) CountPosts(ctx context.Context, filter repository.PostFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) ListPosts(ctx context.Context, filter repository.PostFilter, limit, offset int) ([]*model.Post, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) UpdatePost(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

// MockCommentRepo 是 CommentRepo 接口的模拟实现
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) GetCommentsByPostId(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// MockFollowRepo 是 FollowRepo 接口的模拟实现
type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) GetFollowingIds(ctx context.Context, followerID uint64) ([]uint64, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockFollowRepo) IsFollowing(ctx context.Context, followerID uint64, followingID uint64) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepo) CreateFollow(ctx context.Context, follow *model.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepo) DeleteFollow(ctx context.Context, follow *model.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

type cacheEntry struct {
	data     *dto.PostPageDTO
	storedAt time.Time
}

// fakeListingCache 内存版首页缓存，过期语义与线上一致
type fakeListingCache struct {
	mu    sync.Mutex
	pages map[int]cacheEntry
}

func newFakeListingCache() *fakeListingCache {
	return &fakeListingCache{pages: make(map[int]cacheEntry)}
}

func (f *fakeListingCache) GetPage(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.pages[page]
	if !ok {
		return nil, nil
	}
	if time.Since(entry.storedAt) >= consts.IndexCacheTTL {
		delete(f.pages, page)
		return nil, nil
	}
	return entry.data, nil
}

func (f *fakeListingCache) SetPage(ctx context.Context, page int, data *dto.PostPageDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[page] = cacheEntry{data: data, storedAt: time.Now()}
	return nil
}

// backdate 人为调老缓存条目，模拟 TTL 过期
func (f *fakeListingCache) backdate(page int, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry, ok := f.pages[page]; ok {
		entry.storedAt = entry.storedAt.Add(-d)
		f.pages[page] = entry
	}
}

func (f *fakeListingCache) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = make(map[int]cacheEntry)
	return nil
}
