package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"yatube/internal/api/dto"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostService 是 PostService 接口的模拟实现
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Index(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostPageDTO), args.Error(1)
}

func (m *MockPostService) GroupPosts(ctx context.Context, slug string, page int) (*dto.GroupPageDTO, error) {
	args := m.Called(ctx, slug, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GroupPageDTO), args.Error(1)
}

func (m *MockPostService) Profile(ctx context.Context, username string, viewerID uint64, page int) (*dto.ProfileDTO, error) {
	args := m.Called(ctx, username, viewerID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileDTO), args.Error(1)
}

func (m *MockPostService) Feed(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostPageDTO), args.Error(1)
}

func (m *MockPostService) Detail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostDetailDTO), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (uint64, error) {
	args := m.Called(ctx, userID, postDTO)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) error {
	args := m.Called(ctx, userID, postID, postDTO)
	return args.Error(0)
}

func fakeAuth(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func setupPostRouter(svc service.PostService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)

	r := gin.New()
	r.GET("/api/posts", h.Index)
	r.GET("/api/posts/detail/:post_id", h.Detail)
	r.POST("/api/posts", fakeAuth(userID), h.CreatePost)
	r.PUT("/api/posts/:post_id", fakeAuth(userID), h.UpdatePost)
	return r
}

// TestIndexHandler 首页返回统一响应封装
func TestIndexHandler(t *testing.T) {
	svc := new(MockPostService)
	r := setupPostRouter(svc, 0)

	svc.On("Index", mock.Anything, 2).Return(&dto.PostPageDTO{
		List:       []*dto.PostDTO{},
		Page:       2,
		PageSize:   10,
		TotalItems: 15,
		TotalPages: 2,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
}

// TestCreatePostRedirectsToDetail 发帖成功后 303 到详情页
func TestCreatePostRedirectsToDetail(t *testing.T) {
	svc := new(MockPostService)
	r := setupPostRouter(svc, 1)

	svc.On("CreatePost", mock.Anything, uint64(1), mock.AnythingOfType("*dto.PostBaseDTO")).
		Return(uint64(42), nil)

	body := strings.NewReader(`{"text":"hello world"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/posts/detail/42", w.Header().Get("Location"))
}

// TestUpdatePostNotAuthorSilentRedirect 非作者编辑不报错，静默重定向回详情页
func TestUpdatePostNotAuthorSilentRedirect(t *testing.T) {
	svc := new(MockPostService)
	r := setupPostRouter(svc, 1)

	svc.On("UpdatePost", mock.Anything, uint64(1), uint64(7), mock.AnythingOfType("*dto.PostBaseDTO")).
		Return(service.ErrNotPostAuthor)

	body := strings.NewReader(`{"text":"hacked"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/7", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/api/posts/detail/7", w.Header().Get("Location"))
	assert.Empty(t, w.Body.String())
}

// TestDetailNotFound 详情页帖子不存在走业务错误码
func TestDetailNotFound(t *testing.T) {
	svc := new(MockPostService)
	r := setupPostRouter(svc, 0)

	svc.On("Detail", mock.Anything, uint64(404)).Return(nil, service.ErrPostNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/detail/404", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 404, resp.Code)
}
