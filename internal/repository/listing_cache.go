package repository

import (
	"context"
	"fmt"
	"strconv"

	"yatube/internal/api/dto"
	"yatube/internal/pkg/consts"
	rdb "yatube/internal/pkg/redis"

	"github.com/goccy/go-json"
)

// ListingCache 首页帖子列表的整页缓存
type ListingCache interface {
	GetPage(ctx context.Context, page int) (*dto.PostPageDTO, error)
	SetPage(ctx context.Context, page int, data *dto.PostPageDTO) error
	Flush(ctx context.Context) error
}

type ListingCacheImpl struct{}

func NewListingCache() ListingCache {
	return &ListingCacheImpl{}
}

func pageKey(page int) string {
	return consts.PostIndexPageKey + strconv.Itoa(page)
}

// GetPage 读取整页缓存，未命中返回 nil
func (s *ListingCacheImpl) GetPage(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	val, err := rdb.GetValue(ctx, pageKey(page))
	if err != nil {
		return nil, fmt.Errorf("读取列表缓存失败: %w", err)
	}
	if val == "" {
		return nil, nil
	}

	pageDTO := &dto.PostPageDTO{}
	if err = json.Unmarshal([]byte(val), pageDTO); err != nil {
		return nil, fmt.Errorf("反序列化列表缓存失败: %w", err)
	}
	return pageDTO, nil
}

// SetPage 写入整页缓存，过期时间固定 20 秒
func (s *ListingCacheImpl) SetPage(ctx context.Context, page int, data *dto.PostPageDTO) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化列表缓存失败: %w", err)
	}
	return rdb.SetWithExpiration(ctx, pageKey(page), string(raw), consts.IndexCacheTTL)
}

// Flush 清空全部列表页缓存
func (s *ListingCacheImpl) Flush(ctx context.Context) error {
	return rdb.DeleteByPrefix(ctx, consts.PostIndexPrefix)
}
