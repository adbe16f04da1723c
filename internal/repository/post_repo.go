package repository

import (
	"context"
	"errors"

	"yatube/internal/model"

	"gorm.io/gorm"
)

// PostFilter 帖子列表过滤条件，零值表示不过滤
type PostFilter struct {
	GroupID   *uint64
	AuthorID  *uint64
	AuthorIDs []uint64
}

type PostRepo interface {
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int64, error)
	ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error)
	CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) applyFilter(query *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.GroupID != nil {
		query = query.Where("group_id = ?", *filter.GroupID)
	}
	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.AuthorIDs != nil {
		query = query.Where("author_id IN ?", filter.AuthorIDs)
	}
	return query
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group").
		First(post, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return post, nil
}

// CountPosts 统计满足条件的帖子总数
func (s *PostRepoImpl) CountPosts(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&model.Post{})
	result := s.applyFilter(query, filter).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ListPosts 按创建时间倒序分页查询帖子
func (s *PostRepoImpl) ListPosts(ctx context.Context, filter PostFilter, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	query := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Group")
	result := s.applyFilter(query, filter).
		Order("created_at desc, id desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)

	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// UpdatePost 全量保存帖子可编辑字段
func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("text", "group_id", "image_url").
		Updates(map[string]interface{}{
			"text":      post.Text,
			"group_id":  post.GroupID,
			"image_url": post.ImageURL,
		}).Error
}
