package repository

import (
	"context"

	"yatube/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	GetCommentsByPostId(ctx context.Context, postID uint64) ([]*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// GetCommentsByPostId 获取帖子下的全部评论，按时间正序
func (s *CommentRepoImpl) GetCommentsByPostId(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments)

	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}
