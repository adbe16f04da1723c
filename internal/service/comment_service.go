package service

import (
	"context"

	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CommentCreateDTO) error
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment 发表评论，帖子不存在时拒绝
func (s *CommentServiceImpl) AddComment(ctx context.Context, userID uint64, postID uint64, commentDTO *dto.CommentCreateDTO) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     commentDTO.Text,
	}
	return s.commentRepo.CreateComment(ctx, comment)
}
