package handler

import (
	"net/http"
	"strconv"

	"yatube/internal/api/dto"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// AddComment 发表评论成功后重定向回帖子详情
func (s *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postIDStr := c.Param("post_id")

	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err = s.commentSvc.AddComment(c.Request.Context(), userID, postID, &req); err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, detailPath(postID))
}
