package handler

import (
	"net/http"

	"yatube/internal/pkg/response"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{
		followSvc: followSvc,
	}
}

func profilePath(username string) string {
	return "/api/profile/" + username
}

// Follow 关注作者，完成后重定向到作者主页
func (s *FollowHandler) Follow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	if err := s.followSvc.Follow(c.Request.Context(), userID, username); err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, profilePath(username))
}

// Unfollow 取消关注，完成后重定向到作者主页
func (s *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	if err := s.followSvc.Unfollow(c.Request.Context(), userID, username); err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, profilePath(username))
}
