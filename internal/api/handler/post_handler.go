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

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func detailPath(postID uint64) string {
	return "/api/posts/detail/" + strconv.FormatUint(postID, 10)
}

// Index 首页帖子列表
func (s *PostHandler) Index(c *gin.Context) {
	posts, err := s.postSvc.Index(c.Request.Context(), pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GroupPosts 小组页
func (s *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")

	groupPage, err := s.postSvc.GroupPosts(c.Request.Context(), slug, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groupPage)
}

// Profile 作者主页
func (s *PostHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetUint64("user_id")

	profile, err := s.postSvc.Profile(c.Request.Context(), username, viewerID, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// Feed 关注流，只展示当前用户关注作者的帖子
func (s *PostHandler) Feed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	posts, err := s.postSvc.Feed(c.Request.Context(), userID, pageQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// Detail 帖子详情
func (s *PostHandler) Detail(c *gin.Context) {
	postIDStr := c.Param("post_id")
	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	detail, err := s.postSvc.Detail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

// CreatePost 发帖成功后重定向到帖子详情
func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	postID, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, detailPath(postID))
}

// UpdatePost 编辑帖子。非作者的请求不报错，静默重定向回详情页。
func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postIDStr := c.Param("post_id")

	postID, err := strconv.ParseUint(postIDStr, 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err = s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req)
	if err == service.ErrNotPostAuthor {
		c.Redirect(http.StatusSeeOther, detailPath(postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, detailPath(postID))
}
