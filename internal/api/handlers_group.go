package api

import "yatube/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	GroupHandler   *handler.GroupHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
	MediaHandler   *handler.MediaHandler
}
