package api

import (
	"net/http"

	"yatube/internal/api/middleware"
	"yatube/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/login", group.UserHandler.LoginPage)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.Index)
			postGroup.GET("/detail/:post_id", group.PostHandler.Detail)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.POST("/:post_id/comments", group.CommentHandler.AddComment)
			}
		}

		groupGroup := apiGroup.Group("/groups")
		{
			groupGroup.GET("", group.GroupHandler.ListGroups)

			authGroup := groupGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.GroupHandler.CreateGroup)
			}
		}

		apiGroup.GET("/group/:slug", group.PostHandler.GroupPosts)

		profileGroup := apiGroup.Group("/profile")
		{
			authOptGroup := profileGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:username", group.PostHandler.Profile)
			}

			authGroup := profileGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:username/follow", group.FollowHandler.Follow)
				authGroup.DELETE("/:username/follow", group.FollowHandler.Unfollow)
			}
		}

		followGroup := apiGroup.Group("/follow")
		followGroup.Use(middleware.AuthMiddleware())
		{
			followGroup.GET("", group.PostHandler.Feed)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware())
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"Code":    404,
			"Message": "页面不存在",
			"Data":    nil,
		})
	})

	return r
}
