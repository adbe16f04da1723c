package wire

import (
	"yatube/internal/api"
	"yatube/internal/api/config"
	"yatube/internal/api/handler"
	"yatube/internal/job"
	"yatube/internal/pkg/cron"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	Cache   repository.ListingCache
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)
	listingCache := repository.NewListingCache()

	userService := service.NewUserService(userRepo)
	groupService := service.NewGroupService(groupRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo, commentRepo, followRepo, listingCache)
	commentService := service.NewCommentService(commentRepo, postRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService),
		GroupHandler:   handler.NewGroupHandler(groupService),
		CommentHandler: handler.NewCommentHandler(commentService),
		FollowHandler:  handler.NewFollowHandler(followService),
		MediaHandler:   handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewMediaCleanupJob())

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		Cache:   listingCache,
		CronMgr: cronMgr,
	}, nil
}
