package service

import (
	"context"
	log "log/slog"
	"time"

	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/minio"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/util"
	"yatube/internal/repository"

	"github.com/jinzhu/copier"
)

type PostService interface {
	Index(ctx context.Context, page int) (*dto.PostPageDTO, error)
	GroupPosts(ctx context.Context, slug string, page int) (*dto.GroupPageDTO, error)
	Profile(ctx context.Context, username string, viewerID uint64, page int) (*dto.ProfileDTO, error)
	Feed(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error)
	Detail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error)
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (uint64, error)
	UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) error
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	groupRepo   repository.GroupRepo
	userRepo    repository.UserRepo
	commentRepo repository.CommentRepo
	followRepo  repository.FollowRepo
	cache       repository.ListingCache
}

func NewPostService(
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	followRepo repository.FollowRepo,
	cache repository.ListingCache,
) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
		cache:       cache,
	}
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{}
	_ = copier.Copy(postDTO, post)
	postDTO.CreatedAt = post.CreatedAt.Format(time.RFC3339)
	postDTO.UpdatedAt = post.UpdatedAt.Format(time.RFC3339)
	postDTO.Author = post.Author.Username
	if post.Group != nil {
		postDTO.GroupSlug = &post.Group.Slug
	}
	return postDTO
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	list := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		list = append(list, toPostDTO(post))
	}
	return list
}

// listPage 分页查询并组装一页帖子
func (s *PostServiceImpl) listPage(ctx context.Context, filter repository.PostFilter, page int) (*dto.PostPageDTO, error) {
	total, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset, meta := util.Paginate(total, page)
	posts, err := s.postRepo.ListPosts(ctx, filter, meta.PageSize, offset)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		List:       toPostDTOs(posts),
		Page:       meta.Page,
		PageSize:   meta.PageSize,
		TotalItems: meta.TotalItems,
		TotalPages: meta.TotalPages,
	}, nil
}

// Index 首页帖子列表，整页缓存 20 秒
func (s *PostServiceImpl) Index(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	if page < 1 {
		page = 1
	}

	cached, err := s.cache.GetPage(ctx, page)
	if err != nil {
		log.WarnContext(ctx, "读取首页缓存失败", "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	pageDTO, err := s.listPage(ctx, repository.PostFilter{}, page)
	if err != nil {
		return nil, err
	}

	// 越界页码收敛后按实际页号缓存，避免同一页在多个键下重复存储
	if err = s.cache.SetPage(ctx, pageDTO.Page, pageDTO); err != nil {
		log.WarnContext(ctx, "写入首页缓存失败", "err", err)
	}
	return pageDTO, nil
}

// GroupPosts 小组页，小组信息加该组帖子的分页
func (s *PostServiceImpl) GroupPosts(ctx context.Context, slug string, page int) (*dto.GroupPageDTO, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	pageDTO, err := s.listPage(ctx, repository.PostFilter{GroupID: &group.ID}, page)
	if err != nil {
		return nil, err
	}

	groupDTO := &dto.GroupDTO{}
	_ = copier.Copy(groupDTO, group)

	return &dto.GroupPageDTO{
		Group: groupDTO,
		Posts: pageDTO,
	}, nil
}

// Profile 作者主页，帖子分页加总数与关注状态
func (s *PostServiceImpl) Profile(ctx context.Context, username string, viewerID uint64, page int) (*dto.ProfileDTO, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	pageDTO, err := s.listPage(ctx, repository.PostFilter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID > 0 && viewerID != author.ID {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ProfileDTO{
		UserID:     author.ID,
		Username:   author.Username,
		PostsCount: pageDTO.TotalItems,
		Following:  following,
		Posts:      pageDTO,
	}, nil
}

// Feed 关注流，只包含当前用户关注作者的帖子
func (s *PostServiceImpl) Feed(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error) {
	authorIDs, err := s.followRepo.GetFollowingIds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		_, meta := util.Paginate(0, page)
		return &dto.PostPageDTO{
			List:       []*dto.PostDTO{},
			Page:       meta.Page,
			PageSize:   meta.PageSize,
			TotalItems: 0,
			TotalPages: meta.TotalPages,
		}, nil
	}

	return s.listPage(ctx, repository.PostFilter{AuthorIDs: authorIDs}, page)
}

// Detail 帖子详情，附带评论列表与作者发帖总数
func (s *PostServiceImpl) Detail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	authorCount, err := s.postRepo.CountPostsByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetCommentsByPostId(ctx, postID)
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO := &dto.CommentDTO{}
		_ = copier.Copy(commentDTO, comment)
		commentDTO.CreatedAt = comment.CreatedAt.Format(time.RFC3339)
		commentDTO.Author = comment.Author.Username
		commentDTOs = append(commentDTOs, commentDTO)
	}

	return &dto.PostDetailDTO{
		Post:             toPostDTO(post),
		AuthorPostsCount: authorCount,
		Comments:         commentDTOs,
	}, nil
}

// claimImage 校验临时上传并换取公开访问 URL
func (s *PostServiceImpl) claimImage(ctx context.Context, key string) (*string, error) {
	meta, err := redis.HGet(ctx, consts.MediaTempKey, key)
	if err != nil {
		return nil, err
	}
	if meta == "" {
		return nil, ErrFileNotExist
	}
	_ = redis.HDel(ctx, consts.MediaTempKey, key)

	url := minio.GetPublicURL(key)
	return &url, nil
}

func (s *PostServiceImpl) resolveGroup(ctx context.Context, groupID *uint64) (*uint64, error) {
	if groupID == nil {
		return nil, nil
	}
	group, err := s.groupRepo.GetGroupById(ctx, *groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return &group.ID, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (uint64, error) {
	groupID, err := s.resolveGroup(ctx, postDTO.GroupID)
	if err != nil {
		return 0, err
	}

	post := &model.Post{
		AuthorID: userID,
		GroupID:  groupID,
		Text:     postDTO.Text,
	}

	if postDTO.ImageKey != nil && *postDTO.ImageKey != "" {
		imageURL, err := s.claimImage(ctx, *postDTO.ImageKey)
		if err != nil {
			return 0, err
		}
		post.ImageURL = imageURL
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return 0, err
	}

	// 首页缓存不做主动失效，20 秒内的陈旧可见性是预期行为
	return post.ID, nil
}

// UpdatePost 编辑帖子，只有作者本人可以修改
func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, postID uint64, postDTO *dto.PostBaseDTO) error {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ErrNotPostAuthor
	}

	groupID, err := s.resolveGroup(ctx, postDTO.GroupID)
	if err != nil {
		return err
	}

	post.Text = postDTO.Text
	post.GroupID = groupID

	var replacedImageURL *string
	if postDTO.ImageKey != nil && *postDTO.ImageKey != "" {
		imageURL, err := s.claimImage(ctx, *postDTO.ImageKey)
		if err != nil {
			return err
		}
		replacedImageURL = post.ImageURL
		post.ImageURL = imageURL
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	// 被替换的旧图连同缩略图异步清理，失败不影响请求
	if replacedImageURL != nil {
		oldKey := minio.ObjectNameFromURL(*replacedImageURL)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := minio.DeleteFile(ctx, oldKey); err != nil {
				log.Warn("清理旧图失败", "objectName", oldKey, "err", err)
			}
			if err := minio.DeleteFile(ctx, oldKey+consts.ThumbSuffix); err != nil {
				log.Warn("清理旧缩略图失败", "objectName", oldKey+consts.ThumbSuffix, "err", err)
			}
		}()
	}
	return nil
}
