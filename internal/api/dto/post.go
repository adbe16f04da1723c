package dto

// PostDTO 帖子
type PostDTO struct {
	// Post
	ID        uint64  `json:"id"`
	Text      string  `json:"text"`
	ImageURL  *string `json:"image_url,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`

	// User
	AuthorID uint64 `json:"author_id"`
	Author   string `json:"author"`

	// Group
	GroupID   *uint64 `json:"group_id,omitempty"`
	GroupSlug *string `json:"group_slug,omitempty"`
}

// PostBaseDTO 帖子 - 新增或修改
type PostBaseDTO struct {
	Text     string  `json:"text" binding:"required" validate:"min=1"`
	GroupID  *uint64 `json:"group_id"`
	ImageKey *string `json:"image_key"`
}

// PostPageDTO 帖子分页列表
type PostPageDTO struct {
	List       []*PostDTO `json:"list"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalItems int64      `json:"total_items"`
	TotalPages int        `json:"total_pages"`
}

// PostDetailDTO 帖子详情，附带评论与作者发帖数
type PostDetailDTO struct {
	Post             *PostDTO      `json:"post"`
	AuthorPostsCount int64         `json:"author_posts_count"`
	Comments         []*CommentDTO `json:"comments"`
}
