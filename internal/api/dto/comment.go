package dto

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	AuthorID  uint64 `json:"author_id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// CommentCreateDTO 评论 - 新增
type CommentCreateDTO struct {
	Text string `json:"text" binding:"required" validate:"min=1,max=1000"`
}
