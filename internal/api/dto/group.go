package dto

// GroupDTO 小组
type GroupDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// GroupBaseDTO 小组 - 新增
type GroupBaseDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=200"`
	Slug        string `json:"slug" binding:"required" validate:"min=1,max=100"`
	Description string `json:"description"`
}

// GroupPageDTO 小组页，附带该组的帖子分页
type GroupPageDTO struct {
	Group *GroupDTO    `json:"group"`
	Posts *PostPageDTO `json:"posts"`
}
