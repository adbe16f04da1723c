package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenDTO 登录成功后签发的令牌
type TokenDTO struct {
	UserID uint64 `json:"user_id"`
	Token  string `json:"token"`
}

// ProfileDTO 作者主页
type ProfileDTO struct {
	UserID     uint64       `json:"user_id"`
	Username   string       `json:"username"`
	PostsCount int64        `json:"posts_count"`
	Following  bool         `json:"following"`
	Posts      *PostPageDTO `json:"posts"`
}
