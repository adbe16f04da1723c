package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	GroupID   *uint64   `gorm:"index:idx_group_id" json:"group_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ImageURL  *string   `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Author User   `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Group  *Group `gorm:"foreignKey:GroupID;references:ID;constraint:OnDelete:SET NULL"`
}

func (Post) TableName() string {
	return "posts"
}
