package model

import (
	"time"
)

// Profile 用户展示资料，排行榜联表只取这里的字段
type Profile struct {
	ID          uint64  `gorm:"primaryKey"`
	UserID      uint64  `gorm:"not null;uniqueIndex:idx_profile_user"`
	DisplayName string  `gorm:"type:varchar(50);not null;default:''"`
	AvatarURL   string  `gorm:"type:varchar(255);not null;default:'';column:avatar_url"`
	Headline    *string `gorm:"type:varchar(100)"`
	Bio         *string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Profile) TableName() string {
	return "profiles"
}
