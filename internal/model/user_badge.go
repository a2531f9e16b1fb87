package model

import (
	"time"
)

// UserBadge 用户获得的徽章，周期徽章按 week_label 去重，累计徽章 week_label 为空串
type UserBadge struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;uniqueIndex:idx_user_badge,priority:1"`
	BadgeID   uint64 `gorm:"not null;uniqueIndex:idx_user_badge,priority:2"`
	WeekLabel string `gorm:"type:varchar(10);not null;default:'';uniqueIndex:idx_user_badge,priority:3;column:week_label"`
	AwardedAt time.Time

	Badge Badge `gorm:"foreignKey:BadgeID;references:ID"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
