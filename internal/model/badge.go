package model

import (
	"time"
)

const (
	BadgeScopeWeekly  = "weekly"
	BadgeScopeAllTime = "all_time"
)

// Badge 达标徽章：周期内（或累计）积分达到 Threshold 即授予
type Badge struct {
	ID          uint64  `gorm:"primaryKey"`
	BadgeKey    string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_badge_key;column:badge_key"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description *string `gorm:"type:varchar(255)"`
	Scope       string  `gorm:"type:varchar(20);not null;default:weekly"`
	Threshold   int     `gorm:"not null"`
	IconURL     *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
}

func (Badge) TableName() string {
	return "badges"
}
