package model

import (
	"time"
)

// GrowthCursor 记录增长类活动在某一周最后观测到的累计值
// 增量发放 = (新观测值 - LastTotal) * 单位积分，可能为负
type GrowthCursor struct {
	ID         uint64 `gorm:"primaryKey"`
	UserID     uint64 `gorm:"not null;uniqueIndex:idx_growth_cursor,priority:1"`
	ActivityID uint64 `gorm:"not null;uniqueIndex:idx_growth_cursor,priority:2"`
	WeekLabel  string `gorm:"type:varchar(10);not null;uniqueIndex:idx_growth_cursor,priority:3;column:week_label"`
	LastTotal  int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (GrowthCursor) TableName() string {
	return "growth_cursors"
}
