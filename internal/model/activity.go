package model

import (
	"time"
)

const (
	// ActivityKindMilestone 里程碑类：同一天同一活动最多发放一次
	ActivityKindMilestone = "milestone"
	// ActivityKindGrowth 增长类：按周累计值的增量发放，可多次、可为负
	ActivityKindGrowth = "growth"
)

// Activity 活动目录，key 是对外的稳定标识（如 post_likes、resume_completion_80）
type Activity struct {
	ID            uint64  `gorm:"primaryKey"`
	ActivityKey   string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_activity_key;column:activity_key"`
	Name          string  `gorm:"type:varchar(100);not null"`
	Kind          string  `gorm:"type:varchar(20);not null;default:milestone"`
	Points        int     `gorm:"not null;default:0"`
	PointsPerUnit int     `gorm:"not null;default:0"`
	DailyCap      *int    `gorm:"type:int"`
	Description   *string `gorm:"type:varchar(255)"`
	Enabled       bool    `gorm:"type:tinyint(1);default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Activity) TableName() string {
	return "activities"
}
