package model

import (
	"time"
)

// ActivityRecord 每用户每活动每天一行，(user_id, activity_id, activity_date) 冲突时累加更新
// 正常流程只增不删，聚合永远从原始行重算
type ActivityRecord struct {
	ID           uint64    `gorm:"primaryKey"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_user_activity_date,priority:1"`
	ActivityID   uint64    `gorm:"not null;uniqueIndex:idx_user_activity_date,priority:2"`
	Points       int       `gorm:"not null;default:0"`
	ActivityDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_activity_date,priority:3;column:activity_date"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
