package model

import (
	"time"
)

// LeaderboardSnapshot 周期收盘时落库的排行榜快照，供历史查询
type LeaderboardSnapshot struct {
	ID           uint64 `gorm:"primaryKey"`
	WeekLabel    string `gorm:"type:varchar(10);not null;uniqueIndex:idx_snapshot_week_user,priority:1;column:week_label"`
	UserID       uint64 `gorm:"not null;uniqueIndex:idx_snapshot_week_user,priority:2"`
	TotalPoints  int    `gorm:"not null;default:0"`
	RankPosition int    `gorm:"not null"`
	CreatedAt    time.Time
}

func (LeaderboardSnapshot) TableName() string {
	return "leaderboard_snapshots"
}
