package service

import (
	"Ladder/internal/pkg/consts"
	"sort"
)

// LeaderboardEntry 排行榜展示条目，RankPosition 从 1 开始连续
type LeaderboardEntry struct {
	UserID       uint64 `json:"userId"`
	DisplayName  string `json:"displayName"`
	Username     string `json:"username"`
	AvatarURL    string `json:"avatarUrl"`
	TotalPoints  int    `json:"totalPoints"`
	RankPosition int    `json:"rankPosition"`
}

// ProfileInfo 排行榜联表需要的展示字段
type ProfileInfo struct {
	DisplayName string
	Username    string
	AvatarURL   string
}

// RankTop 把每用户合计变成 Top-N 榜单
// 规则：合计 <= 0 的用户整条剔除（全零的榜单渲染为空，不是一排零分）；
// 按合计降序稳定排序，同分保持 totals 的输入顺序；资料缺失用兜底文案补齐
func RankTop(totals []UserTotal, limit int, profiles map[uint64]ProfileInfo) []LeaderboardEntry {
	if limit <= 0 {
		return []LeaderboardEntry{}
	}

	positive := make([]UserTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total > 0 {
			positive = append(positive, t)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].Total > positive[j].Total
	})

	if len(positive) > limit {
		positive = positive[:limit]
	}

	entries := make([]LeaderboardEntry, 0, len(positive))
	for i, t := range positive {
		entry := LeaderboardEntry{
			UserID:       t.UserID,
			DisplayName:  consts.UnknownDisplayName,
			Username:     consts.UnknownUsername,
			TotalPoints:  t.Total,
			RankPosition: i + 1,
		}
		if p, ok := profiles[t.UserID]; ok {
			if p.DisplayName != "" {
				entry.DisplayName = p.DisplayName
			}
			if p.Username != "" {
				entry.Username = p.Username
			}
			entry.AvatarURL = p.AvatarURL
		}
		entries = append(entries, entry)
	}
	return entries
}
