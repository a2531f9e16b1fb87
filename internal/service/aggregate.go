package service

import (
	"Ladder/internal/model"
)

// UserTotal 单用户积分合计，切片顺序即用户在原始记录中的首次出现顺序
// 排行榜同分保序依赖这个顺序
type UserTotal struct {
	UserID uint64
	Total  int
}

// UserActivityTotal 按 (用户, 活动) 细分的合计
type UserActivityTotal struct {
	UserID     uint64
	ActivityID uint64
	Total      int
}

// clampDaily 按活动日上限截断单日数值，没有配置上限则原样返回
// 每条记录就是一天（唯一索引保证），所以逐条截断即逐日截断
func clampDaily(record *model.ActivityRecord, caps map[uint64]int) int {
	if limit, ok := caps[record.ActivityID]; ok && record.Points > limit {
		return limit
	}
	return record.Points
}

// SumByUser 把区间内的原始记录汇总成每用户合计
// 不落在 caps 里的活动不截断；未出现的用户视为 0，调用方不要假设存在
func SumByUser(records []*model.ActivityRecord, caps map[uint64]int) []UserTotal {
	index := make(map[uint64]int, len(records))
	totals := make([]UserTotal, 0, len(records))

	for _, record := range records {
		value := clampDaily(record, caps)
		if i, ok := index[record.UserID]; ok {
			totals[i].Total += value
			continue
		}
		index[record.UserID] = len(totals)
		totals = append(totals, UserTotal{UserID: record.UserID, Total: value})
	}
	return totals
}

// SumByUserActivity 汇总成 (用户, 活动) 粒度，顺序同样按首次出现
func SumByUserActivity(records []*model.ActivityRecord, caps map[uint64]int) []UserActivityTotal {
	type key struct {
		userID     uint64
		activityID uint64
	}
	index := make(map[key]int, len(records))
	totals := make([]UserActivityTotal, 0, len(records))

	for _, record := range records {
		value := clampDaily(record, caps)
		k := key{record.UserID, record.ActivityID}
		if i, ok := index[k]; ok {
			totals[i].Total += value
			continue
		}
		index[k] = len(totals)
		totals = append(totals, UserActivityTotal{
			UserID:     record.UserID,
			ActivityID: record.ActivityID,
			Total:      value,
		})
	}
	return totals
}

// TotalOf 在合计切片里找某个用户的值，找不到返回 0
func TotalOf(totals []UserTotal, userID uint64) int {
	for _, t := range totals {
		if t.UserID == userID {
			return t.Total
		}
	}
	return 0
}
