package service

import (
	"testing"
	"time"

	"Ladder/internal/model"

	"github.com/stretchr/testify/assert"
)

func record(userID, activityID uint64, points int, day int) *model.ActivityRecord {
	return &model.ActivityRecord{
		UserID:       userID,
		ActivityID:   activityID,
		Points:       points,
		ActivityDate: time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local),
	}
}

func TestSumByUserNoCaps(t *testing.T) {
	records := []*model.ActivityRecord{
		record(1, 10, 3, 4),
		record(2, 10, 7, 4),
		record(1, 11, 5, 5),
		record(1, 10, 2, 6),
	}

	totals := SumByUser(records, nil)

	// 总和守恒：不重复计、不漏计
	sum := 0
	for _, t2 := range totals {
		sum += t2.Total
	}
	assert.Equal(t, 3+7+5+2, sum)

	assert.Equal(t, []UserTotal{{UserID: 1, Total: 10}, {UserID: 2, Total: 7}}, totals)
}

func TestSumByUserDailyCap(t *testing.T) {
	// post_likes 日上限 3：周一记 3 + 周二记 5 => min(3,3)+min(5,3) = 6
	records := []*model.ActivityRecord{
		record(1, 10, 3, 4),
		record(1, 10, 5, 5),
	}
	caps := map[uint64]int{10: 3}

	totals := SumByUser(records, caps)

	assert.Equal(t, []UserTotal{{UserID: 1, Total: 6}}, totals)
}

func TestSumByUserCapOnlyAppliesToConfiguredActivity(t *testing.T) {
	records := []*model.ActivityRecord{
		record(1, 10, 9, 4),
		record(1, 11, 9, 4),
	}
	caps := map[uint64]int{10: 2}

	totals := SumByUser(records, caps)

	assert.Equal(t, 2+9, totals[0].Total)
}

func TestSumByUserIdempotent(t *testing.T) {
	records := []*model.ActivityRecord{
		record(3, 10, 4, 4),
		record(1, 10, 4, 4),
		record(2, 11, 1, 5),
	}
	caps := map[uint64]int{10: 3}

	first := SumByUser(records, caps)
	second := SumByUser(records, caps)

	assert.Equal(t, first, second)
}

func TestSumByUserEmpty(t *testing.T) {
	assert.Empty(t, SumByUser(nil, nil))
	assert.Empty(t, SumByUser([]*model.ActivityRecord{}, map[uint64]int{10: 3}))
}

func TestSumByUserActivity(t *testing.T) {
	records := []*model.ActivityRecord{
		record(1, 10, 3, 4),
		record(1, 11, 2, 4),
		record(1, 10, 5, 5),
	}
	caps := map[uint64]int{10: 3}

	totals := SumByUserActivity(records, caps)

	assert.Equal(t, []UserActivityTotal{
		{UserID: 1, ActivityID: 10, Total: 6},
		{UserID: 1, ActivityID: 11, Total: 2},
	}, totals)
}

func TestTotalOf(t *testing.T) {
	totals := []UserTotal{{UserID: 1, Total: 5}}

	assert.Equal(t, 5, TotalOf(totals, 1))
	// 未出现的用户隐式为 0
	assert.Equal(t, 0, TotalOf(totals, 99))
}
