package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t time.Time, offset int) time.Time {
	return t.AddDate(0, 0, offset)
}

func TestCountStreakConsecutive(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	dates := []time.Time{day(now, 0), day(now, -1), day(now, -2)}

	assert.Equal(t, 3, countStreak(dates, now))
}

func TestCountStreakTodayMissingNotBroken(t *testing.T) {
	// 今天还没打卡，从昨天往前数
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	dates := []time.Time{day(now, -1), day(now, -2)}

	assert.Equal(t, 2, countStreak(dates, now))
}

func TestCountStreakBrokenYesterday(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	dates := []time.Time{day(now, -2), day(now, -3)}

	assert.Equal(t, 0, countStreak(dates, now))
}

func TestCountStreakGapStops(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	dates := []time.Time{day(now, 0), day(now, -1), day(now, -3), day(now, -4)}

	assert.Equal(t, 2, countStreak(dates, now))
}

func TestCountStreakEmpty(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	assert.Equal(t, 0, countStreak(nil, now))
}

func TestCountStreakDuplicateSameDay(t *testing.T) {
	// 同一天多条记录只算一天
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	dates := []time.Time{day(now, 0), day(now, 0).Add(2 * time.Hour), day(now, -1)}

	assert.Equal(t, 2, countStreak(dates, now))
}
