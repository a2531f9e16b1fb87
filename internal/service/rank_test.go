package service

import (
	"testing"

	"Ladder/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
)

func TestRankTopOrderingAndLimit(t *testing.T) {
	totals := []UserTotal{
		{UserID: 1, Total: 40},
		{UserID: 2, Total: 40},
		{UserID: 3, Total: 10},
	}

	entries := RankTop(totals, 2, nil)

	// u3 因 N=2 被截掉，不是因为 >0 规则
	assert.Len(t, entries, 2)
	assert.Equal(t, uint64(1), entries[0].UserID)
	assert.Equal(t, 1, entries[0].RankPosition)
	assert.Equal(t, uint64(2), entries[1].UserID)
	assert.Equal(t, 2, entries[1].RankPosition)
}

func TestRankTopExcludesNonPositive(t *testing.T) {
	totals := []UserTotal{
		{UserID: 1, Total: 0},
		{UserID: 2, Total: -3},
		{UserID: 3, Total: 7},
	}

	entries := RankTop(totals, 10, nil)

	assert.Len(t, entries, 1)
	assert.Equal(t, uint64(3), entries[0].UserID)
	assert.Equal(t, 1, entries[0].RankPosition)
}

func TestRankTopAllZeroRendersEmpty(t *testing.T) {
	totals := []UserTotal{{UserID: 1, Total: 0}, {UserID: 2, Total: 0}}

	assert.Empty(t, RankTop(totals, 5, nil))
}

func TestRankTopTieStability(t *testing.T) {
	totals := []UserTotal{
		{UserID: 7, Total: 20},
		{UserID: 8, Total: 20},
		{UserID: 9, Total: 30},
	}

	// 同分时保持输入顺序，重复执行结果一致
	for i := 0; i < 5; i++ {
		entries := RankTop(totals, 3, nil)
		assert.Equal(t, uint64(9), entries[0].UserID)
		assert.Equal(t, uint64(7), entries[1].UserID)
		assert.Equal(t, uint64(8), entries[2].UserID)
	}
}

func TestRankTopContiguousRanks(t *testing.T) {
	totals := []UserTotal{
		{UserID: 1, Total: 5},
		{UserID: 2, Total: 15},
		{UserID: 3, Total: 10},
	}

	entries := RankTop(totals, 10, nil)

	for i, e := range entries {
		assert.Equal(t, i+1, e.RankPosition)
	}
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].TotalPoints, entries[i].TotalPoints)
	}
}

func TestRankTopProfileJoin(t *testing.T) {
	totals := []UserTotal{{UserID: 1, Total: 9}, {UserID: 2, Total: 5}}
	profiles := map[uint64]ProfileInfo{
		1: {DisplayName: "Ada", Username: "ada", AvatarURL: "a.png"},
	}

	entries := RankTop(totals, 5, profiles)

	assert.Equal(t, "Ada", entries[0].DisplayName)
	assert.Equal(t, "ada", entries[0].Username)
	assert.Equal(t, "a.png", entries[0].AvatarURL)

	// 资料缺失不打断榜单，用兜底文案
	assert.Equal(t, consts.UnknownDisplayName, entries[1].DisplayName)
	assert.Equal(t, consts.UnknownUsername, entries[1].Username)
}

func TestRankTopZeroLimit(t *testing.T) {
	totals := []UserTotal{{UserID: 1, Total: 9}}

	assert.Empty(t, RankTop(totals, 0, nil))
}
