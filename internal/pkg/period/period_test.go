package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestLabel(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{date(2024, time.January, 1), "2024-W01"},
		{date(2024, time.January, 7), "2024-W01"},
		{date(2024, time.January, 8), "2024-W02"},
		{date(2024, time.March, 4), "2024-W10"},
		// 闰年最后一天 yday=366，简化算法给出第 53 周
		{date(2024, time.December, 31), "2024-W53"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Label(c.now))
	}
}

func TestMondayStart(t *testing.T) {
	monday := date(2024, time.March, 4)

	assert.Equal(t, monday, MondayStart(monday))
	assert.Equal(t, monday, MondayStart(date(2024, time.March, 6)))
	// 周日归属到前面的周一
	assert.Equal(t, monday, MondayStart(date(2024, time.March, 10)))
	assert.Equal(t, monday, MondayStart(time.Date(2024, time.March, 7, 23, 59, 59, 0, time.Local)))
}

func TestCurrent(t *testing.T) {
	w := Current(time.Date(2024, time.March, 6, 15, 30, 0, 0, time.Local))

	assert.Equal(t, "2024-W10", w.Label)
	assert.Equal(t, date(2024, time.March, 4), w.Start)
	assert.Equal(t, date(2024, time.March, 10), w.End)
	assert.True(t, w.Contains(date(2024, time.March, 4)))
	assert.True(t, w.Contains(date(2024, time.March, 10)))
	assert.False(t, w.Contains(date(2024, time.March, 11)))
}

func TestFromLabel(t *testing.T) {
	w, err := FromLabel("2024-W10")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 4), w.Start)
	assert.Equal(t, date(2024, time.March, 10), w.End)

	// 第 53 周溢出到下一年，保持不修正
	w, err = FromLabel("2024-W53")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.December, 30), w.Start)
	assert.Equal(t, date(2025, time.January, 5), w.End)

	for _, bad := range []string{"2024", "2024-W", "W10", "2024-W0", "abcd-Wxx"} {
		_, err = FromLabel(bad)
		assert.Error(t, err, bad)
	}
}
