package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week 统一的周期抽象：同一个周期的两种表现形式
// Label 是历史数据沿用的周标签（"YYYY-Wnn"），Start/End 是包含边界的日期区间
type Week struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains 判断日期是否落在本周期内（按天比较，边界包含）
func (w Week) Contains(t time.Time) bool {
	day := Midnight(t)
	return !day.Before(Midnight(w.Start)) && !day.After(Midnight(w.End))
}

// Midnight 截断到当天零点
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Label 生成简化周标签 "YYYY-Wnn"
// 注意：这不是 ISO-8601 的周编号（没有周四锚定规则），周数直接按
// ceil(年内第几天 / 7) 计算。已有存量数据使用该格式，保持不变
func Label(now time.Time) string {
	week := (now.YearDay() + 6) / 7
	return fmt.Sprintf("%d-W%02d", now.Year(), week)
}

// MondayStart 返回所在自然周的周一零点
func MondayStart(now time.Time) time.Time {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}
	return Midnight(now.AddDate(0, 0, -offset))
}

// Current 以周一为起点计算当前周期，标签用简化编号
func Current(now time.Time) Week {
	start := MondayStart(now)
	return Week{
		Label: Label(now),
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// FromLabel 解析 "YYYY-Wnn" 并换算日期区间
// 区间以当年 1 月 1 日为锚点推算，第 53/54 周会溢出到下一年，不做修正
func FromLabel(label string) (Week, error) {
	parts := strings.SplitN(label, "-W", 2)
	if len(parts) != 2 {
		return Week{}, fmt.Errorf("非法的周标签: %s", label)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Week{}, fmt.Errorf("非法的周标签: %s", label)
	}
	week, err := strconv.Atoi(parts[1])
	if err != nil || week < 1 {
		return Week{}, fmt.Errorf("非法的周标签: %s", label)
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	start := jan1.AddDate(0, 0, (week-1)*7)
	return Week{
		Label: label,
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}, nil
}
