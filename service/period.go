package service

import (
	"fmt"
	"strconv"
	"time"
)

// AllMonths 表示不限月份（全部时间）
const AllMonths = 0

// Period 统计周期：某年某月，或全部时间
type Period struct {
	Month int `json:"month"` // 1-12，AllMonths 表示全部
	Year  int `json:"year"`
}

// All 是否为全部时间
func (p Period) All() bool {
	return p.Month == AllMonths
}

// Range 返回该月的时间范围 [当月第一天 00:00:00, 当月最后一天 23:59:59]
// 仅当非全部时间时有意义
func (p Period) Range() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Contains 判断日期是否落在周期内（全部时间恒为真）
func (p Period) Contains(t time.Time) bool {
	if p.All() {
		return true
	}
	start, end := p.Range()
	return !t.Before(start) && !t.After(end)
}

// ParsePeriod 解析周期参数。month 为 "all" 或 1-12，year 为 4 位年份。
// month=all 时忽略 year。
func ParsePeriod(monthStr, yearStr string) (Period, error) {
	if monthStr == "" || monthStr == "all" {
		return Period{Month: AllMonths}, nil
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month参数错误，应为 all 或 1-12")
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		return Period{}, fmt.Errorf("year格式错误，应为4位数字（如：2024）")
	}

	return Period{Month: month, Year: year}, nil
}
