package util

import (
	"fmt"
	"time"
)

// GetMidnight 返回 UTC 当日零点
func GetMidnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey 返回 UTC 日粒度键，如 "2024-03-15"
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// ISOWeekKey 返回 ISO-8601 年-周键，如 "2024-07"
// 注意 ISO 年在年初/年末可能与自然年不同（2023-01-01 属于 "2022-52"）
func ISOWeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// MonthKey 返回月粒度键，如 "2024-03"
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
