package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISOWeekKey(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			// 2023-01-01 是周日，属于 2022 年第 52 个 ISO 周
			name: "sunday belongs to previous iso year",
			t:    time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC),
			want: "2022-52",
		},
		{
			// 2024-01-01 是周一，ISO 第 1 周
			name: "monday starts week one",
			t:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "2024-01",
		},
		{
			// 2024-12-30 属于 2025 年第 1 个 ISO 周
			name: "year end rolls into next iso year",
			t:    time.Date(2024, 12, 30, 23, 59, 59, 0, time.UTC),
			want: "2025-01",
		},
		{
			name: "mid year week",
			t:    time.Date(2024, 7, 4, 8, 0, 0, 0, time.UTC),
			want: "2024-27",
		},
		{
			name: "timezone is normalized to utc",
			t:    time.Date(2024, 1, 1, 2, 0, 0, 0, time.FixedZone("UTC+8", 8*3600)),
			want: "2023-52",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ISOWeekKey(tt.t))
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2023-12", MonthKey(time.Date(2024, 1, 1, 2, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-03-15", DayKey(time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)))
	// UTC+8 的凌晨折算回 UTC 前一天
	assert.Equal(t, "2024-03-14", DayKey(time.Date(2024, 3, 15, 2, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))))
}

func TestGetMidnight(t *testing.T) {
	got := GetMidnight(time.Date(2024, 3, 15, 18, 45, 12, 999, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}
