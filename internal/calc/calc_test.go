package calc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/backend/internal/calc"
	"github.com/wanderplan/backend/internal/domain"
)

// ---- Progress --------------------------------------------------------------

func TestProgress(t *testing.T) {
	tests := []struct {
		name string
		cats []domain.PackingCategory
		want int
	}{
		{name: "empty list", cats: nil, want: 0},
		{
			name: "categories without items",
			cats: []domain.PackingCategory{{Name: "衣物"}, {Name: "3C"}},
			want: 0,
		},
		{
			name: "one of three checked rounds to 33",
			cats: []domain.PackingCategory{{Items: []domain.PackingItem{
				{Checked: true}, {}, {},
			}}},
			want: 33,
		},
		{
			name: "two of three checked rounds to 67",
			cats: []domain.PackingCategory{{Items: []domain.PackingItem{
				{Checked: true}, {Checked: true}, {},
			}}},
			want: 67,
		},
		{
			name: "counts span categories",
			cats: []domain.PackingCategory{
				{Items: []domain.PackingItem{{Checked: true}}},
				{Items: []domain.PackingItem{{}, {}, {Checked: true}}},
			},
			want: 50,
		},
		{
			name: "all checked",
			cats: []domain.PackingCategory{{Items: []domain.PackingItem{
				{Checked: true}, {Checked: true},
			}}},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Progress(tt.cats))
		})
	}
}

func TestCategoryCounts(t *testing.T) {
	c := domain.PackingCategory{Items: []domain.PackingItem{
		{Checked: true}, {}, {Checked: true}, {},
	}}

	checked, total := calc.CategoryCounts(c)

	assert.Equal(t, 2, checked)
	assert.Equal(t, 4, total)
}

// ---- ParseDurationText -----------------------------------------------------

func TestParseDurationText(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		ok      bool
	}{
		{"1 小時 30 分", 90, true},
		{"45 分", 45, true},
		{"2 小時", 120, true},
		{"1小時20分鐘 (捷運轉乘)", 80, true},
		{"約 15 分鐘", 15, true},
		{"無法估算", 0, false},
		{"", 0, false},
		{"0 分", 0, false},
		{"very far", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			minutes, ok := calc.ParseDurationText(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, minutes)
			}
		})
	}
}

// ---- LatestLeaveTime -------------------------------------------------------

func TestLatestLeaveTime(t *testing.T) {
	tests := []struct {
		name     string
		nextTime string
		estimate string
		want     string
		ok       bool
	}{
		{"hour and minutes", "09:00", "1 小時 30 分", "07:30", true},
		{"minutes only", "09:00", "45 分", "08:15", true},
		{"wraps past midnight", "00:30", "1 小時", "23:30", true},
		{"no estimate sentinel", "09:00", "無法估算", "", false},
		{"empty next time", "", "45 分", "", false},
		{"malformed next time", "soon", "45 分", "", false},
		{"out of range hour", "25:00", "45 分", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := calc.LatestLeaveTime(tt.nextTime, tt.estimate)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---- DayLeaveTimes ---------------------------------------------------------

func TestDayLeaveTimes(t *testing.T) {
	day := domain.Day{Items: []domain.ItineraryItem{
		{ID: "a", Time: "09:00"},
		{ID: "b", Time: "11:00", EstimatedTravelTime: "30 分"},
		{ID: "c", Time: "14:00", EstimatedTravelTime: "無法估算"},
		{ID: "d", Time: "18:00", EstimatedTravelTime: "1 小時"},
	}}

	hints := calc.DayLeaveTimes(day)

	// A hint hangs off the stop you leave from: a gets one from b's
	// estimate, c gets one from d's. b's next stop has no parseable
	// estimate and d has no next stop.
	require.Len(t, hints, 2)
	assert.Equal(t, calc.LeaveHint{ItemID: "a", LeaveBy: "10:30"}, hints[0])
	assert.Equal(t, calc.LeaveHint{ItemID: "c", LeaveBy: "17:00"}, hints[1])
}

func TestDayLeaveTimes_EmptyDay(t *testing.T) {
	hints := calc.DayLeaveTimes(domain.Day{})

	assert.NotNil(t, hints)
	assert.Empty(t, hints)
}

func TestDayLeaveTimes_SingleItem(t *testing.T) {
	day := domain.Day{Items: []domain.ItineraryItem{{ID: "a", Time: "09:00"}}}

	assert.Empty(t, calc.DayLeaveTimes(day))
}
