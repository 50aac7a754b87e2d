// Package calc computes derived views over the trip document: packing
// progress and the "latest time to leave" warning. Everything here is a
// pure function over snapshot data; the package stores no state.
package calc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/wanderplan/backend/internal/domain"
)

// Progress returns the packing completion percentage, rounded to the
// nearest integer. An empty list is 0%, never a division by zero.
func Progress(cats []domain.PackingCategory) int {
	var checked, total int
	for _, c := range cats {
		ch, t := CategoryCounts(c)
		checked += ch
		total += t
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(checked) / float64(total)))
}

// CategoryCounts returns (checked, total) item counts for one category.
func CategoryCounts(c domain.PackingCategory) (checked, total int) {
	for _, it := range c.Items {
		if it.Checked {
			checked++
		}
	}
	return checked, len(c.Items)
}

// The duration mini-grammar. Travel-time estimates are free text produced
// by the assistant; the only phrasing recognised is an optional "<N> 小時"
// component and an optional "<N> 分" component, in that order or alone
// (e.g. "1 小時 20 分鐘 (捷運轉乘)", "45 分"). Anything else means "no
// estimate available", never a fabricated zero duration.
var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*小時`)
	minutesRe = regexp.MustCompile(`(\d+)\s*分`)
)

// ParseDurationText extracts a total minute count from a free-text travel
// estimate. ok is false when neither component is present or both are zero.
func ParseDurationText(s string) (minutes int, ok bool) {
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes += n
	}
	return minutes, minutes > 0
}

// LatestLeaveTime computes the latest wall-clock departure time that still
// reaches the next stop on schedule: nextTime minus the travel duration
// parsed from estimate. ok is false when nextTime is not "HH:MM" or the
// estimate has no recognisable duration. Subtraction that crosses midnight
// wraps within the 24-hour clock.
func LatestLeaveTime(nextTime, estimate string) (string, bool) {
	if nextTime == "" || estimate == "" {
		return "", false
	}
	var h, m int
	if _, err := fmt.Sscanf(nextTime, "%d:%d", &h, &m); err != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return "", false
	}
	dur, ok := ParseDurationText(estimate)
	if !ok {
		return "", false
	}

	total := h*60 + m - dur
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), true
}

// LeaveHint is the departure warning for one itinerary item: leave the
// stop by LeaveBy to reach the following stop on time.
type LeaveHint struct {
	ItemID  string `json:"itemId"`
	LeaveBy string `json:"leaveBy"`
}

// DayLeaveTimes returns a hint for every item whose following stop carries
// both a schedule time and a parseable travel estimate.
func DayLeaveTimes(day domain.Day) []LeaveHint {
	hints := []LeaveHint{}
	for i := 0; i+1 < len(day.Items); i++ {
		next := day.Items[i+1]
		if leaveBy, ok := LatestLeaveTime(next.Time, next.EstimatedTravelTime); ok {
			hints = append(hints, LeaveHint{ItemID: day.Items[i].ID, LeaveBy: leaveBy})
		}
	}
	return hints
}
