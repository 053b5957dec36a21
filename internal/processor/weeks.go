package processor

import (
	"sort"
	"time"

	"photo_archive/internal/domain"
)

// WeekStart returns the date of the Sunday beginning the week that contains
// date. An unparseable date is returned unchanged so it still buckets
// deterministically.
func WeekStart(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format("2006-01-02")
}

// BuildWeeks groups an ordered day sequence into week buckets keyed by their
// Sunday. Buckets are created in first-seen order, then re-sorted newest
// week first; days keep their incoming order within a bucket.
func BuildWeeks(days []domain.DayRecord) []domain.WeekBucket {
	byStart := make(map[string]int)
	buckets := make([]domain.WeekBucket, 0)

	for _, day := range days {
		start := WeekStart(day.Date)
		idx, ok := byStart[start]
		if !ok {
			idx = len(buckets)
			byStart[start] = idx
			buckets = append(buckets, domain.WeekBucket{WeekStart: start})
		}
		buckets[idx].Days = append(buckets[idx].Days, day)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].WeekStart > buckets[j].WeekStart
	})

	return buckets
}
