// Package journal derives the weekly view model from a flat entry list.
package journal

import (
	"sort"
	"time"

	"github.com/workjournal/workjournal/internal/model"
)

// WeekStart returns the most recent Sunday on or before the given date. A
// Sunday maps to itself. The computation runs on the calendar date in UTC so
// no timezone conversion can roll the date across a week boundary.
func WeekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// BuildWeeks groups entries into WeekSummary records, one per calendar week,
// ordered by week-start date ascending. Within a week each entry lands in the
// sublist for its category, preserving the input order. Entries whose category
// is none of the three known labels are excluded from every sublist; the
// second return value counts them so callers can surface the drop instead of
// losing it silently.
//
// The function is pure: it never mutates its argument and produces identical
// output for identical input.
func BuildWeeks(entries []model.Entry) ([]model.WeekSummary, int) {
	buckets := make(map[string][]model.Entry)
	for _, e := range entries {
		key := WeekStart(e.Date).Format(time.DateOnly)
		buckets[key] = append(buckets[key], e)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Lexicographic order equals chronological order for fixed-width ISO dates.
	sort.Strings(keys)

	dropped := 0
	weeks := make([]model.WeekSummary, 0, len(keys))
	for _, k := range keys {
		w := model.WeekSummary{
			WeekStart:         k,
			Work:              []model.Entry{},
			Learnings:         []model.Entry{},
			InterestingThings: []model.Entry{},
		}
		for _, e := range buckets[k] {
			switch e.Category {
			case model.CategoryWork:
				w.Work = append(w.Work, e)
			case model.CategoryLearning:
				w.Learnings = append(w.Learnings, e)
			case model.CategoryInterestingThing:
				w.InterestingThings = append(w.InterestingThings, e)
			default:
				dropped++
			}
		}
		weeks = append(weeks, w)
	}
	return weeks, dropped
}
