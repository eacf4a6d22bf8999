package model

import "time"

// Categories offered by the entry form. The store does not constrain the
// column; anything outside this set is invisible in the weekly view.
const (
	CategoryWork             = "work"
	CategoryLearning         = "learning"
	CategoryInterestingThing = "interesting-thing"
)

// Entry is one journal record.
type Entry struct {
	ID       int64     `json:"id"`
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Text     string    `json:"text"`
}

// DateString returns the entry date as a calendar date, stripping any time
// component the store may have attached.
func (e Entry) DateString() string {
	return e.Date.Format(time.DateOnly)
}

// CreateEntryRequest carries the submitted form fields for a new entry.
type CreateEntryRequest struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// WeekSummary groups one week's entries by category. It is derived at render
// time and never persisted. WeekStart is the ISO date of the Sunday starting
// the week and doubles as the sort key.
type WeekSummary struct {
	WeekStart         string  `json:"weekStart"`
	Work              []Entry `json:"work"`
	Learnings         []Entry `json:"learnings"`
	InterestingThings []Entry `json:"interestingThings"`
}
