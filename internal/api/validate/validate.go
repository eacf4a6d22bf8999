// Package validate checks submitted form input before it reaches a service.
package validate

import (
	"time"

	"github.com/workjournal/workjournal/internal/model"
)

// CreateEntry validates the create-entry form. Each field must be present and
// non-empty, and the date must parse as YYYY-MM-DD so the store receives a
// real calendar date. Category membership is deliberately not checked: the
// form constrains the value and out-of-set categories are filtered (and
// counted) at render time instead.
func CreateEntry(req model.CreateEntryRequest) error {
	fields := map[string]string{}

	if req.Date == "" {
		fields["date"] = "is required"
	} else if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		fields["date"] = "must be a YYYY-MM-DD date"
	}
	if req.Category == "" {
		fields["category"] = "is required"
	}
	if req.Text == "" {
		fields["text"] = "is required"
	}

	if len(fields) > 0 {
		return &model.FieldErrors{Fields: fields}
	}
	return nil
}
