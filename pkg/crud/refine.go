package crud

import (
	"fmt"
	"time"
)

// RequireDateOrder flags path when end falls before start. Blank or
// malformed bounds pass; their own field rules already flag them.
func RequireDateOrder(errs ErrorMap, path, start, end string) {
	if start == "" || end == "" {
		return
	}
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return
	}
	if e.Before(s) {
		errs[path] = "End date must be on or after the start date"
	}
}

// ListPath builds the ErrorMap path of a nested list item field, matching
// the paths the validator produces for dive rules.
func ListPath(field string, index int, item string) string {
	return fmt.Sprintf("%s[%d].%s", field, index, item)
}
