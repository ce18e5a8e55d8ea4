package usecase

import (
	"fmt"
	"time"
)

// buildTimeContext renders the facts a result_for_context answer may use.
func buildTimeContext(now time.Time, loc *time.Location, city string) string {
	now = now.In(loc)
	if city == "" {
		city = unknownCity
	}

	return fmt.Sprintf(timeContextTemplate,
		now.Format(timeFormat),
		now.Format(dateFormat),
		now.Weekday().String(),
		now.AddDate(0, 0, 1).Format(dateFormat),
		loc.String(),
		city,
	)
}
