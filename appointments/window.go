package appointments

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// Upcoming selects the active appointments strictly after now, sorted by date ascending and
// truncated to the first limit appointments
func Upcoming(list []Appointment, now time.Time, limit int) []Appointment {
	result := lo.Filter(list, func(a Appointment, _ int) bool {
		return a.Date.After(now) && a.Status.IsActive()
	})
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
