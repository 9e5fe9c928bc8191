package catalog

import "time"

// DeadlineStatus is the render-time state of a scholarship's application
// deadline.
type DeadlineStatus string

const (
	StatusExpired DeadlineStatus = "expired"
	StatusUrgent  DeadlineStatus = "urgent"
	StatusActive  DeadlineStatus = "active"
)

// urgencyWindow is how close a deadline must be before it is flagged urgent.
const urgencyWindow = 3 * 24 * time.Hour

// Status derives the deadline state at `now`: expired when the deadline has
// passed, urgent when it falls within the next 3 days, active otherwise.
func (s Scholarship) Status(now time.Time) DeadlineStatus {
	switch {
	case s.ApplicationDeadline.Before(now):
		return StatusExpired
	case !s.ApplicationDeadline.After(now.Add(urgencyWindow)):
		return StatusUrgent
	default:
		return StatusActive
	}
}
