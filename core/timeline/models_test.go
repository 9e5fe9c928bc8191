package timeline

import (
	"testing"
	"time"
)

func TestEvent_Status(t *testing.T) {
	now := time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		date        time.Time
		isCompleted bool
		want        EventStatus
	}{
		{name: "completed wins over overdue", date: now.AddDate(0, 0, -5), isCompleted: true, want: StatusCompleted},
		{name: "completed wins over upcoming", date: now.AddDate(0, 0, 5), isCompleted: true, want: StatusCompleted},
		{name: "yesterday", date: now.AddDate(0, 0, -1), want: StatusOverdue},
		{name: "last month", date: now.AddDate(0, -1, 0), want: StatusOverdue},
		// same calendar day, even if the hour has passed
		{name: "earlier today", date: time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC), want: StatusToday},
		{name: "later today", date: time.Date(2026, time.March, 10, 23, 0, 0, 0, time.UTC), want: StatusToday},
		{name: "tomorrow", date: now.AddDate(0, 0, 1), want: StatusUpcoming},
		{name: "next year", date: now.AddDate(1, 0, 0), want: StatusUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := Event{Date: tt.date, IsCompleted: tt.isCompleted}
			if got := evt.Status(now); got != tt.want {
				t.Errorf("Status() = %v; want %v", got, tt.want)
			}
		})
	}
}
