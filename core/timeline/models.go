package timeline

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/edupathpro/edupath/core"
)

// Event types
const (
	TypeExam        = "exam"
	TypeAdmission   = "admission"
	TypeScholarship = "scholarship"
	TypeCounseling  = "counseling"
	TypeOther       = "other"
)

// Priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// EventStatus is derived at render time from the event date and completion
// flag; it is never stored.
type EventStatus string

const (
	StatusCompleted EventStatus = "completed"
	StatusOverdue   EventStatus = "overdue"
	StatusToday     EventStatus = "today"
	StatusUpcoming  EventStatus = "upcoming"
)

type (
	// Event is a deadline or milestone owned by exactly one user.
	Event struct {
		ID          string    `json:"id" bson:"_id"`
		UserID      string    `json:"user_id" bson:"userId"`
		Title       string    `json:"title" bson:"title"`
		Description string    `json:"description,omitempty" bson:"description,omitempty"`
		Date        time.Time `json:"date" bson:"date"`
		Type        string    `json:"type" bson:"type"`
		Priority    string    `json:"priority" bson:"priority"`
		IsCompleted bool      `json:"is_completed" bson:"isCompleted"`
		CreatedAt   time.Time `json:"created_at" bson:"createdAt"` // UTC
		UpdatedAt   time.Time `json:"updated_at" bson:"updatedAt"` // UTC
	}

	NewEvent struct {
		Title       string    `json:"title" validate:"required"`
		Description string    `json:"description"`
		Date        time.Time `json:"date" validate:"required"`
		Type        string    `json:"type" validate:"required,eventtype"`
		Priority    string    `json:"priority" validate:"omitempty,priority"`
	}

	UpdateEvent struct {
		Title       string     `json:"title"`
		Description *string    `json:"description"`
		Date        *time.Time `json:"date"`
		Type        string     `json:"type" validate:"omitempty,eventtype"`
		Priority    string     `json:"priority" validate:"omitempty,priority"`
		IsCompleted *bool      `json:"is_completed"`
	}
)

// Status buckets the event by date relative to `now` using calendar days.
func (e Event) Status(now time.Time) EventStatus {
	if e.IsCompleted {
		return StatusCompleted
	}
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := now.Date()
	eventDay := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	switch {
	case eventDay.Before(today):
		return StatusOverdue
	case eventDay.Equal(today):
		return StatusToday
	default:
		return StatusUpcoming
	}
}

func (ne *NewEvent) Validate(validate *validator.Validate) error {
	ne.Title = core.CleanString(ne.Title)
	ne.Description = core.CleanString(ne.Description)
	ne.Type = core.CleanString(ne.Type, true /* lower */)
	ne.Priority = core.CleanString(ne.Priority, true /* lower */)
	if ne.Priority == "" {
		ne.Priority = PriorityMedium
	}
	return validate.Struct(ne)
}

func (ue *UpdateEvent) Validate(validate *validator.Validate) error {
	ue.Title = core.CleanString(ue.Title)
	ue.Type = core.CleanString(ue.Type, true /* lower */)
	ue.Priority = core.CleanString(ue.Priority, true /* lower */)
	return validate.Struct(ue)
}

// InitValidators registers the timeline domain's custom validation tags.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOfValidation(validate, translator, "eventtype",
		TypeExam, TypeAdmission, TypeScholarship, TypeCounseling, TypeOther)
	core.RegisterOneOfValidation(validate, translator, "priority",
		PriorityHigh, PriorityMedium, PriorityLow)
}
