package contact

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/edupathpro/edupath/core"
)

// Submission statuses
const (
	StatusNew      = "new"
	StatusResolved = "resolved"
)

type (
	// Submission is a write-once contact-form record.
	Submission struct {
		ID        string    `json:"id" bson:"_id"`
		Name      string    `json:"name" bson:"name"`
		Email     string    `json:"email" bson:"email"`
		Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
		Subject   string    `json:"subject" bson:"subject"`
		Message   string    `json:"message" bson:"message"`
		Timestamp time.Time `json:"timestamp" bson:"timestamp"` // UTC
		Status    string    `json:"status" bson:"status"`
	}

	NewSubmission struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"omitempty,min=10,max=15"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required,max=2000"`
	}
)

func (ns *NewSubmission) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Subject = core.CleanString(ns.Subject)
	ns.Message = core.CleanString(ns.Message)
	return validate.Struct(ns)
}
