package contact

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edupathpro/edupath/core"
)

var ErrNotFound = errors.New("submission not found")

type (
	Repository interface {
		CreateSubmission(ctx context.Context, sub Submission) (Submission, error)
		QuerySubmissions(ctx context.Context) ([]Submission, error)
		UpdateSubmissionStatus(ctx context.Context, id, status string) (Submission, error)
		DeleteAllSubmissions(ctx context.Context) error
	}

	Service interface {
		// Submit persists the submission and best-effort dispatches a
		// notification email. The returned bool reports whether the
		// notification was handed to the relay; a false value must not be
		// treated as a submission failure.
		Submit(ctx context.Context, ns NewSubmission) (Submission, bool, error)
		QueryAll(ctx context.Context) ([]Submission, error)
		Resolve(ctx context.Context, id string) (Submission, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
		logger  core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config, logger core.Logger) Service {
	return &service{
		repo:    repo,
		mailSvc: mailSvc,
		conf:    conf,
		logger:  logger,
	}
}

func (svc *service) Submit(ctx context.Context, ns NewSubmission) (Submission, bool, error) {
	sub := Submission{
		ID:        uuid.NewString(),
		Name:      ns.Name,
		Email:     ns.Email,
		Phone:     ns.Phone,
		Subject:   ns.Subject,
		Message:   ns.Message,
		Timestamp: time.Now().UTC(),
		Status:    StatusNew,
	}

	// persisting the document is the success condition; the email is never
	// rolled back or retried
	sub, err := svc.repo.CreateSubmission(ctx, sub)
	if err != nil {
		return Submission{}, false, err
	}

	return sub, svc.notify(sub), nil
}

// notify renders and dispatches the staff notification. Returns false when
// the message could not be prepared; actual relay failures are logged by the
// email service.
func (svc *service) notify(sub Submission) bool {
	msg := &core.EmailMessage{
		To:           []mail.Address{svc.conf.ContactEmail},
		Subject:      "New contact message: " + sub.Subject,
		TemplateName: "contact-notice",
		TemplateData: sub,
		// plain-text fallback in case the HTML template is unavailable
		BodyStr: fmt.Sprintf("From: %s <%s> (%s)\n\nSubject: %s\n\n%s",
			sub.Name, sub.Email, sub.Phone, sub.Subject, sub.Message),
	}
	if err := msg.Render(svc.conf); err != nil {
		svc.logger.Warn("rendering contact notification", errors.Wrap(err, sub.ID))
		return false
	}
	if !msg.HasContent() {
		svc.logger.Warn("contact notification has no content; template missing?")
		return false
	}
	svc.mailSvc.SendMessages(msg)
	return true
}

func (svc *service) QueryAll(ctx context.Context) ([]Submission, error) {
	return svc.repo.QuerySubmissions(ctx)
}

func (svc *service) Resolve(ctx context.Context, id string) (Submission, error) {
	return svc.repo.UpdateSubmissionStatus(ctx, id, StatusResolved)
}
