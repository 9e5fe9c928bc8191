package contact_test

import (
	"context"
	"net/mail"
	"strings"
	"testing"

	"github.com/edupathpro/edupath/core"
	"github.com/edupathpro/edupath/core/contact"
	emailsvc "github.com/edupathpro/edupath/services/email"
	dummydb "github.com/edupathpro/edupath/storage/dummy"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func TestService_Submit(t *testing.T) {
	conf := &core.Config{
		TestMode:         true,
		AppName:          "EduPath Pro",
		DefaultFromEmail: mail.Address{Name: "EduPath Pro", Address: "noreply@localhost"},
		ContactEmail:     mail.Address{Name: "EduPath Pro Support", Address: "support@localhost"},
	}

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	repo := dummydb.NewContactRepository(db)
	svc := contact.NewService(repo, emailsvc.NewConsoleServiceMock(conf), conf, nopLogger{})

	emailsvc.SentMessages = nil // reset

	ctx := context.Background()
	sub, sent, err := svc.Submit(ctx, contact.NewSubmission{
		Name:    "Arjun Sharma",
		Email:   "arjun@test.in",
		Phone:   "9876543210",
		Subject: "Scholarship query",
		Message: "How do I apply for PMSSS?",
	})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if sub.ID == "" || sub.Timestamp.IsZero() {
		t.Errorf("Submit() submission = %+v", sub)
	}
	if sub.Status != contact.StatusNew {
		t.Errorf("Submit() status = %q; want %q", sub.Status, contact.StatusNew)
	}
	if !sent {
		t.Error("Submit() sent = false; want true")
	}

	// the submission is persisted
	subs, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(subs) != 1 || subs[0].ID != sub.ID {
		t.Errorf("QueryAll() = %+v; want the stored submission", subs)
	}

	// the staff notification goes to the support address with the message inline
	if len(emailsvc.SentMessages) != 1 {
		t.Fatalf("len(SentMessages) = %d; want 1", len(emailsvc.SentMessages))
	}
	msg := emailsvc.SentMessages[0]
	if msg.To[0] != conf.ContactEmail {
		t.Errorf("To = %v; want %v", msg.To[0], conf.ContactEmail)
	}
	if !strings.Contains(msg.Subject, sub.Subject) {
		t.Errorf("Subject = %q; want it to mention %q", msg.Subject, sub.Subject)
	}
	if !strings.Contains(msg.TextContent, sub.Message) {
		t.Errorf("text content does not contain the message %q", sub.Message)
	}
}

func TestService_Submit_emailFailure(t *testing.T) {
	conf := &core.Config{
		TestMode:         true,
		AppName:          "EduPath Pro",
		WorkDir:          "testdata", // a contact-notice template that cannot render
		DefaultFromEmail: mail.Address{Name: "EduPath Pro", Address: "noreply@localhost"},
		ContactEmail:     mail.Address{Name: "EduPath Pro Support", Address: "support@localhost"},
	}
	core.ParseEmailTemplates(conf, nopLogger{})
	defer func() {
		core.ParseEmailTemplates(&core.Config{WorkDir: t.TempDir()}, nopLogger{})
	}()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	svc := contact.NewService(dummydb.NewContactRepository(db), emailsvc.NewConsoleServiceMock(conf), conf, nopLogger{})

	emailsvc.SentMessages = nil // reset

	ctx := context.Background()
	sub, sent, err := svc.Submit(ctx, contact.NewSubmission{
		Name:    "Arjun Sharma",
		Email:   "arjun@test.in",
		Subject: "Hostel fees",
		Message: "Are hostel fees covered by PMSSS?",
	})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if sent {
		t.Error("Submit() sent = true; want false")
	}
	if len(emailsvc.SentMessages) != 0 {
		t.Errorf("len(SentMessages) = %d; want 0", len(emailsvc.SentMessages))
	}

	// the submission is stored regardless of the notification outcome
	subs, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(subs) != 1 || subs[0].ID != sub.ID {
		t.Errorf("QueryAll() = %+v; want the stored submission", subs)
	}
}

func TestService_Resolve(t *testing.T) {
	conf := &core.Config{
		TestMode:         true,
		AppName:          "EduPath Pro",
		DefaultFromEmail: mail.Address{Name: "EduPath Pro", Address: "noreply@localhost"},
		ContactEmail:     mail.Address{Name: "EduPath Pro Support", Address: "support@localhost"},
	}

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	svc := contact.NewService(dummydb.NewContactRepository(db), emailsvc.NewConsoleServiceMock(conf), conf, nopLogger{})

	ctx := context.Background()
	sub, _, err := svc.Submit(ctx, contact.NewSubmission{
		Name:    "Arjun Sharma",
		Email:   "arjun@test.in",
		Subject: "Scholarship query",
		Message: "How do I apply for PMSSS?",
	})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	if _, err = svc.Resolve(ctx, "nope"); err != contact.ErrNotFound {
		t.Errorf("Resolve() error = %v; want %v", err, contact.ErrNotFound)
	}

	resolved, err := svc.Resolve(ctx, sub.ID)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if resolved.Status != contact.StatusResolved {
		t.Errorf("Resolve() status = %q; want %q", resolved.Status, contact.StatusResolved)
	}

	subs, err := svc.QueryAll(ctx)
	if err != nil {
		t.Fatalf("QueryAll() failed: %v", err)
	}
	if len(subs) != 1 || subs[0].Status != contact.StatusResolved {
		t.Errorf("QueryAll() = %+v; want the resolved submission", subs)
	}
}
