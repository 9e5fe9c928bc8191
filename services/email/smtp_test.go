package emailsvc

import (
	"net/mail"
	"testing"

	"github.com/edupathpro/edupath/core"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func TestNewSMTPService(t *testing.T) {
	conf := &core.Config{
		AppName: "EduPath Pro",
		SMTP: core.SMTPConfig{
			Host:     "smtp.test.in",
			Port:     2525,
			Username: "relay",
			Password: "hunter2",
		},
	}

	svc, ok := NewSMTPService(conf, nopLogger{}).(*smtpService)
	if !ok {
		t.Fatal("NewSMTPService() did not return an *smtpService")
	}
	if svc.dialer.Host != conf.SMTP.Host || svc.dialer.Port != conf.SMTP.Port {
		t.Errorf("dialer = %s:%d; want %s:%d", svc.dialer.Host, svc.dialer.Port, conf.SMTP.Host, conf.SMTP.Port)
	}
	if svc.dialer.Username != conf.SMTP.Username || svc.dialer.Password != conf.SMTP.Password {
		t.Error("dialer credentials do not match the config")
	}
	if svc.subjPrefix != "[EduPath Pro] " {
		t.Errorf("subjPrefix = %q", svc.subjPrefix)
	}
}

func TestFormatAddresses(t *testing.T) {
	got := formatAddresses([]mail.Address{
		{Name: "EduPath Pro Support", Address: "support@localhost"},
		{Address: "arjun@test.in"},
	})
	want := []string{`"EduPath Pro Support" <support@localhost>`, "<arjun@test.in>"}
	if len(got) != len(want) {
		t.Fatalf("formatAddresses() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("formatAddresses()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
