package emailsvc

import (
	"fmt"
	"net/mail"

	"gopkg.in/gomail.v2"

	"github.com/edupathpro/edupath/core"
)

// smtpService delivers mail through a plain SMTP relay. It is the fallback
// transport for self-hosted deployments without a Sendgrid account.
type smtpService struct {
	conf       *core.Config
	dialer     *gomail.Dialer
	subjPrefix string
	logger     core.Logger
}

var _ core.EmailService = (*smtpService)(nil)

func NewSMTPService(conf *core.Config, logger core.Logger) core.EmailService {
	return &smtpService{
		conf:       conf,
		dialer:     gomail.NewDialer(conf.SMTP.Host, conf.SMTP.Port, conf.SMTP.Username, conf.SMTP.Password),
		subjPrefix: "[" + conf.AppName + "] ",
		logger:     logger,
	}
}

func (svc smtpService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		msg := msg
		go func() {
			if err := msg.Render(svc.conf); err != nil {
				svc.logger.Error(fmt.Sprintf("rendering email: %v", err), err)
			}
			if msg.HasRecipients() && (msg.HasContent() || msg.HasAttachments()) {
				svc.send(*msg)
			}
		}()
	}
}

func (svc smtpService) send(msg core.EmailMessage) {
	m := gomail.NewMessage()
	m.SetHeader("From", svc.conf.DefaultFromEmail.String())
	m.SetHeader("To", formatAddresses(msg.To)...)
	if len(msg.Cc) > 0 {
		m.SetHeader("Cc", formatAddresses(msg.Cc)...)
	}
	if len(msg.Bcc) > 0 {
		m.SetHeader("Bcc", formatAddresses(msg.Bcc)...)
	}
	m.SetHeader("Subject", svc.subjPrefix+msg.Subject)

	m.SetBody("text/plain", msg.TextContent)
	if msg.HTMLContent != "" {
		m.AddAlternative("text/html", msg.HTMLContent)
	}

	if err := svc.dialer.DialAndSend(m); err != nil {
		svc.logger.Error(fmt.Sprintf("sending email: %v", err), err)
	}
}

func formatAddresses(addrs []mail.Address) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	return out
}
