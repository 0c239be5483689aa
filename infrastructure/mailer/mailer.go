package mailer

import (
	"context"
	"io"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"vouchers-system/domain/entities"
	"vouchers-system/utils/configs"
)

// Mailer delivers order emails over SMTP. Delivery guarantees are whatever the
// transport provides; callers own retry policy.
type Mailer struct {
	conf   configs.SMTP
	logger *zap.Logger
}

func NewMailer(conf configs.SMTP, logger *zap.Logger) *Mailer {
	return &Mailer{conf: conf, logger: logger}
}

func (m *Mailer) Send(ctx context.Context, msg entities.MailMessage) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.conf.From)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		message.AddAlternative("text/html", msg.HTMLBody)
	}

	for _, attachment := range msg.Attachments {
		content := attachment.Content
		message.Attach(attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.conf.Host, m.conf.Port, m.conf.Username, m.conf.Password)

	err := dialer.DialAndSend(message)
	if err != nil {
		m.logger.With(zap.String("to", msg.To)).
			With(zap.Int("attachments", len(msg.Attachments))).
			With(zap.Error(err)).
			Error("MAIL_SEND")
	}

	return err
}
