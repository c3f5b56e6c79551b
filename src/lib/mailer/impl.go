package mailer

import (
	"etix/src/lib"
)

// Mailer is the notification-sending capability used by the order
// workflow. Delivery is best effort; callers must not treat a send
// failure as fatal.
type Mailer interface {
	Send(input *lib.SendMailInput) error
}

type SMTPMailer struct{}

func (SMTPMailer) Send(input *lib.SendMailInput) error {
	return lib.SendMail(input)
}

var defaultMailer Mailer = SMTPMailer{}

func Default() Mailer {
	return defaultMailer
}

// NewMailer Replace the default mailer, used by tests to inject a fake
func NewMailer(m Mailer) {
	defaultMailer = m
}
