// Package service contains outbound collaborators used by the handlers
package service

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the one-shot tokens to users. The SMTP implementation
// is used in production, tests plug in a recording one instead of
// reaching for a global
type Mailer interface {
	SendConfirmation(name, email, token string) error
	SendPasswordReset(name, email, token string) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (s *SMTPMailer) SendConfirmation(name, email, token string) error {
	body := fmt.Sprintf("Hi %v, your confirmation code is <b>%v</b>.<br>Enter it in the app to activate your account.", name, token)
	return send(email, "Confirm your account", body)
}

func (s *SMTPMailer) SendPasswordReset(name, email, token string) error {
	body := fmt.Sprintf("Hi %v, your password reset code is <b>%v</b>.<br>Enter it in the app to choose a new password.", name, token)
	return send(email, "Reset your password", body)
}

func send(sendTo, subject, body string) error {
	from := viper.GetString("mail.sender")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
