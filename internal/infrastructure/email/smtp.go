package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service sends transactional email. Invite delivery is best effort: a
// failed send never rolls back the membership write.
type Service interface {
	SendMemberInvite(to, memberName, agencyName, inviterName string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendMemberInvite(to, memberName, agencyName, inviterName string) error {
	loginURL := fmt.Sprintf("%s/login", s.config.BaseURL)

	subject := fmt.Sprintf("You've been invited to join %s on LeadLoft", agencyName)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>%s invited you to join the <strong>%s</strong> workspace on LeadLoft.</p>
			<p><a href="%s">Sign in to get started</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>If you weren't expecting this invitation, you can ignore this email.</p>
		</body>
		</html>
	`, memberName, inviterName, agencyName, loginURL, loginURL)

	plainBody := fmt.Sprintf(`
Hi %s,

%s invited you to join the %s workspace on LeadLoft.

Sign in to get started:
%s

If you weren't expecting this invitation, you can ignore this email.
	`, memberName, inviterName, agencyName, loginURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	return nil
}
