package email

import "jobboard_backend/internal/logger"

// NoopProvider logs instead of sending. Used when SMTP is not configured.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	logger.Info("email suppressed (no SMTP configured)", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendApplicationSubmitted(to, jobTitle string) error {
	return p.Send(applicationSubmittedEmail(to, jobTitle))
}

func (p *NoopProvider) SendApplicationStatusChanged(to, jobTitle, oldStatus, newStatus string) error {
	return p.Send(applicationStatusChangedEmail(to, jobTitle, oldStatus, newStatus))
}
