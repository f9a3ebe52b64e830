package email

import "fmt"

// Email is a single outbound message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Provider sends notification email. Delivery is best-effort: callers log
// failures and continue, a notification must never fail the enclosing request.
type Provider interface {
	Send(email *Email) error

	// SendApplicationSubmitted confirms a new application to the applicant.
	SendApplicationSubmitted(to, jobTitle string) error

	// SendApplicationStatusChanged tells the applicant their application moved
	// from oldStatus to newStatus.
	SendApplicationStatusChanged(to, jobTitle, oldStatus, newStatus string) error
}

func applicationSubmittedEmail(to, jobTitle string) *Email {
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Application Submitted: %s", jobTitle),
		Body:    fmt.Sprintf("Your application for %s has been submitted successfully.", jobTitle),
	}
}

func applicationStatusChangedEmail(to, jobTitle, oldStatus, newStatus string) *Email {
	return &Email{
		To:      []string{to},
		Subject: fmt.Sprintf("Application Status Updated: %s", jobTitle),
		Body: fmt.Sprintf("Your application status for %s has been updated from %s to %s.",
			jobTitle, oldStatus, newStatus),
	}
}
