// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"html"
	"strings"

	"github.com/resendlabs/resend-go"
)

// ContactNotification carries one contact-form submission to the mailbox
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// Service defines the interface for sending emails, allowing for mock
// implementations in tests.
type Service interface {
	SendContactNotification(n ContactNotification) error
}

// ResendClient is the concrete implementation of the email Service using the
// Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	toEmail   string
}

// NewService creates a new email service client, returning the Service interface.
func NewService(apiKey, fromEmail, fromName, toEmail string) (Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if toEmail == "" {
		return nil, fmt.Errorf("contact destination email is required")
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}, nil
}

// SendContactNotification composes and sends the contact-form notification.
func (c *ResendClient) SendContactNotification(n ContactNotification) error {
	subject := "Website contact form"
	if n.Subject != "" {
		subject = fmt.Sprintf("Website contact form: %s", n.Subject)
	}

	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(n.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(n.Email))
	if n.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", html.EscapeString(n.Phone))
	}
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(n.Body))

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{c.toEmail},
		ReplyTo: n.Email,
		Subject: subject,
		Html:    b.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}
	return nil
}
