package services

import (
	"time"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/email"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// ContactService stores contact-form submissions and forwards them by email
// when a mailer is configured.
type ContactService struct {
	repo   *persistence.MessageRepository
	mailer email.Service // nil when outbound email is not configured
	logger *logging.ChanneledLogger
}

// NewContactService creates a new contact service
func NewContactService(repo *persistence.MessageRepository, mailer email.Service, logger *logging.ChanneledLogger) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, logger: logger}
}

// Submit persists the message and sends the notification email. A mail
// failure is logged but does not fail the submission; the record is already
// durable in the store.
func (s *ContactService) Submit(msg *content.Message) (*content.Message, error) {
	msg.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	msg.Read = false

	created, err := s.repo.Create(msg)
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		notification := email.ContactNotification{
			Name:    created.Name,
			Email:   created.Email,
			Phone:   created.Phone,
			Subject: created.Subject,
			Body:    created.Body,
		}
		if err := s.mailer.SendContactNotification(notification); err != nil {
			s.logger.Mail().Error("Contact notification failed", "messageId", created.ID, "error", err.Error())
		}
	}

	return created, nil
}

// List returns all messages for the dashboard, newest first
func (s *ContactService) List() ([]*content.Message, error) {
	return s.repo.List(store.ListOptions[*content.Message]{})
}

// Get returns one message, nil when absent
func (s *ContactService) Get(id int) (*content.Message, error) {
	return s.repo.GetByID(id)
}

// MarkRead toggles a message's read flag, nil when absent
func (s *ContactService) MarkRead(id int, read bool) (*content.Message, error) {
	msg, err := s.repo.GetByID(id)
	if err != nil || msg == nil {
		return nil, err
	}
	msg.Read = read
	return s.repo.Update(id, msg)
}

// Delete removes a message; false when nothing matched
func (s *ContactService) Delete(id int) (bool, error) {
	return s.repo.Delete(id)
}
