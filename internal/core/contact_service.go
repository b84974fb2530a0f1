package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/db"
	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/mailer"
	"github.com/CoderUzumaki/PrepEdge-AI/pkg/messagequeue"
)

// ErrInvalidContactCategory is returned for an unknown contact category.
var ErrInvalidContactCategory = errors.New("invalid contact category")

// contactService implements the ContactService interface.
type contactService struct {
	contactRepo db.ContactRepository
	mailer      mailer.Mailer             // optional
	mq          messagequeue.MessageQueue // optional
	sender      string
	recipient   string
}

// NewContactService creates a new ContactService instance. Mailer and queue
// are optional; messages are always persisted.
func NewContactService(cr db.ContactRepository, m mailer.Mailer, mq messagequeue.MessageQueue, sender, recipient string) ContactService {
	return &contactService{
		contactRepo: cr,
		mailer:      m,
		mq:          mq,
		sender:      sender,
		recipient:   recipient,
	}
}

// Submit validates, persists and forwards one contact message.
// Mail delivery failures do not fail the request once the message is stored.
func (s *contactService) Submit(ctx context.Context, req models.ContactRequest) (*models.ContactMessage, error) {
	category := req.Category
	if category == "" {
		category = models.ContactCategoryGeneral
	}
	if !models.ValidContactCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContactCategory, req.Category)
	}

	msg := &models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Category:  category,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.mailer != nil && s.recipient != "" {
		subject := fmt.Sprintf("[contact/%s] %s", msg.Category, msg.Subject)
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
		if err := s.mailer.Send(s.recipient, s.sender, subject, body); err != nil {
			log.Printf("Contact message %s stored but mail delivery failed: %v", msg.ID, err)
		}
	}

	publishEvent(s.mq, QueueContactReceived, ContactReceivedEvent{
		MessageID: msg.ID,
		Category:  msg.Category,
		Email:     msg.Email,
		CreatedAt: msg.CreatedAt,
	})

	return msg, nil
}
