package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

const contactMessagesCollection = "contact_messages"

// firestoreContactRepository implements the ContactRepository interface using Firestore.
type firestoreContactRepository struct {
	client *firestore.Client
}

// NewFirestoreContactRepository creates a new instance of firestoreContactRepository.
func NewFirestoreContactRepository(client *firestore.Client) ContactRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for ContactRepository.")
	}
	return &firestoreContactRepository{client: client}
}

// Create adds a new contact message document using the pre-generated msg.ID.
func (r *firestoreContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == "" {
		return errors.New("contact message ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(contactMessagesCollection).Doc(msg.ID).Create(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to create contact message with ID '%s': %w", msg.ID, err)
	}
	return nil
}
