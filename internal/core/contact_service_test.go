package core

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

func TestContactSubmitPersistsMailsAndPublishes(t *testing.T) {
	repo := &fakeContactRepo{}
	m := &fakeMailer{}
	queue := newFakeQueue()
	service := NewContactService(repo, m, queue, "noreply@prepedge.app", "team@prepedge.app")

	msg, err := service.Submit(context.Background(), models.ContactRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Subject:  "Report page broken",
		Category: models.ContactCategoryBug,
		Message:  "The report page shows a blank screen.",
	})
	require.NoError(t, err)

	require.Len(t, repo.messages, 1)
	assert.Equal(t, models.ContactCategoryBug, msg.Category)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "team@prepedge.app|[contact/bug] Report page broken", m.sent[0])

	events := queue.published[QueueContactReceived]
	require.Len(t, events, 1)
	var event ContactReceivedEvent
	require.NoError(t, json.Unmarshal(events[0], &event))
	assert.Equal(t, msg.ID, event.MessageID)
}

func TestContactSubmitDefaultsCategory(t *testing.T) {
	service := NewContactService(&fakeContactRepo{}, nil, nil, "", "")

	msg, err := service.Submit(context.Background(), models.ContactRequest{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Hello",
		Message: "Just saying hi.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactCategoryGeneral, msg.Category)
}

func TestContactSubmitRejectsUnknownCategory(t *testing.T) {
	repo := &fakeContactRepo{}
	service := NewContactService(repo, nil, nil, "", "")

	_, err := service.Submit(context.Background(), models.ContactRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Subject:  "Hello",
		Category: "complaints",
		Message:  "Hi.",
	})
	assert.ErrorIs(t, err, ErrInvalidContactCategory)
	assert.Empty(t, repo.messages)
}

func TestContactSubmitSurvivesMailFailure(t *testing.T) {
	repo := &fakeContactRepo{}
	service := NewContactService(repo, &fakeMailer{failing: true}, nil, "noreply@prepedge.app", "team@prepedge.app")

	_, err := service.Submit(context.Background(), models.ContactRequest{
		Name:    "Sam",
		Email:   "sam@example.com",
		Subject: "Hello",
		Message: "Hi.",
	})
	require.NoError(t, err)
	assert.Len(t, repo.messages, 1)
}
