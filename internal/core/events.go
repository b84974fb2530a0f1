package core

import (
	"encoding/json"
	"log"
	"time"

	"github.com/CoderUzumaki/PrepEdge-AI/pkg/messagequeue"
)

// Queue names for domain events.
const (
	QueueInterviewCompleted = "interview.completed"
	QueueContactReceived    = "contact.received"
)

// InterviewCompletedEvent is published when a session reaches its final answer.
type InterviewCompletedEvent struct {
	InterviewID  string    `json:"interviewId"`
	UserID       string    `json:"userId"`
	OverallScore int       `json:"overallScore"`
	CompletedAt  time.Time `json:"completedAt"`
}

// ContactReceivedEvent is published when a contact message is accepted.
type ContactReceivedEvent struct {
	MessageID string    `json:"messageId"`
	Category  string    `json:"category"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// publishEvent serializes and publishes an event, logging instead of failing
// the request when the broker is unavailable. Events are advisory; the
// request's own persistence has already succeeded by the time one is published.
func publishEvent(mq messagequeue.MessageQueue, queue string, event interface{}) {
	if mq == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event for queue %s: %v", queue, err)
		return
	}
	if err := mq.Publish(queue, body); err != nil {
		log.Printf("Failed to publish event to queue %s: %v", queue, err)
	}
}
