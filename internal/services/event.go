package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-goal-tracker/internal/logger"
	"github.com/segmentio/kafka-go"
)

// Event types published to Kafka.
const (
	EventUserRegistered = "user_registered"
	EventGoalCreated    = "goal_created"
	EventGoalUpdated    = "goal_updated"
	EventGoalDeleted    = "goal_deleted"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Event is a lifecycle event published after a successful mutation.
type Event struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	GoalID    string `json:"goal_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// publishEvent publishes an event to Kafka. Publishing is best effort:
// a missing writer or a broker failure never fails the request.
func publishEvent(ctx context.Context, w KafkaWriter, eventType, userID, goalID string) {
	if w == nil {
		return
	}

	evt := Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		GoalID:    goalID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.UserID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event to Kafka", "event_id", evt.EventID, "type", evt.Type, "error", err)
	} else {
		logger.Log.Infow("event published to Kafka", "event_id", evt.EventID, "type", evt.Type)
	}
}
