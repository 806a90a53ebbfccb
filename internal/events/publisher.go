package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"petcare_backend/internal/models"
	"petcare_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

// BookingEvent is the value of every message on the booking topic.
type BookingEvent struct {
	EventID    string          `json:"eventId"`
	EventType  string          `json:"eventType"`
	BookingID  int64           `json:"bookingId"`
	Booking    *models.Booking `json:"booking,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}

// BookingPublisher announces booking changes to other systems.
type BookingPublisher interface {
	PublishBooking(ctx context.Context, eventType string, bookingID int64, booking *models.Booking) error
	Close() error
}

// NewBookingEvent stamps an event with a fresh id and the current time.
func NewBookingEvent(eventType string, bookingID int64, booking *models.Booking) BookingEvent {
	return BookingEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		BookingID:  bookingID,
		Booking:    booking,
		OccurredAt: time.Now().UTC(),
	}
}

// messageWriter is the part of *kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes booking events keyed by booking id so that every
// change to one booking lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           2 * time.Second,
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) PublishBooking(ctx context.Context, eventType string, bookingID int64, booking *models.Booking) error {
	event := NewBookingEvent(eventType, bookingID, booking)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(bookingID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	msg.Headers = InjectTraceHeaders(ctx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s for booking %d: %w", eventType, bookingID, err)
	}
	utils.LogDebug("Booking event published", map[string]interface{}{
		"topic": p.topic, "event_type": eventType, "booking_id": bookingID,
	})
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher drops events. It is used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBooking(context.Context, string, int64, *models.Booking) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher when brokers are set and a no-op otherwise.
func NewPublisher(brokers []string, topic string) BookingPublisher {
	if len(brokers) == 0 {
		utils.LogInfo("Booking events disabled (no kafka brokers configured)")
		return NoopPublisher{}
	}
	utils.LogInfo("Booking events enabled", map[string]interface{}{"brokers": brokers, "topic": topic})
	return NewKafkaPublisher(brokers, topic)
}
