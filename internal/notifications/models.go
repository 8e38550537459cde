package notifications

import (
	"encoding/json"
	"time"
)

// BookingEventType identifies the booking lifecycle event being published.
type BookingEventType string

const (
	EventBookingConfirmed BookingEventType = "BOOKING_CONFIRMED"
)

// BookingEvent is the message published to Kafka after a booking changes
// state. Downstream consumers (email, analytics) own delivery.
type BookingEvent struct {
	ID         string           `json:"id"`
	Type       BookingEventType `json:"type"`
	BookingRef string           `json:"booking_ref"`
	ShowtimeID string           `json:"showtime_id"`
	SessionID  string           `json:"session_id"`
	Seats      []string         `json:"seats"`
	Total      float64          `json:"total"`
	CreatedAt  time.Time        `json:"created_at"`
}

// ToJSON serializes the event for the wire.
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one booking to the same partition.
func (e *BookingEvent) PartitionKey() string {
	return e.BookingRef
}
