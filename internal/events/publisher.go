package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

const TypeBookingConfirmed = "booking.confirmed"

type BookingConfirmed struct {
	Type         string          `json:"type"`
	BookingID    string          `json:"bookingId"`
	UserID       string          `json:"userId"`
	HotelID      string          `json:"hotelId"`
	RoomTypeID   string          `json:"roomTypeId"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Nights       int             `json:"nights"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

type Publisher interface {
	PublishBookingsConfirmed(ctx context.Context, bookings []domain.Booking) error
	Close() error
}

// NoopPublisher drops events. Used when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingsConfirmed(context.Context, []domain.Booking) error { return nil }
func (NoopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one message per booking, keyed by user id so a
// user's events stay ordered on one partition.
type KafkaPublisher struct {
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
	log     *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return newKafkaPublisher(w, log)
}

func newKafkaPublisher(w messageWriter, log *logger.Logger) *KafkaPublisher {
	settings := gobreaker.Settings{
		Name:        "booking-events",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &KafkaPublisher{
		writer:  w,
		breaker: gobreaker.NewCircuitBreaker[struct{}](settings),
		log:     log,
	}
}

func (p *KafkaPublisher) PublishBookingsConfirmed(ctx context.Context, bookings []domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	now := time.Now().UTC()
	msgs := make([]kafka.Message, 0, len(bookings))
	for _, b := range bookings {
		payload, err := json.Marshal(BookingConfirmed{
			Type:         TypeBookingConfirmed,
			BookingID:    b.ID,
			UserID:       b.UserID,
			HotelID:      b.HotelID,
			RoomTypeID:   b.RoomTypeID,
			CheckInDate:  b.CheckInDate,
			CheckOutDate: b.CheckOutDate,
			Nights:       b.Nights,
			TotalPrice:   b.TotalPrice,
			OccurredAt:   now,
		})
		if err != nil {
			return fmt.Errorf("marshal booking event: %w", err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(b.UserID),
			Value: payload,
			Headers: []kafka.Header{
				{Key: "type", Value: []byte(TypeBookingConfirmed)},
			},
		})
	}

	_, err := p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, msgs...)
	})
	if err != nil {
		return fmt.Errorf("publish booking events: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
