package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu    sync.Mutex
	calls int
	msgs  []kafka.Message
	err   error
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func bookings() []domain.Booking {
	return []domain.Booking{
		{ID: "b-1", UserID: "u-1", RoomTypeID: "r-1", Nights: 4, TotalPrice: decimal.RequireFromString("480.00")},
		{ID: "b-2", UserID: "u-1", RoomTypeID: "r-2", Nights: 1, TotalPrice: decimal.RequireFromString("99.00")},
	}
}

func TestKafkaPublisher_OneMessagePerBooking(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, logger.Nop())

	require.NoError(t, p.PublishBookingsConfirmed(context.Background(), bookings()))
	require.Len(t, w.msgs, 2)

	assert.Equal(t, "u-1", string(w.msgs[0].Key))
	var evt BookingConfirmed
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &evt))
	assert.Equal(t, TypeBookingConfirmed, evt.Type)
	assert.Equal(t, "b-1", evt.BookingID)
	assert.True(t, evt.TotalPrice.Equal(decimal.NewFromInt(480)))
}

func TestKafkaPublisher_EmptyIsNoop(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, logger.Nop())

	require.NoError(t, p.PublishBookingsConfirmed(context.Background(), nil))
	assert.Zero(t, w.calls)
}

func TestKafkaPublisher_BreakerOpensAfterFailures(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker unavailable")}
	p := newKafkaPublisher(w, logger.Nop())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.Error(t, p.PublishBookingsConfirmed(ctx, bookings()))
	}
	assert.Equal(t, 5, w.calls)

	err := p.PublishBookingsConfirmed(ctx, bookings())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, w.calls)
}
