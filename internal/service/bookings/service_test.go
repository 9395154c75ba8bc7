package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishnail/salon-booking-service/internal/domain"
	bookingRepo "github.com/polishnail/salon-booking-service/internal/infra/storage/booking"
	"github.com/polishnail/salon-booking-service/internal/service/bookings/models"
	"github.com/polishnail/salon-booking-service/pkg/ptr"
)

type mockBookingRepo struct {
	bookings   []*domain.Booking
	booking    *domain.Booking
	err        error
	lastFilter domain.BookingsFilter
	lastStatus domain.BookingStatus
	deletedID  string
}

func (m *mockBookingRepo) GetByID(_ context.Context, _ string) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.booking, nil
}

func (m *mockBookingRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastFilter = filter
	return m.bookings, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, _ string, status domain.BookingStatus) error {
	if m.err != nil {
		return m.err
	}
	m.lastStatus = status
	return nil
}

func (m *mockBookingRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deletedID = id
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          "booking-1",
		BookingDate: time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		FullName:    "Anna Kowalska",
		Phone:       "+48123456789",
		Status:      domain.StatusPending,
	}
}

func TestList_ConvertsFilter(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.Booking{testBooking()}}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Search:   "anna",
		Status:   ptr.Ptr("pending"),
		DateFrom: ptr.Ptr("2024-12-01"),
		DateTo:   ptr.Ptr("2024-12-31"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, "anna", repo.lastFilter.Search)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)
	require.NotNil(t, repo.lastFilter.DateFrom)
	assert.Equal(t, "2024-12-01", repo.lastFilter.DateFrom.Format(domain.DateFormat))
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(&mockBookingRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *models.ListBookingsRequest
	}{
		{name: "unknown status", req: &models.ListBookingsRequest{Status: ptr.Ptr("archived")}},
		{name: "bad date", req: &models.ListBookingsRequest{DateFrom: ptr.Ptr("12/01/2024")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("valid transition", func(t *testing.T) {
		booking := testBooking()
		booking.Status = domain.StatusConfirmed
		repo := &mockBookingRepo{booking: booking}
		svc := NewService(repo, noopLogger{})

		resp, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{Status: "confirmed"})

		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		assert.Equal(t, domain.StatusConfirmed, repo.lastStatus)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(&mockBookingRepo{}, noopLogger{})

		_, err := svc.UpdateStatus(context.Background(), "booking-1", &models.UpdateStatusRequest{Status: "rejected"})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&mockBookingRepo{err: bookingRepo.ErrBookingNotFound}, noopLogger{})

		_, err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{Status: "confirmed"})

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewService(repo, noopLogger{})

	err := svc.Delete(context.Background(), "booking-1")

	require.NoError(t, err)
	assert.Equal(t, "booking-1", repo.deletedID)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&mockBookingRepo{err: bookingRepo.ErrBookingNotFound}, noopLogger{})

	err := svc.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
