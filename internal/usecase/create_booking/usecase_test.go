package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

type mockBookingRepo struct {
	bookings  []*domain.Booking
	getErr    error
	createErr error
	created   *domain.Booking
}

func (m *mockBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.bookings, nil
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	booking.ID = "test-booking-id"
	booking.CreatedAt = time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	m.created = booking
	return booking, nil
}

type mockConfigRepo struct {
	cfg *domain.StoreConfig
	err error
}

func (m *mockConfigRepo) Get(_ context.Context) (*domain.StoreConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cfg, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *mockBookingRepo, configRepo *mockConfigRepo) *UseCase {
	uc := NewUseCase(bookingRepo, configRepo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)}
	return uc
}

// validRequest запись на среду 25 декабря, рабочий день 09:00-18:00
func validRequest() *Request {
	return &Request{
		FullName:    "Anna Kowalska",
		Email:       "anna@example.com",
		Phone:       "+48123456789",
		Notes:       "gel polish",
		BookingDate: "2024-12-25",
		BookingTime: "10:00",
	}
}

func TestExecute_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "test-booking-id", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.BookingTime)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "anna@example.com", *resp.Email)

	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestExecute_HoneypotRejection(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	req := validRequest()
	req.Company = "Acme Inc"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSubmissionRejected)
	assert.Nil(t, bookingRepo.created, "honeypot submission must not create a booking")
}

func TestExecute_CollectsAllFieldErrors(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	_, err := uc.Execute(context.Background(), &Request{
		FullName:    "A",
		Email:       "not-an-email",
		Phone:       "123",
		Notes:       strings.Repeat("x", 501),
		BookingDate: "25.12.2024",
		BookingTime: "25:99",
	})

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)

	assert.Len(t, fieldErrs, 6)
	for _, field := range []string{"fullName", "email", "phone", "notes", "bookingDate", "bookingTime"} {
		assert.Contains(t, fieldErrs, field)
	}
}

func TestExecute_MissingRequiredFields(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	_, err := uc.Execute(context.Background(), &Request{})

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)

	assert.Contains(t, fieldErrs, "fullName")
	assert.Contains(t, fieldErrs, "phone")
	assert.Contains(t, fieldErrs, "bookingDate")
	assert.Contains(t, fieldErrs, "bookingTime")
	assert.NotContains(t, fieldErrs, "email", "empty email is allowed")
	assert.NotContains(t, fieldErrs, "notes", "empty notes are allowed")
}

func TestExecute_DateOutsideBookingWindow(t *testing.T) {
	cfg := domain.DefaultStoreConfig()
	cfg.MaxAdvanceBookingDays = 0 // только сегодня

	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{cfg: cfg})

	_, err := uc.Execute(context.Background(), validRequest())

	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "bookingDate")
}

func TestExecute_TimeNotInSchedule(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "time between slots",
			req: func() *Request {
				req := validRequest()
				req.BookingTime = "10:15"
				return req
			}(),
		},
		{
			name: "time after closing",
			req: func() *Request {
				req := validRequest()
				req.BookingTime = "19:00"
				return req
			}(),
		},
		{
			name: "closed day",
			req: func() *Request {
				req := validRequest()
				req.BookingDate = "2024-12-22" // воскресенье
				return req
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)

			fieldErrs, ok := AsFieldErrors(err)
			require.True(t, ok, "expected field errors, got %v", err)
			assert.Contains(t, fieldErrs, "bookingTime")
		})
	}
}

func TestExecute_SlotFull(t *testing.T) {
	cfg := domain.DefaultStoreConfig()
	cfg.MaxBookingsPerSlot = 1

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{BookingDate: date, BookingTime: "10:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: cfg})

	_, err := uc.Execute(context.Background(), validRequest())

	// Занятый слот приходит ошибкой поля bookingTime, как и время вне
	// расписания: клиент предлагает выбрать другое время
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)
	assert.Contains(t, fieldErrs, "bookingTime")
	assert.Len(t, fieldErrs, 1)
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_PendingBookingsDoNotBlockSlot(t *testing.T) {
	cfg := domain.DefaultStoreConfig()
	cfg.MaxBookingsPerSlot = 1

	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	bookingRepo := &mockBookingRepo{
		bookings: []*domain.Booking{
			{BookingDate: date, BookingTime: "10:00", Status: domain.StatusPending},
			{BookingDate: date, BookingTime: "10:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: cfg})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_TrimsFields(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: domain.DefaultStoreConfig()})

	req := validRequest()
	req.FullName = "  Anna Kowalska  "
	req.Phone = " +48123456789 "
	req.Email = ""

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Anna Kowalska", resp.FullName)
	assert.Equal(t, "+48123456789", resp.Phone)
	assert.Nil(t, resp.Email)
}

func TestExecute_ConfigError(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
