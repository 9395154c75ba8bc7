package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

type mockBookingRepo struct {
	counts map[types.TimeString]int
	err    error
	calls  int
}

func (m *mockBookingRepo) CountConfirmedByTime(_ context.Context, _ time.Time) (map[types.TimeString]int, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.counts, nil
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

func newTestUseCase(bookingRepo *mockBookingRepo, configRepo *mockConfigRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, configRepo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// testConfig салон с часовыми слотами и одним местом на слот
func testConfig() *domain.StoreConfig {
	cfg := domain.DefaultStoreConfig()
	cfg.SlotDurationMinutes = 60
	cfg.MaxBookingsPerSlot = 1
	return cfg
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockConfigRepo{cfg: testConfig()}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_FiltersBookedSlots(t *testing.T) {
	// Среда, рабочий день 09:00-18:00, часовые слоты, одно место на слот
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{"10:00": 1}}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: testConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
	assert.Equal(t, []types.TimeString{
		"09:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
	}, resp.Slots)
}

func TestExecute_ClosedDay(t *testing.T) {
	// Воскресенье по умолчанию закрыто
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: testConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, bookingRepo.calls, "closed day must not query bookings")
}

func TestExecute_DateOutsideBookingWindow(t *testing.T) {
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)

	cfg := testConfig()
	cfg.MaxAdvanceBookingDays = 7

	tests := []struct {
		name string
		date time.Time
	}{
		{
			name: "past date",
			date: time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "beyond advance window",
			date: time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookingRepo := &mockBookingRepo{}
			uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: cfg}, now)

			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})

			require.NoError(t, err)
			assert.Empty(t, resp.Slots)
			assert.Zero(t, bookingRepo.calls, "out-of-window date must not query bookings")
		})
	}

	t.Run("last day of window is bookable", func(t *testing.T) {
		bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{}}
		uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: cfg}, now)

		// 27 декабря - пятница, ровно +7 дней
		resp, err := uc.Execute(context.Background(), &Request{
			Date: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Slots)
	})
}

func TestExecute_TodayBookableWithNonUTCServerZone(t *testing.T) {
	// Дата запроса разобрана как полночь UTC, а часы сервера идут в UTC-5:
	// запрос слотов на сегодня должен дойти до репозитория, а не отсекаться
	// окном записи как "прошлое"
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))
	date := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC) // пятница, рабочий день

	bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{}}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: testConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
	assert.Equal(t, 1, bookingRepo.calls)

	t.Run("east of UTC with zero window", func(t *testing.T) {
		cfg := testConfig()
		cfg.MaxAdvanceBookingDays = 0

		bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{}}
		uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: cfg},
			time.Date(2024, 12, 20, 12, 0, 0, 0, time.FixedZone("UTC+9", 9*3600)))

		resp, err := uc.Execute(context.Background(), &Request{Date: date})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Slots)
	})
}

func TestExecute_ConfigErrorFallsBackToDefaults(t *testing.T) {
	// Понедельник; дефолтное расписание 09:00-18:00 с шагом 30 минут
	// дает 19 слотов, включая слот во время закрытия
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 12, 23, 0, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{}}
	configRepo := &mockConfigRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(bookingRepo, configRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Len(t, resp.Slots, 19)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("18:00"), resp.Slots[len(resp.Slots)-1])
}

func TestExecute_CountErrorReturnsUnfilteredSlots(t *testing.T) {
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{err: errors.New("query timeout")}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: testConfig()}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 10, "degraded response keeps all generated slots")
}

func TestExecute_Idempotent(t *testing.T) {
	now := time.Date(2024, 12, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	bookingRepo := &mockBookingRepo{counts: map[types.TimeString]int{"10:00": 1}}
	uc := newTestUseCase(bookingRepo, &mockConfigRepo{cfg: testConfig()}, now)

	first, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
