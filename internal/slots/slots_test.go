package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		day      domain.DayHours
		duration int
		expected []types.TimeString
	}{
		{
			name:     "closed day yields no slots",
			day:      domain.DayHours{Open: "09:00", Close: "18:00", IsOpen: false},
			duration: 30,
			expected: []types.TimeString{},
		},
		{
			name:     "degenerate zero-length open day yields one slot",
			day:      domain.DayHours{Open: "12:00", Close: "12:00", IsOpen: true},
			duration: 30,
			expected: []types.TimeString{"12:00"},
		},
		{
			name:     "hour rollover with 45 minute step",
			day:      domain.DayHours{Open: "09:00", Close: "11:30", IsOpen: true},
			duration: 45,
			expected: []types.TimeString{"09:00", "09:45", "10:30", "11:15"},
		},
		{
			name:     "duration longer than the day yields only the opening slot",
			day:      domain.DayHours{Open: "10:00", Close: "13:00", IsOpen: true},
			duration: 240,
			expected: []types.TimeString{"10:00"},
		},
		{
			name:     "closing boundary slot is included",
			day:      domain.DayHours{Open: "16:00", Close: "18:00", IsOpen: true},
			duration: 60,
			expected: []types.TimeString{"16:00", "17:00", "18:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.day, tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGenerate_FullBusinessDay(t *testing.T) {
	day := domain.DayHours{Open: "09:00", Close: "18:00", IsOpen: true}

	got, err := Generate(day, 30)
	require.NoError(t, err)

	// 09:00 .. 18:00 с шагом 30 минут, включая слот ровно в закрытие
	require.Len(t, got, 19)
	assert.Equal(t, types.TimeString("09:00"), got[0])
	assert.Equal(t, types.TimeString("09:30"), got[1])
	assert.Equal(t, types.TimeString("17:30"), got[17])
	assert.Equal(t, types.TimeString("18:00"), got[18])

	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].IsBefore(got[i]), "slots must be strictly ascending")
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	day := domain.DayHours{Open: "09:00", Close: "18:00", IsOpen: true}

	_, err := Generate(day, 0)
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)

	_, err = Generate(domain.DayHours{Open: "9am", Close: "18:00", IsOpen: true}, 30)
	assert.ErrorIs(t, err, ErrInvalidDayHours)
}

func TestFilterByCapacity(t *testing.T) {
	candidates := []types.TimeString{"09:00", "09:30", "10:00"}
	counts := map[types.TimeString]int{
		"09:00": 3,
		"09:30": 2,
	}

	got := FilterByCapacity(candidates, counts, 3)

	// "09:00" заполнен (3/3), "09:30" частично (2/3), "10:00" отсутствует в counts
	assert.Equal(t, []types.TimeString{"09:30", "10:00"}, got)
}

func TestFilterByCapacity_PreservesOrder(t *testing.T) {
	candidates := []types.TimeString{"11:00", "09:00", "10:00"}

	got := FilterByCapacity(candidates, nil, 1)

	assert.Equal(t, candidates, got)
}

func TestIsDateBookable(t *testing.T) {
	today := time.Date(2024, 12, 20, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name           string
		candidate      time.Time
		maxAdvanceDays int
		expected       bool
	}{
		{
			name:           "today with zero window is bookable",
			candidate:      today,
			maxAdvanceDays: 0,
			expected:       true,
		},
		{
			name:           "tomorrow with zero window is not bookable",
			candidate:      today.AddDate(0, 0, 1),
			maxAdvanceDays: 0,
			expected:       false,
		},
		{
			name:           "yesterday is never bookable",
			candidate:      today.AddDate(0, 0, -1),
			maxAdvanceDays: 1095,
			expected:       false,
		},
		{
			name:           "exactly at the window boundary is bookable",
			candidate:      today.AddDate(0, 0, 1095),
			maxAdvanceDays: 1095,
			expected:       true,
		},
		{
			name:           "one day past the window is not bookable",
			candidate:      today.AddDate(0, 0, 1096),
			maxAdvanceDays: 1095,
			expected:       false,
		},
		{
			name:           "time of day does not matter",
			candidate:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.Local),
			maxAdvanceDays: 0,
			expected:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateBookable(tt.candidate, today, tt.maxAdvanceDays))
		})
	}
}

func TestIsDateBookable_MixedTimeZones(t *testing.T) {
	// Дата из HTTP-запроса приходит полуночью UTC, а "сейчас" живет в зоне
	// сервера. Сравниваться должны календарные дни, а не моменты времени.
	tests := []struct {
		name           string
		candidate      time.Time
		today          time.Time
		maxAdvanceDays int
		expected       bool
	}{
		{
			name:           "today in UTC vs now west of UTC",
			candidate:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			today:          time.Date(2024, 12, 20, 12, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			maxAdvanceDays: 7,
			expected:       true,
		},
		{
			name:           "today in UTC vs now east of UTC with zero window",
			candidate:      time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			today:          time.Date(2024, 12, 20, 12, 0, 0, 0, time.FixedZone("UTC+9", 9*3600)),
			maxAdvanceDays: 0,
			expected:       true,
		},
		{
			name:           "window boundary holds across zones",
			candidate:      time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC),
			today:          time.Date(2024, 12, 20, 23, 59, 0, 0, time.FixedZone("UTC-8", -8*3600)),
			maxAdvanceDays: 7,
			expected:       true,
		},
		{
			name:           "one day past the window across zones",
			candidate:      time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC),
			today:          time.Date(2024, 12, 20, 0, 1, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			maxAdvanceDays: 7,
			expected:       false,
		},
		{
			name:           "yesterday in UTC vs now west of UTC",
			candidate:      time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC),
			today:          time.Date(2024, 12, 20, 1, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			maxAdvanceDays: 7,
			expected:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateBookable(tt.candidate, tt.today, tt.maxAdvanceDays))
		})
	}
}

func TestCountByTime(t *testing.T) {
	bookings := []*domain.Booking{
		{BookingTime: "10:00", Status: domain.StatusConfirmed},
		{BookingTime: "10:00", Status: domain.StatusConfirmed},
		{BookingTime: "10:30", Status: domain.StatusPending},
		{BookingTime: "11:00", Status: domain.StatusCancelled},
		{BookingTime: "11:30", Status: domain.StatusDone},
	}

	counts := CountByTime(bookings)

	// Только confirmed занимает место: pending, cancelled и done не учитываются
	assert.Equal(t, map[types.TimeString]int{"10:00": 2}, counts)
}
