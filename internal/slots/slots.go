// Package slots содержит чистую логику вычисления доступности слотов:
// генерацию слотов по расписанию дня, фильтрацию по занятости и проверку
// окна предварительной записи. Единственная реализация, используемая и
// выдачей доступных слотов, и проверкой бронирования при создании.
package slots

import (
	"errors"
	"fmt"
	"time"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

var (
	// ErrInvalidSlotDuration возвращается при неположительной длительности слота
	ErrInvalidSlotDuration = errors.New("slots: slot duration must be positive")

	// ErrInvalidDayHours возвращается при некорректном времени открытия/закрытия
	ErrInvalidDayHours = errors.New("slots: invalid day opening hours")
)

// Generate генерирует упорядоченный список слотов на день по его режиму работы
// Слоты идут от времени открытия с шагом slotDurationMinutes, включая слот
// ровно во время закрытия. Для закрытого дня возвращается пустой список.
// При Open == Close (вырожденный открытый день) возвращается ровно один слот
// во время открытия.
//
// Вычисления ведутся в целых минутах с начала суток, поэтому переход через
// границу часа не накапливает погрешность.
func Generate(day domain.DayHours, slotDurationMinutes int) ([]types.TimeString, error) {
	if !day.IsOpen {
		return []types.TimeString{}, nil
	}

	if slotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSlotDuration, slotDurationMinutes)
	}

	open, err := types.NewTimeStringFromString(day.Open)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", ErrInvalidDayHours, day.Open, err)
	}

	closeTime, err := types.NewTimeStringFromString(day.Close)
	if err != nil {
		return nil, fmt.Errorf("%w: close %q: %v", ErrInvalidDayHours, day.Close, err)
	}

	openMinutes, err := open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMinutes, err := closeTime.Minutes()
	if err != nil {
		return nil, err
	}

	result := make([]types.TimeString, 0, (closeMinutes-openMinutes)/slotDurationMinutes+1)
	for current := openMinutes; current <= closeMinutes; current += slotDurationMinutes {
		slot, err := types.FromMinutes(current)
		if err != nil {
			return nil, err
		}
		result = append(result, slot)
	}

	return result, nil
}

// FilterByCapacity убирает из списка слоты, занятые до предела
// Слот остается, если количество учтенных бронирований на него строго меньше
// maxPerSlot (отсутствие записи в counts означает 0). Порядок сохраняется,
// дедупликация не выполняется.
func FilterByCapacity(candidates []types.TimeString, counts map[types.TimeString]int, maxPerSlot int) []types.TimeString {
	result := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		if counts[slot] < maxPerSlot {
			result = append(result, slot)
		}
	}
	return result
}

// IsDateBookable проверяет, что дата попадает в окно предварительной записи
// Сравниваются календарные даты (год, месяц, день), зоны обоих аргументов
// игнорируются: полночь UTC и полночь локальной зоны за один и тот же день
// считаются одним днем. Дата доступна, если она не в прошлом и не дальше
// maxAdvanceDays дней от сегодня (maxAdvanceDays = 0 означает "только
// сегодня"). Расписание работы здесь не учитывается: закрытый день проходит
// эту проверку и дает пустой список слотов.
func IsDateBookable(candidate, today time.Time, maxAdvanceDays int) bool {
	candidateDay := calendarDay(candidate)
	currentDay := calendarDay(today)

	if candidateDay.Before(currentDay) {
		return false
	}

	maxDay := currentDay.AddDate(0, 0, maxAdvanceDays)
	return !candidateDay.After(maxDay)
}

// CountByTime агрегирует бронирования в счетчики по времени слота
// Учитываются только бронирования, занимающие место в слоте (status=confirmed).
func CountByTime(bookings []*domain.Booking) map[types.TimeString]int {
	counts := make(map[types.TimeString]int, len(bookings))
	for _, booking := range bookings {
		if !booking.CountsAgainstCapacity() {
			continue
		}
		counts[booking.BookingTime]++
	}
	return counts
}

// calendarDay отбрасывает время и зону, оставляя календарный день
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
