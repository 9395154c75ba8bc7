package domain

import (
	"time"

	"github.com/polishnail/salon-booking-service/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusDone      BookingStatus = "done"
)

// AllStatuses список всех допустимых статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusDone,
}

// IsValidStatus проверяет, что строка является допустимым статусом бронирования
func IsValidStatus(s string) bool {
	for _, status := range AllStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// Booking запись на визит в салон
type Booking struct {
	ID          string
	BookingDate time.Time
	BookingTime types.TimeString
	FullName    string
	Email       *string
	Phone       string
	Notes       string
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsAgainstCapacity сообщает, занимает ли бронирование место в слоте
// Место занимают только подтвержденные бронирования: pending не блокирует слот,
// пока администратор его не подтвердит.
func (b *Booking) CountsAgainstCapacity() bool {
	return b.Status == StatusConfirmed
}

// IsFinal возвращает true для завершенных состояний жизненного цикла
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCancelled || b.Status == StatusDone
}

// BookingsFilter фильтр для получения списка бронирований в админке
type BookingsFilter struct {
	Search   string         // Поиск по имени и email (подстрока, без учета регистра)
	Status   *BookingStatus // Фильтр по статусу (опционально)
	DateFrom *time.Time     // Начало периода по booking_date (опционально)
	DateTo   *time.Time     // Конец периода по booking_date (опционально)
}
