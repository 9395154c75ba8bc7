package models

import (
	"errors"
	"time"

	"github.com/polishnail/salon-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований для админки
// Все фильтры опциональны, даты в формате "2006-01-02"
type ListBookingsRequest struct {
	Search   string  `json:"search,omitempty"`   // Подстрока имени или email
	Status   *string `json:"status,omitempty"`   // Фильтр по статусу
	DateFrom *string `json:"dateFrom,omitempty"` // Начало периода booking_date
	DateTo   *string `json:"dateTo,omitempty"`   // Конец периода booking_date
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Search: r.Search,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.DateFrom != nil {
		from, err := time.Parse(domain.DateFormat, *r.DateFrom)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.DateFrom = &from
	}

	if r.DateTo != nil {
		to, err := time.Parse(domain.DateFormat, *r.DateTo)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.DateTo = &to
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	BookingTime string  `json:"bookingTime"` // "10:00"
	FullName    string  `json:"fullName"`
	Email       *string `json:"email,omitempty"`
	Phone       string  `json:"phone"`
	Notes       string  `json:"notes,omitempty"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		BookingTime: b.BookingTime.String(),
		FullName:    b.FullName,
		Email:       b.Email,
		Phone:       b.Phone,
		Notes:       b.Notes,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(status), nil
}
