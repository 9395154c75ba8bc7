package create_booking

import (
	"time"

	"github.com/polishnail/salon-booking-service/internal/domain"
	createBooking "github.com/polishnail/salon-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Поле company - honeypot: в форме оно скрыто, заполняют его только боты.
type CreateBookingRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes,omitempty"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	BookingTime string `json:"bookingTime"` // "10:00"
	Company     string `json:"company,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	BookingDate string  `json:"bookingDate"`
	BookingTime string  `json:"bookingTime"`
	FullName    string  `json:"fullName"`
	Email       *string `json:"email,omitempty"`
	Phone       string  `json:"phone"`
	Notes       string  `json:"notes,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время передаются строками: их валидация входит в общий свод
// ошибок полей, который собирает use case.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Notes:       r.Notes,
		BookingDate: r.BookingDate,
		BookingTime: r.BookingTime,
		Company:     r.Company,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		BookingTime: resp.BookingTime.String(),
		FullName:    resp.FullName,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Notes:       resp.Notes,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
