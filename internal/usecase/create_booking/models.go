package create_booking

import (
	"time"

	"github.com/polishnail/salon-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
// Дата и время приходят строками из формы и валидируются вместе с остальными
// полями, чтобы клиент получил все ошибки за один запрос.
type Request struct {
	FullName    string // Имя клиента
	Email       string // Email (опционально)
	Phone       string // Телефон
	Notes       string // Пожелания к записи (опционально)
	BookingDate string // Дата в формате "2006-01-02"
	BookingTime string // Время слота в формате "HH:MM"

	// Company - honeypot-поле против ботов: у людей в форме его не видно,
	// любое непустое значение означает автоматическую отправку
	Company string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	BookingDate time.Time
	BookingTime types.TimeString
	FullName    string
	Email       *string
	Phone       string
	Notes       string
	Status      string
	CreatedAt   time.Time
}
