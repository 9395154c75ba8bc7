package create_booking

import (
	"regexp"
	"strings"
	"time"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/internal/slots"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

// emailPattern минимальная проверка формата: непустая локальная часть,
// @, домен с точкой
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatedFields результат валидации полей формы
type validatedFields struct {
	FullName    string
	Email       *string
	Phone       string
	Notes       string
	BookingDate time.Time
	BookingTime types.TimeString
}

// validateFields валидирует все поля формы и собирает ошибки одновременно
// Возвращает нормализованные значения полей и карту ошибок (пустую, если
// все поля корректны). Строковые поля обрезаются по краям.
func validateFields(req *Request, now time.Time, maxAdvanceDays int) (*validatedFields, FieldErrors) {
	fieldErrs := FieldErrors{}
	fields := &validatedFields{}

	fields.FullName = strings.TrimSpace(req.FullName)
	if len([]rune(fields.FullName)) < domain.MinFullNameLength {
		fieldErrs["fullName"] = "full name must be at least 2 characters"
	}

	fields.Phone = strings.TrimSpace(req.Phone)
	if len(fields.Phone) < domain.MinPhoneLength {
		fieldErrs["phone"] = "phone number must be at least 10 characters"
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		if !emailPattern.MatchString(email) {
			fieldErrs["email"] = "invalid email format"
		} else {
			fields.Email = &email
		}
	}

	fields.Notes = strings.TrimSpace(req.Notes)
	if len([]rune(fields.Notes)) > domain.MaxNotesLength {
		fieldErrs["notes"] = "notes must not exceed 500 characters"
	}

	if req.BookingDate == "" {
		fieldErrs["bookingDate"] = "booking date is required"
	} else {
		date, err := time.ParseInLocation(domain.DateFormat, req.BookingDate, now.Location())
		if err != nil {
			fieldErrs["bookingDate"] = "invalid date format, expected YYYY-MM-DD"
		} else if !slots.IsDateBookable(date, now, maxAdvanceDays) {
			fieldErrs["bookingDate"] = "date is outside the booking window"
		} else {
			fields.BookingDate = date
		}
	}

	if req.BookingTime == "" {
		fieldErrs["bookingTime"] = "booking time is required"
	} else {
		bookingTime, err := types.NewTimeStringFromString(req.BookingTime)
		if err != nil {
			fieldErrs["bookingTime"] = "invalid time format, expected HH:MM"
		} else {
			fields.BookingTime = bookingTime
		}
	}

	return fields, fieldErrs
}
