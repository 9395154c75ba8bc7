package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes   = 30
	DefaultMaxBookingsPerSlot    = 3
	DefaultMaxAdvanceBookingDays = 1095 // 3 года (3 * 365 дней)
)

// Business validation constants
const (
	MinSlotDurationMinutes   = 5
	MaxSlotDurationMinutes   = 480 // 8 часов
	MinBookingsPerSlot       = 1
	MaxBookingsPerSlot       = 100
	MinAdvanceBookingDays    = 0
	MaxAdvanceBookingDaysCap = 3650 // 10 лет

	MinFullNameLength = 2
	MinPhoneLength    = 10
	MaxNotesLength    = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
