package domain

import "time"

// StoreConfig настройки салона: контактные данные, расписание и параметры бронирования
// Хранится одной строкой в таблице store_config; административное обновление
// заменяет настройки целиком одной командой UPDATE.
type StoreConfig struct {
	ID           string
	StoreName    string
	StoreAddress string
	StorePhone   string
	StoreEmail   string

	OpeningHours          WeeklySchedule
	SlotDurationMinutes   int // Длительность слота в минутах
	MaxBookingsPerSlot    int // Максимум бронирований на один слот (дата + время)
	MaxAdvanceBookingDays int // На сколько дней вперед можно бронировать (0 = только сегодня)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultStoreConfig настройки по умолчанию
// Используются, когда конфигурация недоступна (graceful degradation при
// ошибке чтения из базы) или еще не создана.
func DefaultStoreConfig() *StoreConfig {
	weekday := DayHours{Open: "09:00", Close: "18:00", IsOpen: true}
	weekend := DayHours{Open: "10:00", Close: "16:00", IsOpen: true}

	return &StoreConfig{
		StoreName: "Polish Nail Salon",
		OpeningHours: WeeklySchedule{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  weekend,
			Sunday:    DayHours{Open: "10:00", Close: "16:00", IsOpen: false},
		},
		SlotDurationMinutes:   DefaultSlotDurationMinutes,
		MaxBookingsPerSlot:    DefaultMaxBookingsPerSlot,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
	}
}
