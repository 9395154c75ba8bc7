package domain

import "time"

// DayHours режим работы салона в один день недели
// Open и Close в формате "HH:MM" (24 часа); при IsOpen=false игнорируются.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// WeeklySchedule недельное расписание работы салона
// Хранится в store_config.opening_hours как JSONB и заменяется целиком при обновлении
// настроек: читатели никогда не видят частично обновленное расписание.
type WeeklySchedule struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// DayFor возвращает режим работы на указанный день недели
func (s WeeklySchedule) DayFor(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DayHours{IsOpen: false}
	}
}

// Days возвращает пары (имя дня, режим работы) в порядке Monday..Sunday
// Используется при валидации расписания.
func (s WeeklySchedule) Days() []NamedDay {
	return []NamedDay{
		{"monday", s.Monday},
		{"tuesday", s.Tuesday},
		{"wednesday", s.Wednesday},
		{"thursday", s.Thursday},
		{"friday", s.Friday},
		{"saturday", s.Saturday},
		{"sunday", s.Sunday},
	}
}

// NamedDay день недели с его режимом работы
type NamedDay struct {
	Name  string
	Hours DayHours
}
