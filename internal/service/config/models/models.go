package models

import (
	"time"

	"github.com/polishnail/salon-booking-service/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек салона
// Настройки заменяются целиком - частичного обновления нет.
type UpdateConfigRequest struct {
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress,omitempty"`
	StorePhone   string `json:"storePhone,omitempty"`
	StoreEmail   string `json:"storeEmail,omitempty"`

	OpeningHours          domain.WeeklySchedule `json:"openingHours"`
	SlotDurationMinutes   int                   `json:"timeSlotDuration"`
	MaxBookingsPerSlot    int                   `json:"maxBookingsPerSlot"`
	MaxAdvanceBookingDays int                   `json:"maxAdvanceBookingDays"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig() *domain.StoreConfig {
	return &domain.StoreConfig{
		StoreName:             r.StoreName,
		StoreAddress:          r.StoreAddress,
		StorePhone:            r.StorePhone,
		StoreEmail:            r.StoreEmail,
		OpeningHours:          r.OpeningHours,
		SlotDurationMinutes:   r.SlotDurationMinutes,
		MaxBookingsPerSlot:    r.MaxBookingsPerSlot,
		MaxAdvanceBookingDays: r.MaxAdvanceBookingDays,
	}
}

// Response модели

// ConfigResponse ответ с настройками салона
type ConfigResponse struct {
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress,omitempty"`
	StorePhone   string `json:"storePhone,omitempty"`
	StoreEmail   string `json:"storeEmail,omitempty"`

	OpeningHours          domain.WeeklySchedule `json:"openingHours"`
	SlotDurationMinutes   int                   `json:"timeSlotDuration"`
	MaxBookingsPerSlot    int                   `json:"maxBookingsPerSlot"`
	MaxAdvanceBookingDays int                   `json:"maxAdvanceBookingDays"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.StoreConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	return &ConfigResponse{
		StoreName:             c.StoreName,
		StoreAddress:          c.StoreAddress,
		StorePhone:            c.StorePhone,
		StoreEmail:            c.StoreEmail,
		OpeningHours:          c.OpeningHours,
		SlotDurationMinutes:   c.SlotDurationMinutes,
		MaxBookingsPerSlot:    c.MaxBookingsPerSlot,
		MaxAdvanceBookingDays: c.MaxAdvanceBookingDays,
		UpdatedAt:             c.UpdatedAt,
	}
}
