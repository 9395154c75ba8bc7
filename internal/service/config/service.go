package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/polishnail/salon-booking-service/internal/domain"
	configRepo "github.com/polishnail/salon-booking-service/internal/infra/storage/config"
	"github.com/polishnail/salon-booking-service/internal/service/config/models"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

// Service сервис для работы с настройками салона
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get получает настройки салона
// Если конфигурация еще не создана, возвращает настройки по умолчанию -
// салон работает и до первого административного сохранения.
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: store config not found, returning defaults")
			return models.FromDomainConfig(domain.DefaultStoreConfig()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Update заменяет настройки салона целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating store config, name=%q", req.StoreName)

	cfg := req.ToDomainConfig()
	if err := s.validateConfig(cfg); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.configRepo.Replace(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated store config id=%s", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// validateConfig валидирует настройки салона перед сохранением
func (s *Service) validateConfig(cfg *domain.StoreConfig) error {
	if cfg.StoreName == "" {
		return fmt.Errorf("%w: storeName is required", ErrInvalidInput)
	}

	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: timeSlotDuration must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if cfg.MaxBookingsPerSlot < domain.MinBookingsPerSlot || cfg.MaxBookingsPerSlot > domain.MaxBookingsPerSlot {
		return fmt.Errorf("%w: maxBookingsPerSlot must be between %d and %d",
			ErrInvalidInput, domain.MinBookingsPerSlot, domain.MaxBookingsPerSlot)
	}

	if cfg.MaxAdvanceBookingDays < domain.MinAdvanceBookingDays || cfg.MaxAdvanceBookingDays > domain.MaxAdvanceBookingDaysCap {
		return fmt.Errorf("%w: maxAdvanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDaysCap)
	}

	// Расписание: для открытых дней время валидно и открытие не позже закрытия.
	// Open == Close допустимо: такой день дает ровно один слот.
	for _, day := range cfg.OpeningHours.Days() {
		if !day.Hours.IsOpen {
			continue
		}

		open := types.TimeString(day.Hours.Open)
		if err := open.Validate(); err != nil {
			return fmt.Errorf("%w: %s: invalid open time %q", ErrInvalidInput, day.Name, day.Hours.Open)
		}

		closeTime := types.TimeString(day.Hours.Close)
		if err := closeTime.Validate(); err != nil {
			return fmt.Errorf("%w: %s: invalid close time %q", ErrInvalidInput, day.Name, day.Hours.Close)
		}

		if open.IsAfter(closeTime) {
			return fmt.Errorf("%w: %s: open time %s is after close time %s",
				ErrInvalidInput, day.Name, day.Hours.Open, day.Hours.Close)
		}
	}

	return nil
}
