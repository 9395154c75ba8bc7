package get_available_slots

import (
	"context"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/internal/slots"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Выдача слотов - публичная витрина записи, поэтому доступность важнее
// строгой консистентности: при ошибке чтения конфигурации берутся настройки
// по умолчанию, при ошибке чтения занятости слоты возвращаются без фильтра
// по занятости. Оба случая логируются как warning. Повторный вызов с теми же
// данными дает тот же результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, ErrInvalidDate
	}

	// 2. Получаем конфигурацию салона (graceful degradation на дефолты)
	config, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to get store config, using defaults: %v", err)
		config = domain.DefaultStoreConfig()
	}

	// 3. Проверяем окно предварительной записи
	// Дата вне окна - не ошибка: витрина показывает пустой день.
	now := uc.timeProvider.Now()
	if !slots.IsDateBookable(req.Date, now, config.MaxAdvanceBookingDays) {
		uc.logger.Info("GetAvailableSlots: date %s is outside booking window (maxAdvanceDays=%d)",
			req.Date.Format(domain.DateFormat), config.MaxAdvanceBookingDays)
		return uc.emptyResponse(req, config), nil
	}

	// 4. Генерируем слоты по расписанию дня недели
	day := config.OpeningHours.DayFor(req.Date.Weekday())
	candidates, err := slots.Generate(day, config.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return uc.emptyResponse(req, config), nil
	}

	if len(candidates) == 0 {
		uc.logger.Info("GetAvailableSlots: store is closed on %s", req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, config), nil
	}

	// 5. Фильтруем по занятости (graceful degradation на нефильтрованный список)
	counts, err := uc.bookingRepo.CountConfirmedByTime(ctx, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to count bookings for %s, returning unfiltered slots: %v",
			req.Date.Format(domain.DateFormat), err)
		counts = map[types.TimeString]int{}
	}

	available := slots.FilterByCapacity(candidates, counts, config.MaxBookingsPerSlot)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(candidates), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                req.Date,
		SlotDurationMinutes: config.SlotDurationMinutes,
		Slots:               available,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, config *domain.StoreConfig) *Response {
	return &Response{
		Date:                req.Date,
		SlotDurationMinutes: config.SlotDurationMinutes,
		Slots:               []types.TimeString{},
	}
}
