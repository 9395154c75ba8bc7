package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/internal/slots"
	"github.com/polishnail/salon-booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Ошибки валидации полей собираются все сразу и возвращаются одной картой
// FieldErrors. Проверка занятости слота и вставка выполняются в сериализуемой
// транзакции с блокировкой бронирований даты (FOR UPDATE): два конкурентных
// запроса на последнее место в слоте не могут пройти проверку одновременно.
// Бронирование создается в статусе pending и не занимает место в слоте,
// пока администратор его не подтвердит.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s", req.BookingDate, req.BookingTime)

	// 1. Honeypot: заполненное скрытое поле - автоматическая отправка.
	// Отклоняем без деталей, чтобы не подсказывать ботам.
	if strings.TrimSpace(req.Company) != "" {
		uc.logger.Warn("CreateBooking: honeypot field filled, rejecting submission")
		return nil, ErrSubmissionRejected
	}

	// 2. Получаем конфигурацию салона
	// В отличие от витрины слотов, здесь на дефолты не откатываемся: проверка
	// занятости по неверной вместимости могла бы переполнить слот.
	config, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get store config: %v", err)
		return nil, fmt.Errorf("%w: failed to get store config: %v", ErrInternal, err)
	}

	// 3. Валидация всех полей формы за один проход
	now := uc.timeProvider.Now()
	fields, fieldErrs := validateFields(req, now, config.MaxAdvanceBookingDays)
	if len(fieldErrs) > 0 {
		uc.logger.Warn("CreateBooking: validation failed: %v", fieldErrs)
		return nil, fieldErrs
	}

	// 4. Проверяем занятость слота и создаем бронирование в одной транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		day := config.OpeningHours.DayFor(fields.BookingDate.Weekday())
		candidates, err := slots.Generate(day, config.SlotDurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}

		if !containsSlot(candidates, fields.BookingTime) {
			return FieldErrors{"bookingTime": "selected time is not available on this date"}
		}

		bookings, err := uc.bookingRepo.GetByDate(txCtx, fields.BookingDate)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings for date: %v", ErrInternal, err)
		}

		// Занятый до предела слот - такая же ошибка поля, как и время вне
		// расписания: форма предлагает выбрать другое время
		counts := slots.CountByTime(bookings)
		if counts[fields.BookingTime] >= config.MaxBookingsPerSlot {
			return FieldErrors{"bookingTime": "selected time slot is no longer available"}
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			BookingDate: fields.BookingDate,
			BookingTime: fields.BookingTime,
			FullName:    fields.FullName,
			Email:       fields.Email,
			Phone:       fields.Phone,
			Notes:       fields.Notes,
			Status:      domain.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if fieldErrs, ok := AsFieldErrors(err); ok {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", fieldErrs)
			return nil, fieldErrs
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s on %s %s",
		created.ID, created.BookingDate.Format(domain.DateFormat), created.BookingTime)

	return &Response{
		ID:          created.ID,
		BookingDate: created.BookingDate,
		BookingTime: created.BookingTime,
		FullName:    created.FullName,
		Email:       created.Email,
		Phone:       created.Phone,
		Notes:       created.Notes,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}

func containsSlot(candidates []types.TimeString, slot types.TimeString) bool {
	for _, candidate := range candidates {
		if candidate == slot {
			return true
		}
	}
	return false
}
