package config

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/polishnail/salon-booking-service/internal/domain"
	"github.com/polishnail/salon-booking-service/pkg/dbmetrics"
	"github.com/polishnail/salon-booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий конфигурации магазина
// Конфигурация хранится одной строкой; обновление заменяет её целиком,
// поэтому читатели никогда не видят частично обновленные настройки.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию магазина
func (r *Repository) Get(ctx context.Context) (*domain.StoreConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"store_name",
		"store_address",
		"store_phone",
		"store_email",
		"opening_hours",
		"time_slot_duration",
		"max_bookings_per_slot",
		"max_advance_booking_days",
		"created_at",
		"updated_at",
	).
		From("store_config").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.StoreConfig
	var storeAddress, storePhone, storeEmail sql.NullString
	var openingHours []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.StoreName,
		&storeAddress,
		&storePhone,
		&storeEmail,
		&openingHours,
		&cfg.SlotDurationMinutes,
		&cfg.MaxBookingsPerSlot,
		&cfg.MaxAdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(openingHours, &cfg.OpeningHours); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal opening hours: %v", ErrScanRow, err)
	}

	cfg.StoreAddress = storeAddress.String
	cfg.StorePhone = storePhone.String
	cfg.StoreEmail = storeEmail.String
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Replace заменяет конфигурацию магазина целиком
// Если строка конфигурации существует - обновляет её одной командой UPDATE,
// иначе создает первую. Возвращает сохраненную конфигурацию.
func (r *Repository) Replace(ctx context.Context, cfg *domain.StoreConfig) (*domain.StoreConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openingHours, err := json.Marshal(cfg.OpeningHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace: %v", ErrMarshalHours, err)
	}

	existing, err := r.Get(ctx)
	if err != nil && err != ErrConfigNotFound {
		return nil, err
	}

	if existing == nil {
		return r.insert(ctx, executor, cfg, openingHours)
	}

	query, args, err := psqlbuilder.Update("store_config").
		Set("store_name", cfg.StoreName).
		Set("store_address", cfg.StoreAddress).
		Set("store_phone", cfg.StorePhone).
		Set("store_email", cfg.StoreEmail).
		Set("opening_hours", openingHours).
		Set("time_slot_duration", cfg.SlotDurationMinutes).
		Set("max_bookings_per_slot", cfg.MaxBookingsPerSlot).
		Set("max_advance_booking_days", cfg.MaxAdvanceBookingDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": existing.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - execute update: %v", ErrExecQuery, err)
	}

	cfg.ID = existing.ID
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func (r *Repository) insert(ctx context.Context, executor DBExecutor, cfg *domain.StoreConfig, openingHours []byte) (*domain.StoreConfig, error) {
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("store_config").
		Columns(
			"id",
			"store_name",
			"store_address",
			"store_phone",
			"store_email",
			"opening_hours",
			"time_slot_duration",
			"max_bookings_per_slot",
			"max_advance_booking_days",
		).
		Values(
			cfg.ID,
			cfg.StoreName,
			cfg.StoreAddress,
			cfg.StorePhone,
			cfg.StoreEmail,
			openingHours,
			cfg.SlotDurationMinutes,
			cfg.MaxBookingsPerSlot,
			cfg.MaxAdvanceBookingDays,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
