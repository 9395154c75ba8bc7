package config

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация магазина не найдена
	ErrConfigNotFound = errors.New("config.repository: store config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("config.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("config.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("config.repository: failed to scan row")

	// ErrMarshalHours возвращается при ошибке сериализации расписания в JSON
	ErrMarshalHours = errors.New("config.repository: failed to marshal opening hours")
)
