package create_booking

import "errors"

var (
	// ErrSubmissionRejected возвращается при срабатывании honeypot-поля
	// Текст намеренно не раскрывает причину отклонения.
	ErrSubmissionRejected = errors.New("create_booking: submission rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// FieldErrors ошибки валидации по полям формы
// Собираются все одновременно, ключ - имя поля в запросе.
type FieldErrors map[string]string

// Error реализует интерфейс error
func (e FieldErrors) Error() string {
	return "create_booking: validation failed"
}

// AsFieldErrors извлекает FieldErrors из ошибки
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}
