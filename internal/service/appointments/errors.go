package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReasonRequired возвращается при отмене без указания причины
	ErrReasonRequired = errors.New("cancellation reason is required")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrCannotDelete возвращается, когда запись нельзя физически удалить
	ErrCannotDelete = errors.New("appointment cannot be deleted")

	// ErrNotCompleted возвращается при попытке сформировать продажу
	// по незавершённой записи
	ErrNotCompleted = errors.New("appointment is not completed")

	// ErrServiceUnknown возвращается, когда SalesService не знает услугу
	ErrServiceUnknown = errors.New("unknown service name")

	// ErrSlotTaken возвращается, когда слот реактивируемой записи уже занят
	ErrSlotTaken = errors.New("slot is taken")

	// ErrPastStartTime возвращается при реактивации записи с началом в прошлом
	ErrPastStartTime = errors.New("start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
