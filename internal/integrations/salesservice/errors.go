package salesservice

import "errors"

var (
	// ErrServiceUnknown возвращается, когда прайс SalesService не содержит услугу
	ErrServiceUnknown = errors.New("salesservice client: unknown service name")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("salesservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("salesservice client: invalid response")
)
