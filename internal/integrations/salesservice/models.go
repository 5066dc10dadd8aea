package salesservice

import "time"

// TransactionRequest запрос на создание финансовой транзакции по завершённой записи.
// Цена определяется на стороне SalesService по названию услуги.
type TransactionRequest struct {
	AppointmentID int64     `json:"appointment_id"`
	ClientID      int64     `json:"client_id"`
	EmployeeID    int64     `json:"employee_id"`
	ServiceName   string    `json:"service_name"`
	PerformedAt   time.Time `json:"performed_at"`
}

// Transaction созданная финансовая транзакция
type Transaction struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}

// ErrorResponse модель ошибки от SalesService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
