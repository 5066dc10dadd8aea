package models

import (
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
)

// Request модели

// ChangeStatusRequest запрос на смену статуса записи
type ChangeStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"` // Обязателен при переходе в cancelled
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// GetEmployeeAppointmentsRequest запрос на получение записей мастера
type GetEmployeeAppointmentsRequest struct {
	EmployeeID int64      `json:"employeeId"`
	From       *time.Time `json:"from,omitempty"`   // Начало периода (опционально)
	To         *time.Time `json:"to,omitempty"`     // Конец периода (опционально)
	Status     *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetClientAppointmentsRequest запрос на получение записей клиента
type GetClientAppointmentsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	EmployeeID      int64  `json:"employeeId"`
	ClientID        int64  `json:"clientId"`
	ServiceName     string `json:"serviceName"`
	Date            string `json:"date"`      // "2025-10-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Origin          string `json:"origin"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// SaleResponse ответ с созданной продажей
type SaleResponse struct {
	TransactionID int64   `json:"transactionId"`
	AppointmentID int64   `json:"appointmentId"`
	Amount        float64 `json:"amount"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		EmployeeID:         a.EmployeeID,
		ClientID:           a.ClientID,
		ServiceName:        a.ServiceName,
		Date:               a.StartsAt.Format(domain.DateFormat),
		StartTime:          a.StartsAt.Format(domain.TimeFormat),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Origin:             a.Origin,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	out := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		out.Appointments = append(out.Appointments, *FromDomainAppointment(a))
	}
	return out
}
