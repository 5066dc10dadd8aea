package reschedule_appointment

import (
	"errors"
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	rescheduleAppointment "github.com/Juand2602/barberia-scheduling-service/internal/usecase/reschedule_appointment"
)

// errDateTimePair возвращается, когда date и startTime переданы не парой
var errDateTimePair = errors.New("date and startTime must be provided together")

// RescheduleAppointmentRequest HTTP request model.
// Незаполненные поля наследуются от текущей записи; date и startTime
// передаются только вместе.
type RescheduleAppointmentRequest struct {
	EmployeeID      *int64  `json:"employeeId,omitempty"`
	Date            *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime       *string `json:"startTime,omitempty"` // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	EmployeeID      int64   `json:"employeeId"`
	ClientID        int64   `json:"clientId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Origin          string  `json:"origin"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*rescheduleAppointment.Request, error) {
	req := &rescheduleAppointment.Request{
		AppointmentID:   appointmentID,
		EmployeeID:      r.EmployeeID,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}

	if (r.Date == nil) != (r.StartTime == nil) {
		return nil, errDateTimePair
	}

	if r.Date != nil {
		startsAt, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, *r.Date+" "+*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartsAt = &startsAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		EmployeeID:      resp.EmployeeID,
		ClientID:        resp.ClientID,
		ServiceName:     resp.ServiceName,
		Date:            resp.StartsAt.Format(domain.DateFormat),
		StartTime:       resp.StartsAt.Format(domain.TimeFormat),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Origin:          resp.Origin,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
