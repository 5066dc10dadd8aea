package create_appointment

import (
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	createAppointment "github.com/Juand2602/barberia-scheduling-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	EmployeeID      int64   `json:"employeeId"`
	ClientID        int64   `json:"clientId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`      // "2025-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Origin          string  `json:"origin"`
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
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startsAt, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, r.Date+" "+r.StartTime)
	if err != nil {
		return nil, err
	}

	origin := r.Origin
	if origin == "" {
		origin = domain.OriginManual
	}

	return &createAppointment.Request{
		EmployeeID:      r.EmployeeID,
		ClientID:        r.ClientID,
		ServiceName:     r.ServiceName,
		StartsAt:        startsAt,
		DurationMinutes: r.DurationMinutes,
		Origin:          origin,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
