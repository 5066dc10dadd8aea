package scheduling

import (
	"context"
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByEmployeeAndWindow(ctx context.Context, filter *domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента StaffService
type StaffServiceClient interface {
	GetEmployee(ctx context.Context, employeeID int64) (*staffservice.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Slot кандидат на бронирование: мастер, время начала и длительность.
// ExcludeID задаётся при переносе, чтобы запись не конфликтовала сама с собой.
type Slot struct {
	EmployeeID      int64
	StartsAt        time.Time
	DurationMinutes int
	ExcludeID       *int64
}

// EndsAt возвращает время окончания слота
func (s Slot) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.DurationMinutes) * time.Minute)
}
