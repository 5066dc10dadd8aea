package appointments

import (
	"context"
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/salesservice"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByEmployeeAndWindow(ctx context.Context, filter *domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error)
	GetByClient(ctx context.Context, filter *domain.ClientAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
	Reactivate(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ConflictDetector интерфейс проверки доступности слота
type ConflictDetector interface {
	Check(ctx context.Context, slot scheduling.Slot) error
}

// SalesServiceClient интерфейс клиента для SalesService
type SalesServiceClient interface {
	CreateTransaction(ctx context.Context, req *salesservice.TransactionRequest) (*salesservice.Transaction, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
