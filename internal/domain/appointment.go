package domain

import "time"

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment запись клиента к мастеру на услугу
type Appointment struct {
	ID              int64
	EmployeeID      int64
	ClientID        int64
	ServiceName     string
	StartsAt        time.Time // наивное локальное время, без таймзоны
	DurationMinutes int
	Status          AppointmentStatus

	// Origin канал, через который создана запись (сайт, телефон, администратор).
	// Ядро расписания его не интерпретирует.
	Origin string
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndsAt возвращает момент окончания записи
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsActive возвращает true, если запись занимает слот мастера
// и учитывается при проверке конфликтов
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled возвращает true, если запись отменена
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsCompleted возвращает true, если запись завершена
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled возвращает true, если запись можно перенести
// (поменять мастера, время или длительность)
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// EmployeeAppointmentsFilter фильтр выборки записей мастера
type EmployeeAppointmentsFilter struct {
	EmployeeID   int64               // Обязательный параметр
	Statuses     []AppointmentStatus // Пустой срез — без фильтра по статусу
	StartsFrom   *time.Time          // Начало окна по starts_at, включительно (опционально)
	StartsBefore *time.Time          // Конец окна по starts_at, не включительно (опционально)
	ExcludeID    *int64              // Запись, которую нужно исключить из выборки (опционально)
}

// ClientAppointmentsFilter фильтр выборки записей клиента
type ClientAppointmentsFilter struct {
	ClientID int64
	Status   *AppointmentStatus // Фильтр по статусу (опционально)
}
