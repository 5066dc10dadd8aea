package reschedule_appointment

import "time"

// Request модель запроса на перенос записи.
// Незаполненные поля наследуются от текущей записи.
type Request struct {
	AppointmentID   int64      // ID переносимой записи
	EmployeeID      *int64     // Новый мастер (опционально)
	StartsAt        *time.Time // Новое время начала (опционально)
	DurationMinutes *int       // Новая длительность (опционально)
	Notes           *string    // Новые заметки (опционально)
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID              int64     // ID записи
	EmployeeID      int64     // ID мастера
	ClientID        int64     // ID клиента
	ServiceName     string    // Название услуги
	StartsAt        time.Time // Время начала
	DurationMinutes int       // Длительность в минутах
	Status          string    // Статус записи
	Origin          string    // Источник записи
	Notes           *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
