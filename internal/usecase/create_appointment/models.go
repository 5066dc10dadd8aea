package create_appointment

import "time"

// Request модель запроса на создание записи
type Request struct {
	EmployeeID      int64     // ID мастера
	ClientID        int64     // ID клиента
	ServiceName     string    // Название услуги
	StartsAt        time.Time // Время начала записи
	DurationMinutes int       // Длительность в минутах
	Origin          string    // Источник записи (manual, online, phone)
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64     // ID созданной записи
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
