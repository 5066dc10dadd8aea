package domain

// ConflictLookbackMinutes ширина окна поиска конфликтов назад от начала
// нового слота. Существующая запись считается мешающей, если её НАЧАЛО
// попадает в окно [start-120м, start) либо [start, end); длительность
// существующей записи при этом не учитывается.
// См. slotBlockedByExisting в internal/scheduling.
const ConflictLookbackMinutes = 120

// Бизнес-ограничения
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 часов

	MaxServiceNameLength        = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Источники создания записи
const (
	OriginManual = "manual" // создана администратором
	OriginOnline = "online" // создана клиентом через онлайн-запись
	OriginPhone  = "phone"  // создана по телефонному звонку
)

// Форматы дат и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых запись занимает слот мастера.
// Используется при поиске конфликтов расписания.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses список всех допустимых статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}
