package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrCannotReschedule возвращается при попытке перенести завершённую или отменённую запись
	ErrCannotReschedule = errors.New("reschedule_appointment: appointment cannot be rescheduled")

	// ErrEmployeeNotFound возвращается, когда мастер не найден или неактивен
	ErrEmployeeNotFound = errors.New("reschedule_appointment: employee not found")

	// ErrDayOff возвращается, когда у мастера выходной в указанный день
	ErrDayOff = errors.New("reschedule_appointment: employee day off")

	// ErrOutsideWorkingHours возвращается, когда новый слот вне рабочих часов мастера
	ErrOutsideWorkingHours = errors.New("reschedule_appointment: outside working hours")

	// ErrSlotTaken возвращается, когда новый слот блокируется существующей записью
	ErrSlotTaken = errors.New("reschedule_appointment: slot is taken")

	// ErrPastStartTime возвращается при попытке перенести запись в прошлое
	ErrPastStartTime = errors.New("reschedule_appointment: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
