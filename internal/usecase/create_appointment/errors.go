package create_appointment

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда мастер не найден или неактивен
	ErrEmployeeNotFound = errors.New("create_appointment: employee not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrDayOff возвращается, когда у мастера выходной в указанный день
	ErrDayOff = errors.New("create_appointment: employee day off")

	// ErrOutsideWorkingHours возвращается, когда слот вне рабочих часов мастера
	ErrOutsideWorkingHours = errors.New("create_appointment: outside working hours")

	// ErrSlotTaken возвращается, когда слот блокируется существующей записью
	ErrSlotTaken = errors.New("create_appointment: slot is taken")

	// ErrPastStartTime возвращается при попытке создать запись в прошлом
	ErrPastStartTime = errors.New("create_appointment: start time is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
