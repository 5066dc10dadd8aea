package scheduling

import (
	"errors"
	"fmt"

	"github.com/Juand2602/barberia-scheduling-service/pkg/types"
)

var (
	// ErrEmployeeNotFound возвращается, когда мастер не найден или неактивен
	ErrEmployeeNotFound = errors.New("scheduling: employee not found")

	// ErrDayOff возвращается, когда у мастера выходной в запрошенный день
	ErrDayOff = errors.New("scheduling: employee day off")

	// ErrOutsideWorkingHours возвращается, когда слот не укладывается в рабочие часы
	ErrOutsideWorkingHours = errors.New("scheduling: slot outside working hours")

	// ErrSlotTaken возвращается, когда слот блокируется существующей записью
	ErrSlotTaken = errors.New("scheduling: slot already taken")

	// ErrInternal возвращается при внутренних ошибках проверки
	ErrInternal = errors.New("scheduling: internal error")
)

// OutsideWorkingHoursError ошибка выхода за рабочие часы с границами смены мастера
type OutsideWorkingHoursError struct {
	Start types.TimeString
	End   types.TimeString
}

// Error реализует интерфейс error
func (e *OutsideWorkingHoursError) Error() string {
	return fmt.Sprintf("scheduling: slot outside working hours %s-%s", e.Start, e.End)
}

// Is позволяет сопоставлять ошибку с ErrOutsideWorkingHours через errors.Is
func (e *OutsideWorkingHoursError) Is(target error) bool {
	return target == ErrOutsideWorkingHours
}

// Reason возвращает человекочитаемую причину недоступности слота
func Reason(err error) string {
	var outside *OutsideWorkingHoursError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmployeeNotFound):
		return "Мастер не найден или неактивен"
	case errors.Is(err, ErrDayOff):
		return "У мастера выходной в этот день"
	case errors.As(err, &outside):
		return fmt.Sprintf("Время вне рабочих часов мастера (%s-%s)", outside.Start, outside.End)
	case errors.Is(err, ErrOutsideWorkingHours):
		return "Время вне рабочих часов мастера"
	case errors.Is(err, ErrSlotTaken):
		return "Время уже занято другой записью"
	default:
		return "Не удалось проверить доступность"
	}
}
