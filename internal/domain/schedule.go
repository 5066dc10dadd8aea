package domain

import (
	"fmt"
	"time"

	"github.com/Juand2602/barberia-scheduling-service/pkg/types"
)

// WorkInterval рабочий интервал мастера в пределах одного дня
type WorkInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate проверяет формат времени и инвариант start < end
func (i *WorkInterval) Validate() error {
	if err := i.Start.Validate(); err != nil {
		return err
	}
	if err := i.End.Validate(); err != nil {
		return err
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: %s >= %s", ErrInvalidWorkInterval, i.Start, i.End)
	}
	return nil
}

// Contains проверяет, что окно [startMinutes, startMinutes+durationMinutes]
// целиком помещается в рабочий интервал. Аргументы — минуты с полуночи.
func (i *WorkInterval) Contains(startMinutes, durationMinutes int) bool {
	intervalStart, err := i.Start.MinutesOfDay()
	if err != nil {
		return false
	}
	intervalEnd, err := i.End.MinutesOfDay()
	if err != nil {
		return false
	}
	return startMinutes >= intervalStart && startMinutes+durationMinutes <= intervalEnd
}

// WeeklySchedule недельное расписание мастера: опциональный рабочий интервал
// на каждый день недели. nil означает, что мастер в этот день не работает.
type WeeklySchedule struct {
	Sunday    *WorkInterval
	Monday    *WorkInterval
	Tuesday   *WorkInterval
	Wednesday *WorkInterval
	Thursday  *WorkInterval
	Friday    *WorkInterval
	Saturday  *WorkInterval
}

// IntervalFor возвращает рабочий интервал мастера на указанный день недели
func (s *WeeklySchedule) IntervalFor(weekday time.Weekday) *WorkInterval {
	switch weekday {
	case time.Sunday:
		return s.Sunday
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	default:
		return nil
	}
}

// Validate проверяет все заданные интервалы расписания
func (s *WeeklySchedule) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		interval := s.IntervalFor(d)
		if interval == nil {
			continue
		}
		if err := interval.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
	}
	return nil
}
