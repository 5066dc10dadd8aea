package staffservice

import (
	"fmt"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/pkg/types"
)

// Employee модель мастера из StaffService
type Employee struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	IsActive       bool           `json:"is_active"`
	WeeklySchedule WeeklySchedule `json:"weekly_schedule"`
}

// DayInterval рабочий интервал мастера на один день
type DayInterval struct {
	Start string `json:"start"` // "09:00"
	End   string `json:"end"`   // "18:00"
}

// WeeklySchedule недельное расписание мастера.
// Отсутствующий день означает выходной.
type WeeklySchedule struct {
	Sunday    *DayInterval `json:"sunday,omitempty"`
	Monday    *DayInterval `json:"monday,omitempty"`
	Tuesday   *DayInterval `json:"tuesday,omitempty"`
	Wednesday *DayInterval `json:"wednesday,omitempty"`
	Thursday  *DayInterval `json:"thursday,omitempty"`
	Friday    *DayInterval `json:"friday,omitempty"`
	Saturday  *DayInterval `json:"saturday,omitempty"`
}

// ToDomain конвертирует расписание в доменную модель с валидацией интервалов
func (s *WeeklySchedule) ToDomain() (*domain.WeeklySchedule, error) {
	out := &domain.WeeklySchedule{}

	days := []struct {
		name string
		src  *DayInterval
		dst  **domain.WorkInterval
	}{
		{"sunday", s.Sunday, &out.Sunday},
		{"monday", s.Monday, &out.Monday},
		{"tuesday", s.Tuesday, &out.Tuesday},
		{"wednesday", s.Wednesday, &out.Wednesday},
		{"thursday", s.Thursday, &out.Thursday},
		{"friday", s.Friday, &out.Friday},
		{"saturday", s.Saturday, &out.Saturday},
	}

	for _, day := range days {
		interval, err := toWorkInterval(day.src)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.name, err)
		}
		*day.dst = interval
	}

	return out, nil
}

func toWorkInterval(d *DayInterval) (*domain.WorkInterval, error) {
	if d == nil {
		return nil, nil
	}

	start, err := types.NewTimeStringFromString(d.Start)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromString(d.End)
	if err != nil {
		return nil, err
	}

	interval := &domain.WorkInterval{Start: start, End: end}
	if err := interval.Validate(); err != nil {
		return nil, err
	}
	return interval, nil
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
