package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/staffservice"
	"github.com/Juand2602/barberia-scheduling-service/pkg/ptr"
)

type fakeStaffClient struct {
	employee *staffservice.Employee
	err      error
}

func (f *fakeStaffClient) GetEmployee(_ context.Context, _ int64) (*staffservice.Employee, error) {
	return f.employee, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	lastFilter   *domain.EmployeeAppointmentsFilter
	err          error
}

func (f *fakeAppointmentRepo) GetByEmployeeAndWindow(_ context.Context, filter *domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}

	var out []*domain.Appointment
	for _, a := range f.appointments {
		if filter.ExcludeID != nil && a.ID == *filter.ExcludeID {
			continue
		}
		if filter.StartsFrom != nil && a.StartsAt.Before(*filter.StartsFrom) {
			continue
		}
		if filter.StartsBefore != nil && !a.StartsAt.Before(*filter.StartsBefore) {
			continue
		}
		matched := false
		for _, s := range filter.Statuses {
			if a.Status == s {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func fullTimeEmployee() *staffservice.Employee {
	day := &staffservice.DayInterval{Start: "09:00", End: "18:00"}
	return &staffservice.Employee{
		ID:       1,
		Name:     "Карлос",
		IsActive: true,
		WeeklySchedule: staffservice.WeeklySchedule{
			Monday:    day,
			Tuesday:   day,
			Wednesday: day,
			Thursday:  day,
			Friday:    day,
			Saturday:  day,
		},
	}
}

func activeAppointment(id int64, startsAt time.Time, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		EmployeeID:      1,
		ClientID:        100,
		ServiceName:     "Стрижка",
		StartsAt:        startsAt,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

// Понедельник 2026-09-07, рабочий день для fullTimeEmployee.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newTestDetector(repo *fakeAppointmentRepo, staff *fakeStaffClient) *Detector {
	return NewDetector(repo, staff, nopLogger{})
}

func TestDetector_Check_FreeSlot(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	detector := newTestDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()})

	err := detector.Check(context.Background(), Slot{
		EmployeeID:      1,
		StartsAt:        at(10, 0),
		DurationMinutes: 60,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, at(8, 0), *repo.lastFilter.StartsFrom)
	assert.Equal(t, at(11, 0), *repo.lastFilter.StartsBefore)
	assert.Equal(t, domain.ActiveStatuses, repo.lastFilter.Statuses)
}

func TestDetector_Check_EmployeeNotFound(t *testing.T) {
	detector := newTestDetector(&fakeAppointmentRepo{}, &fakeStaffClient{err: staffservice.ErrEmployeeNotFound})

	err := detector.Check(context.Background(), Slot{EmployeeID: 42, StartsAt: at(10, 0), DurationMinutes: 30})

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDetector_Check_DayOff(t *testing.T) {
	detector := newTestDetector(&fakeAppointmentRepo{}, &fakeStaffClient{employee: fullTimeEmployee()})

	sunday := monday.AddDate(0, 0, -1)
	err := detector.Check(context.Background(), Slot{
		EmployeeID:      1,
		StartsAt:        sunday.Add(12 * time.Hour),
		DurationMinutes: 30,
	})

	assert.ErrorIs(t, err, ErrDayOff)
}

func TestDetector_Check_OutsideWorkingHours(t *testing.T) {
	detector := newTestDetector(&fakeAppointmentRepo{}, &fakeStaffClient{employee: fullTimeEmployee()})

	tests := []struct {
		name            string
		startsAt        time.Time
		durationMinutes int
	}{
		{"before shift", at(8, 0), 30},
		{"crosses shift start", at(8, 45), 30},
		{"after shift", at(18, 30), 30},
		{"crosses shift end", at(17, 45), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := detector.Check(context.Background(), Slot{
				EmployeeID:      1,
				StartsAt:        tt.startsAt,
				DurationMinutes: tt.durationMinutes,
			})

			require.ErrorIs(t, err, ErrOutsideWorkingHours)

			var outside *OutsideWorkingHoursError
			require.ErrorAs(t, err, &outside)
			assert.Equal(t, "09:00", outside.Start.String())
			assert.Equal(t, "18:00", outside.End.String())
		})
	}
}

func TestDetector_Check_ShiftBoundariesInclusive(t *testing.T) {
	detector := newTestDetector(&fakeAppointmentRepo{}, &fakeStaffClient{employee: fullTimeEmployee()})

	// Начало ровно в открытие и окончание ровно в закрытие допустимы.
	require.NoError(t, detector.Check(context.Background(), Slot{
		EmployeeID: 1, StartsAt: at(9, 0), DurationMinutes: 30,
	}))
	require.NoError(t, detector.Check(context.Background(), Slot{
		EmployeeID: 1, StartsAt: at(17, 30), DurationMinutes: 30,
	}))
}

func TestDetector_Check_BlockedByRecentlyStarted(t *testing.T) {
	// Кандидат 14:00-15:00. Запись, начавшаяся в пределах двух часов до 14:00,
	// блокирует слот независимо от своей длительности.
	tests := []struct {
		name          string
		existingStart time.Time
		wantErr       error
	}{
		{"started 2h before, boundary of lookback", at(12, 0), ErrSlotTaken},
		{"started 90m before", at(12, 30), ErrSlotTaken},
		{"started 1m before", at(13, 59), ErrSlotTaken},
		{"started exactly at candidate start", at(14, 0), ErrSlotTaken},
		{"starts inside candidate window", at(14, 30), ErrSlotTaken},
		{"starts at candidate end", at(15, 0), nil},
		{"started just before lookback window", at(11, 59), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{
				appointments: []*domain.Appointment{activeAppointment(7, tt.existingStart, 30)},
			}
			detector := newTestDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()})

			err := detector.Check(context.Background(), Slot{
				EmployeeID:      1,
				StartsAt:        at(14, 0),
				DurationMinutes: 60,
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDetector_Check_IgnoresExistingDuration(t *testing.T) {
	// Длительность существующей записи не учитывается: получасовая запись в
	// 12:30 уже закончилась к 14:00, но всё равно блокирует слот, а
	// трёхчасовая запись в 11:30 ещё идёт, но слот не блокирует.
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{activeAppointment(7, at(12, 30), 30)},
	}
	detector := newTestDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()})

	err := detector.Check(context.Background(), Slot{EmployeeID: 1, StartsAt: at(14, 0), DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrSlotTaken)

	repo.appointments = []*domain.Appointment{activeAppointment(8, at(11, 30), 180)}
	err = detector.Check(context.Background(), Slot{EmployeeID: 1, StartsAt: at(14, 0), DurationMinutes: 60})
	assert.NoError(t, err)
}

func TestDetector_Check_InactiveStatusesDoNotBlock(t *testing.T) {
	cancelled := activeAppointment(7, at(13, 30), 30)
	cancelled.Status = domain.StatusCancelled
	completed := activeAppointment(8, at(14, 15), 30)
	completed.Status = domain.StatusCompleted

	repo := &fakeAppointmentRepo{appointments: []*domain.Appointment{cancelled, completed}}
	detector := newTestDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()})

	err := detector.Check(context.Background(), Slot{EmployeeID: 1, StartsAt: at(14, 0), DurationMinutes: 60})

	assert.NoError(t, err)
}

func TestDetector_Check_ExcludesOwnAppointment(t *testing.T) {
	// При переносе запись не должна конфликтовать сама с собой.
	repo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{activeAppointment(7, at(14, 0), 60)},
	}
	detector := newTestDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()})

	err := detector.Check(context.Background(), Slot{
		EmployeeID:      1,
		StartsAt:        at(14, 0),
		DurationMinutes: 60,
		ExcludeID:       ptr.Ptr(int64(7)),
	})

	assert.NoError(t, err)
}

func TestReason(t *testing.T) {
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, "Мастер не найден или неактивен", Reason(ErrEmployeeNotFound))
	assert.Equal(t, "У мастера выходной в этот день", Reason(ErrDayOff))
	assert.Equal(t, "Время уже занято другой записью", Reason(ErrSlotTaken))
	assert.Equal(t,
		"Время вне рабочих часов мастера (09:00-18:00)",
		Reason(&OutsideWorkingHoursError{Start: "09:00", End: "18:00"}))
}
