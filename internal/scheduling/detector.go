package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/staffservice"
)

// Detector проверяет доступность слота у мастера: график работы и
// конфликты с существующими активными записями
type Detector struct {
	repo  AppointmentRepository
	staff StaffServiceClient
	log   Logger
}

// NewDetector создает новый экземпляр Detector
func NewDetector(repo AppointmentRepository, staff StaffServiceClient, log Logger) *Detector {
	return &Detector{
		repo:  repo,
		staff: staff,
		log:   log,
	}
}

// Check проверяет доступность слота. Возвращает nil, если слот свободен,
// иначе одну из ошибок пакета: ErrEmployeeNotFound, ErrDayOff,
// ErrOutsideWorkingHours (через OutsideWorkingHoursError), ErrSlotTaken.
func (d *Detector) Check(ctx context.Context, slot Slot) error {
	// 1. Получаем мастера и его график из StaffService
	employee, err := d.staff.GetEmployee(ctx, slot.EmployeeID)
	if err != nil {
		if errors.Is(err, staffservice.ErrEmployeeNotFound) {
			return ErrEmployeeNotFound
		}
		d.log.Error("Check: failed to get employee id=%d: %v", slot.EmployeeID, err)
		return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	schedule, err := employee.WeeklySchedule.ToDomain()
	if err != nil {
		d.log.Error("Check: invalid schedule for employee id=%d: %v", slot.EmployeeID, err)
		return fmt.Errorf("%w: invalid employee schedule: %v", ErrInternal, err)
	}

	// 2. Проверяем, что день рабочий
	interval := schedule.IntervalFor(slot.StartsAt.Weekday())
	if interval == nil {
		return ErrDayOff
	}

	// 3. Проверяем, что слот укладывается в рабочие часы
	startMinutes := slot.StartsAt.Hour()*60 + slot.StartsAt.Minute()
	if !interval.Contains(startMinutes, slot.DurationMinutes) {
		return &OutsideWorkingHoursError{Start: interval.Start, End: interval.End}
	}

	// 4. Ищем конфликтующие активные записи в окне просмотра
	windowStart := slot.StartsAt.Add(-time.Duration(domain.ConflictLookbackMinutes) * time.Minute)
	windowEnd := slot.EndsAt()

	existing, err := d.repo.GetByEmployeeAndWindow(ctx, &domain.EmployeeAppointmentsFilter{
		EmployeeID:   slot.EmployeeID,
		Statuses:     domain.ActiveStatuses,
		StartsFrom:   &windowStart,
		StartsBefore: &windowEnd,
		ExcludeID:    slot.ExcludeID,
	})
	if err != nil {
		d.log.Error("Check: failed to get appointments for employee id=%d: %v", slot.EmployeeID, err)
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	for _, appointment := range existing {
		if slotBlockedByExisting(appointment.StartsAt, slot.StartsAt, windowEnd) {
			d.log.Info("Check: slot %s blocked for employee id=%d by appointment id=%d",
				slot.StartsAt.Format(time.RFC3339), slot.EmployeeID, appointment.ID)
			return ErrSlotTaken
		}
	}

	return nil
}
