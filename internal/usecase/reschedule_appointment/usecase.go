package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	appointmentRepo "github.com/Juand2602/barberia-scheduling-service/internal/infra/storage/appointment"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

// UseCase use case для переноса записи на другой слот или другого мастера
type UseCase struct {
	appointmentRepo AppointmentRepository
	detector        ConflictDetector
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	detector ConflictDetector,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		detector:        detector,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса записи
// Чтение записи, проверка доступности нового слота и обновление выполняются
// в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Appointment

	// 2. Перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем запись с блокировкой строки
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Переносить можно только активные записи
		if !appointment.CanBeRescheduled() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d in status %s cannot be rescheduled",
				appointment.ID, appointment.Status)
			return ErrCannotReschedule
		}

		// 2.3. Применяем изменения поверх текущих значений
		employeeID := appointment.EmployeeID
		if req.EmployeeID != nil {
			employeeID = *req.EmployeeID
		}
		startsAt := appointment.StartsAt
		if req.StartsAt != nil {
			startsAt = *req.StartsAt
		}
		durationMinutes := appointment.DurationMinutes
		if req.DurationMinutes != nil {
			durationMinutes = *req.DurationMinutes
		}

		if startsAt.Before(now) {
			uc.logger.Warn("RescheduleAppointment: new start time %s is in the past", startsAt)
			return ErrPastStartTime
		}

		// 2.4. Проверяем новый слот, исключая саму запись из поиска конфликтов
		checkErr := uc.detector.Check(txCtx, scheduling.Slot{
			EmployeeID:      employeeID,
			StartsAt:        startsAt,
			DurationMinutes: durationMinutes,
			ExcludeID:       &appointment.ID,
		})
		if checkErr != nil {
			return uc.mapDetectorError(checkErr)
		}

		// 2.5. Обновляем слот записи
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appointment.ID, employeeID, startsAt, durationMinutes, req.Notes); err != nil {
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// 2.6. Перечитываем обновлённую запись
		updated, err := uc.appointmentRepo.GetByID(txCtx, appointment.ID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to reload appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to employee=%d, startsAt=%s",
		result.ID, result.EmployeeID, result.StartsAt.Format(domain.DateFormat+" "+domain.TimeFormat))

	return &Response{
		ID:              result.ID,
		EmployeeID:      result.EmployeeID,
		ClientID:        result.ClientID,
		ServiceName:     result.ServiceName,
		StartsAt:        result.StartsAt,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Origin:          result.Origin,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapDetectorError транслирует ошибки детектора конфликтов в ошибки usecase
func (uc *UseCase) mapDetectorError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrEmployeeNotFound):
		uc.logger.Warn("RescheduleAppointment: employee not found")
		return ErrEmployeeNotFound
	case errors.Is(err, scheduling.ErrDayOff):
		uc.logger.Warn("RescheduleAppointment: employee day off")
		return ErrDayOff
	case errors.Is(err, scheduling.ErrOutsideWorkingHours):
		uc.logger.Warn("RescheduleAppointment: slot outside working hours: %v", err)
		return fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	case errors.Is(err, scheduling.ErrSlotTaken):
		uc.logger.Warn("RescheduleAppointment: slot is taken")
		return ErrSlotTaken
	default:
		uc.logger.Error("RescheduleAppointment: availability check failed: %v", err)
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
}
