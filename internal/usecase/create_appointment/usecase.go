package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	detector        ConflictDetector
	clientClient    ClientServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	detector ConflictDetector,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		detector:        detector,
		clientClient:    clientClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы конкурирующие запросы не заняли один и тот же слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: employee=%d, client=%d, service=%q, startsAt=%s, duration=%d",
		req.EmployeeID, req.ClientID, req.ServiceName, req.StartsAt.Format(domain.DateFormat+" "+domain.TimeFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и отсекаем запись в прошлое
	now := uc.timeProvider.Now()
	if req.StartsAt.Before(now) {
		uc.logger.Warn("CreateAppointment: start time %s is in the past", req.StartsAt)
		return nil, ErrPastStartTime
	}

	// 3. Проверяем существование клиента (HTTP вызов вне транзакции,
	// чтобы не держать блокировки на время сетевого запроса)
	exists, err := uc.clientClient.ClientExists(ctx, req.ClientID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to check client: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
		return nil, ErrClientNotFound
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем график мастера и конфликты с существующими записями
		checkErr := uc.detector.Check(txCtx, scheduling.Slot{
			EmployeeID:      req.EmployeeID,
			StartsAt:        req.StartsAt,
			DurationMinutes: req.DurationMinutes,
		})
		if checkErr != nil {
			return uc.mapDetectorError(checkErr)
		}

		// 4.2. Создаем запись в статусе ожидания подтверждения
		appointment := &domain.Appointment{
			EmployeeID:      req.EmployeeID,
			ClientID:        req.ClientID,
			ServiceName:     req.ServiceName,
			StartsAt:        req.StartsAt,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusPending,
			Origin:          req.Origin,
			Notes:           req.Notes,
		}

		created, createErr := uc.appointmentRepo.Create(txCtx, appointment)
		if createErr != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", createErr)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, createErr)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return toResponse(result), nil
}

// mapDetectorError транслирует ошибки детектора конфликтов в ошибки usecase
func (uc *UseCase) mapDetectorError(err error) error {
	switch {
	case errors.Is(err, scheduling.ErrEmployeeNotFound):
		uc.logger.Warn("CreateAppointment: employee not found")
		return ErrEmployeeNotFound
	case errors.Is(err, scheduling.ErrDayOff):
		uc.logger.Warn("CreateAppointment: employee day off")
		return ErrDayOff
	case errors.Is(err, scheduling.ErrOutsideWorkingHours):
		uc.logger.Warn("CreateAppointment: slot outside working hours: %v", err)
		return fmt.Errorf("%w: %v", ErrOutsideWorkingHours, err)
	case errors.Is(err, scheduling.ErrSlotTaken):
		uc.logger.Warn("CreateAppointment: slot is taken")
		return ErrSlotTaken
	default:
		uc.logger.Error("CreateAppointment: availability check failed: %v", err)
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
}

func toResponse(appointment *domain.Appointment) *Response {
	return &Response{
		ID:              appointment.ID,
		EmployeeID:      appointment.EmployeeID,
		ClientID:        appointment.ClientID,
		ServiceName:     appointment.ServiceName,
		StartsAt:        appointment.StartsAt,
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Origin:          appointment.Origin,
		Notes:           appointment.Notes,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
