package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	appointmentRepo "github.com/Juand2602/barberia-scheduling-service/internal/infra/storage/appointment"
	salesClient "github.com/Juand2602/barberia-scheduling-service/internal/integrations/salesservice"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"
)

// Service сервис для работы с записями к мастерам
type Service struct {
	appointmentRepo AppointmentRepository
	detector        ConflictDetector
	salesClient     SalesServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	detector ConflictDetector,
	salesClient SalesServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		detector:        detector,
		salesClient:     salesClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetEmployeeAppointments получает записи мастера за период
// Опционально фильтрует по статусу
func (s *Service) GetEmployeeAppointments(ctx context.Context, req *models.GetEmployeeAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetEmployeeAppointments: fetching appointments for employee=%d", req.EmployeeID)

	filter := &domain.EmployeeAppointmentsFilter{
		EmployeeID:   req.EmployeeID,
		StartsFrom:   req.From,
		StartsBefore: req.To,
	}

	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetEmployeeAppointments: invalid status=%s for employee=%d", *req.Status, req.EmployeeID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	appointments, err := s.appointmentRepo.GetByEmployeeAndWindow(ctx, filter)
	if err != nil {
		s.logger.Error("GetEmployeeAppointments: repository error for employee=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: GetEmployeeAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEmployeeAppointments: successfully fetched %d appointments for employee=%d",
		len(appointments), req.EmployeeID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, req *models.GetClientAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%d", req.ClientID)

	filter := &domain.ClientAppointmentsFilter{
		ClientID: req.ClientID,
	}

	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetByClient(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%d",
		len(appointments), req.ClientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// ChangeStatus переводит запись в новый статус с проверкой жизненного цикла.
// Реактивация отменённой записи (cancelled -> pending) заново проверяет
// доступность слота в сериализуемой транзакции: за время, пока запись была
// отменена, слот мог занять кто-то другой.
func (s *Service) ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) error {
	s.logger.Info("ChangeStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("ChangeStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	appointment, err := s.getAppointment(ctx, "ChangeStatus", id)
	if err != nil {
		return err
	}

	if err := domain.ValidateTransition(appointment, newStatus, req.Reason); err != nil {
		s.logger.Warn("ChangeStatus: transition %s -> %s rejected for appointment id=%d: %v",
			appointment.Status, newStatus, id, err)
		return s.mapTransitionError(err)
	}

	switch {
	case newStatus == domain.StatusCancelled:
		err = s.appointmentRepo.Cancel(ctx, id, *req.Reason)
	case appointment.Status == domain.StatusCancelled && newStatus == domain.StatusPending:
		return s.reactivate(ctx, appointment)
	default:
		err = s.appointmentRepo.UpdateStatus(ctx, id, newStatus)
	}

	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("ChangeStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangeStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangeStatus: appointment id=%d moved to status=%s", id, newStatus)
	return nil
}

// reactivate возвращает отменённую запись в расписание.
// Слот перепроверяется под блокировкой, исключая саму запись.
func (s *Service) reactivate(ctx context.Context, appointment *domain.Appointment) error {
	now := s.timeProvider.Now()
	if appointment.StartsAt.Before(now) {
		s.logger.Warn("reactivate: appointment id=%d starts in the past", appointment.ID)
		return ErrPastStartTime
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		checkErr := s.detector.Check(txCtx, scheduling.Slot{
			EmployeeID:      appointment.EmployeeID,
			StartsAt:        appointment.StartsAt,
			DurationMinutes: appointment.DurationMinutes,
			ExcludeID:       &appointment.ID,
		})
		if checkErr != nil {
			if errors.Is(checkErr, scheduling.ErrSlotTaken) {
				s.logger.Warn("reactivate: slot for appointment id=%d is taken", appointment.ID)
				return ErrSlotTaken
			}
			s.logger.Error("reactivate: availability check failed for appointment id=%d: %v", appointment.ID, checkErr)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, checkErr)
		}

		if err := s.appointmentRepo.Reactivate(txCtx, appointment.ID); err != nil {
			s.logger.Error("reactivate: repository error for appointment id=%d: %v", appointment.ID, err)
			return fmt.Errorf("%w: reactivate - repository error: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("reactivate: appointment id=%d returned to schedule", appointment.ID)
	return nil
}

// Cancel отменяет запись с указанием причины
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
		return ErrCannotCancel
	}

	if err := domain.ValidateTransition(appointment, domain.StatusCancelled, &req.CancellationReason); err != nil {
		s.logger.Warn("Cancel: validation failed for appointment id=%d: %v", id, err)
		return s.mapTransitionError(err)
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// Delete физически удаляет запись
// Завершённые записи удалять нельзя: по ним формируются продажи
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if err := domain.ValidateDelete(appointment); err != nil {
		s.logger.Warn("Delete: appointment id=%d cannot be deleted, status=%s", id, appointment.Status)
		return ErrCannotDelete
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// GenerateSale формирует финансовую транзакцию по завершённой записи.
// Цену услуги определяет SalesService по её названию.
func (s *Service) GenerateSale(ctx context.Context, id int64) (*models.SaleResponse, error) {
	s.logger.Info("GenerateSale: generating sale for appointment id=%d", id)

	appointment, err := s.getAppointment(ctx, "GenerateSale", id)
	if err != nil {
		return nil, err
	}

	if !appointment.IsCompleted() {
		s.logger.Warn("GenerateSale: appointment id=%d is not completed, status=%s", id, appointment.Status)
		return nil, ErrNotCompleted
	}

	transaction, err := s.salesClient.CreateTransaction(ctx, &salesClient.TransactionRequest{
		AppointmentID: appointment.ID,
		ClientID:      appointment.ClientID,
		EmployeeID:    appointment.EmployeeID,
		ServiceName:   appointment.ServiceName,
		PerformedAt:   appointment.StartsAt,
	})
	if err != nil {
		if errors.Is(err, salesClient.ErrServiceUnknown) {
			s.logger.Warn("GenerateSale: unknown service %q for appointment id=%d", appointment.ServiceName, id)
			return nil, fmt.Errorf("%w: %q", ErrServiceUnknown, appointment.ServiceName)
		}
		s.logger.Error("GenerateSale: sales service error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GenerateSale - sales service error: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateSale: created transaction id=%d for appointment id=%d", transaction.ID, id)

	return &models.SaleResponse{
		TransactionID: transaction.ID,
		AppointmentID: appointment.ID,
		Amount:        transaction.Amount,
	}, nil
}

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appointment, nil
}

// mapTransitionError транслирует доменные ошибки жизненного цикла в ошибки сервиса
func (s *Service) mapTransitionError(err error) error {
	switch {
	case errors.Is(err, domain.ErrCompletedImmutable),
		errors.Is(err, domain.ErrCancelledReactivationOnly):
		return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	case errors.Is(err, domain.ErrCancellationReasonRequired):
		return ErrReasonRequired
	case errors.Is(err, domain.ErrInvalidStatus):
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
