package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	appointmentRepo "github.com/Juand2602/barberia-scheduling-service/internal/infra/storage/appointment"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/salesservice"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"
	"github.com/Juand2602/barberia-scheduling-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type memoryRepo struct {
	appointments map[int64]*domain.Appointment
}

func newMemoryRepo(appointments ...*domain.Appointment) *memoryRepo {
	repo := &memoryRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, a := range appointments {
		copied := *a
		repo.appointments[a.ID] = &copied
	}
	return repo
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memoryRepo) GetByEmployeeAndWindow(_ context.Context, filter *domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.EmployeeID != filter.EmployeeID {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepo) GetByClient(_ context.Context, filter *domain.ClientAppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memoryRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *memoryRepo) Cancel(_ context.Context, id int64, reason string) error {
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	now := time.Now()
	a.Status = domain.StatusCancelled
	a.CancellationReason = &reason
	a.CancelledAt = &now
	return nil
}

func (r *memoryRepo) Reactivate(_ context.Context, id int64) error {
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusPending
	a.CancellationReason = nil
	a.CancelledAt = nil
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

type fakeDetector struct {
	err      error
	lastSlot scheduling.Slot
}

func (f *fakeDetector) Check(_ context.Context, slot scheduling.Slot) error {
	f.lastSlot = slot
	return f.err
}

type fakeSalesClient struct {
	transaction *salesservice.Transaction
	err         error
	lastReq     *salesservice.TransactionRequest
}

func (f *fakeSalesClient) CreateTransaction(_ context.Context, req *salesservice.TransactionRequest) (*salesservice.Transaction, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.transaction, nil
}

type inlineTxManager struct{}

func (inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Понедельник 2026-09-07.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func appointmentWithStatus(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		EmployeeID:      1,
		ClientID:        100,
		ServiceName:     "Стрижка",
		StartsAt:        monday.Add(14 * time.Hour),
		DurationMinutes: 60,
		Status:          status,
		Origin:          domain.OriginManual,
	}
}

func newTestService(repo *memoryRepo, detector *fakeDetector, sales *fakeSalesClient) *Service {
	if detector == nil {
		detector = &fakeDetector{}
	}
	if sales == nil {
		sales = &fakeSalesClient{}
	}
	svc := NewService(repo, detector, sales, inlineTxManager{}, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: monday.Add(8 * time.Hour)}
	return svc
}

func TestService_GetByID(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusConfirmed))
	svc := newTestService(repo, nil, nil)

	resp, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-07", resp.Date)
	assert.Equal(t, "14:00", resp.StartTime)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil, nil)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_ChangeStatus_Lifecycle(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		reason  *string
		wantErr error
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed", nil, nil},
		{"confirmed to pending", domain.StatusConfirmed, "pending", nil, nil},
		{"confirmed to completed", domain.StatusConfirmed, "completed", nil, nil},
		{"completed is terminal", domain.StatusCompleted, "confirmed", nil, ErrInvalidTransition},
		{"completed cannot be cancelled", domain.StatusCompleted, "cancelled", ptr.Ptr("клиент не пришёл"), ErrInvalidTransition},
		{"cancelled to confirmed forbidden", domain.StatusCancelled, "confirmed", nil, ErrInvalidTransition},
		{"cancel requires reason", domain.StatusConfirmed, "cancelled", nil, ErrReasonRequired},
		{"cancel with blank reason", domain.StatusConfirmed, "cancelled", ptr.Ptr("   "), ErrReasonRequired},
		{"cancel with reason", domain.StatusConfirmed, "cancelled", ptr.Ptr("клиент заболел"), nil},
		{"unknown status", domain.StatusPending, "archived", nil, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemoryRepo(appointmentWithStatus(1, tt.from))
			svc := newTestService(repo, nil, nil)

			err := svc.ChangeStatus(context.Background(), 1, &models.ChangeStatusRequest{
				Status: tt.to,
				Reason: tt.reason,
			})

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, domain.AppointmentStatus(tt.to), repo.appointments[1].Status)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, repo.appointments[1].Status)
			}
		})
	}
}

func TestService_ChangeStatus_ReactivationChecksSlot(t *testing.T) {
	cancelled := appointmentWithStatus(1, domain.StatusCancelled)
	cancelled.CancellationReason = ptr.Ptr("клиент заболел")

	repo := newMemoryRepo(cancelled)
	detector := &fakeDetector{}
	svc := newTestService(repo, detector, nil)

	err := svc.ChangeStatus(context.Background(), 1, &models.ChangeStatusRequest{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, repo.appointments[1].Status)
	assert.Nil(t, repo.appointments[1].CancellationReason)
	assert.Nil(t, repo.appointments[1].CancelledAt)

	// Слот перепроверяется, исключая саму запись
	require.NotNil(t, detector.lastSlot.ExcludeID)
	assert.Equal(t, int64(1), *detector.lastSlot.ExcludeID)
	assert.Equal(t, cancelled.StartsAt, detector.lastSlot.StartsAt)
}

func TestService_ChangeStatus_ReactivationSlotTaken(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusCancelled))
	detector := &fakeDetector{err: scheduling.ErrSlotTaken}
	svc := newTestService(repo, detector, nil)

	err := svc.ChangeStatus(context.Background(), 1, &models.ChangeStatusRequest{Status: "pending"})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
}

func TestService_ChangeStatus_ReactivationInPast(t *testing.T) {
	cancelled := appointmentWithStatus(1, domain.StatusCancelled)
	cancelled.StartsAt = monday.Add(-24 * time.Hour)

	repo := newMemoryRepo(cancelled)
	svc := newTestService(repo, nil, nil)

	err := svc.ChangeStatus(context.Background(), 1, &models.ChangeStatusRequest{Status: "pending"})

	assert.ErrorIs(t, err, ErrPastStartTime)
}

func TestService_Cancel(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusConfirmed))
	svc := newTestService(repo, nil, nil)

	err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
		CancellationReason: "клиент попросил отменить",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
	require.NotNil(t, repo.appointments[1].CancellationReason)
	assert.Equal(t, "клиент попросил отменить", *repo.appointments[1].CancellationReason)
	assert.NotNil(t, repo.appointments[1].CancelledAt)
}

func TestService_Cancel_AlreadyInactive(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := newMemoryRepo(appointmentWithStatus(1, status))
			svc := newTestService(repo, nil, nil)

			err := svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{
				CancellationReason: "причина",
			})

			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestService_Delete(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusCancelled))
	svc := newTestService(repo, nil, nil)

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, repo.appointments)
}

func TestService_Delete_CompletedForbidden(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusCompleted))
	svc := newTestService(repo, nil, nil)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCannotDelete)
	assert.Len(t, repo.appointments, 1)
}

func TestService_GenerateSale(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusCompleted))
	sales := &fakeSalesClient{
		transaction: &salesservice.Transaction{ID: 77, AppointmentID: 1, Amount: 1500},
	}
	svc := newTestService(repo, nil, sales)

	resp, err := svc.GenerateSale(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.TransactionID)
	assert.Equal(t, int64(1), resp.AppointmentID)
	assert.Equal(t, float64(1500), resp.Amount)

	require.NotNil(t, sales.lastReq)
	assert.Equal(t, "Стрижка", sales.lastReq.ServiceName)
	assert.Equal(t, monday.Add(14*time.Hour), sales.lastReq.PerformedAt)
}

func TestService_GenerateSale_NotCompleted(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			repo := newMemoryRepo(appointmentWithStatus(1, status))
			svc := newTestService(repo, nil, &fakeSalesClient{})

			_, err := svc.GenerateSale(context.Background(), 1)

			assert.ErrorIs(t, err, ErrNotCompleted)
		})
	}
}

func TestService_GenerateSale_UnknownService(t *testing.T) {
	repo := newMemoryRepo(appointmentWithStatus(1, domain.StatusCompleted))
	sales := &fakeSalesClient{err: salesservice.ErrServiceUnknown}
	svc := newTestService(repo, nil, sales)

	_, err := svc.GenerateSale(context.Background(), 1)

	assert.ErrorIs(t, err, ErrServiceUnknown)
}

func TestService_GetClientAppointments_FilterByStatus(t *testing.T) {
	confirmed := appointmentWithStatus(1, domain.StatusConfirmed)
	cancelled := appointmentWithStatus(2, domain.StatusCancelled)

	repo := newMemoryRepo(confirmed, cancelled)
	svc := newTestService(repo, nil, nil)

	resp, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 100,
		Status:   ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestService_GetClientAppointments_InvalidStatus(t *testing.T) {
	svc := newTestService(newMemoryRepo(), nil, nil)

	_, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: 100,
		Status:   ptr.Ptr("archived"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
