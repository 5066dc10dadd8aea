package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/integrations/staffservice"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memoryRepo потокобезопасный репозиторий в памяти, реализует и
// AppointmentRepository usecase, и AppointmentRepository детектора
type memoryRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments []*domain.Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1}
}

func (r *memoryRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *appointment
	stored.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, &stored)

	out := stored
	return &out, nil
}

func (r *memoryRepo) GetByEmployeeAndWindow(_ context.Context, filter *domain.EmployeeAppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ExcludeID != nil && a.ID == *filter.ExcludeID {
			continue
		}
		if filter.StartsFrom != nil && a.StartsAt.Before(*filter.StartsFrom) {
			continue
		}
		if filter.StartsBefore != nil && !a.StartsAt.Before(*filter.StartsBefore) {
			continue
		}
		if len(filter.Statuses) > 0 {
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
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

// serializedTxManager имитирует сериализуемые транзакции, выполняя функции
// строго по одной
type serializedTxManager struct {
	mu sync.Mutex
}

func (m *serializedTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeStaffClient struct {
	employee *staffservice.Employee
	err      error
}

func (f *fakeStaffClient) GetEmployee(_ context.Context, _ int64) (*staffservice.Employee, error) {
	return f.employee, f.err
}

type fakeClientService struct {
	exists bool
	err    error
}

func (f *fakeClientService) ClientExists(_ context.Context, _ int64) (bool, error) {
	return f.exists, f.err
}

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

// Понедельник 2026-09-07.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func newTestUseCase(repo *memoryRepo, clients *fakeClientService) *UseCase {
	detector := scheduling.NewDetector(repo, &fakeStaffClient{employee: fullTimeEmployee()}, nopLogger{})
	uc := NewUseCase(repo, detector, clients, &serializedTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.Add(8 * time.Hour)}
	return uc
}

func validRequest() *Request {
	return &Request{
		EmployeeID:      1,
		ClientID:        100,
		ServiceName:     "Стрижка",
		StartsAt:        monday.Add(14 * time.Hour),
		DurationMinutes: 60,
		Origin:          domain.OriginOnline,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := newMemoryRepo()
	uc := newTestUseCase(repo, &fakeClientService{exists: true})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, monday.Add(14*time.Hour), resp.StartsAt)
	assert.Equal(t, domain.OriginOnline, resp.Origin)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo(), &fakeClientService{exists: true})

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"zero employee", func(r *Request) { r.EmployeeID = 0 }, ErrInvalidInput},
		{"zero client", func(r *Request) { r.ClientID = 0 }, ErrInvalidInput},
		{"empty service name", func(r *Request) { r.ServiceName = "" }, ErrInvalidInput},
		{"duration too short", func(r *Request) { r.DurationMinutes = 3 }, ErrInvalidInput},
		{"duration too long", func(r *Request) { r.DurationMinutes = 481 }, ErrInvalidInput},
		{"unknown origin", func(r *Request) { r.Origin = "telegram" }, ErrInvalidInput},
		{"past start time", func(r *Request) { r.StartsAt = monday.Add(-24 * time.Hour) }, ErrPastStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_ClientNotFound(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo(), &fakeClientService{exists: false})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestUseCase_Execute_EmployeeNotFound(t *testing.T) {
	repo := newMemoryRepo()
	detector := scheduling.NewDetector(repo, &fakeStaffClient{err: staffservice.ErrEmployeeNotFound}, nopLogger{})
	uc := NewUseCase(repo, detector, &fakeClientService{exists: true}, &serializedTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.Add(8 * time.Hour)}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := newMemoryRepo()
	uc := newTestUseCase(repo, &fakeClientService{exists: true})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Повторная запись на тот же слот отклоняется
	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_OutsideWorkingHours(t *testing.T) {
	uc := newTestUseCase(newMemoryRepo(), &fakeClientService{exists: true})

	req := validRequest()
	req.StartsAt = monday.Add(20 * time.Hour)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestUseCase_Execute_ConcurrentSameSlot(t *testing.T) {
	// Два конкурирующих запроса на один слот: ровно один должен выиграть.
	// Проверка и вставка атомарны благодаря сериализации транзакций.
	repo := newMemoryRepo()
	uc := newTestUseCase(repo, &fakeClientService{exists: true})

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrSlotTaken)
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Len(t, repo.appointments, 1)
}
