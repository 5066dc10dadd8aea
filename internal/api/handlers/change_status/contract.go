package change_status

import (
	"context"

	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"
)

type AppointmentService interface {
	ChangeStatus(ctx context.Context, id int64, req *models.ChangeStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
