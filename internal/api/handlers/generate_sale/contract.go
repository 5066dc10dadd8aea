package generate_sale

import (
	"context"

	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GenerateSale(ctx context.Context, id int64) (*models.SaleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
