package check_availability

import (
	"context"

	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

type ConflictDetector interface {
	Check(ctx context.Context, slot scheduling.Slot) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
