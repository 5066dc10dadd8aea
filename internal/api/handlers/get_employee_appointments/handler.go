package get_employee_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Juand2602/barberia-scheduling-service/internal/api/handlers"
	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments"
	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"
)

const (
	msgInvalidEmployeeID = "некорректный ID мастера"
	msgInvalidPeriod     = "некорректный период, ожидается YYYY-MM-DD"
	msgInvalidStatus     = "некорректный статус"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/appointments?from=YYYY-MM-DD&to=YYYY-MM-DD&status=confirmed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/appointments - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	req := &models.GetEmployeeAppointmentsRequest{EmployeeID: employeeID}

	query := r.URL.Query()
	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /employees/{id}/appointments - Invalid from=%s: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		req.From = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			h.logger.Warn("GET /employees/{id}/appointments - Invalid to=%s: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		// Конец периода не включается, сдвигаем на следующий день
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetEmployeeAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /employees/{id}/appointments - Invalid status: employee_id=%d", employeeID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /employees/{id}/appointments - Failed: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/appointments - Fetched %d appointments: employee_id=%d",
		len(result.Appointments), employeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
