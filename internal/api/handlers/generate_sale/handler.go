package generate_sale

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Juand2602/barberia-scheduling-service/internal/api/handlers"
	"github.com/Juand2602/barberia-scheduling-service/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgNotCompleted         = "продажа формируется только по завершённой записи"
	msgServiceUnknown       = "услуга не найдена в прайсе"
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

// Handle POST /api/v1/appointments/{appointmentId}/sale
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/sale - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GenerateSale(r.Context(), appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/sale - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrNotCompleted):
			h.logger.Warn("POST /appointments/{id}/sale - Not completed: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgNotCompleted)

		case errors.Is(err, appointments.ErrServiceUnknown):
			h.logger.Warn("POST /appointments/{id}/sale - Unknown service: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgServiceUnknown)

		default:
			h.logger.Error("POST /appointments/{id}/sale - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/sale - Sale generated: appointment_id=%d, transaction_id=%d",
		appointmentID, result.TransactionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
