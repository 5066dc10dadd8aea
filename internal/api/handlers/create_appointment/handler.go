package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Juand2602/barberia-scheduling-service/internal/api/handlers"
	createAppointment "github.com/Juand2602/barberia-scheduling-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateTime     = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgEmployeeNotFound    = "мастер не найден"
	msgClientNotFound      = "клиент не найден"
	msgDayOff              = "у мастера выходной в выбранный день"
	msgOutsideWorkingHours = "время вне рабочих часов мастера"
	msgSlotTaken           = "выбранное время уже занято"
	msgPastStartTime       = "нельзя создать запись в прошлом"
	msgInvalidInput        = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: employee_id=%d, client_id=%d", req.EmployeeID, req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrEmployeeNotFound):
			h.logger.Warn("POST /appointments - Employee not found: employee_id=%d", req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createAppointment.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createAppointment.ErrDayOff):
			h.logger.Warn("POST /appointments - Day off: employee_id=%d, date=%s", req.EmployeeID, req.Date)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: employee_id=%d, time=%s", req.EmployeeID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrPastStartTime):
			h.logger.Warn("POST /appointments - Past start time: employee_id=%d, date=%s", req.EmployeeID, req.Date)
			handlers.RespondBadRequest(w, msgPastStartTime)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: employee_id=%d, client_id=%d, error=%v",
				req.EmployeeID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, employee_id=%d, client_id=%d",
		result.ID, req.EmployeeID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
