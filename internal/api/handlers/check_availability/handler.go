package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Juand2602/barberia-scheduling-service/internal/api/handlers"
	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
	"github.com/Juand2602/barberia-scheduling-service/internal/scheduling"
)

const (
	msgInvalidEmployeeID = "некорректный ID мастера"
	msgInvalidDateTime   = "некорректные параметры date и time, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidDuration   = "некорректная длительность"
	msgInvalidExcludeID  = "некорректный excludeAppointmentId"
)

type Handler struct {
	detector ConflictDetector
	logger   Logger
}

func NewHandler(detector ConflictDetector, logger Logger) *Handler {
	return &Handler{
		detector: detector,
		logger:   logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/availability?date=YYYY-MM-DD&time=HH:MM&durationMinutes=60
// Опциональный excludeAppointmentId исключает запись из поиска конфликтов
// (используется при подборе слота для переноса).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /employees/{id}/availability - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	query := r.URL.Query()

	startsAt, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat,
		query.Get("date")+" "+query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /employees/{id}/availability - Invalid date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil || durationMinutes < domain.MinDurationMinutes || durationMinutes > domain.MaxDurationMinutes {
		h.logger.Warn("GET /employees/{id}/availability - Invalid duration: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	slot := scheduling.Slot{
		EmployeeID:      employeeID,
		StartsAt:        startsAt,
		DurationMinutes: durationMinutes,
	}

	if excludeStr := query.Get("excludeAppointmentId"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /employees/{id}/availability - Invalid exclude ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		slot.ExcludeID = &excludeID
	}

	checkErr := h.detector.Check(r.Context(), slot)
	if checkErr != nil && errors.Is(checkErr, scheduling.ErrInternal) {
		h.logger.Error("GET /employees/{id}/availability - Check failed: employee_id=%d, error=%v",
			employeeID, checkErr)
		handlers.RespondInternalError(w)
		return
	}

	response := AvailabilityResponse{
		Available: checkErr == nil,
		Reason:    scheduling.Reason(checkErr),
	}

	h.logger.Info("GET /employees/{id}/availability - employee_id=%d, available=%t",
		employeeID, response.Available)
	handlers.RespondJSON(w, http.StatusOK, response)
}
