package change_status

import "github.com/Juand2602/barberia-scheduling-service/internal/service/appointments/models"

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ChangeStatusRequest) ToServiceRequest() *models.ChangeStatusRequest {
	return &models.ChangeStatusRequest{
		Status: r.Status,
		Reason: r.Reason,
	}
}
