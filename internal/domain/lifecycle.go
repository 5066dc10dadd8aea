package domain

import (
	"errors"
	"strings"
)

var (
	// ErrCompletedImmutable возвращается при любой попытке изменить или удалить
	// завершённую запись
	ErrCompletedImmutable = errors.New("domain: cannot modify a completed appointment")

	// ErrCancelledReactivationOnly возвращается при попытке перевести отменённую
	// запись в статус, отличный от pending
	ErrCancelledReactivationOnly = errors.New("domain: a cancelled appointment may only be reactivated to pending")

	// ErrCancellationReasonRequired возвращается при отмене без указания причины
	ErrCancellationReasonRequired = errors.New("domain: cancellation reason is required")

	// ErrInvalidStatus возвращается при неизвестном статусе записи
	ErrInvalidStatus = errors.New("domain: invalid appointment status")

	// ErrInvalidWorkInterval возвращается при некорректном рабочем интервале
	ErrInvalidWorkInterval = errors.New("domain: invalid work interval")
)

// ParseStatus конвертирует строку в AppointmentStatus с валидацией
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// ValidateTransition проверяет допустимость перевода записи в новый статус.
//
// Правила жизненного цикла:
//   - completed — терминальный статус, из него выхода нет;
//   - из cancelled можно перейти только в pending (реактивация);
//   - переход в cancelled требует непустой причины отмены;
//   - pending <-> confirmed без ограничений.
func ValidateTransition(a *Appointment, newStatus AppointmentStatus, reason *string) error {
	if _, err := ParseStatus(string(newStatus)); err != nil {
		return err
	}

	if a.Status == StatusCompleted {
		return ErrCompletedImmutable
	}

	if a.Status == StatusCancelled && newStatus != StatusPending {
		return ErrCancelledReactivationOnly
	}

	if newStatus == StatusCancelled {
		if reason == nil || strings.TrimSpace(*reason) == "" {
			return ErrCancellationReasonRequired
		}
	}

	return nil
}

// ValidateDelete проверяет, что запись можно физически удалить.
// Завершённые записи удалять нельзя: по ним формируются продажи.
func ValidateDelete(a *Appointment) error {
	if a.Status == StatusCompleted {
		return ErrCompletedImmutable
	}
	return nil
}
