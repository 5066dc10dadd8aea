package scheduling

import (
	"time"

	"github.com/Juand2602/barberia-scheduling-service/internal/domain"
)

// slotBlockedByExisting решает, блокирует ли существующая активная запись
// кандидата. Решение принимается только по времени НАЧАЛА существующей записи,
// её длительность не учитывается:
//
//   - запись блокирует слот, если началась в пределах ConflictLookbackMinutes
//     минут до начала кандидата (предполагается, что она ещё идёт);
//   - запись блокирует слот, если начинается внутри интервала кандидата.
//
// Длинная запись, начавшаяся раньше окна просмотра, слот не блокирует, а
// короткая, начавшаяся внутри окна, блокирует, даже если уже закончилась.
// Правило менять только целиком, вместе с тестами на его таблицу истинности.
func slotBlockedByExisting(existingStart, candidateStart, candidateEnd time.Time) bool {
	lookbackStart := candidateStart.Add(-time.Duration(domain.ConflictLookbackMinutes) * time.Minute)

	startedRecently := !existingStart.Before(lookbackStart) && existingStart.Before(candidateStart)
	startsInside := !existingStart.Before(candidateStart) && existingStart.Before(candidateEnd)

	return startedRecently || startsInside
}
