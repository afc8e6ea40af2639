// Package watering содержит чистые функции расчёта состояния полива растения
// по дате последнего полива и частоте полива в днях.
package watering

import (
	"fmt"
	"time"
)

// Границы индикатора прогресса: снизу индикатор никогда не пропадает
// полностью, сверху добивается до единицы чуть раньше, чтобы округление
// не держало его вечно около 100%.
const (
	progressFloor   = 0.02
	progressCeiling = 0.95
)

// daysSince считает полные дни между датой полива и текущим моментом.
func daysSince(lastWatered, now time.Time) int {
	return int(now.Sub(lastWatered).Hours() / 24)
}

// Progress возвращает долю оставшегося запаса влаги в диапазоне [0.02, 1.0].
//
// 1 - дни/частота; значения не выше 0.02 прижимаются к полу,
// значения не ниже 0.95 — к единице.
func Progress(lastWatered time.Time, frequency int, now time.Time) float64 {
	progress := 1.0 - float64(daysSince(lastWatered, now))/float64(frequency)

	if progress <= progressFloor {
		return progressFloor
	}
	if progress >= progressCeiling {
		return 1.0
	}
	return progress
}

// DaysUntil возвращает число дней до следующего полива.
// Ноль и отрицательные значения означают, что поливать нужно уже сейчас.
func DaysUntil(lastWatered time.Time, frequency int, now time.Time) int {
	return frequency - daysSince(lastWatered, now)
}

// Status возвращает человекочитаемое сообщение о сроке полива.
func Status(lastWatered time.Time, frequency int, now time.Time) string {
	daysUntil := DaysUntil(lastWatered, frequency, now)

	if daysUntil <= 0 {
		return "You need to water this plant now!"
	}
	if daysUntil == 1 {
		return "You need to water this plant tomorrow!"
	}
	return fmt.Sprintf("You need to water this plant in %d days", daysUntil)
}
