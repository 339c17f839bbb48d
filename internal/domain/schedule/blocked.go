package schedule

import (
	"time"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/calendar"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

// overlapsBlocked testa [start, end) contra os bloqueios projetados na data.
// Intervalos meio-abertos: slot que termina exatamente quando o bloqueio
// começa não conflita. Para na primeira colisão.
func overlapsBlocked(blocks []models.BlockedTime, date, start, end time.Time) bool {
	for _, b := range blocks {
		if !blockAppliesOn(b, date) {
			continue
		}

		bs, ok1 := projectClock(date, b.StartTime)
		be, ok2 := projectClock(date, b.EndTime)
		if !ok1 || !ok2 || !bs.Before(be) {
			continue
		}

		if start.Before(be) && end.After(bs) {
			return true
		}
	}

	return false
}

// blockAppliesOn: recorrente vale todo dia; pontual só na própria data.
func blockAppliesOn(b models.BlockedTime, date time.Time) bool {
	if b.Recurring {
		return true
	}

	if b.Date == "" {
		return false
	}

	d, err := time.ParseInLocation("2006-01-02", b.Date, date.Location())
	if err != nil {
		return false
	}

	return calendar.SameDay(d, date)
}
