package schedule

import (
	"context"
	"time"
)

// Window é a janela de funcionamento de um dia, já projetada na data
// consultada (mesmo fuso da data).
type Window struct {
	Open  time.Time
	Close time.Time
}

// WindowFor resolve a janela de funcionamento da data. Retorna nil quando
// o salão está fechado: sem regra para o dia da semana, regra marcada como
// fechada, horários vazios ou invertidos. Erro de leitura também vira
// fechado — ausência de configuração nunca é erro para quem consulta.
func (e *Engine) WindowFor(ctx context.Context, salonID uint, date time.Time) *Window {
	rule, err := e.reader.GetBusinessHoursForDay(ctx, salonID, int(date.Weekday()))
	if err != nil || rule == nil {
		return nil
	}

	if rule.Closed || rule.OpenTime == "" || rule.CloseTime == "" {
		return nil
	}

	open, ok1 := projectClock(date, rule.OpenTime)
	close, ok2 := projectClock(date, rule.CloseTime)
	if !ok1 || !ok2 || !open.Before(close) {
		return nil
	}

	return &Window{Open: open, Close: close}
}

func (e *Engine) IsDayOpen(ctx context.Context, salonID uint, date time.Time) bool {
	return e.WindowFor(ctx, salonID, date) != nil
}

// projectClock projeta um horário "HH:MM" sobre a data consultada,
// preservando o fuso da data.
func projectClock(date time.Time, hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}
