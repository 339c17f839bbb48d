package calendar

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formata minutos no padrão exibido pelo app:
// 45 → "45 min", 60 → "1h", 90 → "1h 30m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}

	h := minutes / 60
	m := minutes % 60

	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// FormatPrice formata valor inteiro em reais, sem centavos: 1250 → "R$ 1.250".
func FormatPrice(value int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	digits := fmt.Sprintf("%d", value)

	// separador de milhar pt-BR
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + "R$ " + strings.Join(groups, ".")
}

// SameDay compara se dois instantes caem no mesmo dia de calendário
// (cada um no seu próprio fuso).
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
