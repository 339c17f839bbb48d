// Package timezone resolve o fuso oficial de cada salão. Toda a agenda
// (janela do dia, antecedência mínima, carimbos de status) é calculada no
// fuso do salão, nunca no do servidor ou no do cliente.
package timezone

import "time"

// Fuso assumido quando o salão ainda não configurou o próprio.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
