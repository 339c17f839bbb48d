package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23P01 = exclusion_violation (constraint appointments_no_double_booking)
const pgExclusionViolation = "23P01"

// IsExclusionConflict detecta a violação da constraint de exclusão do
// Postgres — dois agendamentos concorrentes passaram pela checagem de
// leitura e só o banco barrou o segundo.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}
