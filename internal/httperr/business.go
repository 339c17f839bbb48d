package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por código
// estável ("time_conflict", "invalid_state", "too_soon"...). Usecases o
// devolvem sem status HTTP; o handler decide o status na borda.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
