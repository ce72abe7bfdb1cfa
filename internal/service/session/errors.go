package session

import (
	"errors"
	"fmt"
)

var (
	ErrNoLocationSelected = errors.New("no location selected")
	ErrLocationNotFound   = errors.New("location not found")
	ErrDealerNotFound     = errors.New("dealer not found")
	ErrLocationHasDealers = errors.New("location has dealers")
	ErrNoResults          = errors.New("nothing calculated yet")
	ErrBusy               = errors.New("another operation is in progress")
)

// ValidationError - неверный ввод пользователя; Message показывается как есть.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// Message - текст ошибки для пользователя.
func Message(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrNoLocationSelected):
		return "Моля, първо избери обект!"
	case errors.Is(err, ErrLocationNotFound):
		return "Обектът не е намерен!"
	case errors.Is(err, ErrDealerNotFound):
		return "Дилърът не е намерен!"
	case errors.Is(err, ErrLocationHasDealers):
		return "Обектът има дилъри. Изтриването ще премахне и дилърите."
	case errors.Is(err, ErrNoResults):
		return "Първо изчисли заплатите!"
	case errors.Is(err, ErrBusy):
		return "Изчакай да приключи текущата операция."
	}
	return "Възникна грешка."
}
