package usecase

import "fmt"

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors agrega todos os campos inválidos de uma requisição.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validação falhou"
	}
	return e[0].Error()
}

func IsValidationError(err error) bool {
	switch err.(type) {
	case ValidationError, ValidationErrors:
		return true
	}
	return false
}
