package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrNotAuthenticated   = errors.New("error.not_authenticated")
	ErrInvalidToken       = errors.New("error.invalid_token")
)

// StatusOf mapeia um erro de domínio para o status HTTP correspondente.
// Erros desconhecidos (falhas inesperadas do gateway) viram 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrEmailAlreadyExists):
		return 400
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrNotAuthenticated),
		errors.Is(err, ErrInvalidToken):
		return 401
	default:
		return 500
	}
}
