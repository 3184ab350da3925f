package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"No tiene permisos para acceder a este recurso",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Ocurrió un error inesperado",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Unauthorized",
		http.StatusUnauthorized,
	)

	ErrMissingFields = New(
		CodeInvalidInput,
		"Faltan datos requeridos",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		CodeRateLimited,
		"Demasiadas solicitudes, intente de nuevo más tarde",
		http.StatusTooManyRequests,
	)
)

func Invalid(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" es requerido", http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" invalido", http.StatusBadRequest)
}

func ObjectNotFound(entity string) *AppError {
	return Tagged(entity, CodeNotFound, "No se encontro el objeto solicitado", http.StatusNotFound)
}

func ModelNotFound(model string) *AppError {
	return New(CodeNotFound, "Modelo "+model+" no encontrado", http.StatusNotFound)
}
