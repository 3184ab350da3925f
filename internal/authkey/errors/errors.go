package errors

import (
	"net/http"

	"sara-api/internal/shared/apperror"
)

var (
	ErrMissingKey = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized",
		http.StatusUnauthorized,
	)

	ErrInvalidKey = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized",
		http.StatusUnauthorized,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Rol invalido. Debe ser 'admin', 'payroll' o 'viewer'",
		http.StatusBadRequest,
	)
)
