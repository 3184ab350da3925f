package stafferrors

import (
	"net/http"

	"sara-api/internal/shared/apperror"
)

const Entity = "Staff"

var (
	ErrStaffNotFound = apperror.ObjectNotFound(Entity)

	ErrInvalidStaffID = apperror.Tagged(
		Entity,
		apperror.CodeInvalidInput,
		"Se recibio un id invalido",
		http.StatusBadRequest,
	)
	ErrCedulaAlreadyExists = apperror.Tagged(
		Entity,
		apperror.CodeConflict,
		"Ya existe un empleado con esa cedula",
		http.StatusConflict,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"El salario recibio un dato no numerico",
		http.StatusBadRequest,
	)
	ErrBankAccountUnavailable = apperror.Tagged(
		Entity,
		apperror.CodeDecryptionFailed,
		"No se pudo procesar la cuenta bancaria",
		http.StatusInternalServerError,
	)
)
