package detailnominaerrors

import (
	"net/http"

	"sara-api/internal/shared/apperror"
)

const Entity = "Detail Nomina"

var (
	ErrInvalidDate        = apperror.Invalid("Formato de fecha de nomina invalido")
	ErrIDNominaNotNumeric = apperror.Invalid("Id de nomina no numerico")
	ErrIDStaffNotNumeric  = apperror.Invalid("Id de empleado no numerico")
	ErrExtraDays          = apperror.Invalid("Dias extras no numericos")
	ErrSalary             = apperror.Invalid("Salario no numerico")
	ErrSalaryNotPositive  = apperror.Invalid("El salario debe ser mayor que 0")
	ErrOvertimePay        = apperror.Invalid("Pago por horas extras no numerico")
	ErrSFS                = apperror.Invalid("SFS no numerico")
	ErrAFP                = apperror.Invalid("AFP no numerico")
	ErrLoans              = apperror.Invalid("Prestamos no numericos")
	ErrOther              = apperror.Invalid("Otros no numerico")
	ErrTotal              = apperror.Invalid("Total no numerico")

	ErrEmptyBulk = apperror.Invalid("La data debe contener al menos un registro")

	ErrInvalidNominaID = apperror.Tagged(
		Entity,
		apperror.CodeInvalidInput,
		"Se recibio un idNomina invalido al buscar los detalles de nomina",
		http.StatusBadRequest,
	)

	ErrNominaNotFound = apperror.ObjectNotFound("Nomina")
	ErrDetailNotFound = apperror.ObjectNotFound(Entity)
)
