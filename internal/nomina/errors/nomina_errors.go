package nominaerrors

import (
	"net/http"

	"sara-api/internal/shared/apperror"
)

const Entity = "Nomina"

func tagged(message string) *apperror.AppError {
	return apperror.Tagged(Entity, apperror.CodeInvalidInput, message, http.StatusBadRequest)
}

var (
	ErrNominaNotFound = apperror.ObjectNotFound(Entity)
	ErrStaffNotFound  = apperror.RecordNotFound("Nomina - Staff", nil)

	ErrMissingFields  = tagged("Faltan datos requeridos")
	ErrInvalidID      = tagged("Se recibio un id invalido al buscar la nomina")
	ErrInvalidStaffID = tagged("Se recibio un idStaff invalido al buscar la nomina segun el empleado")
	ErrInvalidPeriod  = tagged("Se recibio un año o mes invalido")
	ErrPageOutOfRange = tagged("La pagina solicitada excede los meses del año")

	ErrDocInvalidNominaID  = tagged("Se recibio un idNomina invalido al intentar crear el documento bancario")
	ErrDocInvalidAccount   = tagged("Se recibio un numero de cuenta no numerico al intentar crear el documento bancario")
	ErrInvalidDate         = apperror.Invalid("Formato de fecha de nomina invalido")
	ErrInvalidType         = apperror.Invalid("Tipo invalido para la nomina. Debe ser 'quincenal' o 'mensual'")
	ErrCountNotNumeric     = apperror.Invalid("Cantidad dada no numerica")
	ErrCountNotPositive    = apperror.Invalid("Cantidad dada debe ser mayor que 0")
	ErrPayslipsUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"La generacion de volantes de pago no esta disponible",
		http.StatusServiceUnavailable,
	)
)

// BankAccountError reports an employee whose stored account can't be read.
func BankAccountError(employee string, err error) *apperror.AppError {
	return apperror.Wrap(
		err,
		apperror.CodeDecryptionFailed,
		"Hubo un error al buscar la cuenta bancaria del empleado: "+employee,
		http.StatusInternalServerError,
	)
}
