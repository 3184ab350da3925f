package apperror

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgInvalidText         = "22P02"
	pgInvalidDatetime     = "22007"
	pgDatetimeOverflow    = "22008"
	pgUndefinedColumn     = "42703"
	pgConnectionClass     = "08"
)

// Classify translates a storage-layer error into one of the domain errors,
// tagged with the entity the operation was working on. AppErrors pass through.
func Classify(entity string, err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgForeignKeyViolation:
			return BadID(entity, err)
		case pgErr.Code == pgUniqueViolation:
			return Duplicate(entity, err)
		case pgErr.Code == pgNotNullViolation,
			pgErr.Code == pgInvalidText,
			pgErr.Code == pgInvalidDatetime,
			pgErr.Code == pgDatetimeOverflow,
			pgErr.Code == pgUndefinedColumn:
			return BadData(entity, err)
		case strings.HasPrefix(pgErr.Code, pgConnectionClass):
			return CantConnect(entity, err)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return BadID(entity, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Duplicate(entity, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return RecordNotFound(entity, err)
	case errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrInvalidField),
		errors.Is(err, gorm.ErrInvalidValue),
		errors.Is(err, gorm.ErrInvalidValueOfLength),
		errors.Is(err, gorm.ErrPrimaryKeyRequired),
		errors.Is(err, gorm.ErrModelValueRequired):
		return BadData(entity, err)
	}

	if isConnectionError(err) {
		return CantConnect(entity, err)
	}

	return &AppError{
		Code:       CodeInternalError,
		Message:    "Ocurrió un error en una operacion de: [" + entity + "]",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func isConnectionError(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func BadID(entity string, err error) *AppError {
	return tagged(entity, CodeBadID, "Se recibio un Id invalido en la data", http.StatusBadRequest, err)
}

func BadData(entity string, err error) *AppError {
	return tagged(entity, CodeBadData, "Se recibio data erronea. Verifique el id del objeto.", http.StatusBadRequest, err)
}

func RecordNotFound(entity string, err error) *AppError {
	return tagged(entity, CodeMissingDependency, "Una operación falló porque depende de uno o más registros que se requirieron pero no se encontraron.", http.StatusInternalServerError, err)
}

func CantConnect(entity string, err error) *AppError {
	return tagged(entity, CodeServiceUnavailable, "Ocurrio un error al conectarse con la base de datos. Verifique su conexión.", http.StatusInternalServerError, err)
}

func Duplicate(entity string, err error) *AppError {
	return tagged(entity, CodeConflict, "Ya existe un registro con los mismos datos", http.StatusConflict, err)
}

func tagged(entity, code, message string, status int, err error) *AppError {
	e := Tagged(entity, code, message, status)
	e.Err = err
	return e
}
