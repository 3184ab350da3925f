// Package validation holds the text predicates every route runs on raw
// input before it reaches storage. Query and body values arrive as text.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	numericPattern = regexp.MustCompile(`^\d*\.?\d+$`)
	datePattern    = regexp.MustCompile(`^(\d{4})-(0?[1-9]|1[0-2])-(0?[1-9]|[1-2][0-9]|3[01])$`)
	timePattern    = regexp.MustCompile(`^(?:(?:([01]?\d|2[0-3]):)([0-5]?\d):)([0-5]?\d)$`)
	phonePattern   = regexp.MustCompile(`^(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)
	cedulaPattern  = regexp.MustCompile(`^(\d{11}|\d{3}-\d{7}-\d{1})$`)

	daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	emailValidator = validator.New()
)

var ErrInvalidBool = errors.New("invalid string given: failed boolean conversion")

func IsNumeric(input string) bool {
	return numericPattern.MatchString(strings.TrimSpace(input))
}

// ValidateDate accepts YYYY-MM-DD (single-digit month/day allowed) and
// rejects days that do not exist in that month, leap years included.
func ValidateDate(date string) bool {
	_, ok := NormalizeDate(date)
	return ok
}

// NormalizeDate validates date and returns it zero padded, so stored dates
// keep sorting lexicographically in calendar order.
func NormalizeDate(date string) (string, bool) {
	m := datePattern.FindStringSubmatch(date)
	if m == nil {
		return "", false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	limit := daysInMonth[month-1]
	if month == 2 && isLeapYear(year) {
		limit = 29
	}
	if day > limit {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// ValidateTime checks HH:mm:ss.
func ValidateTime(t string) bool {
	return timePattern.MatchString(t)
}

func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func ValidateEmail(email string) bool {
	return emailValidator.Var(email, "required,email") == nil
}

func ValidateCedula(cedula string) bool {
	return cedulaPattern.MatchString(cedula)
}

func FormatCedula(cedula string) string {
	return strings.ReplaceAll(cedula, "-", "")
}

func IsBoolean(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

func ToBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, ErrInvalidBool
}

// IsYearOrMonth is the loose numeric check used for year and month filters.
func IsYearOrMonth(s string) bool {
	return IsNumeric(s) && !strings.Contains(s, ".")
}
