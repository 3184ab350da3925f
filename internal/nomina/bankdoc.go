package nomina

import (
	"strconv"
	"strings"

	"sara-api/internal/staff"
)

// OriginAccount is the paying organization's account.
type OriginAccount struct {
	Type     string
	Currency string
	Number   string
}

// bankDocLine renders one transfer line:
//
//	type,currency,number,route,accountType,account,amount,name,cedula,<cedula>,memo
func bankDocLine(origin OriginAccount, s staff.Staff, account string, amount float64, runDate string) string {
	parts := []string{
		origin.Type,
		origin.Currency,
		origin.Number,
		s.BankRoute,
		s.AccountType,
		account,
		strconv.FormatFloat(amount, 'f', -1, 64),
		s.FullName(),
		"cedula",
		s.Cedula,
		"Pago nomina para la fecha " + runDate,
	}
	return strings.Join(parts, ",")
}
