package nomina

import (
	"sara-api/internal/detailnomina"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/validation"
)

type CreateNominaRequest struct {
	Date string `json:"date" binding:"required,ymd"`
	Type string `json:"type" binding:"required,nominatype"`
}

type UpdateNominaRequest struct {
	Date string `json:"date" binding:"omitempty,ymd"`
	Type string `json:"type" binding:"omitempty,nominatype"`
}

var fieldMessages = apperror.FieldMessages{
	"date": "Formato de fecha de nomina invalido",
	"type": "Tipo invalido para la nomina. Debe ser 'quincenal' o 'mensual'",
}

// Summary is a run without its line items.
type Summary struct {
	ID     uint   `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Totals Totals `json:"totals"`
}

type MonthlyTotals struct {
	Month  string `json:"month"`
	Totals Totals `json:"totals"`
}

type StaffNominas struct {
	Nominas []detailnomina.DetailNomina `json:"nominas"`
	Totals  Totals                      `json:"totals"`
}

type BankDocRequest struct {
	NominaID        validation.NumericString `json:"nominaId"`
	AccountType     string                   `json:"accountType"`
	AccountCurrency string                   `json:"accountCurrency"`
	AccountNumber   validation.NumericString `json:"accountNumber"`
}

type BankDoc struct {
	Document string `json:"document"`
	Date     string `json:"date"`
}

type RecentTotal struct {
	Year  string  `json:"year"`
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type PayslipRequestResponse struct {
	NominaID uint   `json:"nominaId"`
	EventID  string `json:"eventId"`
	Message  string `json:"message"`
}

func toSummary(n Nomina, t Totals) Summary {
	return Summary{ID: n.ID, Date: n.Date, Type: n.Type, Totals: t}
}
