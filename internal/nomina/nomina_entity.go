package nomina

import "sara-api/internal/detailnomina"

// Nomina is one payroll run. Date is stored as YYYY-MM-DD text so range
// filters compare lexicographically.
type Nomina struct {
	ID      uint                        `gorm:"primaryKey" json:"id"`
	Date    string                      `gorm:"size:10;not null;index" json:"date"`
	Type    string                      `gorm:"size:10;not null" json:"type"`
	Deleted bool                        `gorm:"not null;default:false;index" json:"deleted"`
	Details []detailnomina.DetailNomina `gorm:"foreignKey:IDNomina;references:ID" json:"DetailNomina,omitempty"`
}

func (Nomina) TableName() string {
	return "nomina"
}

// Totals is the sum of the money fields over a set of line items.
type Totals struct {
	Salary      float64 `gorm:"column:salary" json:"salary"`
	OvertimePay float64 `gorm:"column:overtime_pay" json:"overtimePay"`
	SFS         float64 `gorm:"column:sfs" json:"sfs"`
	AFP         float64 `gorm:"column:afp" json:"afp"`
	Loans       float64 `gorm:"column:loans" json:"loans"`
	Other       float64 `gorm:"column:other" json:"other"`
	Total       float64 `gorm:"column:total" json:"total"`
}
