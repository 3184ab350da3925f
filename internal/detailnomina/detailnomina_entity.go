package detailnomina

// DetailNomina is one employee's line item within a payroll run, keyed by
// (IDNomina, IDStaff). Date is a copy of the parent run's date.
type DetailNomina struct {
	IDNomina    uint          `gorm:"column:id_nomina;primaryKey;autoIncrement:false" json:"idNomina"`
	IDStaff     uint          `gorm:"column:id_staff;primaryKey;autoIncrement:false" json:"idStaff"`
	Date        string        `gorm:"size:10;not null;index" json:"date"`
	Salary      float64       `gorm:"not null" json:"salary"`
	ExtraDays   int           `gorm:"column:extra_days;not null" json:"extraDays"`
	OvertimePay float64       `gorm:"column:overtime_pay;not null" json:"overtimePay"`
	SFS         float64       `gorm:"column:sfs;not null" json:"sfs"`
	AFP         float64       `gorm:"column:afp;not null" json:"afp"`
	Loans       float64       `gorm:"not null" json:"loans"`
	Other       float64       `gorm:"not null" json:"other"`
	Total       float64       `gorm:"not null" json:"total"`
	Deleted     bool          `gorm:"not null;index" json:"deleted"`
	Staff       *StaffSummary `gorm:"foreignKey:IDStaff;references:ID" json:"staff,omitempty"`
}

func (DetailNomina) TableName() string {
	return "detail_nomina"
}

// StaffSummary is the slice of the staff table shown next to a line item.
type StaffSummary struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	LastName1 string  `gorm:"column:last_name1;size:100;not null" json:"lastName1"`
	LastName2 *string `gorm:"column:last_name2;size:100" json:"lastName2"`
	Position  string  `gorm:"size:100" json:"position"`
	Status    bool    `gorm:"not null;default:true" json:"status"`
}

func (StaffSummary) TableName() string {
	return "staff"
}
