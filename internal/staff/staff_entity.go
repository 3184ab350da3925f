package staff

import "time"

type Staff struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	LastName1   string    `gorm:"column:last_name1;size:100;not null" json:"lastName1"`
	LastName2   *string   `gorm:"column:last_name2;size:100" json:"lastName2"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Email       string    `gorm:"size:150" json:"email"`
	Position    string    `gorm:"size:100" json:"position"`
	Address     string    `gorm:"size:255" json:"address"`
	Salary      float64   `gorm:"not null" json:"salary"`
	DateBirth   string    `gorm:"size:10" json:"dateBirth"`
	DateStart   string    `gorm:"size:10" json:"dateStart"`
	Status      bool      `gorm:"not null;default:true" json:"status"`
	Cedula      string    `gorm:"size:11;uniqueIndex;not null" json:"cedula"`
	BankAccount string    `gorm:"not null" json:"-"`
	AccountType string    `gorm:"size:10;not null" json:"accountType"`
	Currency    string    `gorm:"size:5;not null" json:"currency"`
	BankRoute   string    `gorm:"size:20;not null" json:"bankRoute"`
	Deleted     bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}

// FullName is "name lastName1[ lastName2]".
func (s Staff) FullName() string {
	name := s.Name + " " + s.LastName1
	if s.LastName2 != nil && *s.LastName2 != "" {
		name += " " + *s.LastName2
	}
	return name
}

// ShortName is "name lastName1", used in error messages.
func (s Staff) ShortName() string {
	return s.Name + " " + s.LastName1
}
