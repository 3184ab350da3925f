package staff

import (
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/validation"
)

type CreateStaffRequest struct {
	Name        string                   `json:"name" binding:"required"`
	LastName1   string                   `json:"lastName1" binding:"required"`
	LastName2   string                   `json:"lastName2"`
	Phone       string                   `json:"phone" binding:"omitempty,phone"`
	Email       string                   `json:"email" binding:"omitempty,email"`
	Position    string                   `json:"position"`
	Address     string                   `json:"address"`
	Salary      validation.NumericString `json:"salary" binding:"required,numtext"`
	DateBirth   string                   `json:"dateBirth" binding:"omitempty,ymd"`
	DateStart   string                   `json:"dateStart" binding:"omitempty,ymd"`
	Status      *bool                    `json:"status"`
	Cedula      string                   `json:"cedula" binding:"required,cedula"`
	BankAccount string                   `json:"bankAccount" binding:"required,numtext"`
	AccountType string                   `json:"accountType" binding:"required"`
	Currency    string                   `json:"currency" binding:"required"`
	BankRoute   string                   `json:"bankRoute" binding:"required"`
}

// UpdateStaffRequest is partial: nil fields are left untouched.
type UpdateStaffRequest struct {
	Name        *string                   `json:"name"`
	LastName1   *string                   `json:"lastName1"`
	LastName2   *string                   `json:"lastName2"`
	Phone       *string                   `json:"phone" binding:"omitempty,phone"`
	Email       *string                   `json:"email" binding:"omitempty,email"`
	Position    *string                   `json:"position"`
	Address     *string                   `json:"address"`
	Salary      *validation.NumericString `json:"salary" binding:"omitempty,numtext"`
	DateBirth   *string                   `json:"dateBirth" binding:"omitempty,ymd"`
	DateStart   *string                   `json:"dateStart" binding:"omitempty,ymd"`
	Status      *bool                     `json:"status"`
	BankAccount *string                   `json:"bankAccount" binding:"omitempty,numtext"`
	AccountType *string                   `json:"accountType"`
	Currency    *string                   `json:"currency"`
	BankRoute   *string                   `json:"bankRoute"`
}

type StaffResponse struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	LastName1        string  `json:"lastName1"`
	LastName2        *string `json:"lastName2"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"`
	Position         string  `json:"position"`
	Address          string  `json:"address"`
	Salary           float64 `json:"salary"`
	DateBirth        string  `json:"dateBirth"`
	DateStart        string  `json:"dateStart"`
	Status           bool    `json:"status"`
	Cedula           string  `json:"cedula"`
	BankAccountLast4 string  `json:"bankAccountLast4"`
	AccountType      string  `json:"accountType"`
	Currency         string  `json:"currency"`
	BankRoute        string  `json:"bankRoute"`
	Deleted          bool    `json:"deleted"`
}

var fieldMessages = apperror.FieldMessages{
	"phone":       "Formato de telefono invalido",
	"email":       "Formato de correo invalido",
	"salary":      "El salario recibio un dato no numerico",
	"dateBirth":   "Formato de fecha de nacimiento invalido",
	"dateStart":   "Formato de fecha de inicio invalido",
	"cedula":      "Formato de cedula invalido",
	"bankAccount": "Numero de cuenta no numerico",
}

func mapToResponse(s Staff, last4 string) StaffResponse {
	return StaffResponse{
		ID:               s.ID,
		Name:             s.Name,
		LastName1:        s.LastName1,
		LastName2:        s.LastName2,
		Phone:            s.Phone,
		Email:            s.Email,
		Position:         s.Position,
		Address:          s.Address,
		Salary:           s.Salary,
		DateBirth:        s.DateBirth,
		DateStart:        s.DateStart,
		Status:           s.Status,
		Cedula:           s.Cedula,
		BankAccountLast4: last4,
		AccountType:      s.AccountType,
		Currency:         s.Currency,
		BankRoute:        s.BankRoute,
		Deleted:          s.Deleted,
	}
}

func last4(account string) string {
	if len(account) <= 4 {
		return account
	}
	return account[len(account)-4:]
}
