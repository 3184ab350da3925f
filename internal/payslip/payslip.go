// Package payslip renders one employee's line item of a payroll run as a PDF.
package payslip

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

type Payslip struct {
	NominaID   uint
	NominaDate string
	NominaType string

	StaffID   uint
	FullName  string
	Cedula    string
	Position  string
	Currency  string
	ExtraDays int

	Salary      float64
	OvertimePay float64
	SFS         float64
	AFP         float64
	Loans       float64
	Other       float64
	Total       float64
}

type Renderer struct {
	Title string
}

func NewRenderer(title string) *Renderer {
	if title == "" {
		title = "Comprobante de pago"
	}
	return &Renderer{Title: title}
}

func (r *Renderer) Render(p Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(r.Title))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	header := [][2]string{
		{"Empleado", p.FullName},
		{"Cedula", p.Cedula},
		{"Posicion", p.Position},
		{"Nomina", fmt.Sprintf("#%d %s (%s)", p.NominaID, p.NominaDate, p.NominaType)},
		{"Dias extras", strconv.Itoa(p.ExtraDays)},
	}
	for _, row := range header {
		pdf.CellFormat(45, 7, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	currency := p.Currency
	if currency == "" {
		currency = "DOP"
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 8, "Concepto", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, "Monto ("+currency+")", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label  string
		amount float64
	}{
		{"Salario", p.Salary},
		{"Horas extras", p.OvertimePay},
		{"SFS", -p.SFS},
		{"AFP", -p.AFP},
		{"Prestamos", -p.Loans},
		{"Otros descuentos", -p.Other},
	}
	for _, l := range lines {
		pdf.CellFormat(95, 7, tr(l.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, formatAmount(l.amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 8, "Total a pagar", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, formatAmount(p.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders p to <dir>/<nominaID>/<staffID>.pdf and returns the path.
func (r *Renderer) WriteFile(dir string, p Payslip) (string, error) {
	data, err := r.Render(p)
	if err != nil {
		return "", err
	}

	runDir := filepath.Join(dir, strconv.FormatUint(uint64(p.NominaID), 10))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("create payslip dir: %w", err)
	}

	path := filepath.Join(runDir, strconv.FormatUint(uint64(p.StaffID), 10)+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write payslip: %w", err)
	}
	return path, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
