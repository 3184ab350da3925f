package detailnomina

import (
	"sort"
	"strconv"
	"strings"

	"sara-api/internal/shared/validation"
)

// IndexedRequest is a line item rebuilt from a flattened bulk body, along
// with the index its keys carried.
type IndexedRequest struct {
	Index   int
	Request DetailRequest
}

// ReconstructRows rebuilds line items from keys of the form
// "<index>_<field>", e.g. "0_salary". Keys whose index is not a
// non-negative integer are ignored. Rows come back ordered by index; an
// index that only carried unknown fields still yields an (empty) row.
func ReconstructRows(flat map[string]validation.NumericString) []IndexedRequest {
	rows := map[int]*DetailRequest{}
	for key, value := range flat {
		prefix, field, found := strings.Cut(key, "_")
		if !found {
			continue
		}
		idx, err := strconv.Atoi(prefix)
		if err != nil || idx < 0 {
			continue
		}
		row, ok := rows[idx]
		if !ok {
			row = &DetailRequest{}
			rows[idx] = row
		}
		setField(row, field, value)
	}

	indexes := make([]int, 0, len(rows))
	for idx := range rows {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	out := make([]IndexedRequest, 0, len(indexes))
	for _, idx := range indexes {
		out = append(out, IndexedRequest{Index: idx, Request: *rows[idx]})
	}
	return out
}

func setField(r *DetailRequest, field string, v validation.NumericString) {
	switch field {
	case "idNomina":
		r.IDNomina = v
	case "idStaff":
		r.IDStaff = v
	case "date":
		r.Date = v.String()
	case "salary":
		r.Salary = v
	case "extraDays":
		r.ExtraDays = v
	case "overtimePay":
		r.OvertimePay = v
	case "sfs":
		r.SFS = v
	case "afp":
		r.AFP = v
	case "loans":
		r.Loans = v
	case "other":
		r.Other = v
	case "total":
		r.Total = v
	}
}
