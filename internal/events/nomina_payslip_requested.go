package events

import "time"

const (
	NominaPayslipRequestedTopic = "sara.nomina.payslip.requested.v1"
	NominaPayslipRequestedType  = "nomina.payslip.requested"
)

type NominaPayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	NominaID    uint      `json:"nomina_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
