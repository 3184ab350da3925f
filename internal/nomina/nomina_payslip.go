package nomina

import (
	"context"
	"encoding/json"
	"strconv"

	"sara-api/internal/detailnomina"
	"sara-api/internal/events"
	"sara-api/internal/messaging/kafka"
	nominaerrors "sara-api/internal/nomina/errors"
	"sara-api/internal/payslip"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/staff"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestPayslips queues payslip rendering for a run through the outbox.
func (s *service) RequestPayslips(ctx context.Context, id uint) (PayslipRequestResponse, error) {
	if s.deps.Outbox == nil {
		return PayslipRequestResponse{}, nominaerrors.ErrPayslipsUnavailable
	}

	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return PayslipRequestResponse{}, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return PayslipRequestResponse{}, nominaerrors.ErrNominaNotFound
	}

	meta := contextutil.ExtractMetadata(ctx)
	event := events.NominaPayslipRequestedEvent{
		EventType:   events.NominaPayslipRequestedType,
		RequestID:   meta.RequestID,
		NominaID:    id,
		RequestedBy: meta.Owner,
		OccurredAt:  s.deps.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return PayslipRequestResponse{}, err
	}

	outboxID := uuid.NewString()
	err = s.deps.Outbox.Create(ctx, kafka.OutboxEvent{
		ID:            outboxID,
		RequestID:     meta.RequestID,
		AggregateType: "nomina",
		AggregateID:   strconv.FormatUint(uint64(id), 10),
		EventType:     events.NominaPayslipRequestedType,
		Topic:         events.NominaPayslipRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		return PayslipRequestResponse{}, s.storageError(ctx, "nomina payslip outbox write failed", err)
	}

	s.log(ctx).Info("nomina payslips requested", zap.Uint("nomina_id", id), zap.String("outbox_id", outboxID))
	return PayslipRequestResponse{
		NominaID: id,
		EventID:  outboxID,
		Message:  "Generacion de volantes de pago en cola",
	}, nil
}

// GeneratePayslips renders every non-deleted line item of a run to disk
// and returns how many were written.
func (s *service) GeneratePayslips(ctx context.Context, id uint) (int, error) {
	if s.deps.Payslips == nil {
		return 0, nominaerrors.ErrPayslipsUnavailable
	}

	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return 0, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return 0, nominaerrors.ErrNominaNotFound
	}

	rows, err := s.repo.ListDetails(ctx, id)
	if err != nil {
		return 0, s.storageError(ctx, "nomina details failed", err)
	}

	log := s.log(ctx)
	written := 0
	for _, row := range rows {
		p, err := s.payslipFor(ctx, *n, row)
		if err != nil {
			return written, err
		}
		path, err := s.deps.Payslips.WriteFile(s.deps.PayslipDir, p)
		if err != nil {
			log.Error("payslip write failed", zap.Uint("nomina_id", id), zap.Uint("staff_id", row.IDStaff), zap.Error(err))
			return written, err
		}
		log.Debug("payslip written", zap.String("path", path))
		written++
	}

	log.Info("nomina payslips generated", zap.Uint("nomina_id", id), zap.Int("count", written))
	return written, nil
}

func (s *service) RenderPayslip(ctx context.Context, id, idStaff uint) ([]byte, error) {
	if s.deps.Payslips == nil {
		return nil, nominaerrors.ErrPayslipsUnavailable
	}

	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return nil, nominaerrors.ErrNominaNotFound
	}

	rows, err := s.repo.ListDetails(ctx, id)
	if err != nil {
		return nil, s.storageError(ctx, "nomina details failed", err)
	}
	for _, row := range rows {
		if row.IDStaff != idStaff {
			continue
		}
		p, err := s.payslipFor(ctx, *n, row)
		if err != nil {
			return nil, err
		}
		return s.deps.Payslips.Render(p)
	}
	return nil, nominaerrors.ErrStaffNotFound
}

func (s *service) payslipFor(ctx context.Context, n Nomina, row detailnomina.DetailNomina) (payslip.Payslip, error) {
	st, err := s.staff.Lookup(ctx, row.IDStaff)
	if err != nil {
		return payslip.Payslip{}, err
	}
	if st == nil {
		return payslip.Payslip{}, nominaerrors.ErrStaffNotFound
	}
	return buildPayslip(n, *st, row), nil
}

func buildPayslip(n Nomina, st staff.Staff, row detailnomina.DetailNomina) payslip.Payslip {
	return payslip.Payslip{
		NominaID:    n.ID,
		NominaDate:  n.Date,
		NominaType:  n.Type,
		StaffID:     st.ID,
		FullName:    st.FullName(),
		Cedula:      st.Cedula,
		Position:    st.Position,
		Currency:    st.Currency,
		ExtraDays:   row.ExtraDays,
		Salary:      row.Salary,
		OvertimePay: row.OvertimePay,
		SFS:         row.SFS,
		AFP:         row.AFP,
		Loans:       row.Loans,
		Other:       row.Other,
		Total:       row.Total,
	}
}
