package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sara-api/internal/events"
	"sara-api/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PayslipGenerator is satisfied by nomina.Service.
type PayslipGenerator interface {
	GeneratePayslips(ctx context.Context, id uint) (int, error)
}

func ConsumeNominaPayslipRequested(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.nomina_payslip")
	log.Info("nomina payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("nomina payslip consumer stopped")
				return
			}
			log.Error("fetch nomina payslip message failed", zap.Error(err))
			continue
		}

		handleNominaPayslipMessage(ctx, reader, generator, msg, log)
	}
}

// retryBackoff is the wait before each extra attempt at a transient failure.
// Later commits on the partition would skip an uncommitted message, so it is
// retried here before moving on.
var retryBackoff = []time.Duration{
	500 * time.Millisecond,
	time.Second,
	2 * time.Second,
	4 * time.Second,
	8 * time.Second,
}

// handleNominaPayslipMessage commits every message it finishes with. It
// returns without committing only when ctx ends mid retry.
func handleNominaPayslipMessage(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	msg kafkago.Message,
	log *zap.Logger,
) {
	var event events.NominaPayslipRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.NominaID == 0 {
		log.Error("decode nomina payslip event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
		_ = reader.CommitMessages(ctx, msg)
		return
	}
	log = log.With(zap.Uint("nomina_id", event.NominaID), zap.String("request_id", event.RequestID))

	count, err := generator.GeneratePayslips(ctx, event.NominaID)
	for attempt := 0; err != nil && !isPermanent(err) && attempt < len(retryBackoff); attempt++ {
		log.Warn("generate nomina payslips failed, retrying",
			zap.Error(err), zap.Int("attempt", attempt+1), zap.Duration("backoff", retryBackoff[attempt]))
		if !sleepCtx(ctx, retryBackoff[attempt]) {
			log.Info("nomina payslip retry interrupted", zap.Error(ctx.Err()))
			return
		}
		count, err = generator.GeneratePayslips(ctx, event.NominaID)
	}
	if err != nil {
		if isPermanent(err) {
			log.Warn("nomina payslip request dropped", zap.Error(err))
		} else {
			log.Error("nomina payslip request dropped after retries", zap.Error(err))
		}
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit nomina payslip message failed", zap.Error(err))
		return
	}

	log.Info("nomina payslips generated", zap.Int("count", count))
}

func isPermanent(err error) bool {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Code {
	case apperror.CodeNotFound, apperror.CodeMissingDependency, apperror.CodeInvalidInput:
		return true
	}
	return false
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
