package detailnomina

import (
	"context"
	"errors"
	"fmt"

	detailnominaerrors "sara-api/internal/detailnomina/errors"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/shared/validation"

	"go.uber.org/zap"
)

//go:generate mockgen -source=detailnomina_service.go -destination=mock/detailnomina_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req DetailRequest) (*DetailNomina, error)
	CreateBulk(ctx context.Context, flat map[string]validation.NumericString) (BulkResult, error)
	ListByNomina(ctx context.Context, idNomina uint) ([]DetailNomina, error)
	Update(ctx context.Context, req DetailRequest) (*DetailNomina, error)
	Delete(ctx context.Context, idNomina, idStaff uint) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("detailnomina.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("detailnomina.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) storageError(ctx context.Context, msg string, err error) error {
	contextutil.GetLogger(ctx, s.logger).Error(msg, zap.Error(err))
	return apperror.Classify(detailnominaerrors.Entity, err)
}

// runDate resolves the date a line item inherits from its run.
func (s *service) runDate(ctx context.Context, idNomina uint) (string, error) {
	date, err := s.repo.NominaDate(ctx, idNomina)
	if err != nil {
		return "", s.storageError(ctx, "detail nomina run date lookup failed", err)
	}
	if date == "" {
		return "", detailnominaerrors.ErrNominaNotFound
	}
	return date, nil
}

func (s *service) Create(ctx context.Context, req DetailRequest) (*DetailNomina, error) {
	row, err := req.Validate()
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("detail nomina validation failed", zap.Error(err))
		return nil, err
	}
	if row.Date == "" {
		if row.Date, err = s.runDate(ctx, row.IDNomina); err != nil {
			return nil, err
		}
	}

	d := row.toEntity()
	if err := s.repo.Create(ctx, &d); err != nil {
		return nil, s.storageError(ctx, "detail nomina create failed", err)
	}
	return &d, nil
}

func (s *service) CreateBulk(ctx context.Context, flat map[string]validation.NumericString) (BulkResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	reqs := ReconstructRows(flat)
	if len(reqs) == 0 {
		return BulkResult{}, detailnominaerrors.ErrEmptyBulk
	}

	rows := make([]DetailNomina, 0, len(reqs))
	dates := map[uint]string{}
	for _, r := range reqs {
		row, err := r.Request.Validate()
		if err != nil {
			log.Warn("detail nomina bulk row rejected", zap.Int("index", r.Index), zap.Error(err))
			return BulkResult{}, rowError(r.Index, err)
		}
		if row.Date == "" {
			date, ok := dates[row.IDNomina]
			if !ok {
				if date, err = s.runDate(ctx, row.IDNomina); err != nil {
					return BulkResult{}, err
				}
				dates[row.IDNomina] = date
			}
			row.Date = date
		}
		rows = append(rows, row.toEntity())
	}

	count, err := s.repo.CreateBulk(ctx, rows)
	if err != nil {
		return BulkResult{}, s.storageError(ctx, "detail nomina bulk insert failed", err)
	}
	log.Info("detail nomina bulk insert",
		zap.Int("received", len(rows)),
		zap.Int64("inserted", count),
	)
	return BulkResult{Count: count}, nil
}

// rowError names the offending row in a validation message.
func rowError(index int, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return apperror.Invalid(fmt.Sprintf("Registro %d: %s", index, appErr.Message))
	}
	return err
}

func (s *service) ListByNomina(ctx context.Context, idNomina uint) ([]DetailNomina, error) {
	rows, err := s.repo.ListByNomina(ctx, idNomina)
	if err != nil {
		return nil, s.storageError(ctx, "detail nomina list failed", err)
	}
	return rows, nil
}

// Update recomputes and replaces the monetary fields of one line item. The
// date is kept when the request leaves it empty.
func (s *service) Update(ctx context.Context, req DetailRequest) (*DetailNomina, error) {
	row, err := req.Validate()
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("detail nomina validation failed", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Update(ctx, row.IDNomina, row.IDStaff, row.updateFields()); err != nil {
		return nil, s.storageError(ctx, "detail nomina update failed", err)
	}

	d, err := s.repo.FindOne(ctx, row.IDNomina, row.IDStaff)
	if err != nil {
		return nil, s.storageError(ctx, "detail nomina reload failed", err)
	}
	if d == nil {
		return nil, detailnominaerrors.ErrDetailNotFound
	}
	return d, nil
}

func (s *service) Delete(ctx context.Context, idNomina, idStaff uint) error {
	if err := s.repo.SoftDelete(ctx, idNomina, idStaff); err != nil {
		return s.storageError(ctx, "detail nomina delete failed", err)
	}
	return nil
}
