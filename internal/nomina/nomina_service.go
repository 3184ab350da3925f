package nomina

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sara-api/internal/detailnomina"
	"sara-api/internal/messaging/kafka"
	nominaerrors "sara-api/internal/nomina/errors"
	"sara-api/internal/payslip"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/shared/validation"
	"sara-api/internal/staff"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	recentCacheTTL   = time.Minute
	recentRollupWait = 30 * time.Second
)

func RecentCacheKey(month string, n int) string {
	return fmt.Sprintf("nomina:recent:%s:%d", month, n)
}

// StaffDirectory is satisfied by staff.Service.
type StaffDirectory interface {
	Lookup(ctx context.Context, id uint) (*staff.Staff, error)
	DecryptAccount(s staff.Staff) (string, error)
}

// PayslipWriter is satisfied by *payslip.Renderer.
type PayslipWriter interface {
	Render(p payslip.Payslip) ([]byte, error)
	WriteFile(dir string, p payslip.Payslip) (string, error)
}

//go:generate mockgen -source=nomina_service.go -destination=mock/nomina_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateNominaRequest) (*Nomina, error)
	Update(ctx context.Context, id uint, req UpdateNominaRequest) (*Nomina, error)
	Delete(ctx context.Context, id uint) error

	GetWithDetails(ctx context.Context, id uint) (*Nomina, error)
	GetSummary(ctx context.Context, id uint) (Summary, error)
	GetByStaff(ctx context.Context, idStaff uint, year, month string) (StaffNominas, error)
	ListQuincenal(ctx context.Context, year string, page int) ([]Summary, error)
	ListAllQuincenal(ctx context.Context, year string) ([]Summary, error)
	ListMensual(ctx context.Context, year string, page int) ([]MonthlyTotals, error)

	BankDocument(ctx context.Context, id uint, origin OriginAccount) (BankDoc, error)
	Recent(ctx context.Context, n int) ([]RecentTotal, error)

	RequestPayslips(ctx context.Context, id uint) (PayslipRequestResponse, error)
	GeneratePayslips(ctx context.Context, id uint) (int, error)
	RenderPayslip(ctx context.Context, id, idStaff uint) ([]byte, error)
}

// Deps are the optional collaborators of the service. Any may be left
// zero; the features that need them then report ErrPayslipsUnavailable or
// skip caching.
type Deps struct {
	Outbox     kafka.OutboxRepository
	Payslips   PayslipWriter
	PayslipDir string
	Cache      *redis.Client
	Now        func() time.Time
}

type service struct {
	repo   Repository
	staff  StaffDirectory
	deps   Deps
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, staffDir StaffDirectory, logger ...*zap.Logger) Service {
	return NewServiceWithDeps(repo, staffDir, Deps{}, logger...)
}

func NewServiceWithDeps(repo Repository, staffDir StaffDirectory, deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("nomina.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("nomina.service")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{repo: repo, staff: staffDir, deps: deps, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) storageError(ctx context.Context, msg string, err error) error {
	s.log(ctx).Error(msg, zap.Error(err))
	return apperror.Classify(nominaerrors.Entity, err)
}

// round2 rounds the shortest decimal form of v half away from zero, so a
// written 1.005 becomes 1.01.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func roundTotals(t Totals) Totals {
	return Totals{
		Salary:      round2(t.Salary),
		OvertimePay: round2(t.OvertimePay),
		SFS:         round2(t.SFS),
		AFP:         round2(t.AFP),
		Loans:       round2(t.Loans),
		Other:       round2(t.Other),
		Total:       round2(t.Total),
	}
}

func normalizeDate(d string) string {
	if n, ok := validation.NormalizeDate(d); ok {
		return n
	}
	return d
}

func (s *service) Create(ctx context.Context, req CreateNominaRequest) (*Nomina, error) {
	n := &Nomina{Date: normalizeDate(req.Date), Type: strings.ToLower(req.Type)}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, s.storageError(ctx, "nomina create failed", err)
	}
	s.log(ctx).Info("nomina created", zap.Uint("nomina_id", n.ID), zap.String("type", n.Type))
	return n, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateNominaRequest) (*Nomina, error) {
	fields := map[string]any{}
	if req.Date != "" {
		fields["date"] = normalizeDate(req.Date)
	}
	if req.Type != "" {
		fields["type"] = strings.ToLower(req.Type)
	}
	if len(fields) == 0 {
		return nil, apperror.ErrMissingFields
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, s.storageError(ctx, "nomina update failed", err)
	}
	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, s.storageError(ctx, "nomina reload failed", err)
	}
	if n == nil {
		return nil, nominaerrors.ErrNominaNotFound
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return s.storageError(ctx, "nomina delete failed", err)
	}
	return nil
}

func (s *service) GetWithDetails(ctx context.Context, id uint) (*Nomina, error) {
	n, err := s.repo.FindByID(ctx, id, true)
	if err != nil {
		return nil, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return nil, nominaerrors.ErrNominaNotFound
	}
	return n, nil
}

func (s *service) GetSummary(ctx context.Context, id uint) (Summary, error) {
	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return Summary{}, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return Summary{}, nominaerrors.ErrNominaNotFound
	}

	totals, err := s.repo.SumByNomina(ctx, id)
	if err != nil {
		return Summary{}, s.storageError(ctx, "nomina totals failed", err)
	}
	return toSummary(*n, roundTotals(totals)), nil
}

// GetByStaff lists an employee's line items for the year, or for one month
// when month is 1..12. The totals always cover the whole year.
func (s *service) GetByStaff(ctx context.Context, idStaff uint, year, month string) (StaffNominas, error) {
	prefix := year
	if m, err := strconv.Atoi(month); err == nil && m >= 1 && m <= 12 {
		prefix = year + "-" + PadMonth(m)
	}

	rows, err := s.repo.ListByStaff(ctx, idStaff, prefix)
	if err != nil {
		return StaffNominas{}, s.storageError(ctx, "nomina staff list failed", err)
	}
	totals, err := s.repo.SumByStaff(ctx, idStaff, year)
	if err != nil {
		return StaffNominas{}, s.storageError(ctx, "nomina staff totals failed", err)
	}
	if rows == nil {
		rows = []detailnomina.DetailNomina{}
	}
	return StaffNominas{Nominas: rows, Totals: roundTotals(totals)}, nil
}

func (s *service) summaries(ctx context.Context, year string, start, end int) ([]Summary, error) {
	runs, err := s.repo.ListInYear(ctx, year, start, end)
	if err != nil {
		return nil, s.storageError(ctx, "nomina year list failed", err)
	}

	out := make([]Summary, 0, len(runs))
	for _, n := range runs {
		totals, err := s.repo.SumByNomina(ctx, n.ID)
		if err != nil {
			return nil, s.storageError(ctx, "nomina totals failed", err)
		}
		out = append(out, toSummary(n, roundTotals(totals)))
	}
	return out, nil
}

// ListQuincenal returns the runs of one page, six months per page. A page
// may hold fewer than PageSize runs.
func (s *service) ListQuincenal(ctx context.Context, year string, page int) ([]Summary, error) {
	start, end, err := MonthRange(page, EntriesQuincenal)
	if err != nil {
		return nil, err
	}
	return s.summaries(ctx, year, start, end)
}

func (s *service) ListAllQuincenal(ctx context.Context, year string) ([]Summary, error) {
	return s.summaries(ctx, year, 1, 12)
}

// ListMensual returns one entry per month of the page. Month totals come
// from SumByDateRange and so include soft-deleted line items.
func (s *service) ListMensual(ctx context.Context, year string, page int) ([]MonthlyTotals, error) {
	start, end, err := MonthRange(page, EntriesMensual)
	if err != nil {
		return nil, err
	}

	out := make([]MonthlyTotals, 0, end-start+1)
	for m := start; m <= end; m++ {
		from, to := MonthBounds(year, m)
		totals, err := s.repo.SumByDateRange(ctx, from, to)
		if err != nil {
			return nil, s.storageError(ctx, "nomina month totals failed", err)
		}
		out = append(out, MonthlyTotals{Month: PadMonth(m), Totals: roundTotals(totals)})
	}
	return out, nil
}

// BankDocument builds the bulk-transfer file for a run. Any employee that
// is missing or whose account can't be decrypted aborts the whole document.
func (s *service) BankDocument(ctx context.Context, id uint, origin OriginAccount) (BankDoc, error) {
	log := s.log(ctx)

	n, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return BankDoc{}, s.storageError(ctx, "nomina lookup failed", err)
	}
	if n == nil {
		return BankDoc{}, nominaerrors.ErrNominaNotFound
	}

	rows, err := s.repo.ListDetails(ctx, id)
	if err != nil {
		return BankDoc{}, s.storageError(ctx, "nomina details failed", err)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		st, err := s.staff.Lookup(ctx, row.IDStaff)
		if err != nil {
			return BankDoc{}, err
		}
		if st == nil {
			log.Warn("bank document staff missing", zap.Uint("nomina_id", id), zap.Uint("staff_id", row.IDStaff))
			return BankDoc{}, nominaerrors.ErrStaffNotFound
		}

		account, err := s.staff.DecryptAccount(*st)
		if err != nil {
			log.Error("bank document decrypt failed", zap.Uint("nomina_id", id), zap.Uint("staff_id", st.ID), zap.Error(err))
			return BankDoc{}, nominaerrors.BankAccountError(st.ShortName(), err)
		}
		lines = append(lines, bankDocLine(origin, *st, account, row.Total, n.Date))
	}

	log.Info("bank document built", zap.Uint("nomina_id", id), zap.Int("lines", len(lines)))
	return BankDoc{Document: strings.Join(lines, "\n"), Date: n.Date}, nil
}

// Recent returns the payroll total of the last n months, current month
// first. Results are cached briefly and concurrent callers share one query.
func (s *service) Recent(ctx context.Context, n int) ([]RecentTotal, error) {
	if n <= 0 {
		return nil, nominaerrors.ErrCountNotPositive
	}
	months := recentMonths(s.deps.Now(), n)
	key := RecentCacheKey(fmt.Sprintf("%04d-%02d", months[0].Year, months[0].Month), n)

	if s.deps.Cache != nil {
		if raw, err := s.deps.Cache.Get(ctx, key).Bytes(); err == nil {
			var cached []RecentTotal
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log(ctx).Warn("recent rollup cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		// The flight is shared, so one caller going away must not fail the rest.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recentRollupWait)
		defer cancel()

		out := make([]RecentTotal, 0, len(months))
		for _, ym := range months {
			from, to := MonthBounds(ym.yearString(), ym.Month)
			totals, err := s.repo.SumByDateRange(ctx, from, to)
			if err != nil {
				return nil, s.storageError(ctx, "recent rollup failed", err)
			}
			out = append(out, RecentTotal{Year: ym.yearString(), Month: PadMonth(ym.Month), Total: round2(totals.Total)})
		}

		if s.deps.Cache != nil {
			if raw, err := json.Marshal(out); err == nil {
				if err := s.deps.Cache.Set(ctx, key, raw, recentCacheTTL).Err(); err != nil {
					s.log(ctx).Warn("recent rollup cache write failed", zap.Error(err))
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]RecentTotal), nil
}
