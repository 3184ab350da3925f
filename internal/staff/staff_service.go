package staff

import (
	"context"
	"errors"
	"strconv"
	"strings"

	stafferrors "sara-api/internal/staff/errors"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"
	"sara-api/internal/shared/validation"

	"go.uber.org/zap"
)

// Cipher encrypts bank account numbers at rest.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(encrypted string) (string, error)
}

// UniquenessChecker is satisfied by validation.UniqueChecker.
type UniquenessChecker interface {
	IsUnique(ctx context.Context, table, field string, value any) (bool, error)
}

//go:generate mockgen -source=staff_service.go -destination=mock/staff_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetByID(ctx context.Context, id uint) (StaffResponse, error)
	Update(ctx context.Context, id uint, req UpdateStaffRequest) (StaffResponse, error)
	Delete(ctx context.Context, id uint) error
	// Lookup returns the raw record, nil when missing. Payroll uses it to
	// reach the encrypted account.
	Lookup(ctx context.Context, id uint) (*Staff, error)
	// DecryptAccount returns the plain bank account of s.
	DecryptAccount(s Staff) (string, error)
}

type service struct {
	repo    Repository
	cipher  Cipher
	checker UniquenessChecker
	logger  *zap.Logger
}

func NewService(repo Repository, cipher Cipher, checker UniquenessChecker, logger ...*zap.Logger) Service {
	l := zap.L().Named("staff.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("staff.service")
	}
	return &service{repo: repo, cipher: cipher, checker: checker, logger: l}
}

func parseSalary(n validation.NumericString) (float64, error) {
	v, err := strconv.ParseFloat(n.String(), 64)
	if err != nil || v <= 0 {
		return 0, stafferrors.ErrInvalidSalary
	}
	return v, nil
}

func normalizeDate(s string) string {
	if d, ok := validation.NormalizeDate(s); ok {
		return d
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	salary, err := parseSalary(req.Salary)
	if err != nil {
		return StaffResponse{}, err
	}

	cedula := validation.FormatCedula(req.Cedula)
	free, err := s.checker.IsUnique(ctx, "staff", "cedula", cedula)
	if err != nil {
		log.Error("staff cedula lookup failed", zap.Error(err))
		return StaffResponse{}, apperror.Classify(stafferrors.Entity, err)
	}
	if !free {
		return StaffResponse{}, stafferrors.ErrCedulaAlreadyExists
	}

	account := strings.TrimSpace(req.BankAccount)
	encrypted, err := s.cipher.Encrypt(account)
	if err != nil {
		log.Error("staff bank account encrypt failed", zap.Error(err))
		return StaffResponse{}, stafferrors.ErrBankAccountUnavailable
	}

	status := true
	if req.Status != nil {
		status = *req.Status
	}

	var lastName2 *string
	if v := strings.TrimSpace(req.LastName2); v != "" {
		lastName2 = &v
	}

	st := &Staff{
		Name:        strings.TrimSpace(req.Name),
		LastName1:   strings.TrimSpace(req.LastName1),
		LastName2:   lastName2,
		Phone:       req.Phone,
		Email:       req.Email,
		Position:    req.Position,
		Address:     req.Address,
		Salary:      salary,
		DateBirth:   normalizeDate(req.DateBirth),
		DateStart:   normalizeDate(req.DateStart),
		Status:      status,
		Cedula:      cedula,
		BankAccount: encrypted,
		AccountType: req.AccountType,
		Currency:    req.Currency,
		BankRoute:   req.BankRoute,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		log.Error("staff create failed", zap.Error(err))
		return StaffResponse{}, apperror.Classify(stafferrors.Entity, err)
	}

	log.Info("staff created", zap.Uint("staff_id", st.ID))
	return mapToResponse(*st, last4(account)), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (StaffResponse, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StaffResponse{}, apperror.Classify(stafferrors.Entity, err)
	}
	if st == nil {
		return StaffResponse{}, stafferrors.ErrStaffNotFound
	}
	return mapToResponse(*st, s.maskedAccount(ctx, *st)), nil
}

// maskedAccount never fails the read: a record whose account can't be
// decrypted is still returned, with an empty suffix.
func (s *service) maskedAccount(ctx context.Context, st Staff) string {
	plain, err := s.cipher.Decrypt(st.BankAccount)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("staff bank account decrypt failed",
			zap.Uint("staff_id", st.ID), zap.Error(err))
		return ""
	}
	return last4(plain)
}

func (s *service) Update(ctx context.Context, id uint, req UpdateStaffRequest) (StaffResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	fields := map[string]any{}
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = strings.TrimSpace(*v)
		}
	}
	setString("name", req.Name)
	setString("last_name1", req.LastName1)
	setString("last_name2", req.LastName2)
	setString("phone", req.Phone)
	setString("email", req.Email)
	setString("position", req.Position)
	setString("address", req.Address)
	setString("account_type", req.AccountType)
	setString("currency", req.Currency)
	setString("bank_route", req.BankRoute)
	if req.DateBirth != nil {
		fields["date_birth"] = normalizeDate(*req.DateBirth)
	}
	if req.DateStart != nil {
		fields["date_start"] = normalizeDate(*req.DateStart)
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Salary != nil {
		salary, err := parseSalary(*req.Salary)
		if err != nil {
			return StaffResponse{}, err
		}
		fields["salary"] = salary
	}
	if req.BankAccount != nil {
		encrypted, err := s.cipher.Encrypt(strings.TrimSpace(*req.BankAccount))
		if err != nil {
			log.Error("staff bank account encrypt failed", zap.Error(err))
			return StaffResponse{}, stafferrors.ErrBankAccountUnavailable
		}
		fields["bank_account"] = encrypted
	}
	if len(fields) == 0 {
		return StaffResponse{}, apperror.ErrMissingFields
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		log.Warn("staff update failed", zap.Uint("staff_id", id), zap.Error(err))
		return StaffResponse{}, apperror.Classify(stafferrors.Entity, err)
	}
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("staff delete failed", zap.Uint("staff_id", id), zap.Error(err))
		return apperror.Classify(stafferrors.Entity, err)
	}
	return nil
}

func (s *service) Lookup(ctx context.Context, id uint) (*Staff, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Classify(stafferrors.Entity, err)
	}
	return st, nil
}

func (s *service) DecryptAccount(st Staff) (string, error) {
	plain, err := s.cipher.Decrypt(st.BankAccount)
	if err != nil {
		return "", errors.Join(stafferrors.ErrBankAccountUnavailable, err)
	}
	return plain, nil
}
