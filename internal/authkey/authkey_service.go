package authkey

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	authkeyerrors "sara-api/internal/authkey/errors"
	"sara-api/internal/domain"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheTTL = 5 * time.Minute

//go:generate mockgen -source=authkey_service.go -destination=mock/authkey_service_mock.go -package=mock
type Service interface {
	Authenticate(ctx context.Context, key string) (*domain.Principal, error)
	Issue(ctx context.Context, req IssueKeyRequest) (*IssueKeyResponse, error)
	Revoke(ctx context.Context, id uint) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

// NewService builds the key checker. rdb may be nil, lookups then always
// hit the database.
func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("authkey.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func cacheKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return "authkey:" + hex.EncodeToString(sum[:])
}

func (s *service) Authenticate(ctx context.Context, key string) (*domain.Principal, error) {
	if key == "" {
		return nil, authkeyerrors.ErrMissingKey
	}

	log := contextutil.GetLogger(ctx, s.logger)
	ck := cacheKey(key)

	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, ck).Bytes()
		if err == nil {
			var p domain.Principal
			if jsonErr := json.Unmarshal(raw, &p); jsonErr == nil {
				return &p, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("auth key cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(ck, func() (any, error) {
		k, err := s.repo.FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if k == nil {
			return nil, nil
		}
		return &domain.Principal{Owner: k.Owner, Role: k.Role}, nil
	})
	if err != nil {
		log.Error("auth key lookup failed", zap.Error(err))
		return nil, apperror.Classify("AuthKey", err)
	}

	p, _ := v.(*domain.Principal)
	if p == nil {
		return nil, authkeyerrors.ErrInvalidKey
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(p); err == nil {
			if err := s.rdb.Set(ctx, ck, payload, cacheTTL).Err(); err != nil {
				log.Warn("auth key cache write failed", zap.Error(err))
			}
		}
	}
	return p, nil
}

func (s *service) Issue(ctx context.Context, req IssueKeyRequest) (*IssueKeyResponse, error) {
	switch req.Role {
	case domain.RoleAdmin, domain.RolePayroll, domain.RoleViewer:
	default:
		return nil, authkeyerrors.ErrInvalidRole
	}

	k := &AuthKey{
		Key:   uuid.NewString(),
		Owner: req.Owner,
		Role:  req.Role,
	}
	if err := s.repo.Create(ctx, k); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("issue auth key failed", zap.Error(err))
		return nil, apperror.Classify("AuthKey", err)
	}

	return &IssueKeyResponse{ID: k.ID, Key: k.Key, Owner: k.Owner, Role: k.Role}, nil
}

// Revoke marks the key deleted and drops its cached principal.
func (s *service) Revoke(ctx context.Context, id uint) error {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Classify("AuthKey", err)
	}
	if k == nil {
		return apperror.ObjectNotFound("AuthKey")
	}

	if _, err := s.repo.Revoke(ctx, id); err != nil {
		return apperror.Classify("AuthKey", err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, cacheKey(k.Key)).Err(); err != nil {
			contextutil.GetLogger(ctx, s.logger).Warn("auth key cache evict failed", zap.Error(err))
		}
	}
	return nil
}
