package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sara-api/internal/domain"
	"sara-api/internal/shared/apperror"
	"sara-api/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type fakeAuthenticator struct {
	principals map[string]*domain.Principal
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, key string) (*domain.Principal, error) {
	if p, ok := f.principals[key]; ok {
		return p, nil
	}
	return nil, apperror.ErrUnauthorized
}

type fakeEnforcer struct {
	allow bool
	err   error
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	return f.allow, f.err
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Any("/test", handlers...)
	return r
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"owner": contextutil.GetOwner(c.Request.Context()),
		"role":  c.GetString(ContextRole),
	})
}

func do(r http.Handler, method string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/test", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKey(t *testing.T) {
	auth := &fakeAuthenticator{principals: map[string]*domain.Principal{
		"123456": {Owner: "contabilidad", Role: domain.RolePayroll},
	}}
	r := newRouter(APIKey(auth), ok)

	t.Run("known key", func(t *testing.T) {
		w := do(r, http.MethodGet, map[string]string{HeaderAPIKey: "123456"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"owner":"contabilidad","role":"payroll"}`, w.Body.String())
	})

	t.Run("missing key", func(t *testing.T) {
		w := do(r, http.MethodGet, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"status":"ERROR","code":401,"response":{"message":"Unauthorized"}}`, w.Body.String())
	})
}

func TestRBACAuthorize(t *testing.T) {
	withRole := func(c *gin.Context) { c.Set(ContextRole, domain.RoleViewer); c.Next() }

	t.Run("allowed", func(t *testing.T) {
		r := newRouter(withRole, RBACAuthorize(&fakeEnforcer{allow: true}, "nomina", "read"), ok)
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, nil).Code)
	})

	t.Run("denied", func(t *testing.T) {
		r := newRouter(withRole, RBACAuthorize(&fakeEnforcer{}, "nomina", "write"), ok)
		assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, nil).Code)
	})

	t.Run("no role", func(t *testing.T) {
		r := newRouter(RBACAuthorize(&fakeEnforcer{allow: true}, "nomina", "read"), ok)
		assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, nil).Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		r := newRouter(withRole, RBACAuthorize(&fakeEnforcer{err: errors.New("bad model")}, "nomina", "read"), ok)
		assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, nil).Code)
	})
}

func TestRateLimitByKey(t *testing.T) {
	r := newRouter(RateLimitByKey(rate.Every(time.Hour), 2), ok)
	headers := map[string]string{HeaderAPIKey: "123456"}

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, headers).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, headers).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, headers).Code)

	// a different key has its own bucket
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, map[string]string{HeaderAPIKey: "654321"}).Code)
}

func TestRequestIDAndContextLogger(t *testing.T) {
	var seen string
	r := newRouter(RequestID(), ContextLogger(zap.NewNop()), func(c *gin.Context) {
		seen = contextutil.GetRequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := do(r, http.MethodGet, map[string]string{HeaderRequestID: "rid-42"})
	assert.Equal(t, "rid-42", seen)
	assert.Equal(t, "rid-42", w.Header().Get(HeaderRequestID))

	w = do(r, http.MethodGet, nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestIdempotency(t *testing.T) {
	const key = "idemp:/test::abc"
	created := func(c *gin.Context) {
		c.Data(http.StatusCreated, "application/json; charset=utf-8", []byte(`{"ok":true}`))
	}

	t.Run("first call stores the response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r := newRouter(Idempotency(rdb), created)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(key, []byte(`{"status":201,"body":{"ok":true}}`), idempotencyTTL).SetVal("OK")
		mock.ExpectDel(key + ":lock").SetVal(1)

		w := do(r, http.MethodPost, map[string]string{HeaderIdempotencyKey: "abc"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r := newRouter(Idempotency(rdb), func(c *gin.Context) {
			t.Fatal("handler must not run on replay")
		})

		mock.ExpectGet(key).SetVal(`{"status":201,"body":{"ok":true}}`)

		w := do(r, http.MethodPost, map[string]string{HeaderIdempotencyKey: "abc"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
	})

	t.Run("in flight", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r := newRouter(Idempotency(rdb), created)

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSetNX(key+":lock", "locked", idempotencyLockTTL).SetVal(false)

		w := do(r, http.MethodPost, map[string]string{HeaderIdempotencyKey: "abc"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("no header", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r := newRouter(Idempotency(rdb), created)

		w := do(r, http.MethodPost, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
