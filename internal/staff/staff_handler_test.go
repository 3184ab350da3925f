package staff_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sara-api/internal/shared/validation"
	"sara-api/internal/staff"
	stafferrors "sara-api/internal/staff/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	create  func(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error)
	getByID func(ctx context.Context, id uint) (staff.StaffResponse, error)
}

func (f *fakeService) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	return f.create(ctx, req)
}

func (f *fakeService) GetByID(ctx context.Context, id uint) (staff.StaffResponse, error) {
	return f.getByID(ctx, id)
}

func (f *fakeService) Update(ctx context.Context, id uint, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	return staff.StaffResponse{ID: id}, nil
}

func (f *fakeService) Delete(ctx context.Context, id uint) error { return nil }

func (f *fakeService) Lookup(ctx context.Context, id uint) (*staff.Staff, error) { return nil, nil }

func (f *fakeService) DecryptAccount(s staff.Staff) (string, error) { return "", nil }

type envelope struct {
	Status   string          `json:"status"`
	Code     int             `json:"code"`
	Response json.RawMessage `json:"response"`
}

func init() {
	gin.SetMode(gin.TestMode)
	validation.RegisterBindingTags()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func message(t *testing.T, env envelope) string {
	t.Helper()
	var m struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Response, &m))
	return m.Message
}

func TestHandler_Create(t *testing.T) {
	svc := &fakeService{create: func(_ context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
		return staff.StaffResponse{ID: 1, Name: req.Name, BankAccountLast4: "4567"}, nil
	}}
	router := gin.New()
	router.POST("/staff", staff.NewHandler(svc).Create)

	valid := map[string]any{
		"name": "Ana", "lastName1": "Perez", "salary": 20000,
		"cedula": "001-1234567-8", "bankAccount": "9601234567",
		"accountType": "CA", "currency": "DOP", "bankRoute": "10101070",
	}

	t.Run("created", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodPost, "/staff", valid)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "SUCCESS", env.Status)
		assert.NotContains(t, string(env.Response), "bankAccount\"")
		assert.Contains(t, string(env.Response), `"bankAccountLast4":"4567"`)
	})

	t.Run("missing field", func(t *testing.T) {
		body := map[string]any{"name": "Ana"}
		w, env := doJSON(t, router, http.MethodPost, "/staff", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Faltan datos requeridos", message(t, env))
	})

	t.Run("bad phone", func(t *testing.T) {
		body := map[string]any{}
		for k, v := range valid {
			body[k] = v
		}
		body["phone"] = "12"
		w, env := doJSON(t, router, http.MethodPost, "/staff", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Formato de telefono invalido", message(t, env))
	})

	t.Run("bad salary", func(t *testing.T) {
		body := map[string]any{}
		for k, v := range valid {
			body[k] = v
		}
		body["salary"] = "veinte"
		w, env := doJSON(t, router, http.MethodPost, "/staff", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "El salario recibio un dato no numerico", message(t, env))
	})
}

func TestHandler_GetByID(t *testing.T) {
	svc := &fakeService{getByID: func(_ context.Context, id uint) (staff.StaffResponse, error) {
		if id == 404 {
			return staff.StaffResponse{}, stafferrors.ErrStaffNotFound
		}
		return staff.StaffResponse{ID: id}, nil
	}}
	router := gin.New()
	router.GET("/staff/:id", staff.NewHandler(svc).GetByID)

	w, _ := doJSON(t, router, http.MethodGet, "/staff/7", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, router, http.MethodGet, "/staff/404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "[Staff] No se encontro el objeto solicitado", message(t, env))

	w, _ = doJSON(t, router, http.MethodGet, "/staff/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
