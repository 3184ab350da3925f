package rbac

import (
	"context"
	"errors"
	"testing"

	"sara-api/internal/domain"
	"sara-api/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// =========================================
// Fake Repository
// =========================================

type fakeRepo struct {
	rows    []RolePermission
	listErr error
	added   []RolePermission
}

func (f *fakeRepo) ListPermissions(ctx context.Context) ([]RolePermission, error) {
	return f.rows, f.listErr
}

func (f *fakeRepo) AddPermission(ctx context.Context, p *RolePermission) error {
	f.added = append(f.added, *p)
	return nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(repo, enforcer, zap.NewNop())
	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestService_DefaultPolicy(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{domain.RoleAdmin, domain.ResourceRBAC, domain.ActionWrite, true},
		{domain.RoleAdmin, domain.ResourceNomina, domain.ActionRead, true},
		{domain.RolePayroll, domain.ResourceNomina, domain.ActionWrite, true},
		{domain.RolePayroll, domain.ResourceGraphs, domain.ActionRead, true},
		{domain.RolePayroll, domain.ResourceRBAC, domain.ActionRead, false},
		{domain.RoleViewer, domain.ResourceDetailNomina, domain.ActionRead, true},
		{domain.RoleViewer, domain.ResourceNomina, domain.ActionWrite, false},
		{"stranger", domain.ResourceNomina, domain.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+":"+tt.resource+":"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestService_StoredGrantsAreLoaded(t *testing.T) {
	repo := &fakeRepo{rows: []RolePermission{
		{Role: domain.RoleViewer, Resource: domain.ResourceRBAC, Action: domain.ActionRead},
	}}
	svc := newTestService(t, repo)

	allowed, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleViewer, Resource: domain.ResourceRBAC, Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.True(t, allowed)
	assert.Len(t, svc.Policies(), len(infra.DefaultPolicies)+1)
}

func TestService_LoadPolicyError(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := NewService(&fakeRepo{listErr: errors.New("boom")}, enforcer, zap.NewNop())
	assert.Error(t, svc.LoadPolicy(context.Background()))
}

func TestService_Grant(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	err := svc.Grant(context.Background(), domain.GrantRequest{Role: domain.RoleViewer, Resource: domain.ResourceKeys, Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.Len(t, repo.added, 1)

	allowed, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleViewer, Resource: domain.ResourceKeys, Action: domain.ActionRead})
	assert.NoError(t, err)
	assert.True(t, allowed)
}
