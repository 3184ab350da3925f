package infra

import (
	"sara-api/internal/domain"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// "*" in a policy matches any resource or action. Roles inherit through g.
const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// DefaultPolicies is the built-in grant table. Rows stored in
// role_permissions are added on top of it.
var DefaultPolicies = [][]string{
	{domain.RoleAdmin, "*", "*"},

	{domain.RoleViewer, domain.ResourceNomina, domain.ActionRead},
	{domain.RoleViewer, domain.ResourceDetailNomina, domain.ActionRead},
	{domain.RoleViewer, domain.ResourceStaff, domain.ActionRead},
	{domain.RoleViewer, domain.ResourceGraphs, domain.ActionRead},
	{domain.RoleViewer, domain.ResourceList, domain.ActionRead},

	{domain.RolePayroll, domain.ResourceNomina, domain.ActionWrite},
	{domain.RolePayroll, domain.ResourceDetailNomina, domain.ActionWrite},
	{domain.RolePayroll, domain.ResourceStaff, domain.ActionWrite},
}

// DefaultGroupings lets payroll read everything a viewer can.
var DefaultGroupings = [][]string{
	{domain.RolePayroll, domain.RoleViewer},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
