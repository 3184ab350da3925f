package domain

// Resources guarded by the policy.
const (
	ResourceNomina       = "nomina"
	ResourceDetailNomina = "detailNomina"
	ResourceStaff        = "staff"
	ResourceGraphs       = "graphs"
	ResourceList         = "list"
	ResourceRBAC         = "rbac"
	ResourceKeys         = "keys"
)

const (
	ActionRead  = "read"
	ActionWrite = "write"
)

const (
	RoleAdmin   = "admin"
	RolePayroll = "payroll"
	RoleViewer  = "viewer"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyResponse struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type GrantRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required,oneof=read write *"`
}

// Principal is what a request knows about its API key.
type Principal struct {
	Owner string `json:"owner"`
	Role  string `json:"role"`
}
