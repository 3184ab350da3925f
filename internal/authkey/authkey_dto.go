package authkey

type IssueKeyRequest struct {
	Owner string `json:"owner" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

type IssueKeyResponse struct {
	ID    uint   `json:"id"`
	Key   string `json:"key"`
	Owner string `json:"owner"`
	Role  string `json:"role"`
}
