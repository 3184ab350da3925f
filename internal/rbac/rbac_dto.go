package rbac

import "sara-api/internal/domain"

func toPolicyResponses(rules [][]string) []domain.PolicyResponse {
	out := make([]domain.PolicyResponse, 0, len(rules))
	for _, r := range rules {
		if len(r) < 3 {
			continue
		}
		out = append(out, domain.PolicyResponse{Role: r[0], Resource: r[1], Action: r[2]})
	}
	return out
}
