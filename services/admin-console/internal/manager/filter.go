package manager

import (
	"strings"

	"carniceria-admin/services/admin-console/internal/models"
)

// Filter returns the entries whose description contains query, ignoring case.
// An empty query returns list as is. The input is never modified.
func Filter(list []models.PaymentType, query string) []models.PaymentType {
	if query == "" {
		return list
	}

	needle := strings.ToLower(query)
	out := make([]models.PaymentType, 0, len(list))
	for _, pt := range list {
		if strings.Contains(strings.ToLower(pt.Description), needle) {
			out = append(out, pt)
		}
	}
	return out
}
