package handlers

import (
	"net/http"

	"traveleon/internal/models"
)

// sellerFromContext reads the authenticated user from the request context
// and reports whether they may manage listings.
func sellerFromContext(r *http.Request) (int, string, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		return 0, "", false
	}
	role, _ := r.Context().Value("role").(string)
	if role != models.RoleSeller && role != models.RoleAdmin {
		return 0, "", false
	}
	return userID, role, true
}
