package usecase

import (
	"cvhub-backend/internal/domain"
	"cvhub-backend/pkg/apperror"
)

// RequireOwner is the single ownership check for mutations and private reads.
// An empty owner (record missing) is treated as a mismatch.
func RequireOwner(ownerID, callerID string) error {
	if ownerID == "" || callerID == "" || ownerID != callerID {
		return apperror.Unauthorized("Unauthorized")
	}
	return nil
}

func requireSession(auth domain.AuthContext) error {
	if !auth.IsAuthenticated() {
		return apperror.Unauthenticated("Unauthorized")
	}
	return nil
}
