package policy

import (
	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

// Caller is the authenticated principal behind a request.
type Caller struct {
	UserID uint
	Role   model.Role
}

// Authorize checks caller against required. A nil caller is
// unauthenticated. RoleAdmin demands an admin; RoleResident or an empty
// role only demands authentication. Ownership of rows is checked by the
// services, not here.
func Authorize(caller *Caller, required model.Role) error {
	if caller == nil {
		return apperrors.ErrUnauthorized
	}
	if required == model.RoleAdmin && caller.Role != model.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
