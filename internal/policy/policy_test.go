package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestAuthorize(t *testing.T) {
	resident := &Caller{UserID: 7, Role: model.RoleResident}
	admin := &Caller{UserID: 1, Role: model.RoleAdmin}

	tests := []struct {
		name     string
		caller   *Caller
		required model.Role
		wantErr  error
	}{
		{"anonymous resident route", nil, model.RoleResident, apperrors.ErrUnauthorized},
		{"anonymous admin route", nil, model.RoleAdmin, apperrors.ErrUnauthorized},
		{"anonymous unspecified", nil, "", apperrors.ErrUnauthorized},
		{"resident on resident route", resident, model.RoleResident, nil},
		{"resident on unspecified", resident, "", nil},
		{"resident on admin route", resident, model.RoleAdmin, apperrors.ErrForbidden},
		{"admin on admin route", admin, model.RoleAdmin, nil},
		{"admin on resident route", admin, model.RoleResident, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.caller, tt.required)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
