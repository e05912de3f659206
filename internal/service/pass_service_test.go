package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestPassService_Create(t *testing.T) {
	from := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		visitor   string
		plate     string
		from      time.Time
		till      time.Time
		wantField string
	}{
		{name: "till before from", visitor: "Courier", plate: "MP09ZZ1111", from: from, till: from.Add(-time.Minute), wantField: "valid_till"},
		{name: "blank plate", visitor: "Courier", plate: "  ", from: from, till: from.Add(time.Hour), wantField: "plate_number"},
		{name: "blank visitor", visitor: " ", plate: "MP09ZZ1111", from: from, till: from.Add(time.Hour), wantField: "visitor_name"},
		{name: "missing window", visitor: "Courier", plate: "MP09ZZ1111", wantField: "valid_from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPassRepository)
			svc := NewPassService(repo, nil)

			pass, err := svc.Create(context.Background(), 1, tt.visitor, tt.plate, tt.from, tt.till)

			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Nil(t, pass)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}

	t.Run("zero length window is allowed", func(t *testing.T) {
		repo := new(MockPassRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.TemporaryPass")).Return(nil)

		pass, err := NewPassService(repo, nil).Create(context.Background(), 1, "Courier", "mp09 zz1111", from, from)
		require.NoError(t, err)
		assert.Equal(t, "MP09ZZ1111", pass.PlateNumber)
		assert.Equal(t, model.PassStatusActive, pass.Status)
		assert.Equal(t, uint(1), pass.UserID)
		repo.AssertExpectations(t)
	})
}

func TestPassService_FindActiveByPlate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("oldest valid pass wins", func(t *testing.T) {
		repo := new(MockPassRepository)
		repo.On("ListByPlateAndStatus", mock.Anything, "MP09ZZ1111", model.PassStatusActive).Return([]model.TemporaryPass{
			activePass(1, 1, "MP09ZZ1111", now.Add(time.Hour), now.Add(2*time.Hour)),
			activePass(2, 2, "MP09ZZ1111", now.Add(-time.Hour), now.Add(time.Hour)),
			activePass(3, 3, "MP09ZZ1111", now.Add(-time.Hour), now.Add(time.Hour)),
		}, nil)

		pass, err := NewPassService(repo, nil).FindActiveByPlate(context.Background(), "mp09zz1111", now)
		require.NoError(t, err)
		require.NotNil(t, pass)
		assert.Equal(t, uint(2), pass.ID)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		repo := new(MockPassRepository)
		repo.On("ListByPlateAndStatus", mock.Anything, "MP09ZZ1111", model.PassStatusActive).Return([]model.TemporaryPass{
			activePass(1, 1, "MP09ZZ1111", now.Add(-time.Hour), now),
		}, nil)
		svc := NewPassService(repo, nil)

		pass, err := svc.FindActiveByPlate(context.Background(), "MP09ZZ1111", now)
		require.NoError(t, err)
		assert.NotNil(t, pass)

		pass, err = svc.FindActiveByPlate(context.Background(), "MP09ZZ1111", now.Add(time.Nanosecond))
		require.NoError(t, err)
		assert.Nil(t, pass)
	})

	t.Run("empty plate finds nothing", func(t *testing.T) {
		repo := new(MockPassRepository)
		pass, err := NewPassService(repo, nil).FindActiveByPlate(context.Background(), "", now)
		require.NoError(t, err)
		assert.Nil(t, pass)
		repo.AssertNotCalled(t, "ListByPlateAndStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
