package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "gatepass/internal/errors"
	"gatepass/internal/model"
)

func TestUserService_GetUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Priya"}, nil)

		user, err := NewUserService(repo, nil).GetUser(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Priya", user.Name)
	})

	t.Run("dangling matched user id", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewUserService(repo, nil).GetUser(context.Background(), 42)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, 404, apperrors.MapErrorToHTTP(err).StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).Return(nil, errors.New("timeout"))

		_, err := NewUserService(repo, nil).GetUser(context.Background(), 1)
		var se *apperrors.StorageError
		assert.ErrorAs(t, err, &se)
	})
}
