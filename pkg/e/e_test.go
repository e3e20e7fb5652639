package e

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassedErrorMatchesClass(t *testing.T) {
	err := Wrap("CatalogUseCase.GetProduct", ErrProductNotFound)

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, "CatalogUseCase.GetProduct: product not found", err.Error())
}

func TestCause(t *testing.T) {
	t.Run("deeply wrapped", func(t *testing.T) {
		err := Wrap("a", fmt.Errorf("b: %w", Wrap("c", ErrUsernameTaken)))

		cause := Cause(err)
		require.NotNil(t, cause)
		assert.Equal(t, ErrUsernameTaken.Error(), cause.Error())
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Nil(t, Cause(errors.New("boom")))
	})

	t.Run("class without cause", func(t *testing.T) {
		assert.Nil(t, Cause(Wrap("op", ErrForbidden)))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Cause(nil))
	})
}
