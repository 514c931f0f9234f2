package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pankaj-shinde04/store-rating/internal/domain"
)

func TestError_UnwrapsToKind(t *testing.T) {
	err := fmt.Errorf("get store: %w", domain.ErrStoreNotFound)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)

	var de *domain.Error
	assert.True(t, errors.As(err, &de))
	assert.Equal(t, "Store not found", de.Error())
}

func TestError_WithDetailCopies(t *testing.T) {
	base := domain.NewError(domain.ErrForbidden, "Cannot rate own store")
	detailed := base.WithDetail("Store owners cannot rate their own stores")

	assert.Empty(t, base.Detail)
	assert.Equal(t, "Store owners cannot rate their own stores", detailed.Detail)
	assert.ErrorIs(t, detailed, domain.ErrForbidden)
}
