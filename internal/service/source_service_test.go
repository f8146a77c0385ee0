package service

import (
	"context"
	"testing"

	"github.com/fritz-immanuel/luxtrack/internal/apierror"
	"github.com/fritz-immanuel/luxtrack/internal/dto"
	"github.com/fritz-immanuel/luxtrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceCRUD(t *testing.T) {
	svc := NewSourceService(newMemSourceRepo())
	ctx := context.Background()

	rate := 0.15
	created, err := svc.Create(ctx, dto.SourceRequest{
		Name:           "Vanderbilt Estate",
		SourceType:     model.SourceEstateSale,
		CommissionRate: &rate,
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.CommissionRate)

	updated, err := svc.Update(ctx, created.ID, dto.SourceRequest{
		Name:       "Vanderbilt Estate Sales",
		SourceType: model.SourceAuction,
	})
	require.NoError(t, err)
	assert.Equal(t, model.SourceAuction, updated.SourceType)
	assert.Nil(t, updated.CommissionRate)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetByID(ctx, "ghost")
	require.ErrorIs(t, err, apierror.ErrNotFound)
	assert.Equal(t, "Source not found", err.Error())
}
