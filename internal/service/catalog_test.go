package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/artgrid/internal/paging"
)

func TestCatalogFetchPage(t *testing.T) {
	src := newFakeSource(95)
	svc := NewCatalogService(src, nil)

	page, err := svc.FetchPage(context.Background(), paging.NewCursor(10, 10))
	require.NoError(t, err)

	assert.Equal(t, 5, page.Len())
	assert.Equal(t, 95, page.Total)
	assert.Equal(t, []int{10}, src.calls)
}

func TestCatalogFetchPageWrapsError(t *testing.T) {
	src := newFakeSource(95)
	src.failing[2] = errOffline
	svc := NewCatalogService(src, nil)

	_, err := svc.FetchPage(context.Background(), paging.NewCursor(2, 10))
	require.Error(t, err)

	assert.ErrorIs(t, err, errOffline)
	assert.Contains(t, err.Error(), "loading page 2")
}
