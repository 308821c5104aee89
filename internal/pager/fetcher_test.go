package pager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/gallery/internal/domain"
)

func TestFetcher_FetchPage(t *testing.T) {
	f := NewFetcher(newFakeRepo(100), 12, nil)

	page, err := f.FetchPage(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 12, page.Len())
	assert.Equal(t, 13, page.Records[0].ID)
	assert.Equal(t, 100, page.Total)
	assert.False(t, f.Loading())
}

func TestFetcher_RejectsInvalidPage(t *testing.T) {
	repo := newFakeRepo(100)
	f := NewFetcher(repo, 12, nil)

	_, err := f.FetchPage(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, domain.ErrInvalidPage)
	assert.Equal(t, 0, repo.callCount(), "no network request for invalid input")
}

func TestFetcher_WrapsFailure(t *testing.T) {
	repo := newFakeRepo(100)
	repo.setFail(3, domain.ErrServerOffline)
	f := NewFetcher(repo, 12, nil)

	_, err := f.FetchPage(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, domain.ErrServerOffline)
	assert.False(t, f.Loading(), "loading cleared on failure")
}

func TestFetcher_LoadingWhileInFlight(t *testing.T) {
	repo := newFakeRepo(100)
	repo.block = make(chan struct{})
	f := NewFetcher(repo, 12, nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.FetchPage(context.Background(), 1)
		done <- err
	}()

	assert.Eventually(t, f.Loading, time.Second, 5*time.Millisecond)
	close(repo.block)
	require.NoError(t, <-done)
	assert.False(t, f.Loading())
}
