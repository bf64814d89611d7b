package memstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/5w1tchy/library-api/internal/store/books"
	memstore "github.com/5w1tchy/library-api/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	b, err := s.Create(ctx, "Dune")
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, []string{}, b.Comments)

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestAddCommentAppendsInOrder(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b, err := s.Create(ctx, "Dune")
	require.NoError(t, err)

	_, err = s.AddComment(ctx, b.ID, "first")
	require.NoError(t, err)
	got, err := s.AddComment(ctx, b.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, got.Comments)

	// returned books are copies
	got.Comments[0] = "mutated"
	again, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", again.Comments[0])
}

func TestListProjectsCommentCount(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	a, _ := s.Create(ctx, "A")
	_, _ = s.Create(ctx, "B")
	_, _ = s.AddComment(ctx, a.ID, "x")
	_, _ = s.AddComment(ctx, a.ID, "y")

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Title)
	assert.Equal(t, 2, list[0].CommentCount)
	assert.Equal(t, 0, list[1].CommentCount)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b, _ := s.Create(ctx, "A")

	require.NoError(t, s.Delete(ctx, b.ID))
	_, err := s.Get(ctx, b.ID)
	assert.ErrorIs(t, err, books.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, b.ID), books.ErrNotFound)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	_, _ = s.Create(ctx, "A")
	_, _ = s.Create(ctx, "B")

	n, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMalformedID(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()

	_, err := s.Get(ctx, "not-an-id")
	assert.ErrorIs(t, err, books.ErrMalformedID)
	_, err = s.AddComment(ctx, "not-an-id", "c")
	assert.ErrorIs(t, err, books.ErrMalformedID)
	assert.ErrorIs(t, s.Delete(ctx, "not-an-id"), books.ErrMalformedID)
}

func TestConcurrentComments(t *testing.T) {
	ctx := context.Background()
	s := memstore.New()
	b, _ := s.Create(ctx, "A")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddComment(ctx, b.ID, "c")
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 50)
}
