package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"listinglab/internal/dataset"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	tbl := &dataset.Table{Name: "a.csv", Columns: []string{"x"}, Rows: [][]string{{"1"}}}

	id, err := s.Put(context.Background(), tbl)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	require.Same(t, tbl, got)

	_, err = s.Get(context.Background(), "unknown")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStoreExpires(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(10 * time.Minute)
	s.now = func() time.Time { return now }

	id, err := s.Put(context.Background(), &dataset.Table{Name: "a.csv"})
	require.NoError(t, err)

	now = now.Add(9 * time.Minute)
	_, err = s.Get(context.Background(), id)
	require.NoError(t, err)

	// leitura renova o prazo
	now = now.Add(9 * time.Minute)
	_, err = s.Get(context.Background(), id)
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	_, err = s.Get(context.Background(), id)
	require.True(t, errors.Is(err, ErrNotFound))
}
