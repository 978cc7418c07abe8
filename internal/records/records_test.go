package records

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	f, err := os.CreateTemp("", "records-")
	require.NoError(t, err)
	t.Cleanup(func() {
		f.Close()
		os.Remove(f.Name())
	})

	s, err := Open(f.Name())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func rec(playtime time.Duration) Record {
	return Record{Playtime: playtime, WonAt: time.Now().Round(time.Millisecond)}
}

func TestBestEmpty(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.Best(9, 9, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddKeepsOrder(t *testing.T) {
	s := setupTestStore(t)

	for _, d := range []time.Duration{
		42 * time.Second, 13 * time.Second, 99 * time.Second,
	} {
		_, err := s.Add(9, 9, 10, rec(d))
		require.NoError(t, err)
	}

	best, err := s.Best(9, 9, 10)
	require.NoError(t, err)
	require.Len(t, best, 3)
	assert.Equal(t, 13*time.Second, best[0].Playtime)
	assert.Equal(t, 42*time.Second, best[1].Playtime)
	assert.Equal(t, 99*time.Second, best[2].Playtime)
}

func TestAddCapsLeaderboard(t *testing.T) {
	s := setupTestStore(t)

	for i := Keep + 5; i > 0; i-- {
		_, err := s.Add(16, 16, 40, rec(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	best, err := s.Best(16, 16, 40)
	require.NoError(t, err)
	assert.Len(t, best, Keep)
	assert.Equal(t, time.Second, best[0].Playtime)
	assert.Equal(t, time.Duration(Keep)*time.Second, best[Keep-1].Playtime)
}

func TestConfigurationsAreSeparate(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Add(9, 9, 10, rec(10*time.Second))
	require.NoError(t, err)

	_, err = s.Best(9, 9, 35)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordsSurviveReopen(t *testing.T) {
	f, err := os.CreateTemp("", "records-")
	require.NoError(t, err)
	t.Cleanup(func() {
		f.Close()
		os.Remove(f.Name())
	})

	s, err := Open(f.Name())
	require.NoError(t, err)
	want := rec(21 * time.Second)
	_, err = s.Add(30, 16, 99, want)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(f.Name())
	require.NoError(t, err)
	defer s.Close()

	best, err := s.Best(30, 16, 99)
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, want.Playtime, best[0].Playtime)
	assert.True(t, want.WonAt.Equal(best[0].WonAt))
}
