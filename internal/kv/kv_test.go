package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/2beens/mapty/internal/config"

	"github.com/go-redis/redismock/v8"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

// storeContract runs the behaviour every Store must have.
func storeContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "workouts")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "workouts", []byte(`[]`)))
	got, err := s.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, s.Set(ctx, "workouts", []byte(`[{"id":"a"}]`)))
	got, err = s.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	_, err = s.Get(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore(1024*1024))
}

func TestMemoryStore_TooLarge(t *testing.T) {
	s := NewMemoryStore(512 * 1024)
	err := s.Set(context.Background(), "workouts", make([]byte, 64*1024))
	assert.ErrorIs(t, err, ErrValueTooLarge)

	limit := s.MaxValueSize("workouts")
	assert.Equal(t, 512-24-len("workouts"), limit)
	assert.ErrorIs(t, s.Set(context.Background(), "workouts", make([]byte, limit+1)), ErrValueTooLarge)
	assert.NoError(t, s.Set(context.Background(), "workouts", make([]byte, limit)))
}

func TestMemoryStore_WarnsNearLimit(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	s := NewMemoryStore(512 * 1024)
	limit := s.MaxValueSize("workouts")

	require.NoError(t, s.Set(context.Background(), "workouts", make([]byte, limit/2)))
	assert.Empty(t, hook.AllEntries())

	require.NoError(t, s.Set(context.Background(), "workouts", make([]byte, limit-10)))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, log.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "memory_cache_size")
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "storage")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	storeContract(t, s)

	content, err := os.ReadFile(filepath.Join(dir, "workouts.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(content))
}

func TestFileStore_KeyEscaping(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "../escape", []byte("x")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "..%2Fescape.json", entries[0].Name())
}

func TestFileStore_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := NewFileStore(file)
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()
	s := NewRedisStore(rdb, "mapty::")
	ctx := context.Background()

	mock.ExpectGet("mapty::workouts").RedisNil()
	_, err := s.Get(ctx, "workouts")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectSet("mapty::workouts", []byte(`[]`), 0).SetVal("OK")
	require.NoError(t, s.Set(ctx, "workouts", []byte(`[]`)))

	mock.ExpectGet("mapty::workouts").SetVal(`[]`)
	got, err := s.Get(ctx, "workouts")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	mock.ExpectGet("mapty::workouts").SetErr(errors.New("connection reset"))
	_, err = s.Get(ctx, "workouts")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	mock.ExpectSet("mapty::workouts", []byte(`[1]`), 0).SetErr(errors.New("read only replica"))
	assert.Error(t, s.Set(ctx, "workouts", []byte(`[1]`)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNew_MemoryAndFile(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := New(ctx, NewParams{Config: &config.Config{
		StorageBackend:  config.StorageMemory,
		MemoryCacheSize: 1024 * 1024,
	}})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closeFn())

	store, closeFn, err = New(ctx, NewParams{Config: &config.Config{
		StorageBackend: config.StorageFile,
		StoragePath:    t.TempDir(),
	}})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
	assert.NoError(t, closeFn())

	_, _, err = New(ctx, NewParams{Config: &config.Config{StorageBackend: "etcd"}})
	assert.EqualError(t, err, "unknown storage backend: etcd")
}
