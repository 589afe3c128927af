package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "resume-data")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "resume-data", []byte(`{"a":1}`)))
	v, ok, err := kv.Get(ctx, "resume-data")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(v))

	require.NoError(t, kv.Set(ctx, "resume-data", []byte(`{"a":2}`)))
	v, _, err = kv.Get(ctx, "resume-data")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(v))

	_, ok, err = kv.Get(ctx, "other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte("abc")
	require.NoError(t, m.Set(context.Background(), "k", buf))
	buf[0] = 'x'
	v, _, _ := m.Get(context.Background(), "k")
	assert.Equal(t, "abc", string(v))
}

func TestFile(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nested"))
	require.NoError(t, err)
	exerciseKV(t, f)
}

func TestFile_SanitizesKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "a_b_c.json", filepath.Base(f.path("a/b c")))
}

func TestSQLite(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseKV(t, s)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "etcd"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
