package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/pkg/apperror"
)

func TestSnapshotRepo_MissingYieldsDefault(t *testing.T) {
	r := NewSnapshotRepo(store.NewMemory(), "", nil)
	assert.Equal(t, model.Default(), r.Load(context.Background()))
}

func TestSnapshotRepo_CorruptYieldsDefault(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, DefaultKey, []byte(`{"profile":`)))

	r := NewSnapshotRepo(kv, DefaultKey, nil)
	assert.Equal(t, model.Default(), r.Load(ctx))

	require.NoError(t, kv.Set(ctx, DefaultKey, []byte(`{"skills":"nope"}`)))
	assert.Equal(t, model.Default(), r.Load(ctx))
}

func TestSnapshotRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewSnapshotRepo(store.NewMemory(), "k", nil)

	in := model.Default().WithProfileField(model.ProfileFullName, "Jane Roe").WithOthers([]model.Item{})
	require.NoError(t, r.Save(ctx, in))
	assert.Equal(t, in, r.Load(ctx))
}

func TestJobsRepo_InMemory(t *testing.T) {
	ctx := context.Background()
	r := NewJobsRepo(nil)

	j := domain.NewExportJob(time.Now())
	j.Artifacts["html"] = "/tmp/x.html"
	require.NoError(t, r.Save(ctx, j))

	// later mutation of the caller's copy must not leak in
	j.Artifacts["pdf"] = "/tmp/x.pdf"

	got, err := r.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, got.Status)
	assert.Equal(t, map[string]string{"html": "/tmp/x.html"}, got.Artifacts)

	_, err = r.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDecodeArtifacts(t *testing.T) {
	arts, err := decodeArtifacts(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, arts)

	arts, err = decodeArtifacts([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, arts)

	arts, err = decodeArtifacts([]byte(`{"html":"/tmp/x.html"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"html": "/tmp/x.html"}, arts)

	_, err = decodeArtifacts([]byte(`{"html":`))
	assert.ErrorContains(t, err, "decode artifacts")
}
