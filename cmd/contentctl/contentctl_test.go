package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/starterkart/starterkart-backend/internal/core"
	"github.com/starterkart/starterkart-backend/internal/models"
	"github.com/starterkart/starterkart-backend/pkg/slot"
)

func run(t *testing.T, store slot.Store, args ...string) (string, error) {
	t.Helper()
	a := &app{
		logger:    zap.NewNop(),
		openStore: func(context.Context) (slot.Store, error) { return store, nil },
	}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportEmptySlotPrintsDefault(t *testing.T) {
	out, err := run(t, slot.NewMemoryStore(), "export")
	require.NoError(t, err)

	doc, err := models.DecodeDocument([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppData(), doc)
}

func TestExportToFileThenImport(t *testing.T) {
	ctx := context.Background()
	store := slot.NewMemoryStore()
	repo := core.NewContentRepository(store, zap.NewNop())
	require.NoError(t, repo.Hydrate(ctx))
	require.NoError(t, repo.DeleteService(ctx, "1"))

	path := filepath.Join(t.TempDir(), "content.json")
	out, err := run(t, store, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	other := slot.NewMemoryStore()
	out, err = run(t, other, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 services, 3 projects, 3 plans, 2 testimonials, 0 inquiries")

	reloaded := core.NewContentRepository(other, zap.NewNop())
	require.NoError(t, reloaded.Hydrate(ctx))
	want, _ := repo.Document()
	got, _ := reloaded.Document()
	assert.Equal(t, want, got)
}

func TestImportYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services:\n  - id: a\n    title: Only\n    icon: Zap\n"), 0o600))
	store := slot.NewMemoryStore()

	_, err := run(t, store, "import", path)
	require.NoError(t, err)

	data, err := store.Get(context.Background(), slot.ContentKey)
	require.NoError(t, err)
	doc, err := models.DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, []models.Service{{ID: "a", Title: "Only", Icon: models.IconZap}}, doc.Services)
}

func TestImportRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	store := slot.NewMemoryStore()

	_, err := run(t, store, "import", path)
	assert.Error(t, err)

	_, err = store.Get(context.Background(), slot.ContentKey)
	assert.ErrorIs(t, err, slot.ErrSlotEmpty, "nothing written")
}

func TestResetRequiresYes(t *testing.T) {
	ctx := context.Background()
	store := slot.NewMemoryStore()
	require.NoError(t, store.Set(ctx, slot.ContentKey, []byte(`{"services":[]}`)))

	_, err := run(t, store, "reset")
	assert.ErrorIs(t, err, core.ErrResetNotConfirmed)

	out, err := run(t, store, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Content reset to defaults")

	data, err := store.Get(ctx, slot.ContentKey)
	require.NoError(t, err)
	doc, err := models.DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAppData(), doc)
}

func TestResetRepairsMalformedSlot(t *testing.T) {
	ctx := context.Background()
	store := slot.NewMemoryStore()
	require.NoError(t, store.Set(ctx, slot.ContentKey, []byte("not json")))

	_, err := run(t, store, "reset", "--yes")
	require.NoError(t, err)

	repo := core.NewContentRepository(store, zap.NewNop())
	assert.NoError(t, repo.Hydrate(ctx))
}

func TestSessionCommands(t *testing.T) {
	ctx := context.Background()
	store := slot.NewMemoryStore()

	out, err := run(t, store, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "inactive")

	require.NoError(t, store.Set(ctx, slot.SessionKey, []byte(slot.SessionMarker)))
	out, err = run(t, store, "session", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "active")
	assert.NotContains(t, out, "inactive")

	_, err = run(t, store, "session", "logout")
	require.NoError(t, err)
	_, err = store.Get(ctx, slot.SessionKey)
	assert.ErrorIs(t, err, slot.ErrSlotEmpty)
}

func TestVersion(t *testing.T) {
	out, err := run(t, slot.NewMemoryStore(), "version")
	require.NoError(t, err)
	assert.Equal(t, "contentctl version dev\n", out)
}
