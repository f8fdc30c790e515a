package printcfg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creami/internal/kv"
	"github.com/dmitrijs2005/creami/internal/logging"
	"github.com/dmitrijs2005/creami/internal/models"
)

func ptr[T any](v T) *T { return &v }

func newTestStore(t *testing.T) (*Store, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	return NewStore(mem, logging.Discard()), mem
}

func TestGet_DefaultsWhenEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, models.DefaultPrintConfiguration(), s.Get(context.Background()))
}

func TestGet_MergesPartialRecordOverDefaults(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Key, []byte(`{"scale":150}`)))

	want := models.DefaultPrintConfiguration()
	want.Scale = 150
	assert.Equal(t, want, s.Get(ctx))
}

func TestGet_CorruptRecordYieldsDefaults(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, Key, []byte(`{"scale":`)))

	assert.Equal(t, models.DefaultPrintConfiguration(), s.Get(ctx))
}

func TestSave_ShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, Patch{Orientation: ptr(models.OrientationLandscape)})
	require.NoError(t, err)
	got, err := s.Save(ctx, Patch{
		PaperSize: ptr(models.PaperA3),
		Margins:   &models.Margins{Top: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrientationLandscape, got.Orientation, "earlier save survives")
	assert.Equal(t, models.PaperA3, got.PaperSize)
	assert.Equal(t, models.Margins{Top: 5}, got.Margins, "margins are replaced whole")
	assert.Equal(t, 100, got.Scale)
	assert.Equal(t, got, s.Get(ctx))
}

func TestReset_Idempotent(t *testing.T) {
	s, mem := newTestStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, Patch{Scale: ptr(80)})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	once, err := mem.Get(ctx, Key)
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	twice, err := mem.Get(ctx, Key)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, models.DefaultPrintConfiguration(), s.Get(ctx))
}

func TestSave_WriteError(t *testing.T) {
	s, mem := newTestStore(t)
	mem.WriteErr = errors.New("quota exceeded")

	_, err := s.Save(context.Background(), Patch{Scale: ptr(90)})
	require.ErrorContains(t, err, "quota exceeded")
}

func TestPageStyles(t *testing.T) {
	cfg := models.DefaultPrintConfiguration()
	cfg.Scale = 150
	cfg.Margins = models.Margins{Top: 12.5, Right: 10, Bottom: 8, Left: 0}

	css := PageStyles(cfg)
	assert.Contains(t, css, "size: A4 portrait;")
	assert.Contains(t, css, "margin: 12.5mm 10mm 8mm 0mm;")
	assert.Contains(t, css, "transform: scale(1.5);")
	assert.Contains(t, css, "width: 210mm;")
	assert.Contains(t, css, "counter(page)")

	cfg.Orientation = models.OrientationLandscape
	cfg.IncludePageNumbers = false
	css = PageStyles(cfg)
	assert.Contains(t, css, "width: 297mm;")
	assert.NotContains(t, css, "counter(page)")
}
