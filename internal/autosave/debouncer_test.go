package autosave

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/creami/internal/logging"
)

type recorder struct {
	mu    sync.Mutex
	state int
	saved []int
}

func (r *recorder) set(v int) {
	r.mu.Lock()
	r.state = v
	r.mu.Unlock()
}

func (r *recorder) save(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, r.state)
	return nil
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.saved...)
}

func TestDebouncer_BurstSavesOnceWithLastState(t *testing.T) {
	rec := &recorder{}
	d := New(30*time.Millisecond, rec.save, logging.Discard())

	for i := 1; i <= 5; i++ {
		rec.set(i)
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []int{5}, rec.snapshot())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushSavesNow(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.save, logging.Discard())

	require.NoError(t, d.Flush(context.Background()))
	assert.Empty(t, rec.snapshot(), "nothing pending")

	rec.set(7)
	d.Trigger()
	assert.True(t, d.Pending())
	require.NoError(t, d.Flush(context.Background()))
	assert.Equal(t, []int{7}, rec.snapshot())
}

func TestDebouncer_StopFlushesAndIgnoresLaterTriggers(t *testing.T) {
	var calls atomic.Int32
	d := New(10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logging.Discard())

	d.Trigger()
	require.NoError(t, d.Stop(context.Background()))
	assert.EqualValues(t, 1, calls.Load())

	d.Trigger()
	time.Sleep(40 * time.Millisecond)
	assert.EqualValues(t, 1, calls.Load())
}

func TestDebouncer_FlushReturnsSaveError(t *testing.T) {
	boom := errors.New("disk full")
	d := New(time.Hour, func(context.Context) error { return boom }, logging.Discard())

	d.Trigger()
	assert.ErrorIs(t, d.Flush(context.Background()), boom)
}

func TestNew_DefaultDelay(t *testing.T) {
	d := New(0, func(context.Context) error { return nil }, logging.Discard())
	assert.Equal(t, DefaultDelay, d.delay)
}
