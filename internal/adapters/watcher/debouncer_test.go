package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/SummerStorm/jurigged/internal/adapters/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type batchRecorder struct {
	mu      sync.Mutex
	batches [][]string
}

func (r *batchRecorder) record(paths []string) {
	sort.Strings(paths)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, paths)
}

func (r *batchRecorder) all() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

func TestDebouncer_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/src/a.go")
		d.Add("/src/a.go")
		d.Add("/src/b.go")
		d.Add("/src/a.go")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		batches := rec.all()
		require.Len(t, batches, 1, "rapid events collapse into one batch")
		assert.Equal(t, []string{"/src/a.go", "/src/b.go"}, batches[0])
	})
}

func TestDebouncer_RestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/src/a.go")
		time.Sleep(30 * time.Millisecond)
		d.Add("/src/b.go")
		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		// 60ms elapsed but the second add restarted the window.
		assert.Empty(t, rec.all())

		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		batches := rec.all()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/src/a.go", "/src/b.go"}, batches[0])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(time.Hour, rec.record)

		d.Add("/src/a.go")
		d.Flush()

		batches := rec.all()
		require.Len(t, batches, 1, "flush delivers without waiting out the window")
		assert.Equal(t, []string{"/src/a.go"}, batches[0])

		// Nothing left to fire.
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Len(t, rec.all(), 1)
	})
}

func TestDebouncer_FlushWaitsForInFlightDelivery(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		delivered := false
		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			// A slow consumer keeps the delivery in flight while Flush runs.
			time.Sleep(20 * time.Millisecond)
			rec.record(paths)
			delivered = true
		})

		d.Add("/src/a.go")
		time.Sleep(50 * time.Millisecond)
		d.Flush()

		assert.True(t, delivered, "flush must not return before the batch lands")
		batches := rec.all()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/src/a.go"}, batches[0])
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	rec := &batchRecorder{}
	d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

	d.Flush()
	assert.Empty(t, rec.all(), "an empty flush must not invoke the callback")
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &batchRecorder{}
		d := watcher.NewDebouncer(50*time.Millisecond, rec.record)

		d.Add("/src/a.go")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		d.Add("/src/b.go")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		batches := rec.all()
		require.Len(t, batches, 2)
		assert.Equal(t, []string{"/src/a.go"}, batches[0])
		assert.Equal(t, []string{"/src/b.go"}, batches[1])
	})
}
