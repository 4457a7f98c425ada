package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lsrelay/pkg/async"
)

func double(_ context.Context, n int) (int, error) {
	return n * 2, nil
}

func TestAsync(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, double)
	got, err := f.Await()

	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, f.Done())
}

func TestAsync_CancelledContextSkipsJob(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	_, err := async.Async(ctx, 1, func(context.Context, int) (int, error) {
		ran.Store(true)
		return 0, nil
	}).Await()

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 7, nil
	})

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.Done())

	close(release)
	got, err := f.AwaitWithTimeout(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestWaitAll_KeepsOrderAndJoinsErrors(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd input")
	fn := func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(5-n) * time.Millisecond)
		if n%2 == 1 {
			return 0, errOdd
		}
		return n * 10, nil
	}

	futures := make([]*async.Future[int], 0, 5)
	for n := range 5 {
		futures = append(futures, async.Async(context.Background(), n, fn))
	}

	results, err := async.WaitAll(futures...)
	assert.Equal(t, []int{0, 0, 20, 0, 40}, results)
	assert.ErrorIs(t, err, errOdd)
}

func TestWaitAll_Empty(t *testing.T) {
	t.Parallel()

	results, err := async.WaitAll[int]()
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestMap_RespectsLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	fn := func(_ context.Context, n int) (int, error) {
		cur := inFlight.Add(1)
		for {
			old := peak.Load()
			if cur <= old || peak.CompareAndSwap(old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return n, nil
	}

	params := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results, err := async.WaitAll(async.Map(context.Background(), 3, params, fn)...)

	require.NoError(t, err)
	assert.Equal(t, params, results)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMap_NoLimit(t *testing.T) {
	t.Parallel()

	results, err := async.WaitAll(async.Map(context.Background(), 0, []int{1, 2, 3}, double)...)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, results)

	results, err = async.WaitAll(async.Map(context.Background(), 2, []int{}, double)...)
	require.NoError(t, err)
	assert.Empty(t, results)
}
