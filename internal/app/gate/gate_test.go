package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tektronix/TekHSI/internal/domain"
)

func bundle(transID uint64, symbols ...string) *domain.AcquisitionBundle {
	entries := make(map[string]domain.Entry, len(symbols))
	for _, s := range symbols {
		h := &domain.WaveformHeader{SourceName: s, TransID: transID}
		entries[s] = domain.Entry{
			Header:   h,
			Waveform: &domain.AnalogWaveform{SourceName: s, SampleType: domain.SampleInt8, Data: []byte{1}},
		}
	}
	return domain.NewAcquisitionBundle(transID, time.Now(), entries)
}

func shortCtx(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx
}

func TestNewDataWaitsForFirstCommit(t *testing.T) {
	g := New()

	_, err := g.Acquire(shortCtx(t, 20*time.Millisecond), NewData, 0)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestNewDataReturnsUnobservedBundle(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	defer scope.Release()

	assert.Equal(t, uint64(1), scope.Bundle().TransID)
}

func TestNewDataBlocksOnceObserved(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	_, err = scope.GetData("ch1")
	require.NoError(t, err)
	scope.Release()

	// Same bundle, already observed: the second entry must block until a
	// new commit happens.
	_, err = g.Acquire(shortCtx(t, 20*time.Millisecond), NewData, 0)
	assert.ErrorIs(t, err, ErrTimeout)

	done := make(chan struct{})
	go func() {
		defer close(done)
		scope, err := g.Acquire(context.Background(), NewData, 0)
		assert.NoError(t, err)
		if err == nil {
			assert.Equal(t, uint64(2), scope.Bundle().TransID)
			scope.Release()
		}
	}()

	require.NoError(t, g.Offer(context.Background(), bundle(2, "ch1")))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("waiter not woken by commit")
	}
}

func TestNextAcqIgnoresCurrentCommit(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	// The committed bundle is fresh and unobserved, but NextAcq must not
	// take it.
	_, err := g.Acquire(shortCtx(t, 20*time.Millisecond), NextAcq, 0)
	assert.ErrorIs(t, err, ErrTimeout)

	entry := time.Now()
	done := make(chan *Scope, 1)
	go func() {
		scope, err := g.Acquire(context.Background(), NextAcq, 0)
		assert.NoError(t, err)
		done <- scope
	}()

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, g.Offer(context.Background(), bundle(2, "ch1")))

	select {
	case scope := <-done:
		assert.Equal(t, uint64(2), scope.Bundle().TransID)
		assert.True(t, scope.Bundle().CommittedAt.After(entry))
		scope.Release()
	case <-time.After(time.Second):
		t.Fatal("NextAcq waiter not woken")
	}
}

func TestAnyAcqReturnsImmediately(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))
	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	_, _ = scope.GetData("ch1")
	scope.Release()

	// Observed or not, AnyAcq takes the committed bundle without waiting.
	scope, err = g.Acquire(shortCtx(t, 20*time.Millisecond), AnyAcq, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), scope.Bundle().TransID)
	scope.Release()
}

func TestAnyAcqWaitsBeforeFirstCommit(t *testing.T) {
	g := New()
	_, err := g.Acquire(shortCtx(t, 20*time.Millisecond), AnyAcq, 0)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestTimeModeSleepsThenWaitsForNextAcq(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	start := time.Now()
	go func() {
		time.Sleep(40 * time.Millisecond)
		_ = g.Offer(context.Background(), bundle(2, "ch1"))
	}()

	scope, err := g.Acquire(context.Background(), Time, 20*time.Millisecond)
	require.NoError(t, err)
	defer scope.Release()

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, uint64(2), scope.Bundle().TransID)
}

func TestScopeConsistency(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(7, "ch1", "ch3")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	defer scope.Release()

	// The producer must not replace the committed bundle while the scope
	// is open.
	offered := make(chan error, 1)
	go func() {
		offered <- g.Offer(context.Background(), bundle(8, "ch1", "ch3"))
	}()

	select {
	case <-offered:
		t.Fatal("Offer completed while a scope pinned the committed bundle")
	case <-time.After(30 * time.Millisecond):
	}

	w1, err := scope.GetData("ch1")
	require.NoError(t, err)
	w3, err := scope.GetData("CH3")
	require.NoError(t, err)
	h1, _ := scope.Bundle().Header(w1.Source())
	h3, _ := scope.Bundle().Header(w3.Source())
	assert.Equal(t, h1.TransID, h3.TransID)

	scope.Release()
	select {
	case err := <-offered:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pending offer not flushed on release")
	}
	assert.Equal(t, uint64(2), g.Commits())
}

func TestGetDataOutsideScope(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	scope.Release()

	_, err = scope.GetData("ch1")
	assert.ErrorIs(t, err, ErrNoAccessScope)

	// Release is idempotent.
	scope.Release()
}

func TestGetDataUnknownSymbol(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)
	defer scope.Release()

	_, err = scope.GetData("ch9")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	// The miss must not disturb consistency for valid symbols.
	w, err := scope.GetData("ch1")
	require.NoError(t, err)
	assert.Equal(t, "ch1", w.Source())
}

func TestFailWakesWaiters(t *testing.T) {
	g := New()

	errCh := make(chan error, 1)
	go func() {
		_, err := g.Acquire(context.Background(), NewData, 0)
		errCh <- err
	}()

	time.Sleep(10 * time.Millisecond)
	g.Fail(ErrSessionBroken)

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrSessionBroken)
	case <-time.After(time.Second):
		t.Fatal("waiter not woken by failure")
	}

	// Later entries fail immediately.
	_, err := g.Acquire(context.Background(), AnyAcq, 0)
	assert.ErrorIs(t, err, ErrSessionBroken)
}

func TestCloseLetsOpenScopesFinish(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	scope, err := g.Acquire(context.Background(), NewData, 0)
	require.NoError(t, err)

	g.Fail(ErrSessionClosed)

	// The open scope still reads its pinned bundle.
	w, err := scope.GetData("ch1")
	require.NoError(t, err)
	assert.Equal(t, "ch1", w.Source())
	scope.Release()

	_, err = g.Acquire(context.Background(), NewData, 0)
	assert.ErrorIs(t, err, ErrSessionClosed)

	// Offers after close are refused.
	assert.ErrorIs(t, g.Offer(context.Background(), bundle(2, "ch1")), ErrSessionClosed)
}

func TestConstantFalseFilterNeverCommits(t *testing.T) {
	// The pipeline applies the filter before Offer; a gate that never sees
	// an Offer must keep every waiter blocked.
	g := New()
	_, err := g.Acquire(shortCtx(t, 30*time.Millisecond), NewData, 0)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, uint64(0), g.Commits())
}

func TestConcurrentScopesSerialize(t *testing.T) {
	g := New()
	require.NoError(t, g.Offer(context.Background(), bundle(1, "ch1")))

	first, err := g.Acquire(context.Background(), AnyAcq, 0)
	require.NoError(t, err)

	second := make(chan *Scope, 1)
	go func() {
		scope, err := g.Acquire(context.Background(), AnyAcq, 0)
		assert.NoError(t, err)
		second <- scope
	}()

	select {
	case <-second:
		t.Fatal("second scope opened while the first was still held")
	case <-time.After(30 * time.Millisecond):
	}

	first.Release()
	select {
	case scope := <-second:
		scope.Release()
	case <-time.After(time.Second):
		t.Fatal("second scope never opened")
	}
}
