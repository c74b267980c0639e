package tekhsi

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tektronix/TekHSI/internal/app/config"
	"github.com/tektronix/TekHSI/internal/domain"
	"github.com/tektronix/TekHSI/internal/ports"
)

// simInstrument simulates a free-running instrument: every call to advance
// publishes a new acquisition for the configured symbols.
type simInstrument struct {
	symbols []string
	acq     atomic.Uint64

	mu         sync.Mutex
	keepErr    error
	disconnect int
}

func newSimInstrument(symbols ...string) *simInstrument {
	s := &simInstrument{symbols: symbols}
	s.acq.Store(1)
	return s
}

func (s *simInstrument) advance() { s.acq.Add(1) }

func (s *simInstrument) Connect(context.Context) error { return nil }

func (s *simInstrument) Disconnect(context.Context) error {
	s.mu.Lock()
	s.disconnect++
	s.mu.Unlock()
	return nil
}

func (s *simInstrument) KeepAlive(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keepErr
}

func (s *simInstrument) ForceSequence(context.Context) error { return nil }
func (s *simInstrument) Close() error                        { return nil }

func (s *simInstrument) AvailableNames(context.Context) ([]string, error) {
	return append([]string(nil), s.symbols...), nil
}

func (s *simInstrument) GetRawWaveform(_ context.Context, source string, _ int) (ports.WaveformStream, error) {
	id := s.acq.Load()
	return &simStream{msgs: []*ports.StreamMessage{
		{Header: &domain.WaveformHeader{
			SourceName:      source,
			SourceWidth:     2,
			TransID:         id,
			DataID:          id,
			HasData:         true,
			SampleCount:     10,
			VerticalSpacing: 1,
			Type:            domain.WfmTypeAnalog16,
		}},
		{Raw: make([]byte, 20)},
	}}, nil
}

func (s *simInstrument) GetWaveform(ctx context.Context, source string, chunkSize int) (ports.WaveformStream, error) {
	return s.GetRawWaveform(ctx, source, chunkSize)
}

type simStream struct {
	msgs []*ports.StreamMessage
	i    int
}

func (s *simStream) Recv() (*ports.StreamMessage, error) {
	if s.i >= len(s.msgs) {
		return nil, io.EOF
	}
	msg := s.msgs[s.i]
	s.i++
	return msg, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Instrument.KeepAliveInterval = 10 * time.Millisecond
	cfg.Acquire.IdleSleep = time.Millisecond
	cfg.Metrics.Addr = ""
	return cfg
}

func connectSim(t *testing.T, inst *simInstrument, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithInstrument(inst), WithConfig(testConfig())}, opts...)
	c, err := Connect(context.Background(), "sim:0", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestAccessDataConsistentSet(t *testing.T) {
	inst := newSimInstrument("ch1", "ch3")
	c := connectSim(t, inst)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)
	defer access.Release()

	w1, err := access.GetData("ch1")
	require.NoError(t, err)
	w3, err := access.GetData("ch3")
	require.NoError(t, err)

	b := access.Bundle()
	h1, _ := b.Header(w1.Source())
	h3, _ := b.Header(w3.Source())
	assert.Equal(t, h1.TransID, h3.TransID)
}

func TestGetDataCaseInsensitive(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)
	defer access.Release()

	upper, err := access.GetData("CH1")
	require.NoError(t, err)
	lower, err := access.GetData("ch1")
	require.NoError(t, err)
	assert.Same(t, upper, lower)
}

func TestUnknownSymbolDoesNotDisturbScope(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)
	defer access.Release()

	_, err = access.GetData("ch9")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	w, err := access.GetData("ch1")
	require.NoError(t, err)
	assert.Equal(t, 10, w.RecordLength())
}

func TestNewDataSeesLaterAcquisition(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)
	first := access.Bundle().TransID
	_, err = access.GetData("ch1")
	require.NoError(t, err)
	access.Release()

	inst.advance()

	access, err = c.AccessData(ctx, NewData)
	require.NoError(t, err)
	defer access.Release()
	assert.Greater(t, access.Bundle().TransID, first)
}

func TestNextAcqBlocksWithoutNewAcquisition(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	// Let the first acquisition land.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	access, err := c.AccessData(ctx, AnyAcq)
	require.NoError(t, err)
	access.Release()

	// No further acquisitions: NextAcq must time out.
	shortCtx, shortCancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer shortCancel()
	_, err = c.AccessData(shortCtx, NextAcq)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCallbackReceivesCommits(t *testing.T) {
	inst := newSimInstrument("ch1")

	var mu sync.Mutex
	var ids []uint64
	done := make(chan struct{}, 8)

	c := connectSim(t, inst, WithCallback(func(b *AcquisitionBundle) {
		mu.Lock()
		ids = append(ids, b.TransID)
		mu.Unlock()
		done <- struct{}{}
	}))
	defer c.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, ids)
	assert.Equal(t, uint64(1), ids[0])
}

func TestCloseRejectsNewScopes(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)

	require.NoError(t, c.Close())

	// The in-flight scope still works.
	w, err := access.GetData("ch1")
	require.NoError(t, err)
	assert.Equal(t, 10, w.RecordLength())
	access.Release()

	_, err = c.AccessData(context.Background(), AnyAcq)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestBrokenSessionSurfacesOnAccess(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)

	inst.mu.Lock()
	inst.keepErr = assert.AnError
	inst.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Keep-alive misses accumulate; eventually the waiter is woken with
	// the session failure.
	for {
		access, err := c.AccessData(ctx, NextAcq)
		if err == nil {
			access.Release()
			continue
		}
		if ctx.Err() != nil {
			t.Fatal("session never broke")
		}
		assert.ErrorIs(t, err, ErrSessionBroken)
		return
	}
}

func TestSetActiveSymbolsSubset(t *testing.T) {
	inst := newSimInstrument("ch1", "ch3")
	c := connectSim(t, inst, WithActiveSymbols("CH3"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	access, err := c.AccessData(ctx, NewData)
	require.NoError(t, err)
	defer access.Release()

	_, err = access.GetData("ch3")
	require.NoError(t, err)
	_, err = access.GetData("ch1")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestSetAcqFilterRejectsNil(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst)
	assert.Error(t, c.SetAcqFilter(nil))
	assert.NoError(t, c.SetAcqFilter(AnyAcqFilter))
}

func TestConstantFalseFilterBlocksForeground(t *testing.T) {
	inst := newSimInstrument("ch1")
	c := connectSim(t, inst, WithFilter(func(prev, cur HeaderSet) bool { return false }))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := c.AccessData(ctx, AnyAcq)
	assert.ErrorIs(t, err, ErrTimeout)
}
