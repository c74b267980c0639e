// Package session owns the instrument session lifecycle: the connect and
// disconnect handshake, the keep-alive ticker, and the state machine that
// tracks where the session stands.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	fsm "github.com/qmuntal/stateless"

	"github.com/tektronix/TekHSI/internal/ports"
)

const (
	StateDisconnected = "disconnected"
	StateConnecting   = "connecting"
	StateConnected    = "connected"
	StateBroken       = "broken"
)

var (
	triggerConnect     = fsm.Trigger("connect")
	triggerEstablished = fsm.Trigger("established")
	triggerFail        = fsm.Trigger("fail")
	triggerDisconnect  = fsm.Trigger("disconnect")
)

// Manager drives one session against the instrument. Open must be called
// exactly once; Close is idempotent.
type Manager struct {
	inst ports.Instrument
	pol  ports.Policy
	obs  ports.Observability

	machine *fsm.StateMachine

	mu       sync.Mutex
	err      error
	broken   chan struct{}
	stopKeep chan struct{}
	keepDone chan struct{}
	opened   bool
	closed   bool
}

func New(inst ports.Instrument, pol ports.Policy, obs ports.Observability) *Manager {
	m := &Manager{
		inst:   inst,
		pol:    pol,
		obs:    obs,
		broken: make(chan struct{}),
	}

	machine := fsm.NewStateMachine(fsm.State(StateDisconnected))
	machine.Configure(StateDisconnected).
		Permit(triggerConnect, fsm.State(StateConnecting))
	machine.Configure(StateConnecting).
		Permit(triggerEstablished, fsm.State(StateConnected)).
		Permit(triggerFail, fsm.State(StateBroken))
	machine.Configure(StateConnected).
		Permit(triggerFail, fsm.State(StateBroken)).
		Permit(triggerDisconnect, fsm.State(StateDisconnected))
	machine.Configure(StateBroken).
		Permit(triggerDisconnect, fsm.State(StateDisconnected))
	m.machine = machine

	return m
}

// State returns the session state as one of the State* constants.
func (m *Manager) State() string {
	return fmt.Sprintf("%v", m.machine.MustState())
}

// Open registers the client with the instrument and starts the keep-alive
// ticker. Transient transport failures are retried with exponential
// backoff; an instrument refusal is permanent.
func (m *Manager) Open(ctx context.Context) error {
	m.mu.Lock()
	if m.opened {
		m.mu.Unlock()
		return errors.New("tekhsi: session already opened")
	}
	m.opened = true
	m.mu.Unlock()

	if err := m.machine.Fire(triggerConnect); err != nil {
		return err
	}

	op := func() error {
		err := m.inst.Connect(ctx)
		var connectErr *ports.ConnectError
		if errors.As(err, &connectErr) {
			return backoff.Permanent(err)
		}
		return err
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		m.fail(err)
		return err
	}

	if err := m.machine.Fire(triggerEstablished); err != nil {
		return err
	}
	m.obs.LogInfo("session_connected")
	m.obs.SetGauge("tekhsi_session_up", 1)

	m.mu.Lock()
	m.stopKeep = make(chan struct{})
	m.keepDone = make(chan struct{})
	m.mu.Unlock()
	go m.keepAliveLoop(m.stopKeep, m.keepDone)
	return nil
}

// Broken returns a channel closed when the session is fatally lost.
func (m *Manager) Broken() <-chan struct{} {
	return m.broken
}

// Err returns the failure that broke the session, if any.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Close asks the instrument to publish its current acquisition so any
// blocked stream finishes, stops the keep-alive ticker, and unregisters the
// session. Safe to call more than once.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	stop := m.stopKeep
	done := m.keepDone
	m.mu.Unlock()

	if err := m.inst.ForceSequence(ctx); err != nil {
		m.obs.LogDebug("force_sequence_on_close", ports.Field{Key: "err", Value: err})
	}

	if stop != nil {
		close(stop)
		<-done
	}

	var errs []error
	if err := m.inst.Disconnect(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := m.inst.Close(); err != nil {
		errs = append(errs, err)
	}
	if m.machine.MustState() != fsm.State(StateDisconnected) {
		if err := m.machine.Fire(triggerDisconnect); err != nil {
			errs = append(errs, err)
		}
	}
	m.obs.SetGauge("tekhsi_session_up", 0)
	return errors.Join(errs...)
}

func (m *Manager) keepAliveLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	interval := m.pol.KeepAliveInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	misses := m.pol.KeepAliveMisses
	if misses <= 0 {
		misses = 3
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	consecutive := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			err := m.inst.KeepAlive(ctx)
			cancel()
			if err == nil {
				consecutive = 0
				continue
			}
			consecutive++
			m.obs.IncCounter("tekhsi_keepalive_failures_total", 1)
			m.obs.LogError("keepalive_failed", err,
				ports.Field{Key: "consecutive", Value: consecutive})
			if consecutive >= misses {
				m.fail(fmt.Errorf("tekhsi: keep-alive failed %d times: %w", consecutive, err))
				return
			}
		}
	}
}

// fail records the first fatal error, moves the machine to Broken, and
// wakes everyone watching Broken().
func (m *Manager) fail(err error) {
	m.mu.Lock()
	already := m.err != nil
	if !already {
		m.err = err
	}
	m.mu.Unlock()
	if already {
		return
	}

	if fireErr := m.machine.Fire(triggerFail); fireErr != nil {
		m.obs.LogDebug("session_fail_transition", ports.Field{Key: "err", Value: fireErr})
	}
	m.obs.SetGauge("tekhsi_session_up", 0)
	m.obs.LogCritical("session_broken", err)
	close(m.broken)
}
