package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"edc-transfer/internal/models"
	"edc-transfer/internal/notify"
)

// Notification messages
const (
	MsgPollingTimedOut = "Transfer polling timed out."
)

// Poller tracks push-style transfers until the connector reports a terminal
// state. All tracked transfers share one ticker and one global deadline that
// starts when the ticker starts.
type Poller struct {
	gateway  StateGetter
	notifier notify.Notifier
	logger   *zap.Logger
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// guarded by mu
	mu            sync.Mutex
	inFlight      map[string]*models.RunningTransferProcess
	epoch         time.Time
	stop          chan struct{} // nil while no ticker runs
	timersStarted int

	// serializes ticks
	tickMu sync.Mutex
}

// NewPoller creates a poller. The ticker is started lazily by Start.
func NewPoller(
	gateway StateGetter,
	notifier notify.Notifier,
	interval time.Duration,
	timeout time.Duration,
	logger *zap.Logger,
) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultPollingTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		gateway:  gateway,
		notifier: notifier,
		logger:   logger.Named("poller"),
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		inFlight: make(map[string]*models.RunningTransferProcess),
	}
}

// Start tracks a transfer. The first transfer arms the shared ticker and
// fixes the polling epoch; later ones ride along on the running ticker.
func (p *Poller) Start(transferID, contractID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.inFlight[transferID] = &models.RunningTransferProcess{
		ProcessID:  transferID,
		ContractID: contractID,
		State:      models.TransferStateRequested,
	}

	if p.stop != nil {
		p.logger.Debug("Transfer joined running poll loop",
			zap.String("transfer_id", transferID),
			zap.String("contract_id", contractID),
			zap.Int("in_flight", len(p.inFlight)))
		return
	}

	p.armLocked()

	p.logger.Info("Poll loop started",
		zap.String("transfer_id", transferID),
		zap.String("contract_id", contractID),
		zap.Duration("poll_interval", p.interval),
		zap.Duration("timeout", p.timeout))
}

func (p *Poller) armLocked() {
	p.epoch = p.now()
	p.stop = make(chan struct{})
	p.timersStarted++

	p.wg.Add(1)
	go p.run(p.stop)
}

func (p *Poller) disarmLocked() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

// run drives ticks until the loop is disarmed or the poller shuts down
func (p *Poller) run(stop <-chan struct{}) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			p.tick(p.ctx)
		}
	}
}

type observation struct {
	transferID string
	state      models.TransferState
}

// tick executes one polling cycle
func (p *Poller) tick(ctx context.Context) {
	p.tickMu.Lock()
	defer p.tickMu.Unlock()

	p.mu.Lock()
	if p.stop == nil {
		p.mu.Unlock()
		return
	}

	if pollingExpired(p.epoch, p.now(), p.timeout) {
		dropped := len(p.inFlight)
		p.disarmLocked()
		p.inFlight = make(map[string]*models.RunningTransferProcess)
		p.mu.Unlock()

		p.logger.Warn("Transfer polling timed out, dropping tracked transfers",
			zap.Int("dropped", dropped),
			zap.Duration("timeout", p.timeout))
		p.notifier.Error(ctx, MsgPollingTimedOut)
		return
	}

	tracked := lo.Keys(p.inFlight)
	p.mu.Unlock()

	tickCtx, cancel := context.WithTimeout(ctx, TickTimeout)
	defer cancel()

	observed, queryErr := p.queryStates(tickCtx, tracked)
	finished := lo.Filter(observed, func(o *observation, _ int) bool {
		return o.state.IsTerminal()
	})

	p.mu.Lock()
	for _, o := range observed {
		if rt, ok := p.inFlight[o.transferID]; ok {
			rt.State = o.state
		}
	}
	retired := make([]*observation, 0, len(finished))
	for _, o := range finished {
		if _, ok := p.inFlight[o.transferID]; ok {
			delete(p.inFlight, o.transferID)
			retired = append(retired, o)
		}
	}
	remaining := len(p.inFlight)
	if remaining == 0 {
		p.disarmLocked()
	}
	p.mu.Unlock()

	for _, o := range retired {
		p.logger.Info("Transfer reached terminal state",
			zap.String("transfer_id", o.transferID),
			zap.String("state", string(o.state)))
		p.notifier.Info(ctx, fmt.Sprintf("Transfer [%s] complete!", o.transferID), notify.TransferHistoryAction)
	}

	if queryErr != nil {
		p.logger.Error("Failed to poll transfer states",
			zap.Int("in_flight", remaining),
			zap.Error(queryErr))
		p.notifier.Error(ctx, fmt.Sprintf("Failed to poll transfer state: %v", queryErr))
	}

	if remaining == 0 {
		p.logger.Info("Poll loop stopped, no transfers in flight")
	}
}

// queryStates asks for every state at once. Successful observations are
// returned even when some queries fail; the error is the first failure.
func (p *Poller) queryStates(ctx context.Context, transferIDs []string) ([]*observation, error) {
	results := make([]*observation, len(transferIDs))

	var g errgroup.Group
	for i, id := range transferIDs {
		i, id := i, id
		g.Go(func() error {
			state, err := p.gateway.GetState(ctx, id)
			if err != nil {
				return fmt.Errorf("transfer %s: %w", id, err)
			}
			results[i] = &observation{transferID: id, state: state}
			return nil
		})
	}
	err := g.Wait()

	return lo.Compact(results), err
}

// pollingExpired reports whether the global polling deadline has passed
func pollingExpired(epoch, now time.Time, timeout time.Duration) bool {
	return now.Sub(epoch) > timeout
}

// InProgress reports whether any tracked transfer belongs to contractID
func (p *Poller) InProgress(contractID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return lo.SomeBy(lo.Values(p.inFlight), func(rt *models.RunningTransferProcess) bool {
		return rt.ContractID == contractID
	})
}

// Len returns the number of tracked transfers
func (p *Poller) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inFlight)
}

// Running reports whether the shared ticker is armed
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Snapshot returns copies of the tracked transfers
func (p *Poller) Snapshot() []models.RunningTransferProcess {
	p.mu.Lock()
	defer p.mu.Unlock()

	return lo.MapToSlice(p.inFlight, func(_ string, rt *models.RunningTransferProcess) models.RunningTransferProcess {
		return *rt
	})
}

// Shutdown stops the ticker and waits for an in-progress tick to return
func (p *Poller) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
