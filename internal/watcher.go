package internal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

// Watcher drives the poll loop: it pulls full order snapshots from the
// store, runs them through the Detector and hands genuinely-new orders to
// the Notifier. It also caches the last good snapshot for the admin list.
type Watcher struct {
	repo     IRepository
	detector *Detector
	notifier *Notifier
	logger   *zap.SugaredLogger
	interval time.Duration
	refresh  chan struct{}

	mu      sync.Mutex
	auto    bool
	orders  []model.Order
	lastErr error
}

func NewWatcher(repo IRepository, detector *Detector, notifier *Notifier, interval time.Duration, logger *zap.SugaredLogger) *Watcher {
	return &Watcher{
		repo:     repo,
		detector: detector,
		notifier: notifier,
		logger:   logger,
		interval: interval,
		refresh:  make(chan struct{}, 1),
		auto:     true,
	}
}

// Run polls immediately, then on every tick while auto-refresh is enabled,
// and whenever Refresh is called. Returns when the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	_ = w.Poll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.AutoRefresh() {
				_ = w.Poll(ctx)
			}
		case <-w.refresh:
			_ = w.Poll(ctx)
		}
	}
}

// Poll performs one fetch-classify-dispatch pass. A failed fetch leaves the
// detector baseline and the cached snapshot untouched.
func (w *Watcher) Poll(ctx context.Context) error {
	orders, err := w.repo.GetOrders(ctx)
	if err != nil {
		w.logger.Errorf("order snapshot fetch failed: %s", err.Error())
		w.mu.Lock()
		w.lastErr = err
		w.mu.Unlock()
		return err
	}

	fresh := w.detector.Classify(orders)
	w.notifier.Dispatch(fresh)

	w.mu.Lock()
	w.orders = orders
	w.lastErr = nil
	w.mu.Unlock()
	return nil
}

// Ingest feeds one push-delivered order through the shared detector. New
// orders are prepended to the cached list without waiting for the next poll.
func (w *Watcher) Ingest(o model.Order) {
	if !w.detector.ClassifyOne(o) {
		return
	}
	w.mu.Lock()
	w.orders = append([]model.Order{o}, w.orders...)
	w.mu.Unlock()
	w.notifier.DispatchOne(o)
}

// Refresh requests an immediate poll. Non-blocking; a pending request is
// enough.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

func (w *Watcher) SetAutoRefresh(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.auto = on
}

func (w *Watcher) AutoRefresh() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.auto
}

// Orders returns the last good snapshot.
func (w *Watcher) Orders() []model.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.Order, len(w.orders))
	copy(out, w.orders)
	return out
}

// LastErr reports the most recent fetch failure, nil after a good poll.
func (w *Watcher) LastErr() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}
