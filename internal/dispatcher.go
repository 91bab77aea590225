package internal

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

// Chime plays the audible new-order cue. Implementations are best-effort;
// errors are swallowed by the Notifier.
type Chime interface {
	Play(priority string) error
}

// StdoutBell is the default chime: a terminal bell on stdout.
type StdoutBell struct{}

func (StdoutBell) Play(string) error {
	_, err := os.Stdout.WriteString("\a")
	return err
}

// Notifier turns detected orders into toasts, notification records, an
// unread counter and at most one chime per detection tick. Everything here
// is UI feedback: failures never propagate back into the fetch loop.
type Notifier struct {
	chime    Chime
	logger   *zap.SugaredLogger
	toastTTL time.Duration

	mu            sync.Mutex
	soundOn       bool
	notifications []model.Notification
	keys          map[string]string // canonical order key -> notification id
	toasts        []model.Toast
	unread        int
}

func NewNotifier(chime Chime, toastTTL time.Duration, logger *zap.SugaredLogger) *Notifier {
	return &Notifier{
		chime:    chime,
		logger:   logger,
		toastTTL: toastTTL,
		keys:     make(map[string]string),
	}
}

// Dispatch handles one detection tick. Multiple arrivals in the same tick
// produce a single aggregate toast and a single chime.
func (n *Notifier) Dispatch(batch []model.Order) {
	if len(batch) == 0 {
		return
	}

	n.mu.Lock()
	for i := range batch {
		n.record(batch[i])
	}
	n.unread += len(batch)

	if len(batch) == 1 {
		n.toast(singleMessage(batch[0]), 1, batch[0].Total, batch[0].Priority)
	} else {
		sum := decimal.Zero
		prio := model.PriorityLow
		for i := range batch {
			sum = sum.Add(batch[i].Total)
			prio = higherPriority(prio, batch[i].Priority)
		}
		msg := fmt.Sprintf("%d new orders totalling %s", len(batch), sum.StringFixed(2))
		n.toast(msg, len(batch), sum, prio)
	}
	prio := n.toasts[len(n.toasts)-1].Priority
	n.mu.Unlock()

	n.play(prio)
}

// DispatchOne handles a single push delivery: one toast, one chime.
func (n *Notifier) DispatchOne(o model.Order) {
	n.Dispatch([]model.Order{o})
}

// MarkRead flips the notification for an order and decrements the unread
// counter, clamped at zero. Idempotent.
func (n *Notifier) MarkRead(key string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	id, ok := n.keys[CanonKey(key)]
	if !ok {
		return false
	}
	for i := range n.notifications {
		if n.notifications[i].ID != id {
			continue
		}
		if n.notifications[i].Read {
			return false
		}
		n.notifications[i].Read = true
		if n.unread > 0 {
			n.unread--
		}
		return true
	}
	return false
}

func (n *Notifier) MarkAllRead() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.notifications {
		n.notifications[i].Read = true
	}
	n.unread = 0
}

// ResetCount clears the counter badge without touching per-order read state.
func (n *Notifier) ResetCount() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.unread = 0
}

func (n *Notifier) Unread() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

func (n *Notifier) Notifications() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]model.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

// Toasts returns the still-visible toasts, pruning expired ones.
func (n *Notifier) Toasts() []model.Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	cutoff := time.Now().Add(-n.toastTTL)
	live := n.toasts[:0]
	for _, t := range n.toasts {
		if t.CreatedAt.After(cutoff) {
			live = append(live, t)
		}
	}
	n.toasts = live

	out := make([]model.Toast, len(live))
	copy(out, live)
	return out
}

// SetSound toggles the chime. Sound starts disabled and stays off until the
// operator's first explicit enable.
func (n *Notifier) SetSound(on bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.soundOn = on
}

func (n *Notifier) record(o model.Order) {
	id := uuid.NewString()
	n.notifications = append([]model.Notification{{
		ID:        id,
		OrderKey:  o.Code,
		Message:   singleMessage(o),
		Priority:  o.Priority,
		CreatedAt: time.Now(),
	}}, n.notifications...)
	for _, k := range orderKeys(o) {
		n.keys[k] = id
	}
}

func (n *Notifier) toast(msg string, count int, total decimal.Decimal, priority string) {
	n.toasts = append(n.toasts, model.Toast{
		ID:        uuid.NewString(),
		Message:   msg,
		Count:     count,
		Total:     total,
		Priority:  priority,
		CreatedAt: time.Now(),
	})
}

func (n *Notifier) play(priority string) {
	n.mu.Lock()
	on := n.soundOn
	n.mu.Unlock()
	if !on || n.chime == nil {
		return
	}
	if err := n.chime.Play(priority); err != nil {
		n.logger.Debugf("chime failed: %s", err.Error())
	}
}

func singleMessage(o model.Order) string {
	name := o.CustomerName
	if name == "" {
		name = "Unknown Customer"
	}
	return fmt.Sprintf("New order %s from %s, total %s", o.Code, name, o.Total.StringFixed(2))
}

var priorityRank = map[string]int{
	model.PriorityLow:    0,
	model.PriorityNormal: 1,
	model.PriorityHigh:   2,
	model.PriorityUrgent: 3,
}

func higherPriority(a, b string) string {
	if priorityRank[b] > priorityRank[a] {
		return b
	}
	return a
}
