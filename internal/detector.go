package internal

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/avetikov/orderwatch/internal/model"
)

// Detector tracks which order identifiers have already been shown to the
// operator. One instance per admin session; the baseline is seeded from the
// first full snapshot and only ever grows.
type Detector struct {
	mu       sync.Mutex
	baseline map[string]struct{}
	flagged  map[string]struct{} // primary keys currently displayed as new
	aliases  map[string]string   // any canonical key -> primary key
	seeded   bool
}

func NewDetector() *Detector {
	return &Detector{
		baseline: make(map[string]struct{}),
		flagged:  make(map[string]struct{}),
		aliases:  make(map[string]string),
	}
}

// Classify diffs a full snapshot against the baseline and returns the orders
// seen for the first time, in snapshot order. The first call seeds the
// baseline with the entire snapshot and reports nothing, regardless of the
// store-side is_new flags.
func (d *Detector) Classify(snapshot []model.Order) []model.Order {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.seeded {
		for i := range snapshot {
			d.admit(snapshot[i], false)
		}
		d.seeded = true
		return nil
	}

	var fresh []model.Order
	for i := range snapshot {
		if len(orderKeys(snapshot[i])) == 0 || d.known(snapshot[i]) {
			continue
		}
		d.admit(snapshot[i], true)
		fresh = append(fresh, snapshot[i])
	}
	return fresh
}

// ClassifyOne is the push-path entry point sharing the same baseline.
// Deliveries before the first snapshot classification are ignored; the
// seeding pass will pick those orders up silently.
func (d *Detector) ClassifyOne(o model.Order) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.seeded || len(orderKeys(o)) == 0 || d.known(o) {
		return false
	}
	d.admit(o, true)
	return true
}

// Retire drops an order from the flagged display set. The baseline is
// untouched; the order can never re-trigger a notification.
func (d *Detector) Retire(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	primary, ok := d.aliases[CanonKey(key)]
	if !ok {
		return false
	}
	if _, ok = d.flagged[primary]; !ok {
		return false
	}
	delete(d.flagged, primary)
	return true
}

func (d *Detector) RetireAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flagged = make(map[string]struct{})
}

// FlaggedCount is the number of orders still displayed as new.
func (d *Detector) FlaggedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.flagged)
}

func (d *Detector) Flagged(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	primary, ok := d.aliases[CanonKey(key)]
	if !ok {
		return false
	}
	_, ok = d.flagged[primary]
	return ok
}

// known and admit run under d.mu. Membership and insertion share one
// critical section so a racing poll and push cannot both report an order.
func (d *Detector) known(o model.Order) bool {
	for _, k := range orderKeys(o) {
		if _, ok := d.baseline[k]; ok {
			return true
		}
	}
	return false
}

func (d *Detector) admit(o model.Order, flag bool) {
	keys := orderKeys(o)
	if len(keys) == 0 {
		return
	}
	primary := keys[0]
	for _, k := range keys {
		d.baseline[k] = struct{}{}
		d.aliases[k] = primary
	}
	if flag {
		d.flagged[primary] = struct{}{}
	}
}

// orderKeys returns every canonical key an order can be matched by. Both the
// numeric id and the human-facing code are valid lookup keys.
func orderKeys(o model.Order) []string {
	var keys []string
	if o.ID != 0 {
		keys = append(keys, CanonKey(o.ID))
	}
	if o.Code != "" {
		keys = append(keys, CanonKey(o.Code))
	}
	return keys
}

// CanonKey reduces an identifier of any primitive representation to one
// canonical string, so numeric 5 and "5" name the same order.
func CanonKey(v interface{}) string {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.ParseFloat(s, 64); err == nil && n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return s
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return CanonKey(t.String())
	default:
		return ""
	}
}
