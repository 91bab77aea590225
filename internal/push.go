package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

const (
	ordersExchange = "orders.created"
	adminQueue     = "orderwatch.admin"
)

// Publisher is the checkout-side half of the push channel.
type Publisher interface {
	PublishOrderCreated(model.Order) error
}

// MQ carries both halves of the push channel: checkout publishes created
// orders to a fanout exchange, the admin subscriber consumes them for the
// low-latency path.
type MQ struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func DialMQ(uri string) (*MQ, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err = ch.ExchangeDeclare(ordersExchange, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if _, err = ch.QueueDeclare(adminQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	if err = ch.QueueBind(adminQueue, "", ordersExchange, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &MQ{conn: conn, ch: ch}, nil
}

func (m *MQ) Close() {
	if m == nil {
		return
	}
	if m.ch != nil {
		_ = m.ch.Close()
	}
	if m.conn != nil {
		_ = m.conn.Close()
	}
}

func (m *MQ) PublishOrderCreated(o model.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return m.ch.Publish(ordersExchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		Body:         body,
	})
}

// Subscribe consumes the admin queue and feeds each delivery through the
// watcher. Duplicate deliveries are fine: the detector's set membership
// makes ingestion idempotent. Returns when the context is cancelled.
func (m *MQ) Subscribe(ctx context.Context, w *Watcher, logger *zap.SugaredLogger) error {
	deliveries, err := m.ch.Consume(adminQueue, "orderwatch", true, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.Ingest(DecodeOrder(d.Body, logger))
		}
	}
}

// DecodeOrder is deliberately forgiving: ids may arrive as numbers or
// strings, and missing fields fall back to display defaults so one
// malformed message cannot block the rest of the stream.
func DecodeOrder(body []byte, logger *zap.SugaredLogger) model.Order {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	raw := map[string]interface{}{}
	if err := dec.Decode(&raw); err != nil {
		logger.Errorf("push message decode failed: %s", err.Error())
	}

	var o model.Order
	if n, err := json.Number(CanonKey(raw["id"])).Int64(); err == nil {
		o.ID = int(n)
	}
	o.Code = CanonKey(raw["order_id"])
	o.CustomerName = stringField(raw, "customer_name", "Unknown Customer")
	o.Status = stringField(raw, "status", model.StatusPending)
	o.Total = decimalField(raw, "total")
	o.Priority = stringField(raw, "priority", model.PriorityFromTotal(o.Total))
	o.IsNew = boolField(raw, "is_new", true)
	o.CreatedAt = timeField(raw, "created_at")
	return o
}

func stringField(raw map[string]interface{}, key, def string) string {
	if s, ok := raw[key].(string); ok && s != "" {
		return s
	}
	return def
}

func boolField(raw map[string]interface{}, key string, def bool) bool {
	if b, ok := raw[key].(bool); ok {
		return b
	}
	return def
}

func decimalField(raw map[string]interface{}, key string) decimal.Decimal {
	switch t := raw[key].(type) {
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d
		}
	case string:
		if d, err := decimal.NewFromString(t); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func timeField(raw map[string]interface{}, key string) time.Time {
	if s, ok := raw[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
