package internal

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/theplant/luhn"
	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

type IService interface {
	Checkout(context.Context, model.CheckoutInput) (model.Order, error)
	Orders(context.Context) ([]model.Order, error)
	Order(context.Context, string) (model.Order, error)
	UpdateOrderStatus(context.Context, string, model.StatusUpdateInput) (model.Order, error)
	MarkNotificationRead(context.Context, string) error
	MarkAllNotificationsRead(context.Context) error
}

type Service struct {
	Repository IRepository
	Publisher  Publisher
	Detector   *Detector
	Notifier   *Notifier
	logger     *zap.SugaredLogger
}

func NewService(repository IRepository, publisher Publisher, detector *Detector, notifier *Notifier, logger *zap.SugaredLogger) *Service {
	return &Service{
		Repository: repository,
		Publisher:  publisher,
		Detector:   detector,
		Notifier:   notifier,
		logger:     logger,
	}
}

// Checkout persists a new order and publishes it on the push channel. The
// publish is best-effort: the poll loop will pick the order up anyway.
func (s Service) Checkout(ctx context.Context, in model.CheckoutInput) (model.Order, error) {
	if len(in.Items) == 0 {
		return model.Order{}, ErrEmptyOrder
	}

	if in.CardNumber != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(in.CardNumber, " ", ""))
		if err != nil || !luhn.Valid(n) {
			return model.Order{}, ErrCardInvalid
		}
	}

	total := decimal.Zero
	for _, item := range in.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	name := in.CustomerName
	if name == "" {
		name = "Guest"
	}

	order := model.Order{
		Code:         newOrderCode(),
		CustomerName: name,
		Phone:        in.Phone,
		Status:       model.StatusPending,
		Total:        total,
		Priority:     model.PriorityFromTotal(total),
	}

	order, err := s.Repository.CreateOrder(ctx, order)
	if err != nil {
		return model.Order{}, err
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishOrderCreated(order); err != nil {
			s.logger.Errorf("order publish failed: %s", err.Error())
		}
	}

	return order, nil
}

func (s Service) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.Repository.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, ErrNoRecords
	}
	return orders, nil
}

func (s Service) Order(ctx context.Context, key string) (model.Order, error) {
	return s.Repository.GetOrderByKey(ctx, key)
}

// UpdateOrderStatus pushes the change to the store and, only on success,
// retires the local "new" flag and marks the notification read. Any status
// change retires the flag, not just specific transitions.
func (s Service) UpdateOrderStatus(ctx context.Context, key string, in model.StatusUpdateInput) (model.Order, error) {
	if !model.ValidStatus(in.Status) {
		return model.Order{}, ErrUnknownStatus
	}

	order, err := s.Repository.UpdateOrderStatus(ctx, key, in.Status, in.Notes)
	if err != nil {
		return model.Order{}, err
	}

	s.retire(order)
	return order, nil
}

func (s Service) MarkNotificationRead(ctx context.Context, key string) error {
	if err := s.Repository.MarkOrderSeen(ctx, key); err != nil {
		return err
	}
	s.Detector.Retire(key)
	s.Notifier.MarkRead(key)
	return nil
}

func (s Service) MarkAllNotificationsRead(ctx context.Context) error {
	if err := s.Repository.MarkAllSeen(ctx); err != nil {
		return err
	}
	s.Detector.RetireAll()
	s.Notifier.MarkAllRead()
	return nil
}

func (s Service) retire(o model.Order) {
	if o.ID != 0 {
		s.Detector.Retire(CanonKey(o.ID))
		s.Notifier.MarkRead(CanonKey(o.ID))
	}
	if o.Code != "" {
		s.Detector.Retire(o.Code)
		s.Notifier.MarkRead(o.Code)
	}
}

func newOrderCode() string {
	return "ORD-" + time.Now().UTC().Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
}
