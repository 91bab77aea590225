package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/avetikov/orderwatch/internal/model"
)

type Handlers struct {
	Service  IService
	Watcher  *Watcher
	Detector *Detector
	Notifier *Notifier
	logger   *zap.SugaredLogger
}

func NewHandlers(service IService, watcher *Watcher, detector *Detector, notifier *Notifier, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{
		Service:  service,
		Watcher:  watcher,
		Detector: detector,
		Notifier: notifier,
		logger:   logger,
	}
}

func (h *Handlers) Checkout(c *fiber.Ctx) error {
	var in model.CheckoutInput

	if err := c.BodyParser(&in); err != nil {
		h.logger.Errorf("Error on checkout request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.Checkout(c.Context(), in)
	if err != nil {
		h.logger.Errorf("Error on checkout request: %s", err.Error())
		if errors.Is(err, ErrEmptyOrder) || errors.Is(err, ErrCardInvalid) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// AdminOrders serves the watcher's cached snapshot; a cold cache falls back
// to the store directly. The last fetch error rides along for the banner.
func (h *Handlers) AdminOrders(c *fiber.Ctx) error {
	orders := h.Watcher.Orders()

	if len(orders) == 0 {
		var err error
		orders, err = h.Service.Orders(c.Context())
		if err != nil {
			if errors.Is(err, ErrNoRecords) {
				return c.SendStatus(fiber.StatusNoContent)
			}
			h.logger.Errorf("Error on admin orders request: %s", err.Error())
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	resp := fiber.Map{
		"orders":    orders,
		"new_count": h.Detector.FlaggedCount(),
	}
	if err := h.Watcher.LastErr(); err != nil {
		resp["fetch_error"] = err.Error()
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *Handlers) AdminOrder(c *fiber.Ctx) error {
	order, err := h.Service.Order(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		h.logger.Errorf("Error on admin order request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) UpdateOrderStatus(c *fiber.Ctx) error {
	var in model.StatusUpdateInput

	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.UpdateOrderStatus(c.Context(), c.Params("key"), in)
	if err != nil {
		h.logger.Errorf("Error on status update request: %s", err.Error())
		if errors.Is(err, ErrUnknownStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": err.Error()})
		}
		if errors.Is(err, ErrOrderNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) RefreshOrders(c *fiber.Ctx) error {
	h.Watcher.Refresh()
	return c.SendStatus(fiber.StatusAccepted)
}

type settingsInput struct {
	AutoRefresh *bool `json:"auto_refresh"`
	Sound       *bool `json:"sound"`
}

func (h *Handlers) UpdateSettings(c *fiber.Ctx) error {
	var in settingsInput

	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if in.AutoRefresh != nil {
		h.Watcher.SetAutoRefresh(*in.AutoRefresh)
	}
	if in.Sound != nil {
		h.Notifier.SetSound(*in.Sound)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"auto_refresh": h.Watcher.AutoRefresh()})
}

func (h *Handlers) Notifications(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": h.Notifier.Notifications(),
		"unread":        h.Notifier.Unread(),
		"toasts":        h.Notifier.Toasts(),
	})
}

func (h *Handlers) MarkNotificationRead(c *fiber.Ctx) error {
	err := h.Service.MarkNotificationRead(c.Context(), c.Params("key"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		h.logger.Errorf("Error on notification read request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := h.Service.MarkAllNotificationsRead(c.Context()); err != nil {
		h.logger.Errorf("Error on notification read-all request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ResetNewCount clears the counter badge only; per-order read state and the
// flagged rows keep their own lifecycle.
func (h *Handlers) ResetNewCount(c *fiber.Ctx) error {
	h.Notifier.ResetCount()
	return c.SendStatus(fiber.StatusOK)
}
