package test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/avetikov/orderwatch/internal"
	"github.com/avetikov/orderwatch/internal/model"
)

var orderColumns = []string{
	"id", "code", "customer_name", "phone", "status", "total",
	"priority", "notes", "is_new", "admin_seen", "created_at",
}

var _ = Describe("Repository", func() {
	var (
		repo internal.Repository
		mock sqlmock.Sqlmock
	)

	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})

	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("GetOrders without error", func() {
		o := order(1, "ORD-A")

		rows := sqlmock.NewRows(orderColumns).
			AddRow(o.ID, o.Code, o.CustomerName, o.Phone, o.Status, o.Total,
				o.Priority, o.Notes, o.IsNew, o.AdminSeen, o.CreatedAt)

		mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").
			WillReturnRows(rows).RowsWillBeClosed()

		orders, err := repo.GetOrders(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(orders).Should(HaveLen(1))
		Expect(orders[0].Code).Should(Equal("ORD-A"))
		Expect(orders[0].IsNew).Should(BeTrue())
	})

	It("GetOrders with error", func() {
		mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY created_at DESC").
			WillReturnError(errors.New("some error"))

		_, err := repo.GetOrders(context.Background())
		Expect(err).Should(HaveOccurred())
	})

	It("GetOrderByKey matches by code or id", func() {
		o := order(3, "ORD-C")

		rows := sqlmock.NewRows(orderColumns).
			AddRow(o.ID, o.Code, o.CustomerName, o.Phone, o.Status, o.Total,
				o.Priority, o.Notes, o.IsNew, o.AdminSeen, o.CreatedAt)

		mock.ExpectQuery("SELECT (.+) FROM orders WHERE code = \\$1 OR id::text = \\$1").
			WithArgs("ORD-C").WillReturnRows(rows)

		got, err := repo.GetOrderByKey(context.Background(), "ORD-C")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(got.ID).Should(Equal(3))
	})

	It("GetOrderByKey not found", func() {
		mock.ExpectQuery("SELECT (.+) FROM orders WHERE code = \\$1 OR id::text = \\$1").
			WithArgs("missing").WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := repo.GetOrderByKey(context.Background(), "missing")
		Expect(err).Should(Equal(internal.ErrOrderNotFound))
	})

	It("CreateOrder without error", func() {
		now := time.Now()
		o := model.Order{
			Code:         "ORD-NEW",
			CustomerName: "Marta",
			Status:       model.StatusPending,
			Total:        decimal.NewFromInt(740),
			Priority:     model.PriorityNormal,
		}

		mock.ExpectQuery("INSERT INTO orders (.+) VALUES (.+) RETURNING id, created_at").
			WithArgs(o.Code, o.CustomerName, o.Phone, o.Status, o.Total, o.Priority, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))

		created, err := repo.CreateOrder(context.Background(), o)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(created.ID).Should(Equal(7))
		Expect(created.IsNew).Should(BeTrue())
		Expect(created.AdminSeen).Should(BeFalse())
	})

	It("UpdateOrderStatus clears is_new and sets admin_seen", func() {
		o := order(3, "ORD-C")
		o.Status = model.StatusConfirmed
		o.IsNew = false
		o.AdminSeen = true

		rows := sqlmock.NewRows(orderColumns).
			AddRow(o.ID, o.Code, o.CustomerName, o.Phone, o.Status, o.Total,
				o.Priority, o.Notes, o.IsNew, o.AdminSeen, o.CreatedAt)

		mock.ExpectQuery("UPDATE orders SET status = \\$1, (.+) RETURNING (.+)").
			WithArgs(model.StatusConfirmed, "", "ORD-C").WillReturnRows(rows)

		got, err := repo.UpdateOrderStatus(context.Background(), "ORD-C", model.StatusConfirmed, "")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(got.IsNew).Should(BeFalse())
		Expect(got.AdminSeen).Should(BeTrue())
	})

	It("UpdateOrderStatus not found", func() {
		mock.ExpectQuery("UPDATE orders SET status = \\$1, (.+) RETURNING (.+)").
			WithArgs(model.StatusReady, "", "missing").WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := repo.UpdateOrderStatus(context.Background(), "missing", model.StatusReady, "")
		Expect(err).Should(Equal(internal.ErrOrderNotFound))
	})

	It("MarkOrderSeen without error", func() {
		mock.ExpectExec("UPDATE orders SET is_new = FALSE, admin_seen = TRUE WHERE (.+)").
			WithArgs("ORD-C").WillReturnResult(sqlmock.NewResult(0, 1))

		Expect(repo.MarkOrderSeen(context.Background(), "ORD-C")).Should(Succeed())
	})

	It("MarkOrderSeen not found", func() {
		mock.ExpectExec("UPDATE orders SET is_new = FALSE, admin_seen = TRUE WHERE (.+)").
			WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkOrderSeen(context.Background(), "missing")
		Expect(err).Should(Equal(internal.ErrOrderNotFound))
	})

	It("MarkAllSeen without error", func() {
		mock.ExpectExec("UPDATE orders SET is_new = FALSE, admin_seen = TRUE WHERE is_new = TRUE OR admin_seen = FALSE").
			WillReturnResult(sqlmock.NewResult(0, 3))

		Expect(repo.MarkAllSeen(context.Background())).Should(Succeed())
	})
})
