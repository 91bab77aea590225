package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/avetikov/orderwatch/internal"
	mock_internal "github.com/avetikov/orderwatch/internal/mock"
	"github.com/avetikov/orderwatch/internal/model"
)

var _ = Describe("Watcher", func() {
	var (
		w        *internal.Watcher
		rep      *mock_internal.MockIRepository
		det      *internal.Detector
		notifier *internal.Notifier
	)

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		det = internal.NewDetector()
		notifier = internal.NewNotifier(nil, 5*time.Second, logger.Sugar())
		w = internal.NewWatcher(rep, det, notifier, time.Second, logger.Sugar())
	})

	It("caches the snapshot and stays silent on the first poll", func() {
		ctx := context.Background()
		snapshot := []model.Order{order(1, "ORD-A"), order(2, "ORD-B")}

		rep.EXPECT().GetOrders(ctx).Return(snapshot, nil)

		Expect(w.Poll(ctx)).Should(Succeed())
		Expect(w.Orders()).Should(HaveLen(2))
		Expect(notifier.Unread()).Should(Equal(0))
	})

	It("notifies once for an order that appears in a later poll", func() {
		ctx := context.Background()

		rep.EXPECT().GetOrders(ctx).Return([]model.Order{order(1, "ORD-A")}, nil)
		Expect(w.Poll(ctx)).Should(Succeed())

		grown := []model.Order{order(3, "ORD-C"), order(1, "ORD-A")}
		rep.EXPECT().GetOrders(ctx).Return(grown, nil).Times(2)

		Expect(w.Poll(ctx)).Should(Succeed())
		Expect(notifier.Unread()).Should(Equal(1))

		// same snapshot again: nothing new
		Expect(w.Poll(ctx)).Should(Succeed())
		Expect(notifier.Unread()).Should(Equal(1))
	})

	It("keeps the baseline and cache intact across a failed fetch", func() {
		ctx := context.Background()

		rep.EXPECT().GetOrders(ctx).Return([]model.Order{order(1, "ORD-A")}, nil)
		Expect(w.Poll(ctx)).Should(Succeed())

		boom := errors.New("connection refused")
		rep.EXPECT().GetOrders(ctx).Return(nil, boom)

		Expect(w.Poll(ctx)).Should(MatchError(boom))
		Expect(w.LastErr()).Should(MatchError(boom))
		Expect(w.Orders()).Should(HaveLen(1))

		// recovery clears the banner and detection still works
		rep.EXPECT().GetOrders(ctx).Return([]model.Order{order(3, "ORD-C"), order(1, "ORD-A")}, nil)
		Expect(w.Poll(ctx)).Should(Succeed())
		Expect(w.LastErr()).Should(BeNil())
		Expect(notifier.Unread()).Should(Equal(1))
	})

	It("ingests a push delivery once and dedupes the next poll", func() {
		ctx := context.Background()

		rep.EXPECT().GetOrders(ctx).Return([]model.Order{order(1, "ORD-A")}, nil)
		Expect(w.Poll(ctx)).Should(Succeed())

		x := order(9, "ORD-X")
		w.Ingest(x)
		Expect(notifier.Unread()).Should(Equal(1))
		Expect(w.Orders()[0].Code).Should(Equal("ORD-X"))

		rep.EXPECT().GetOrders(ctx).Return([]model.Order{x, order(1, "ORD-A")}, nil)
		Expect(w.Poll(ctx)).Should(Succeed())
		Expect(notifier.Unread()).Should(Equal(1))
	})

	It("drops duplicate push deliveries", func() {
		ctx := context.Background()

		rep.EXPECT().GetOrders(ctx).Return(nil, nil)
		Expect(w.Poll(ctx)).Should(Succeed())

		x := order(9, "ORD-X")
		w.Ingest(x)
		w.Ingest(x)

		Expect(notifier.Unread()).Should(Equal(1))
		Expect(w.Orders()).Should(HaveLen(1))
	})

	It("ignores push deliveries before the first snapshot", func() {
		w.Ingest(order(9, "ORD-X"))

		Expect(notifier.Unread()).Should(Equal(0))
		Expect(w.Orders()).Should(BeEmpty())
	})

	It("toggles auto refresh", func() {
		Expect(w.AutoRefresh()).Should(BeTrue())
		w.SetAutoRefresh(false)
		Expect(w.AutoRefresh()).Should(BeFalse())
	})
})
