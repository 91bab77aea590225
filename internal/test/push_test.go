package test

import (
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/avetikov/orderwatch/internal"
	"github.com/avetikov/orderwatch/internal/model"
)

var _ = Describe("DecodeOrder", func() {
	var logger *zap.SugaredLogger

	BeforeEach(func() {
		z, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		logger = z.Sugar()
	})

	It("decodes a well-formed message", func() {
		body := []byte(`{"id": 7, "order_id": "ORD-7", "customer_name": "Marta", "status": "pending", "total": "740", "priority": "normal", "is_new": true, "created_at": "2026-08-30T10:00:00Z"}`)

		o := internal.DecodeOrder(body, logger)
		Expect(o.ID).Should(Equal(7))
		Expect(o.Code).Should(Equal("ORD-7"))
		Expect(o.CustomerName).Should(Equal("Marta"))
		Expect(o.Total.String()).Should(Equal("740"))
	})

	It("tolerates ids sent as strings or numbers alike", func() {
		asNumber := internal.DecodeOrder([]byte(`{"id": 5}`), logger)
		asString := internal.DecodeOrder([]byte(`{"id": "5"}`), logger)

		Expect(asNumber.ID).Should(Equal(5))
		Expect(asString.ID).Should(Equal(5))
	})

	It("substitutes display defaults for missing fields", func() {
		o := internal.DecodeOrder([]byte(`{"order_id": "ORD-9"}`), logger)

		Expect(o.CustomerName).Should(Equal("Unknown Customer"))
		Expect(o.Total.IsZero()).Should(BeTrue())
		Expect(o.Status).Should(Equal(model.StatusPending))
		Expect(o.Priority).Should(Equal(model.PriorityLow))
		Expect(o.IsNew).Should(BeTrue())
		Expect(o.CreatedAt).ShouldNot(BeZero())
	})

	It("does not panic on garbage", func() {
		o := internal.DecodeOrder([]byte(`not json`), logger)
		Expect(o.ID).Should(BeZero())
		Expect(o.Code).Should(BeEmpty())
	})
})
