package test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rentadrive/rentadrive/internal/domain"
)

// These specs run against the second server instance, which boots with
// VERIFY_TOTALS=true and recomputes every submitted total from the catalog.
var _ = Describe("/bookings with total verification enabled", func() {
	It("accepts a submission whose total matches the computed quote", func(ctx context.Context) {
		// Toyota Avanza for three days: no discount tier applies.
		res, err := strictClient.SubmitBooking(domain.BookingRequest{
			VehicleID:  2,
			RentalDays: 3,
			ExtraHours: 0,
			TotalPrice: 2670000,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveHTTPStatus(http.StatusCreated))
		Expect(countBookings(ctx)).To(Equal(int64(1)))
	})

	It("rejects a mismatched total without writing a row", func(ctx context.Context) {
		res, err := strictClient.SubmitBooking(domain.BookingRequest{
			VehicleID:  2,
			RentalDays: 3,
			ExtraHours: 0,
			TotalPrice: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveHTTPStatus(http.StatusBadRequest))

		body := readJSONBody[apiErrorBody](res, nil)
		Expect(body.Error).To(Equal("total_mismatch"))
		Expect(body.Details).To(ContainElement("total_price: expected 2670000"))

		Expect(countBookings(ctx)).To(BeZero())
	})

	It("rejects a total ignoring the discount tier", func(ctx context.Context) {
		// Six days of the Innova Zenix hit the 10% tier; the undiscounted
		// subtotal must not be accepted.
		res, err := strictClient.SubmitBooking(domain.BookingRequest{
			VehicleID:  3,
			RentalDays: 6,
			ExtraHours: 0,
			TotalPrice: 9000000,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveHTTPStatus(http.StatusBadRequest))

		body := readJSONBody[apiErrorBody](res, nil)
		Expect(body.Error).To(Equal("total_mismatch"))
		Expect(body.Details).To(ContainElement("total_price: expected 8100000"))

		Expect(countBookings(ctx)).To(BeZero())
	})

	It("reports an unknown vehicle before checking the total", func(ctx context.Context) {
		res, err := strictClient.SubmitBooking(domain.BookingRequest{
			VehicleID:  9999,
			RentalDays: 3,
			ExtraHours: 0,
			TotalPrice: 1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveHTTPStatus(http.StatusUnprocessableEntity))

		body := readJSONBody[apiErrorBody](res, nil)
		Expect(body.Error).To(Equal("unknown_vehicle"))

		Expect(countBookings(ctx)).To(BeZero())
	})
})
