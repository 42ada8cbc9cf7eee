package domain

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func validBookingRequest() BookingRequest {
	return BookingRequest{
		VehicleID:  1,
		RentalDays: 6,
		ExtraHours: 0,
		TotalPrice: 8100000,
	}
}

var _ = Describe("ValidateBookingRequest", func() {
	It("accepts a well-formed request", func() {
		Expect(ValidateBookingRequest(validBookingRequest())).To(BeEmpty())
	})

	It("accepts a request with a UUID idempotency key", func() {
		req := validBookingRequest()
		req.IdempotencyKey = uuid.NewString()
		Expect(ValidateBookingRequest(req)).To(BeEmpty())
	})

	It("rejects a missing vehicle id", func() {
		req := validBookingRequest()
		req.VehicleID = 0
		Expect(ValidateBookingRequest(req)).To(ContainElement(ContainSubstring("vehicle_id")))
	})

	It("rejects non-positive rental days", func() {
		req := validBookingRequest()
		req.RentalDays = 0
		Expect(ValidateBookingRequest(req)).To(ContainElement(ContainSubstring("rental_days")))
	})

	It("rejects negative extra hours", func() {
		req := validBookingRequest()
		req.ExtraHours = -1
		Expect(ValidateBookingRequest(req)).To(ContainElement(ContainSubstring("extra_hours")))
	})

	It("rejects a negative total", func() {
		req := validBookingRequest()
		req.TotalPrice = -890000
		Expect(ValidateBookingRequest(req)).To(ContainElement(ContainSubstring("total_price")))
	})

	It("rejects a malformed idempotency key", func() {
		req := validBookingRequest()
		req.IdempotencyKey = "not-a-uuid"
		Expect(ValidateBookingRequest(req)).To(ContainElement(ContainSubstring("idempotency_key")))
	})

	It("reports every violation at once", func() {
		Expect(ValidateBookingRequest(BookingRequest{
			VehicleID:  -1,
			RentalDays: 0,
			ExtraHours: -2,
			TotalPrice: -1,
		})).To(HaveLen(4))
	})
})
