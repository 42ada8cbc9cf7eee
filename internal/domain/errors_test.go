package domain

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ApiError", func() {
	It("can be serialized as JSON", func() {
		Expect(json.Marshal(ApiError{
			Type:    ApiErrorTypeBadParam,
			Details: []string{"rental_days: must be at least 1"},
		})).To(MatchJSON(`
		     {
				"error": "bad_param",
				"error_description": "A validation error occurred",
				"error_details": ["rental_days: must be at least 1"]
		     }
		 `))
	})

	It("describes a missing request body", func() {
		Expect(json.Marshal(ApiError{
			Type:    ApiErrorTypeMissingParam,
			Details: []string{"request body is required"},
		})).To(MatchJSON(`
		     {
				"error": "missing_param",
				"error_description": "A required parameter is missing",
				"error_details": ["request body is required"]
		     }
		 `))
	})

	It("describes unknown vehicle failures", func() {
		Expect(json.Marshal(ApiError{
			Type: ApiErrorTypeUnknownVehicle,
		})).To(MatchJSON(`
		     {
				"error": "unknown_vehicle",
				"error_description": "No vehicle with the given id exists in the catalog",
				"error_details": null
		     }
		 `))
	})
})
