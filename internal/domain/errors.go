package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ApiErrorType string

const (
	ApiErrorTypeUnknown        ApiErrorType = "unknown"
	ApiErrorTypeBadParam       ApiErrorType = "bad_param"
	ApiErrorTypeMissingParam   ApiErrorType = "missing_param"
	ApiErrorTypeUnknownVehicle ApiErrorType = "unknown_vehicle"
	ApiErrorTypeTotalMismatch  ApiErrorType = "total_mismatch"
)

type ApiError struct {
	Type    ApiErrorType
	Details []string
}

func (res ApiError) Description() string {
	switch res.Type {
	case ApiErrorTypeBadParam:
		return "A validation error occurred"
	case ApiErrorTypeMissingParam:
		return "A required parameter is missing"
	case ApiErrorTypeUnknownVehicle:
		return "No vehicle with the given id exists in the catalog"
	case ApiErrorTypeTotalMismatch:
		return "Submitted total does not match the computed quote"
	default:
		return "An unknown error occurred"
	}
}

func (res ApiError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        ApiErrorType `json:"error"`
		Description string       `json:"error_description"`
		Details     []string     `json:"error_details"`
	}{
		Type:        res.Type,
		Description: res.Description(),
		Details:     res.Details,
	})
}

func (res ApiError) Error() string {
	return fmt.Sprintf("%s: %s\n%s", res.Type, res.Description(), strings.Join(res.Details, "\n"))
}
