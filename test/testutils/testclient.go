package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

type TestClient struct {
	baseURL url.URL
}

func NewTestClient(baseURL url.URL) *TestClient {
	return &TestClient{baseURL: baseURL}
}

func (client *TestClient) endpoint(path ...string) string {
	return client.baseURL.JoinPath(path...).String()
}

func (client *TestClient) sendRequestWithDefaultHeaders(method string, endpoint string, body any) (res *http.Response, err error) {
	var payload *bytes.Buffer
	if body != nil {
		jsonBody, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			err = fmt.Errorf("failed to serialize JSON payload: %w", marshalErr)
			return
		}
		payload = bytes.NewBuffer(jsonBody)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, endpoint, payload)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	res, err = http.DefaultClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to send request: %w", err)
		return
	}
	return
}

func (client *TestClient) ListVehicles() (*http.Response, error) {
	return client.sendRequestWithDefaultHeaders("GET", client.endpoint("vehicles"), nil)
}

func (client *TestClient) FetchVehicle(vehicleID string) (*http.Response, error) {
	return client.sendRequestWithDefaultHeaders("GET", client.endpoint("vehicles", vehicleID), nil)
}

// QuoteVehicle requests a server-computed price breakdown. Query values are
// passed through verbatim so tests can exercise malformed parameters.
func (client *TestClient) QuoteVehicle(vehicleID string, query url.Values) (*http.Response, error) {
	quoteURL := client.baseURL.JoinPath("vehicles", vehicleID, "quote")
	quoteURL.RawQuery = query.Encode()
	return client.sendRequestWithDefaultHeaders("GET", quoteURL.String(), nil)
}

func (client *TestClient) SubmitBooking(booking any) (*http.Response, error) {
	return client.sendRequestWithDefaultHeaders("POST", client.endpoint("bookings"), booking)
}

func (client *TestClient) FetchBooking(bookingID string) (*http.Response, error) {
	return client.sendRequestWithDefaultHeaders("GET", client.endpoint("bookings", bookingID), nil)
}
