// Package client is a typed facade over the dealership HTTP API, used by
// site tooling and tests instead of hand-rolled fetch calls. Each
// operation surfaces a non-2xx response as its fixed sentinel error; there
// is no retry and no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dealerdrive-api/internal/model"
)

// Sentinel errors, one per operation. Wrap the HTTP status when available;
// match with errors.Is.
var (
	ErrFetchCars      = errors.New("failed to fetch cars")
	ErrCreateCar      = errors.New("failed to create car")
	ErrUpdateCar      = errors.New("failed to update car")
	ErrDeleteCar      = errors.New("failed to delete car")
	ErrFetchEnquiries = errors.New("failed to fetch enquiries")
	ErrCreateEnquiry  = errors.New("failed to create enquiry")
	ErrDeleteEnquiry  = errors.New("failed to delete enquiry")
)

// Client calls the dealership API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return NewWithHTTPClient(baseURL, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client,
// for custom timeouts or transports.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do issues the request and decodes a 2xx response body into out (when out
// is non-nil). Any other status becomes opErr wrapping the status code.
func (c *Client) do(req *http.Request, opErr error, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", opErr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", opErr, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %v", opErr, err)
		}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodGet {
		req.Header.Set("Cache-Control", "no-store")
	}
	return req, nil
}

// ListCars fetches the full car inventory.
func (c *Client) ListCars(ctx context.Context) ([]model.Car, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/cars", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchCars, err)
	}

	var cars []model.Car
	if err := c.do(req, ErrFetchCars, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// CreateCar submits a new listing; the id on the input is ignored.
func (c *Client) CreateCar(ctx context.Context, car model.Car) (model.Car, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/cars", car)
	if err != nil {
		return model.Car{}, fmt.Errorf("%w: %v", ErrCreateCar, err)
	}

	var created model.Car
	if err := c.do(req, ErrCreateCar, &created); err != nil {
		return model.Car{}, err
	}
	return created, nil
}

// UpdateCar applies a partial update to the car with the given id.
func (c *Client) UpdateCar(ctx context.Context, id int, updates model.CarUpdate) (model.Car, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/api/cars/%d", id), updates)
	if err != nil {
		return model.Car{}, fmt.Errorf("%w: %v", ErrUpdateCar, err)
	}

	var updated model.Car
	if err := c.do(req, ErrUpdateCar, &updated); err != nil {
		return model.Car{}, err
	}
	return updated, nil
}

// DeleteCar removes the car with the given id.
func (c *Client) DeleteCar(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/cars/%d", id), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteCar, err)
	}
	return c.do(req, ErrDeleteCar, nil)
}

// ListEnquiries fetches all submitted enquiries.
func (c *Client) ListEnquiries(ctx context.Context) ([]model.Enquiry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/enquiries", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchEnquiries, err)
	}

	var enquiries []model.Enquiry
	if err := c.do(req, ErrFetchEnquiries, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

// CreateEnquiry submits a new enquiry; id and submittedAt on the input are
// ignored.
func (c *Client) CreateEnquiry(ctx context.Context, enquiry model.Enquiry) (model.Enquiry, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/enquiries", enquiry)
	if err != nil {
		return model.Enquiry{}, fmt.Errorf("%w: %v", ErrCreateEnquiry, err)
	}

	var created model.Enquiry
	if err := c.do(req, ErrCreateEnquiry, &created); err != nil {
		return model.Enquiry{}, err
	}
	return created, nil
}

// DeleteEnquiry removes the enquiry with the given id.
func (c *Client) DeleteEnquiry(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/enquiries/%d", id), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteEnquiry, err)
	}
	return c.do(req, ErrDeleteEnquiry, nil)
}
