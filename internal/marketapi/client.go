// Package marketapi is a typed client for the marketplace REST API.
//
// Every call is a single best-effort round trip: no retries, no caching,
// no timeout policy beyond what the caller's context imposes. Failures
// surface as *RemoteError so callers can decide whether to log, degrade,
// or render the problem.
package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/actext/console/internal/marketapi"

// Client issues JSON round trips against the marketplace API.
type Client struct {
	baseURL string
	client  *http.Client
	tracer  trace.Tracer
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		tracer:  otel.Tracer(tracerName),
	}
}

// ListServiceRequests fetches the full service request collection.
func (c *Client) ListServiceRequests(ctx context.Context) ([]ServiceRequest, error) {
	return fetchCollection[ServiceRequest](ctx, c, ResourceServiceRequests)
}

// ListBuyerInquiries fetches the full buyer inquiry collection.
func (c *Client) ListBuyerInquiries(ctx context.Context) ([]BuyerInquiry, error) {
	return fetchCollection[BuyerInquiry](ctx, c, ResourceBuyerInquiries)
}

// ListUsers fetches the full user collection.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return fetchCollection[User](ctx, c, ResourceUsers)
}

// ListListings fetches the full AC listing collection.
func (c *Client) ListListings(ctx context.Context) ([]Listing, error) {
	return fetchCollection[Listing](ctx, c, ResourceListings)
}

type statusPatch struct {
	Status ServiceRequestStatus `json:"status"`
}

// UpdateServiceRequestStatus patches one request's status and returns
// the record the server answered with.
func (c *Client) UpdateServiceRequestStatus(ctx context.Context, id int64, status ServiceRequestStatus) (ServiceRequest, error) {
	return mutate[ServiceRequest](ctx, c, ResourceServiceRequests, id, http.MethodPatch, statusPatch{Status: status})
}

// ReplaceUser issues a full-record replace for one user.
func (c *Client) ReplaceUser(ctx context.Context, id int64, user User) (User, error) {
	return mutate[User](ctx, c, ResourceUsers, id, http.MethodPut, user)
}

func fetchCollection[T any](ctx context.Context, c *Client, resource Resource) ([]T, error) {
	ctx, span := c.tracer.Start(ctx, string(resource)+".list")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+string(resource), nil)
	if err != nil {
		return nil, spanErr(span, remoteErr(resource, "list", 0, fmt.Errorf("build request: %w", err)))
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, spanErr(span, remoteErr(resource, "list", 0, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, spanErr(span, remoteErr(resource, "list", resp.StatusCode, errors.New(resp.Status)))
	}
	var records []T
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, spanErr(span, remoteErr(resource, "list", resp.StatusCode, fmt.Errorf("decode collection: %w", err)))
	}
	return records, nil
}

func mutate[T any](ctx context.Context, c *Client, resource Resource, id int64, method string, body any) (T, error) {
	var zero T
	op := strings.ToLower(method)

	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("%s.%s", resource, op))
	defer span.End()

	payload, err := json.Marshal(body)
	if err != nil {
		return zero, spanErr(span, remoteErr(resource, op, 0, fmt.Errorf("encode body: %w", err)))
	}
	url := fmt.Sprintf("%s/%s/%d", c.baseURL, resource, id)
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return zero, spanErr(span, remoteErr(resource, op, 0, fmt.Errorf("build request: %w", err)))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return zero, spanErr(span, remoteErr(resource, op, 0, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return zero, spanErr(span, remoteErr(resource, op, resp.StatusCode, errors.New(resp.Status)))
	}
	var record T
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return zero, spanErr(span, remoteErr(resource, op, resp.StatusCode, fmt.Errorf("decode record: %w", err)))
	}
	return record, nil
}

func spanErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}
