// Package client is a typed Go client for the blood-donation API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jwalitptl/doacao-api/internal/model"
)

const defaultTimeout = 10 * time.Second

// APIError carries the API's error text verbatim.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return e.Message
}

type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetry retries reads on transport errors and 5xx answers. Writes are
// never retried.
func WithRetry(count int, wait time.Duration) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
					return false
				}
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
	}
}

// New creates a client for baseURL, e.g. "http://localhost:5000/api".
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) (*resty.Response, error) {
	apiErr := &APIError{}
	req := c.http.R().SetContext(ctx).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		return resp, apiErr
	}
	return resp, nil
}

type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if _, err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) ListDonors(ctx context.Context) ([]*model.Donor, error) {
	var donors []*model.Donor
	if _, err := c.do(ctx, http.MethodGet, "/doadores", nil, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func (c *Client) GetDonor(ctx context.Context, id int64) (*model.Donor, error) {
	var donor model.Donor
	if _, err := c.do(ctx, http.MethodGet, "/doadores/"+strconv.FormatInt(id, 10), nil, &donor); err != nil {
		return nil, err
	}
	return &donor, nil
}

func (c *Client) CreateDonor(ctx context.Context, req *model.CreateDonorRequest) (int64, error) {
	var out model.CreateDonorResponse
	if _, err := c.do(ctx, http.MethodPost, "/doadores", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateDonor(ctx context.Context, id int64, req *model.UpdateDonorRequest) error {
	_, err := c.do(ctx, http.MethodPut, "/doadores/"+strconv.FormatInt(id, 10), req, nil)
	return err
}

func (c *Client) DeleteDonor(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/doadores/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

func (c *Client) ListAppointments(ctx context.Context) ([]*model.AppointmentDetail, error) {
	var list []*model.AppointmentDetail
	if _, err := c.do(ctx, http.MethodGet, "/agendamentos", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req *model.CreateAppointmentRequest) (int64, error) {
	var out model.CreateAppointmentResponse
	if _, err := c.do(ctx, http.MethodPost, "/agendamentos", req, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) error {
	_, err := c.do(ctx, http.MethodPut, "/agendamentos/"+strconv.FormatInt(id, 10), req, nil)
	return err
}

// CancelAppointment deletes the appointment.
func (c *Client) CancelAppointment(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/agendamentos/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

func (c *Client) ListStock(ctx context.Context) ([]*model.StockEntry, error) {
	var entries []*model.StockEntry
	if _, err := c.do(ctx, http.MethodGet, "/estoque", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) SetStock(ctx context.Context, bloodType string, quantityML int) error {
	body := model.SetStockRequest{QuantidadeML: &quantityML}
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("tipo", bloodType).
		SetBody(body).
		SetError(&APIError{}).
		Put("/estoque/{tipo}")
	if err != nil {
		return fmt.Errorf("PUT /estoque/%s: %w", bloodType, err)
	}
	if resp.IsError() {
		apiErr := resp.Error().(*APIError)
		apiErr.StatusCode = resp.StatusCode()
		return apiErr
	}
	return nil
}

func (c *Client) DonorsByBloodType(ctx context.Context) ([]*model.BloodTypeCount, error) {
	var counts []*model.BloodTypeCount
	if _, err := c.do(ctx, http.MethodGet, "/relatorios/doadores-por-tipo", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *Client) AppointmentsByStatus(ctx context.Context) ([]*model.StatusCount, error) {
	var counts []*model.StatusCount
	if _, err := c.do(ctx, http.MethodGet, "/relatorios/agendamentos-por-status", nil, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// ExportReport downloads the xlsx workbook.
func (c *Client) ExportReport(ctx context.Context) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, "/relatorios/exportar", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
