package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/featurepulse/featurepulse-go/internal/config"
	"github.com/featurepulse/featurepulse-go/internal/models"
)

// HTTPClient talks JSON over HTTP to the FeaturePulse backend. It is
// configured once at construction; the shared User value supplies identity
// and payment fields for every request body.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	bundleID string
	user     *models.User
	httpc    *http.Client
}

// NewHTTPClient builds a client from the given configuration. When
// httpClient is nil a default client with the configured request timeout is
// used; tests inject their own to fake or count transport round trips.
func NewHTTPClient(cfg *config.Config, user *models.User, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &HTTPClient{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		bundleID: cfg.BundleID,
		user:     user,
		httpc:    httpClient,
	}
}

func (c *HTTPClient) TrackActivity(ctx context.Context, activityType string) error {
	req := activityRequest{
		UserIdentifier: c.user.DeviceID,
		ActivityType:   activityType,
	}
	var resp ackResponse
	return c.do(ctx, epActivity, req, nil, &resp)
}

func (c *HTTPClient) FetchFeatureRequests(ctx context.Context) ([]models.FeatureRequest, models.SettingsPatch, error) {
	query := url.Values{"device_id": {c.user.DeviceID}}

	var resp featureRequestsResponse
	if err := c.do(ctx, epFeatureRequests, nil, query, &resp); err != nil {
		return nil, models.SettingsPatch{}, err
	}

	items := make([]models.FeatureRequest, 0, len(resp.Data))
	for _, d := range resp.Data {
		items = append(items, d.toModel())
	}
	return items, resp.settingsPatch(), nil
}

func (c *HTTPClient) SubmitFeatureRequest(ctx context.Context, title, description, email string) error {
	req := submitFeatureRequest{
		Title:       title,
		Description: description,
		DeviceInfo: deviceInfo{
			DeviceID: c.user.DeviceID,
			BundleID: c.bundleID,
		},
		UserEmail: optional(email),
	}
	req.PaymentType, req.MonthlyValueCents, req.OriginalAmountCents, req.Currency = c.paymentFields()

	return c.do(ctx, epSubmitFeatureRequest, req, nil, nil)
}

func (c *HTTPClient) Vote(ctx context.Context, id string) error {
	req := voteRequest{DeviceID: c.user.DeviceID}
	req.PaymentType, req.MonthlyValueCents, _, _ = c.paymentFields()

	return c.do(ctx, epVote(id), req, nil, nil)
}

func (c *HTTPClient) Unvote(ctx context.Context, id string) error {
	req := unvoteRequest{DeviceID: c.user.DeviceID}
	return c.do(ctx, epUnvote(id), req, nil, nil)
}

func (c *HTTPClient) SyncUser(ctx context.Context) error {
	req := syncUserRequest{
		UserIdentifier: c.user.DeviceID,
		CustomID:       optional(c.user.CustomID),
		UserEmail:      optional(c.user.Email),
		UserName:       optional(c.user.Name),
	}
	req.PaymentType, req.MonthlyValueCents, req.OriginalAmountCents, req.Currency = c.paymentFields()

	return c.do(ctx, epSyncUser, req, nil, nil)
}

// paymentFields expands the user's payment tier into the optional request
// fields shared by submit, vote and sync bodies.
func (c *HTTPClient) paymentFields() (*string, *int64, *int64, *string) {
	p := c.user.Payment
	if p == nil {
		return nil, nil, nil, nil
	}
	paymentType := string(p.Type)
	monthly := p.MonthlyValueInCents
	original := p.OriginalAmountInCents()
	currency := p.Currency
	return &paymentType, &monthly, &original, &currency
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// do runs one request/response cycle: credential precondition, URL
// construction, serialization, transport, status mapping, and decoding into
// out (skipped when out is nil).
func (c *HTTPClient) do(ctx context.Context, ep endpoint, body any, query url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	target, err := ep.url(c.baseURL, query)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code <= 299:
		return nil
	case code == http.StatusForbidden:
		return ErrPermissionDenied
	case code == http.StatusConflict:
		return ErrAlreadyVoted
	default:
		return &ServerError{Code: code}
	}
}
