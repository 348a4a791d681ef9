package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurepulse/featurepulse-go/internal/config"
	"github.com/featurepulse/featurepulse-go/internal/models"
	"github.com/featurepulse/featurepulse-go/internal/payment"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		APIKey:         "fp_test_key",
		BaseURL:        baseURL,
		BundleID:       "com.example.app",
		RequestTimeout: 5 * time.Second,
	}
}

func testUser() *models.User {
	return &models.User{DeviceID: "device-1"}
}

// countingTransport records round trips so tests can assert that no network
// I/O happened.
type countingTransport struct {
	calls int
}

func (c *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls++
	return nil, errors.New("transport must not be reached")
}

func TestDo_EmptyAPIKeyFailsBeforeNetwork(t *testing.T) {
	transport := &countingTransport{}
	cfg := testConfig("https://featurepul.se")
	cfg.APIKey = ""
	c := NewHTTPClient(cfg, testUser(), &http.Client{Transport: transport})

	err := c.TrackActivity(context.Background(), "app_open")

	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, transport.calls, "no request may be issued without a key")
}

func TestDo_SetsAuthAndContentTypeHeaders(t *testing.T) {
	var gotKey, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	require.NoError(t, c.TrackActivity(context.Background(), "app_open"))

	assert.Equal(t, "fp_test_key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
}

func TestTrackActivity_SendsIdentifierAndType(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sdk/activity", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	require.NoError(t, c.TrackActivity(context.Background(), "app_open"))

	assert.Equal(t, "device-1", body["user_identifier"])
	assert.Equal(t, "app_open", body["activity_type"])
}

func TestFetchFeatureRequests_DecodesListAndSettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "device-1", r.URL.Query().Get("device_id"))
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"id":"fr1","title":"Dark mode","description":"Please add dark mode","status":"planned","vote_count":12,"has_voted":true},
				{"id":"fr2","title":"Widgets","description":"Home screen widgets","status":"brand_new_state","vote_count":-1,"has_voted":false}
			],
			"show_status": true,
			"show_sdk_email_field": true,
			"permissions": {"can_create_feature_request": false},
			"status_config": {"planned": {"color":"#EAB308","icon":"hourglass"}}
		}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	items, patch, err := c.FetchFeatureRequests(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, models.StatusPlanned, items[0].Status)
	assert.Equal(t, 12, items[0].VoteCount)
	assert.True(t, items[0].HasVoted)
	// unknown status falls back, negative count is clamped
	assert.Equal(t, models.StatusPending, items[1].Status)
	assert.Equal(t, 0, items[1].VoteCount)

	require.NotNil(t, patch.ShowStatus)
	assert.True(t, *patch.ShowStatus)
	assert.Nil(t, patch.ShowTranslation, "omitted field must stay nil")
	require.NotNil(t, patch.Permissions)
	assert.False(t, patch.Permissions.CanCreateFeatureRequest)
	assert.Equal(t, models.StatusAppearance{Color: "#EAB308", Icon: "hourglass"}, patch.StatusConfig["planned"])
}

func TestFetchFeatureRequests_MalformedBodyIsDecodingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	_, _, err := c.FetchFeatureRequests(context.Background())

	require.ErrorIs(t, err, ErrDecoding)
	assert.False(t, IsRetryable(err))
}

func TestSubmitFeatureRequest_BodyShape(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sdk/feature-requests", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	user := testUser()
	p := payment.Monthly(decimal.RequireFromString("7.99"), "USD")
	user.Payment = &p

	c := NewHTTPClient(testConfig(srv.URL), user, nil)
	err := c.SubmitFeatureRequest(context.Background(), "Dark mode", "Please add dark mode", "user@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Dark mode", body["title"])
	assert.Equal(t, "user@example.com", body["user_email"])
	info, ok := body["device_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "device-1", info["device_id"])
	assert.Equal(t, "com.example.app", info["bundle_id"])
	assert.Equal(t, "monthly", body["payment_type"])
	assert.Equal(t, float64(799), body["monthly_value_cents"])
	assert.Equal(t, float64(799), body["original_amount_cents"])
	assert.Equal(t, "USD", body["currency"])
}

func TestSubmitFeatureRequest_OmitsEmptyOptionals(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	require.NoError(t, c.SubmitFeatureRequest(context.Background(), "Dark mode", "Please add dark mode", ""))

	assert.NotContains(t, body, "user_email")
	assert.NotContains(t, body, "payment_type")
	assert.NotContains(t, body, "monthly_value_cents")
}

func TestSubmitFeatureRequest_ForbiddenIsPermissionDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.SubmitFeatureRequest(context.Background(), "t i t", "description!!", "")

	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, IsRetryable(err))
}

func TestVote_ConflictIsAlreadyVoted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sdk/feature-requests/fr1/vote", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.Vote(context.Background(), "fr1")

	require.ErrorIs(t, err, ErrAlreadyVoted)
	assert.False(t, IsRetryable(err))
}

func TestVote_SendsPaymentFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	user := testUser()
	p := payment.Yearly(decimal.RequireFromString("79.99"), "EUR")
	user.Payment = &p

	c := NewHTTPClient(testConfig(srv.URL), user, nil)
	require.NoError(t, c.Vote(context.Background(), "fr1"))

	assert.Equal(t, "device-1", body["device_id"])
	assert.Equal(t, "yearly", body["payment_type"])
	assert.Equal(t, float64(667), body["monthly_value_cents"])
	// vote bodies carry no original amount or currency
	assert.NotContains(t, body, "original_amount_cents")
	assert.NotContains(t, body, "currency")
}

func TestUnvote_UsesDeleteOnVotePath(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/sdk/feature-requests/fr1/vote", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	require.NoError(t, c.Unvote(context.Background(), "fr1"))

	assert.Equal(t, map[string]any{"device_id": "device-1"}, body)
}

func TestSyncUser_SendsMetadataAndPayment(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/sdk/user", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	user := testUser()
	user.CustomID = "user_42"
	user.Email = "user@example.com"
	p := payment.LifetimeMonths(decimal.RequireFromString("199.99"), "USD", 36)
	user.Payment = &p

	c := NewHTTPClient(testConfig(srv.URL), user, nil)
	require.NoError(t, c.SyncUser(context.Background()))

	assert.Equal(t, "device-1", body["user_identifier"])
	assert.Equal(t, "user_42", body["custom_id"])
	assert.Equal(t, "user@example.com", body["user_email"])
	assert.NotContains(t, body, "user_name")
	assert.Equal(t, "lifetime", body["payment_type"])
	assert.Equal(t, float64(556), body["monthly_value_cents"])
	assert.Equal(t, float64(19999), body["original_amount_cents"])
}

func TestDo_ServerErrorCarriesStatusCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.TrackActivity(context.Background(), "app_open")

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.True(t, IsRetryable(err))
}

func TestDo_ClientErrorNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.TrackActivity(context.Background(), "app_open")

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.False(t, IsRetryable(err))
}

func TestDo_ConnectionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections from now on

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.TrackActivity(context.Background(), "app_open")

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.True(t, IsRetryable(err))
}

func TestDo_TruncatedBodyIsInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		_, _ = io.WriteString(w, `{"succ`)
	}))
	defer srv.Close()

	c := NewHTTPClient(testConfig(srv.URL), testUser(), nil)
	err := c.TrackActivity(context.Background(), "app_open")

	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.True(t, IsRetryable(err))
}
