package api

import (
	"net/http"
	"net/url"
)

// endpoint pairs an HTTP method with a backend path.
type endpoint struct {
	method string
	path   string
}

var (
	epActivity             = endpoint{http.MethodPost, "/api/sdk/activity"}
	epFeatureRequests      = endpoint{http.MethodGet, "/api/sdk/feature-requests"}
	epSubmitFeatureRequest = endpoint{http.MethodPost, "/api/sdk/feature-requests"}
	epSyncUser             = endpoint{http.MethodPost, "/api/sdk/user"}
)

func epVote(featureRequestID string) endpoint {
	return endpoint{http.MethodPost, votePath(featureRequestID)}
}

func epUnvote(featureRequestID string) endpoint {
	return endpoint{http.MethodDelete, votePath(featureRequestID)}
}

func votePath(featureRequestID string) string {
	return "/api/sdk/feature-requests/" + url.PathEscape(featureRequestID) + "/vote"
}

// url builds the full request URL from the configured base and optional
// query parameters.
func (e endpoint) url(baseURL string, query url.Values) (string, error) {
	u, err := url.Parse(baseURL + e.path)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}
