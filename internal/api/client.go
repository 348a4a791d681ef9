package api

import (
	"context"

	"github.com/featurepulse/featurepulse-go/internal/models"
)

// Client is the contract with the FeaturePulse backend. The store and the
// session tracker depend on this interface, not on the HTTP implementation.
type Client interface {
	// TrackActivity reports an engagement event ("app_open" and friends).
	TrackActivity(ctx context.Context, activityType string) error

	// FetchFeatureRequests returns the current feature-request list together
	// with the server-controlled configuration fields present in the
	// response. The patch is the only source of configuration changes.
	FetchFeatureRequests(ctx context.Context) ([]models.FeatureRequest, models.SettingsPatch, error)

	// SubmitFeatureRequest creates a new feature request. email may be empty.
	SubmitFeatureRequest(ctx context.Context, title, description, email string) error

	// Vote registers this device's vote for the given request.
	Vote(ctx context.Context, id string) error

	// Unvote removes this device's vote from the given request.
	Unvote(ctx context.Context, id string) error

	// SyncUser pushes the current user identity, metadata and payment tier.
	SyncUser(ctx context.Context) error
}
