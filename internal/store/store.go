// Package store owns the in-memory feature-request collection and the
// per-item vote state, reconciling optimistic local updates with the
// backend.
//
// The store assumes a single cooperative owner: all mutation entry points
// (LoadFeatureRequests, ToggleVote, SubmitFeatureRequest, UpdateUser) must
// be invoked from one goroutine, typically the UI event loop. Network calls
// inside them block that goroutine only at I/O boundaries. The store does
// not deduplicate concurrent toggles on the same id; a late rollback is
// applied by id lookup and silently no-ops when the id has left the
// collection.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/featurepulse/featurepulse-go/internal/api"
	"github.com/featurepulse/featurepulse-go/internal/logging"
	"github.com/featurepulse/featurepulse-go/internal/models"
	"github.com/featurepulse/featurepulse-go/internal/shuffle"
)

type Store struct {
	client api.Client
	log    logging.Logger
	user   *models.User

	requests  []models.FeatureRequest
	votedIDs  map[string]struct{}
	settings  models.Settings
	loading   bool
	prevCount int
}

func New(client api.Client, user *models.User, log logging.Logger) *Store {
	return &Store{
		client:   client,
		log:      log,
		user:     user,
		votedIDs: make(map[string]struct{}),
		settings: models.DefaultSettings(),
	}
}

// LoadFeatureRequests fetches the list, applies the device-seeded shuffle,
// and replaces the collection and the vote membership. On failure the
// previous collection is kept so stale data stays available behind a retry
// affordance. isRefresh suppresses the loading flag for pull-to-refresh
// flows.
func (s *Store) LoadFeatureRequests(ctx context.Context, isRefresh bool) error {
	if !isRefresh {
		s.loading = true
	}

	items, patch, err := s.client.FetchFeatureRequests(ctx)
	if err != nil {
		s.loading = false
		return fmt.Errorf("loading feature requests: %w", err)
	}

	items = shuffle.Seeded(items, s.user.DeviceID)

	if len(s.requests) > 0 {
		s.prevCount = len(s.requests)
	}
	s.requests = items

	s.votedIDs = make(map[string]struct{}, len(items))
	for _, fr := range items {
		if fr.HasVoted {
			s.votedIDs[fr.ID] = struct{}{}
		}
	}

	// the fetch response is the only mutation path for server settings
	s.settings = s.settings.Apply(patch)

	s.loading = false
	return nil
}

// ToggleVote flips the vote for id optimistically, then confirms with the
// backend. The returned boolean is the resulting membership.
//
// An "already voted" conflict while voting is reconciled as success: the
// server got there first, so the optimistic state stands. Any other failure
// rolls the optimistic update back and is returned to the caller.
func (s *Store) ToggleVote(ctx context.Context, id string) (bool, error) {
	_, wasVoted := s.votedIDs[id]
	target := !wasVoted

	s.applyVote(id, target)

	var err error
	if wasVoted {
		err = s.client.Unvote(ctx, id)
	} else {
		err = s.client.Vote(ctx, id)
	}

	if err == nil {
		return target, nil
	}

	if !wasVoted && errors.Is(err, api.ErrAlreadyVoted) {
		s.log.Info(ctx, "vote already recorded server-side", "id", id)
		return true, nil
	}

	s.applyVote(id, wasVoted)
	return wasVoted, fmt.Errorf("toggling vote for %s: %w", id, err)
}

// applyVote sets the membership and adjusts the displayed item for id. The
// lookup is by id, never by position, and vanished ids are ignored.
func (s *Store) applyVote(id string, voted bool) {
	idx := -1
	for i, fr := range s.requests {
		if fr.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	if voted {
		s.votedIDs[id] = struct{}{}
	} else {
		delete(s.votedIDs, id)
	}
	s.requests[idx] = s.requests[idx].WithVote(voted)
}

// SubmitFeatureRequest validates the input, checks the server-granted
// permission, and creates the request. The email is only forwarded when the
// dashboard has enabled the email field.
func (s *Store) SubmitFeatureRequest(ctx context.Context, title, description, email string) error {
	if err := validateSubmission(title, description); err != nil {
		return err
	}
	if !s.settings.Permissions.CanCreateFeatureRequest {
		return api.ErrPermissionDenied
	}
	if !s.settings.ShowSdkEmailField {
		email = ""
	}

	if err := s.client.SubmitFeatureRequest(ctx, title, description, email); err != nil {
		return fmt.Errorf("submitting feature request: %w", err)
	}
	return nil
}

// UpdateUser applies the mutation to the shared user value and pushes it to
// the backend. The sync is best-effort: failures are logged and swallowed,
// the next sync carries the same data anyway.
func (s *Store) UpdateUser(ctx context.Context, apply func(*models.User)) {
	apply(s.user)
	if err := s.client.SyncUser(ctx); err != nil {
		s.log.Warn(ctx, "user sync failed", "error", err)
	}
}

// Requests returns the current ordered collection.
func (s *Store) Requests() []models.FeatureRequest {
	return s.requests
}

// HasVoted reports the local vote membership for id.
func (s *Store) HasVoted(id string) bool {
	_, ok := s.votedIDs[id]
	return ok
}

// Settings returns the current server-controlled configuration snapshot.
func (s *Store) Settings() models.Settings {
	return s.settings
}

// IsLoading reports whether an initial (non-refresh) load is in flight.
func (s *Store) IsLoading() bool {
	return s.loading
}

// PreviousRequestCount returns the collection size before the last
// replacement, for placeholder sizing during refreshes.
func (s *Store) PreviousRequestCount() int {
	return s.prevCount
}
