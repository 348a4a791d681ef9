// Package api contains the typed contract with the FeaturePulse backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering every
//     backend operation: TrackActivity, FetchFeatureRequests,
//     SubmitFeatureRequest, Vote/Unvote, and SyncUser.
//  2. A concrete JSON-over-HTTP implementation (see HTTPClient) that builds
//     authenticated requests, serializes snake_case payloads, and maps HTTP
//     status codes onto the error taxonomy below.
//  3. The wire DTOs for every request and response body.
//
// # Error Handling
//
// Fixed conditions are sentinel errors matched with errors.Is:
// ErrMissingAPIKey, ErrInvalidURL, ErrInvalidResponse, ErrDecoding,
// ErrAlreadyVoted, ErrPermissionDenied. Parameterized conditions are typed
// errors matched with errors.As: ServerError (non-2xx status) and
// NetworkError (transport failure). IsRetryable reports whether retrying an
// operation can help.
//
// # Concurrency & Contexts
//
// HTTPClient is stateless per call and safe for concurrent use once
// constructed. All operations accept context.Context and honor
// cancellation and deadlines.
package api
