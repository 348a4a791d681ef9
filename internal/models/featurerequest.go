package models

// FeatureRequest is a single user-submitted feature request as reported by
// the backend. Values are immutable: a vote toggle produces a replacement
// value, never an in-place mutation.
type FeatureRequest struct {
	// ID is the opaque, server-assigned identifier.
	ID string

	// Title is the short summary (3-50 characters after validation).
	Title string

	// Description is the full text (10-500 characters after validation).
	Description string

	// Status is the dashboard-assigned state of the request.
	Status Status

	// VoteCount is the total number of votes. Never negative.
	VoteCount int

	// HasVoted reports whether the current device has voted for this
	// request, as seen by the server.
	HasVoted bool
}

// WithVote returns a copy with the vote state flipped to voted and the
// displayed count adjusted. The count never drops below zero.
func (f FeatureRequest) WithVote(voted bool) FeatureRequest {
	out := f
	out.HasVoted = voted
	if voted {
		out.VoteCount = f.VoteCount + 1
	} else {
		out.VoteCount = max(0, f.VoteCount-1)
	}
	return out
}
