package models

import "github.com/featurepulse/featurepulse-go/internal/payment"

// User describes the current app install. DeviceID is the sole identity sent
// with every request; the remaining fields are supplementary metadata set by
// the embedding application.
//
// A single User value is shared by the API client and the store. Callers are
// expected to mutate it from one goroutine only (the same cooperative model
// the store uses).
type User struct {
	// DeviceID is a stable opaque identifier, persisted locally and never
	// regenerated after first run.
	DeviceID string

	// CustomID is the embedding app's own user identifier, if supplied.
	CustomID string

	// Email and Name are optional, developer-supplied, and only sent when
	// the server-side email field flag allows it.
	Email string
	Name  string

	// Payment is the user's current payment tier, if reported.
	Payment *payment.Payment
}
