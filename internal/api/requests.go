package api

// Wire shapes for request bodies. Field names are fixed by the backend;
// optional fields are pointers so they disappear from the payload entirely
// rather than being sent as empty values.

type activityRequest struct {
	UserIdentifier string `json:"user_identifier"`
	ActivityType   string `json:"activity_type"`
}

type deviceInfo struct {
	DeviceID string `json:"device_id"`
	BundleID string `json:"bundle_id"`
}

type submitFeatureRequest struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	DeviceInfo          deviceInfo `json:"device_info"`
	UserEmail           *string    `json:"user_email,omitempty"`
	PaymentType         *string    `json:"payment_type,omitempty"`
	MonthlyValueCents   *int64     `json:"monthly_value_cents,omitempty"`
	OriginalAmountCents *int64     `json:"original_amount_cents,omitempty"`
	Currency            *string    `json:"currency,omitempty"`
}

type voteRequest struct {
	DeviceID          string  `json:"device_id"`
	PaymentType       *string `json:"payment_type,omitempty"`
	MonthlyValueCents *int64  `json:"monthly_value_cents,omitempty"`
}

type unvoteRequest struct {
	DeviceID string `json:"device_id"`
}

type syncUserRequest struct {
	UserIdentifier      string  `json:"user_identifier"`
	CustomID            *string `json:"custom_id,omitempty"`
	UserEmail           *string `json:"user_email,omitempty"`
	UserName            *string `json:"user_name,omitempty"`
	PaymentType         *string `json:"payment_type,omitempty"`
	MonthlyValueCents   *int64  `json:"monthly_value_cents,omitempty"`
	OriginalAmountCents *int64  `json:"original_amount_cents,omitempty"`
	Currency            *string `json:"currency,omitempty"`
}
