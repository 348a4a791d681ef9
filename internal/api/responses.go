package api

import "github.com/featurepulse/featurepulse-go/internal/models"

// ackResponse is the body of fire-and-forget operations.
type ackResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
}

type featureRequestDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	VoteCount   int    `json:"vote_count"`
	HasVoted    bool   `json:"has_voted"`
}

// toModel converts the wire value. An unknown status tag falls back to the
// default instead of failing the whole list decode, and a negative vote
// count is clamped.
func (d featureRequestDTO) toModel() models.FeatureRequest {
	return models.FeatureRequest{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      models.ParseStatus(d.Status),
		VoteCount:   max(0, d.VoteCount),
		HasVoted:    d.HasVoted,
	}
}

type permissionsDTO struct {
	CanCreateFeatureRequest bool `json:"can_create_feature_request"`
}

type statusAppearanceDTO struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type featureRequestsResponse struct {
	Success           bool                           `json:"success"`
	Data              []featureRequestDTO            `json:"data"`
	ShowStatus        *bool                          `json:"show_status"`
	ShowTranslation   *bool                          `json:"show_translation"`
	ShowWatermark     *bool                          `json:"show_watermark"`
	ShowSdkEmailField *bool                          `json:"show_sdk_email_field"`
	Permissions       *permissionsDTO                `json:"permissions"`
	StatusConfig      map[string]statusAppearanceDTO `json:"status_config"`
}

// settingsPatch extracts the server-controlled configuration fields that
// were present in the response.
func (r featureRequestsResponse) settingsPatch() models.SettingsPatch {
	patch := models.SettingsPatch{
		ShowStatus:        r.ShowStatus,
		ShowTranslation:   r.ShowTranslation,
		ShowWatermark:     r.ShowWatermark,
		ShowSdkEmailField: r.ShowSdkEmailField,
	}
	if r.Permissions != nil {
		patch.Permissions = &models.Permissions{
			CanCreateFeatureRequest: r.Permissions.CanCreateFeatureRequest,
		}
	}
	if r.StatusConfig != nil {
		cfg := make(models.StatusConfig, len(r.StatusConfig))
		for key, a := range r.StatusConfig {
			cfg[key] = models.StatusAppearance{Color: a.Color, Icon: a.Icon}
		}
		patch.StatusConfig = cfg
	}
	return patch
}
