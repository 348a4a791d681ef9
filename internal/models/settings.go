package models

// Permissions carries entitlement flags the backend grants to this device.
type Permissions struct {
	CanCreateFeatureRequest bool
}

// StatusAppearance overrides the default look of one status badge.
type StatusAppearance struct {
	// Color is a hex color string, e.g. "#EAB308".
	Color string
	// Icon is an icon identifier, e.g. "hourglass".
	Icon string
}

// StatusConfig maps status keys to their appearance overrides.
type StatusConfig map[string]StatusAppearance

// Settings is the server-controlled configuration snapshot. It is replaced
// wholesale after each successful fetch and is never mutated field-by-field,
// so readers always observe a consistent set of flags.
type Settings struct {
	ShowStatus        bool
	ShowTranslation   bool
	ShowWatermark     bool
	ShowSdkEmailField bool
	Permissions       Permissions
	StatusConfig      StatusConfig
}

// DefaultSettings returns the values in effect before the first fetch.
func DefaultSettings() Settings {
	return Settings{
		ShowStatus:        false,
		ShowTranslation:   true,
		ShowWatermark:     true,
		ShowSdkEmailField: false,
		Permissions:       Permissions{CanCreateFeatureRequest: true},
	}
}

// SettingsPatch holds the optional configuration fields of a fetch response.
// Nil means the server omitted the field and the current value stays.
type SettingsPatch struct {
	ShowStatus        *bool
	ShowTranslation   *bool
	ShowWatermark     *bool
	ShowSdkEmailField *bool
	Permissions       *Permissions
	StatusConfig      StatusConfig
}

// Apply overlays the patch on s and returns the resulting snapshot.
func (s Settings) Apply(p SettingsPatch) Settings {
	out := s
	if p.ShowStatus != nil {
		out.ShowStatus = *p.ShowStatus
	}
	if p.ShowTranslation != nil {
		out.ShowTranslation = *p.ShowTranslation
	}
	if p.ShowWatermark != nil {
		out.ShowWatermark = *p.ShowWatermark
	}
	if p.ShowSdkEmailField != nil {
		out.ShowSdkEmailField = *p.ShowSdkEmailField
	}
	if p.Permissions != nil {
		out.Permissions = *p.Permissions
	}
	if p.StatusConfig != nil {
		out.StatusConfig = p.StatusConfig
	}
	return out
}
