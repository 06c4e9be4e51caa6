package models

// ControlState is the current control panel selection exposed to the UI.
type ControlState struct {
	Provider      string       `json:"provider"`
	Model         string       `json:"model"`
	SelectValue   string       `json:"selectValue"`
	AspectRatio   string       `json:"aspectRatio"`
	Steps         int          `json:"steps"`
	GuidanceScale float64      `json:"guidanceScale"`
	Seed          string       `json:"seed"`
	Config        ActiveConfig `json:"config"`
}

// AspectRatioOption is a selectable aspect ratio.
type AspectRatioOption struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SettingsView is what the settings dialog shows when it opens.
type SettingsView struct {
	Token    string `json:"token"`
	Language string `json:"language"`
}

// CredentialStatus reports whether a provider credential is stored, with a masked preview.
type CredentialStatus struct {
	Provider string `json:"provider"`
	Key      string `json:"key"`
	Present  bool   `json:"present"`
	Masked   string `json:"masked,omitempty"`
}
