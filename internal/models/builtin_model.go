package models

// BuiltinModel is a model shipped with the application.
type BuiltinModel struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Steps    *StepsRange    `json:"steps,omitempty"`
	Guidance *GuidanceRange `json:"guidance,omitempty"`
}

// BuiltinProvider is a statically defined generation backend.
// CredentialKey gates visibility; an empty key means the provider is always shown.
type BuiltinProvider struct {
	ID            string         `json:"id"`
	DisplayName   string         `json:"displayName"`
	LabelKey      string         `json:"labelKey"`
	CredentialKey string         `json:"credentialKey,omitempty"`
	Models        []BuiltinModel `json:"models"`
}
