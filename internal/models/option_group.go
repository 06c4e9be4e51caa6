package models

// Option is a single selectable entry. Value is the combined "provider:model" key.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionGroup groups options under a provider label for presentation.
type OptionGroup struct {
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}
