package models

// StepsRange is the inclusive step-count range of a model.
type StepsRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// GuidanceRange is the guidance-scale range of a model. Step is the adjustment granularity.
type GuidanceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// ActiveConfig is the resolved parameter constraints of a (provider, model) pair.
// A nil range means there is no constraint to enforce.
type ActiveConfig struct {
	IsCustom bool           `json:"isCustom"`
	Steps    *StepsRange    `json:"steps"`
	Guidance *GuidanceRange `json:"guidance"`
}
