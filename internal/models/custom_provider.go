package models

// RangeSpec is the stored form of a numeric parameter range: [min, max] plus a default.
type RangeSpec struct {
	Range   [2]float64 `json:"range"`
	Default float64    `json:"default"`
}

// CustomModel is a user-defined generation model.
type CustomModel struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Steps    *RangeSpec `json:"steps,omitempty"`
	Guidance *RangeSpec `json:"guidance,omitempty"`
}

// CustomModelSet holds the models of a custom provider by capability.
type CustomModelSet struct {
	Generate []CustomModel `json:"generate,omitempty"`
}

// CustomProvider is a user-configured generation backend.
type CustomProvider struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Models CustomModelSet `json:"models"`
}

// FindGenerateModel returns the generation model with the given id.
func (p *CustomProvider) FindGenerateModel(id string) (*CustomModel, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.Models.Generate {
		if p.Models.Generate[i].ID == id {
			return &p.Models.Generate[i], true
		}
	}
	return nil, false
}
