package assets

import _ "embed"

// ModelsData holds the raw JSON table of built-in providers and their models.
//
//go:embed models.json
var ModelsData []byte
