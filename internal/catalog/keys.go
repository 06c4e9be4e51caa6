package catalog

import "strings"

const keySeparator = ":"

// ComposeKey joins a provider and model into the selector value.
func ComposeKey(provider, model string) string {
	return provider + keySeparator + model
}

// SplitKey splits a selector value on its first colon. The model part keeps any
// further colons. ok is false when value has no colon.
func SplitKey(value string) (provider, model string, ok bool) {
	return strings.Cut(value, keySeparator)
}
