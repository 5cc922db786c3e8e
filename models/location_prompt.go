package models

// LocationPromptState is the per-session "share your location" prompt state.
type LocationPromptState struct {
	Dismissed bool `json:"dismissed"`
	Accepted  bool `json:"accepted"`
}

// ShouldPrompt reports whether the prompt should still be shown.
func (s LocationPromptState) ShouldPrompt() bool {
	return !s.Dismissed && !s.Accepted
}
