package models

// InviterContext is resolved at most once per page load and never mutated.
// URLParam is what gets submitted; DisplayName is what gets shown.
type InviterContext struct {
	URLParam    string `json:"url_param"`
	DisplayName string `json:"display_name"`
}
