package models

const PersonalizationStatusSuccess = "success"

// Personalization is the GET response of the spreadsheet endpoint.
type Personalization struct {
	Status           string `json:"status"`
	HasCustomMessage bool   `json:"hasCustomMessage,omitempty"`
	Message          string `json:"message,omitempty"`
	Inviter          string `json:"inviter,omitempty"`
}

// HasMessage reports whether the response carries usable custom copy.
func (p *Personalization) HasMessage() bool {
	return p != nil && p.Status == PersonalizationStatusSuccess && p.HasCustomMessage && p.Message != ""
}
