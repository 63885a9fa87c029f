package services

import (
	"errors"
	"net/http"
	"strings"
)

// PlaceholderURL is the value shipped in sample configs before the sheet is deployed.
const PlaceholderURL = "YOUR_GOOGLE_APPS_SCRIPT_URL_HERE"

var ErrEndpointNotConfigured = errors.New("apps script endpoint is not configured")

// HTTPDoer is the transport used to reach the endpoint. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func endpointConfigured(u string) bool {
	u = strings.TrimSpace(u)
	return u != "" && u != PlaceholderURL
}
