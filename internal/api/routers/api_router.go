package routers

import (
	"net/http"

	"github.com/quannhg/graduation-invitation/internal/api/handlers/invitation"
	mw "github.com/quannhg/graduation-invitation/internal/api/middlewares"
)

func apiRouter(h *invitation.Handlers, rateLimit int) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/personalization", h.PersonalizationJSON)
	mux.Handle("/api/rsvp", mw.RateLimit(rateLimit)(http.HandlerFunc(h.SubmitJSON)))

	return mux
}
