package routers

import (
	"net/http"

	"github.com/quannhg/graduation-invitation/internal/api/handlers/invitation"
	mw "github.com/quannhg/graduation-invitation/internal/api/middlewares"
)

func invitationRouter(h *invitation.Handlers, rateLimit int) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.Page)
	mux.Handle("/rsvp", mw.RateLimit(rateLimit)(http.HandlerFunc(h.Submit)))

	return mux
}
