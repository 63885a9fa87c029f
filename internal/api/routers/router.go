package routers

import (
	"io/fs"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quannhg/graduation-invitation/internal/api/handlers/invitation"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// MainRouter mounts the page, the JSON API, static assets and the ops endpoints.
func MainRouter(h *invitation.Handlers, static fs.FS, gatherer prometheus.Gatherer, rateLimit int) *http.ServeMux {

	mux := http.NewServeMux()

	iRouter := invitationRouter(h, rateLimit)
	mux.Handle("/", iRouter)

	aRouter := apiRouter(h, rateLimit)
	mux.Handle("/api/", aRouter)

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]string{"status": "ok"})
	})

	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}
