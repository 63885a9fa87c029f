package invitation

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/quannhg/graduation-invitation/internal/api/handlers"
	"github.com/quannhg/graduation-invitation/internal/rsvp"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

const pageTemplate = "invitation"

// Handlers serves the invitation page and its RSVP endpoints.
type Handlers struct {
	Controller *rsvp.Controller
	Templates  *template.Template
}

// New parses the page templates from fsys (rooted at the web directory).
func New(ctrl *rsvp.Controller, fsys fs.FS) (*Handlers, error) {
	tmpl, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, utils.ErrorHandler(err, "error parsing invitation templates")
	}
	if tmpl.Lookup(pageTemplate) == nil {
		return nil, fmt.Errorf("template %q not found", pageTemplate)
	}
	return &Handlers{Controller: ctrl, Templates: tmpl}, nil
}

// Page renders the invitation, personalized when ?inviter= resolves.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view, _ := h.Controller.Load(r.Context(), handlers.InviterParam(r))
	h.render(w, http.StatusOK, view)
}

// Submit handles the plain HTML form post and re-renders the page with the outcome.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := handlers.ParseSmallForm(w, r); err != nil {
		utils.Logger.WithError(err).Warn("Invalid RSVP form body")
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	inviter := strings.TrimSpace(r.PostFormValue(rsvp.FieldInviter))
	if inviter == "" {
		inviter = handlers.InviterParam(r)
	}

	view, inviterCtx := h.Controller.Resume(r.Context(), inviter, r.PostFormValue(rsvp.FieldInviterName))
	in := rsvp.FormInput{
		Name:       r.PostFormValue(rsvp.FieldName),
		Attendance: rsvp.AttendanceFromForm(h.Controller.Options().AttendanceMode, r.PostFormValue(rsvp.FieldAttendance)),
	}

	res := h.Controller.Submit(r.Context(), view, in, inviterCtx)
	h.render(w, statusFor(res.Outcome), view)
}

func (h *Handlers) render(w http.ResponseWriter, status int, view *rsvp.View) {
	var buf bytes.Buffer
	if err := h.Templates.ExecuteTemplate(&buf, pageTemplate, view); err != nil {
		utils.Logger.WithError(err).Error("Error executing invitation template")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func statusFor(o rsvp.Outcome) int {
	switch o {
	case rsvp.OutcomeSubmitted:
		return http.StatusOK
	case rsvp.OutcomeInvalid:
		return http.StatusUnprocessableEntity
	case rsvp.OutcomeNotConfigured:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
