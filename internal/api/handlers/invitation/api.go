package invitation

import (
	"net/http"
	"strings"

	"github.com/quannhg/graduation-invitation/internal/api/handlers"
	"github.com/quannhg/graduation-invitation/internal/rsvp"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

type personalizationResponse struct {
	Status        string   `json:"status"`
	Personalized  bool     `json:"personalized"`
	Inviter       string   `json:"inviter,omitempty"`
	DisplayName   string   `json:"display_name,omitempty"`
	Greetings     []string `json:"greetings"`
	Occasion      string   `json:"occasion"`
	SignatureNote string   `json:"signature_note,omitempty"`
}

// PersonalizationJSON returns the page copy for an inviter token.
func (h *Handlers) PersonalizationJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	inviter := handlers.InviterParam(r)
	if inviter == "" {
		utils.WriteError(w, "inviter is required", http.StatusBadRequest)
		return
	}

	view, inviterCtx := h.Controller.Load(r.Context(), inviter)
	res := personalizationResponse{
		Status:        "success",
		Personalized:  view.Personalized,
		Greetings:     view.Greetings,
		Occasion:      view.Occasion,
		SignatureNote: view.SignatureNote,
	}
	if inviterCtx != nil {
		res.Inviter = inviterCtx.URLParam
		res.DisplayName = inviterCtx.DisplayName
	}
	utils.WriteJSON(w, res)
}

type rsvpRequest struct {
	Name       string `json:"name"`
	Attendance string `json:"attendance"`
	Inviter    string `json:"inviter,omitempty"`
	// InviterName echoes display_name from the personalization response.
	InviterName string `json:"inviter_name,omitempty"`
}

type rsvpResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// SubmitJSON is the JSON twin of Submit for script-driven pages.
func (h *Handlers) SubmitJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.WriteError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rsvpRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, inviterCtx := h.Controller.Resume(r.Context(), strings.TrimSpace(req.Inviter), req.InviterName)
	in := rsvp.FormInput{
		Name:       req.Name,
		Attendance: rsvp.AttendanceFromForm(h.Controller.Options().AttendanceMode, req.Attendance),
	}

	res := h.Controller.Submit(r.Context(), view, in, inviterCtx)
	switch res.Outcome {
	case rsvp.OutcomeSubmitted:
		utils.WriteJSON(w, rsvpResponse{Status: "success", Message: view.Message.Text})
	case rsvp.OutcomeInvalid:
		utils.WriteFieldErrors(w, "validation failed", res.Errors, http.StatusUnprocessableEntity)
	default:
		utils.WriteError(w, view.Message.Text, statusFor(res.Outcome))
	}
}
