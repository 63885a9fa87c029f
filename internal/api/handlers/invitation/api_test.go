package invitation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quannhg/graduation-invitation/internal/rsvp"
)

var errTransport = errors.New("dial tcp: connection refused")

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/rsvp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestPersonalizationJSON(t *testing.T) {
	sheet := &stubSheet{configured: true, lookup: tuanPersonalization()}
	h := newTestHandlers(t, sheet, rsvp.DefaultOptions())

	rr := httptest.NewRecorder()
	h.PersonalizationJSON(rr, httptest.NewRequest(http.MethodGet, "/api/personalization?inviter=tuan", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got personalizationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Personalized || got.DisplayName != "Tuấn Nguyễn" || got.Inviter != "tuan" {
		t.Fatalf("response = %+v", got)
	}
	if got.Occasion != "Mời Tuấn Nguyễn đến tham dự" {
		t.Fatalf("occasion = %q", got.Occasion)
	}
}

func TestPersonalizationJSONFallback(t *testing.T) {
	h := newTestHandlers(t, &stubSheet{configured: true}, rsvp.DefaultOptions())

	rr := httptest.NewRecorder()
	h.PersonalizationJSON(rr, httptest.NewRequest(http.MethodGet, "/api/personalization?inviter=ghost", nil))

	var got personalizationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Personalized {
		t.Fatalf("failed lookup must fall back to default copy")
	}
	if got.Occasion != rsvp.DefaultOptions().Occasion {
		t.Fatalf("occasion = %q", got.Occasion)
	}
}

func TestPersonalizationJSONRequiresInviter(t *testing.T) {
	h := newTestHandlers(t, &stubSheet{configured: true}, rsvp.DefaultOptions())

	rr := httptest.NewRecorder()
	h.PersonalizationJSON(rr, httptest.NewRequest(http.MethodGet, "/api/personalization", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestSubmitJSON(t *testing.T) {
	sheet := &stubSheet{configured: true}
	h := newTestHandlers(t, sheet, rsvp.DefaultOptions())

	rr := postJSON(h.SubmitJSON, `{"name":"Lan","attendance":"no"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	var got rsvpResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "success" || !strings.HasPrefix(got.Message, "✓ Cảm ơn Lan đã phản hồi.") {
		t.Fatalf("response = %+v", got)
	}
	if len(sheet.sent) != 1 {
		t.Fatalf("sent = %d", len(sheet.sent))
	}
}

func TestSubmitJSONValidation(t *testing.T) {
	h := newTestHandlers(t, &stubSheet{configured: true}, rsvp.DefaultOptions())

	rr := postJSON(h.SubmitJSON, `{"name":"L"}`)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, rsvp.FieldName) || !strings.Contains(body, rsvp.FieldAttendance) {
		t.Fatalf("both field errors expected, got %s", body)
	}
}

func TestSubmitJSONBadBody(t *testing.T) {
	h := newTestHandlers(t, &stubSheet{configured: true}, rsvp.DefaultOptions())

	for _, body := range []string{`{`, `{"name":"Lan","attendance":"yes","extra":1}`} {
		rr := postJSON(h.SubmitJSON, body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d", body, rr.Code)
		}
	}
}

func TestSubmitJSONTransportFailure(t *testing.T) {
	h := newTestHandlers(t, &stubSheet{configured: true, err: errTransport}, rsvp.DefaultOptions())

	rr := postJSON(h.SubmitJSON, `{"name":"Lan","attendance":"yes"}`)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Đã xảy ra lỗi khi gửi xác nhận") {
		t.Fatalf("body = %s", rr.Body.String())
	}
}

func TestSubmitJSONKeepsTokenWhenLookupLapses(t *testing.T) {
	sheet := &stubSheet{configured: true}
	h := newTestHandlers(t, sheet, rsvp.DefaultOptions())

	rr := postJSON(h.SubmitJSON, `{"attendance":"no","inviter":"tuan","inviter_name":"Tuấn Nguyễn"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	if len(sheet.sent) != 1 || sheet.sent[0].Name != "tuan" {
		t.Fatalf("sent = %+v, want the inviter token", sheet.sent)
	}
}

func TestPersonalizationJSONWithoutPrefill(t *testing.T) {
	opts := rsvp.DefaultOptions()
	opts.PrefillName = false
	h := newTestHandlers(t, &stubSheet{configured: true, lookup: tuanPersonalization()}, opts)

	rr := httptest.NewRecorder()
	h.PersonalizationJSON(rr, httptest.NewRequest(http.MethodGet, "/api/personalization?inviter=tuan", nil))

	var got personalizationResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Personalized {
		t.Fatalf("copy was personalized, response says otherwise: %+v", got)
	}
	if got.DisplayName != "" {
		t.Fatalf("display name should only be returned with prefill, got %q", got.DisplayName)
	}
}
