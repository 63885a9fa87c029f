package rsvp

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/quannhg/graduation-invitation/internal/models"
)

const minNameLength = 2

const (
	msgNameRequired       = "Vui lòng nhập họ tên của bạn"
	msgNameTooShort       = "Họ tên phải có ít nhất 2 ký tự"
	msgAttendanceRequired = "Vui lòng chọn trạng thái tham dự"
)

// FormInput is what the guest entered.
type FormInput struct {
	Name       string
	Attendance models.Attendance
}

// ValidationErrors maps a form field to the reason it was rejected.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid rsvp: " + strings.Join(parts, "; ")
}

// NormalizeName trims the name and folds it to NFC so that "Tuấn" typed with
// combining marks counts and submits the same as the precomposed form.
func NormalizeName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}

// AttendanceFromForm reads the submitted control value for the given mode.
// In single mode an absent checkbox is an explicit "no".
func AttendanceFromForm(mode AttendanceMode, value string) models.Attendance {
	a := models.ParseAttendance(value)
	if mode == AttendanceSingle && a == models.AttendanceUnset {
		return models.NotAttending
	}
	return a
}

// Validate is the only gate before a submission leaves the server. The name
// is not checked when an inviter context supplies it.
func Validate(in FormInput, inviter *models.InviterContext) error {
	errs := ValidationErrors{}

	if inviter == nil {
		name := NormalizeName(in.Name)
		switch {
		case name == "":
			errs[FieldName] = msgNameRequired
		case utf8.RuneCountInString(name) < minNameLength:
			errs[FieldName] = msgNameTooShort
		}
	}

	if !in.Attendance.IsSet() {
		errs[FieldAttendance] = msgAttendanceRequired
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
