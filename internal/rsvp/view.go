package rsvp

import "github.com/quannhg/graduation-invitation/internal/models"

// Form field names shared by the template, the form parser and the validator.
const (
	FieldName        = "friendName"
	FieldAttendance  = "willAttend"
	FieldInviter     = "inviter"
	FieldInviterName = "inviterName"
)

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

type TextField struct {
	Value  string
	Hidden bool
	Error  string
}

// AttendanceControl covers both modes: in single mode only Yes is rendered.
type AttendanceControl struct {
	Yes   bool
	No    bool
	Error string
}

type SubmitButton struct {
	Disabled bool
	Loading  bool
}

type Banner struct {
	Text   string
	Kind   BannerKind
	Hidden bool
}

// View is everything the page template reads. The RSVP flow writes to it
// instead of touching markup, so it can be exercised without a browser.
type View struct {
	Mode AttendanceMode

	Name       TextField
	Attendance AttendanceControl
	Submit     SubmitButton
	Message    Banner

	SkeletonHidden bool
	ContentHidden  bool
	MessageLoading bool

	Greetings     []string
	Occasion      string
	Signature     string
	SignatureNote string

	// Inviter is the raw token carried back on submit, InviterName the
	// display name it resolved to.
	Inviter     string
	InviterName string
	// Personalized is set once the inviter's custom copy was applied.
	Personalized bool

	reveal *Reveal
	toggle *SubmitToggle
}

func NewView(opts Options) *View {
	opts = opts.withDefaults()
	greetings := make([]string, len(opts.Greetings))
	copy(greetings, opts.Greetings)
	v := &View{
		Mode:          opts.AttendanceMode,
		Message:       Banner{Hidden: true},
		ContentHidden: true,
		Greetings:     greetings,
		Occasion:      opts.Occasion,
		Signature:     opts.HostName,
	}
	v.reveal = NewReveal(v)
	v.toggle = NewSubmitToggle(v)
	return v
}

// Reveal returns the page's reveal sequencer.
func (v *View) Reveal() *Reveal {
	return v.reveal
}

// Toggle returns the page's submit toggle.
func (v *View) Toggle() *SubmitToggle {
	return v.toggle
}

func (v *View) ShowMessage(text string, kind BannerKind) {
	v.Message = Banner{Text: text, Kind: kind}
}

func (v *View) HideMessage() {
	v.Message.Hidden = true
}

func (v *View) SetLoading(loading bool) {
	v.Submit.Disabled = loading
	v.Submit.Loading = loading
}

func (v *View) clearFieldErrors() {
	v.Name.Error = ""
	v.Attendance.Error = ""
}

func (v *View) setAttendance(a models.Attendance) {
	v.Attendance.Yes = a == models.Attending
	v.Attendance.No = a == models.NotAttending
}

// Single is a template helper.
func (v *View) Single() bool {
	return v.Mode == AttendanceSingle
}
