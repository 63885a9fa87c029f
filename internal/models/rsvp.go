package models

// Attendance is the guest's answer to the invitation.
type Attendance int

const (
	AttendanceUnset Attendance = iota
	Attending
	NotAttending
)

// Labels written to the spreadsheet. The sheet owner filters on these exact strings.
const (
	AttendingLabel    = "Có tham dự"
	NotAttendingLabel = "Không tham dự"
)

func (a Attendance) Label() string {
	switch a {
	case Attending:
		return AttendingLabel
	case NotAttending:
		return NotAttendingLabel
	default:
		return ""
	}
}

func (a Attendance) IsSet() bool {
	return a == Attending || a == NotAttending
}

// ParseAttendance accepts the form values used by the page and the JSON API.
// Anything unrecognised is AttendanceUnset.
func ParseAttendance(v string) Attendance {
	switch v {
	case "yes", "true", "on", "1", AttendingLabel:
		return Attending
	case "no", "false", "0", NotAttendingLabel:
		return NotAttending
	default:
		return AttendanceUnset
	}
}

// Submission is the record relayed to the spreadsheet endpoint.
type Submission struct {
	Name       string `json:"name"`
	Attendance string `json:"attendance"`
	Timestamp  string `json:"timestamp"`
}
