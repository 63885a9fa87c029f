package rsvp

// AttendanceMode selects how the page asks for attendance.
type AttendanceMode string

const (
	// AttendanceRadio shows two radios; the guest must pick one.
	AttendanceRadio AttendanceMode = "radio"
	// AttendanceSingle shows one yes/no checkbox; unchecked means not attending.
	AttendanceSingle AttendanceMode = "single"
)

// Options replaces the separate page variants with one declared set of switches.
type Options struct {
	AttendanceMode  AttendanceMode
	Personalization bool
	PrefillName     bool
	HostName        string

	// Default copy, shown until personalization replaces it.
	Greetings []string
	Occasion  string
}

const inviterPlaceholder = "anh/chị/bạn"

func DefaultOptions() Options {
	return Options{
		AttendanceMode:  AttendanceRadio,
		Personalization: true,
		PrefillName:     true,
		HostName:        "Quân",
		Greetings: []string{
			"Sau những năm tháng miệt mài trên giảng đường, cuối cùng ngày tốt nghiệp cũng đã đến.",
			"Mình rất mong " + inviterPlaceholder + " có thể dành chút thời gian đến chung vui cùng mình trong ngày đặc biệt này.",
		},
		Occasion: "Mời bạn đến tham dự",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AttendanceMode == "" {
		o.AttendanceMode = d.AttendanceMode
	}
	if o.HostName == "" {
		o.HostName = d.HostName
	}
	if len(o.Greetings) == 0 {
		o.Greetings = d.Greetings
	}
	if o.Occasion == "" {
		o.Occasion = d.Occasion
	}
	return o
}
