package services

import (
	"github.com/sirupsen/logrus"

	"github.com/quannhg/graduation-invitation/internal/models"
	"github.com/quannhg/graduation-invitation/pkg/utils"
)

// EmailNotifier mails the organizer after each relayed RSVP. Sending happens
// in the background; a failed email never affects the guest's response.
type EmailNotifier struct {
	SMTP utils.SMTPConfig
	To   string

	send func(cfg utils.SMTPConfig, to, guestName, attendance, submittedAt string) error
}

func NewEmailNotifier(cfg utils.SMTPConfig, to string) *EmailNotifier {
	return &EmailNotifier{SMTP: cfg, To: to, send: utils.SendRSVPNotificationEmail}
}

func (n *EmailNotifier) Enabled() bool {
	return n != nil && n.To != "" && n.SMTP.Enabled()
}

func (n *EmailNotifier) Notify(sub models.Submission, displayName string) {
	if !n.Enabled() {
		return
	}
	go n.deliver(sub, displayName)
}

func (n *EmailNotifier) deliver(sub models.Submission, displayName string) {
	if err := n.send(n.SMTP, n.To, displayName, sub.Attendance, sub.Timestamp); err != nil {
		utils.Logger.WithFields(logrus.Fields{
			"guest": sub.Name,
			"error": err.Error(),
		}).Error("Failed to send RSVP notification email")
	}
}
