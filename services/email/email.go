// Package emailsvc provides the core.EmailService implementations: a console
// writer for development and tests, and SendGrid for deployed environments.
package emailsvc

import (
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
)

// transport hands one rendered message to its destination.
type transport func(msg core.EmailMessage) error

// deliver renders msg and passes it to send; messages without recipients or content are dropped.
// It reports whether the message was handed over.
func deliver(msg *core.EmailMessage, frontendBaseURL string, logger core.Logger, send transport) bool {
	if err := msg.Render(frontendBaseURL); err != nil {
		logger.Error("rendering email", errors.Wrapf(err, "rendering %q", msg.TemplateName))
		return false
	}
	if !msg.HasRecipients() || !msg.HasContent() {
		return false
	}
	if err := send(*msg); err != nil {
		logger.Error("sending email", err)
		return false
	}
	return true
}
